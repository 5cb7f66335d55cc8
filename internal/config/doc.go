// Package config manages user-level settings stored at ~/.glot/config.yaml.
// Every key can be overridden with a GLOT_<KEY> environment variable, which is
// how tests point the nix front-end at a fake binary.
package config
