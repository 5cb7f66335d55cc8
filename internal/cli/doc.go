// Package cli defines the Cobra command tree for the glot CLI. Each file
// registers one top-level command with the root command. Commands only
// handle flags and output; the work happens in the depsgen, greeting, nix
// and project packages.
package cli
