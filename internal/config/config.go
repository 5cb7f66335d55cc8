package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nix-polyglot/glot/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyNixBin  = "nix_bin"
	KeyVariant = "variant"
)

// Dir returns the path to the glot config directory (~/.glot/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.glot/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyNixBin, "nix")
	viper.SetDefault(KeyVariant, "debug")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// NixBin returns the nix executable to invoke.
func NixBin() string {
	return Get(KeyNixBin)
}

// Variant returns the build variant used when --release is not given.
func Variant() string {
	return Get(KeyVariant)
}

// Set writes a config key-value pair and saves the config file, creating it
// on first use.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)
	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file %s: %w", FilePath(), err)
	}
	return nil
}
