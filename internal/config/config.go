// Package config loads cargo-brief settings.
//
// Settings are layered, later sources winning:
//
//  1. Built-in defaults ([DefaultConfig])
//  2. The TOML config file, $XDG_CONFIG_HOME/cargo-brief/config.toml
//  3. CARGO_BRIEF_* environment variables (e.g. CARGO_BRIEF_COLOR=never)
//
// Command-line flags are applied on top by the CLI.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/matzehuels/cargo-brief/pkg/brief"
	pkgerrors "github.com/matzehuels/cargo-brief/pkg/errors"
)

const (
	// AppName is the application name used for directories.
	AppName = "cargo-brief"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "CARGO_BRIEF"
)

// Config holds user settings.
type Config struct {
	Cargo   string `mapstructure:"cargo"`   // Cargo binary; empty uses $CARGO or $PATH
	Color   string `mapstructure:"color"`   // auto, always or never
	NoDev   bool   `mapstructure:"no_dev"`  // Default for --no-dev
	Verbose bool   `mapstructure:"verbose"` // Default for --verbose
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{Color: string(brief.ColorAuto)}
}

// LoadOptions selects where Load looks for a config file.
type LoadOptions struct {
	ConfigFilePath string // Explicit file; must exist
	ConfigDirPath  string // Directory override for the default file
}

// Dir returns the config directory using the XDG convention
// (~/.config/cargo-brief/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// Load reads the layered configuration. It returns the config and the path
// of the file that was read, or "" when only defaults and environment
// applied. A missing default file is not an error.
func Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("load config canceled: %w", err)
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("cargo", defaults.Cargo)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("no_dev", defaults.NoDev)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	resolvedPath := ""
	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); err != nil {
			return nil, "", pkgerrors.Wrap(pkgerrors.ErrCodeFileNotFound, err, "config file not found: %s", opts.ConfigFilePath)
		}
		v.SetConfigFile(opts.ConfigFilePath)
		v.SetConfigType(ConfigFileExt)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", pkgerrors.Wrap(pkgerrors.ErrCodeInvalidConfig, err, "read config %s", opts.ConfigFilePath)
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		dir := opts.ConfigDirPath
		if dir == "" {
			d, err := Dir()
			if err != nil {
				return nil, "", err
			}
			dir = d
		}
		v.AddConfigPath(dir)
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, "", pkgerrors.Wrap(pkgerrors.ErrCodeInvalidConfig, err, "read config in %s", dir)
			}
		} else {
			resolvedPath = v.ConfigFileUsed()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.ErrCodeInvalidConfig, err, "failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, resolvedPath, nil
}

// Validate checks values that the file format cannot constrain.
func (c *Config) Validate() error {
	_, err := brief.ParseColorMode(c.Color)
	return err
}
