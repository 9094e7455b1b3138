// Package config provides Viper-based configuration management for clippics
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/acm19/clippics/internal/clips"
	"github.com/spf13/viper"
)

// Config represents the complete clippics configuration
type Config struct {
	// Quality is kept as typed so it can be validated per compression.
	Quality      string `mapstructure:"quality"`
	Extension    string `mapstructure:"extension"`
	ClipboardDir string `mapstructure:"clipboard_dir"`
	CacheDir     string `mapstructure:"cache_dir"`
	StateFile    string `mapstructure:"state_file"`
	ListLimit    int    `mapstructure:"list_limit"`
	Colors       bool   `mapstructure:"colors"`
}

// Preferences returns the compression preferences.
func (c *Config) Preferences() clips.Preferences {
	return clips.Preferences{
		Quality:   c.Quality,
		Extension: c.Extension,
	}
}

// Dir returns the directory holding the config and state files.
func Dir(home string) string {
	return filepath.Join(home, ".config", "clippics")
}

// Load reads configuration from file and environment variables.
// A missing config file is not an error.
func Load(cfgFile string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return load(cfgFile, home)
}

func load(cfgFile, home string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir(home))
	}

	v.SetEnvPrefix("CLIPPICS")
	v.AutomaticEnv()

	setDefaults(v, home)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, home string) {
	prefs := clips.DefaultPreferences()
	v.SetDefault("quality", prefs.Quality)
	v.SetDefault("extension", prefs.Extension)
	v.SetDefault("clipboard_dir", clips.DefaultClipboardDir(home))
	v.SetDefault("cache_dir", clips.DefaultCacheRoot())
	v.SetDefault("state_file", filepath.Join(Dir(home), "state.json"))
	v.SetDefault("list_limit", clips.DefaultListLimit)
	v.SetDefault("colors", true)
}

// validate checks the settings that are fixed for the whole run. Quality and
// extension are validated when a compression runs so a bad value only
// blocks compression, not listing.
func validate(cfg *Config) error {
	if cfg.ClipboardDir == "" {
		return fmt.Errorf("clipboard_dir must not be empty")
	}
	if cfg.CacheDir == "" {
		return fmt.Errorf("cache_dir must not be empty")
	}
	if cfg.ListLimit < 0 {
		return fmt.Errorf("list_limit must not be negative: %d", cfg.ListLimit)
	}
	return nil
}
