package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	// DefaultTimezone is the zone used when a command or tool call supplies
	// none. Unknown names still fall back to the built-in default.
	DefaultTimezone string `mapstructure:"default_timezone"`
	// DefaultMode selects the duration decomposition used by `diff` when
	// --mode is not given: "p" (progressive) or "s" (separate).
	DefaultMode string `mapstructure:"default_mode"`
	Theme       string `mapstructure:"theme"`
}

// DefaultDataDir returns the default config directory (~/.timectl/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".timectl")
	}
	return filepath.Join(home, ".timectl")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("default_timezone", "Asia/Shanghai")
	v.SetDefault("default_mode", "p")
	v.SetDefault("theme", "default-dark")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "timectl"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: TIMECTL_DEFAULT_TIMEZONE, TIMECTL_DEFAULT_MODE, etc.
	v.SetEnvPrefix("TIMECTL")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
