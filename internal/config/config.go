// Package config assembles the application configuration from the config
// file and the command-line flags.
package config

import (
	"strings"
	"time"

	"github.com/ayoisaiah/stint/internal/timeutil"
	"github.com/ayoisaiah/stint/store"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Store         StoreConfig        `mapstructure:"store"`
		Display       DisplayConfig      `mapstructure:"display"`
		Log           LogConfig          `mapstructure:"log"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Watch         WatchConfig        `mapstructure:"watch"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// StoreConfig selects the key-value store that holds the state.
	StoreConfig struct {
		Backend       string `mapstructure:"backend"`
		Path          string `mapstructure:"path"`
		RedisAddr     string `mapstructure:"redis_addr"`
		RedisPassword string `mapstructure:"redis_password"`
		KeyPrefix     string `mapstructure:"key_prefix"`
		RedisDB       int    `mapstructure:"redis_db"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DateFormat     string `mapstructure:"date_format"`
		DarkTheme      bool   `mapstructure:"dark_theme"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
	}

	// WatchConfig holds settings for the live view.
	WatchConfig struct {
		TickInterval time.Duration `mapstructure:"tick_interval"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds general behaviour settings.
	SettingsConfig struct {
		// Cmd is run after a session is stopped
		Cmd string `mapstructure:"cmd"`
		// Confirm asks before destructive actions
		Confirm bool `mapstructure:"confirm"`
	}

	// LogConfig controls the diagnostic log file.
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSizeMB  int    `mapstructure:"max_size_mb"`
		MaxBackups int    `mapstructure:"max_backups"`
	}

	// CLIConfig holds settings that only come from flags.
	CLIConfig struct {
		NoColor   bool
		AssumeYes bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.1.0"

// New creates a new Config and applies options in order. The result is
// validated.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// StoreOptions converts the store settings. defaultPath is used by file
// backends when no path is configured.
func (c *Config) StoreOptions(defaultPath string) store.Options {
	path := c.Store.Path
	if path == "" {
		path = defaultPath
	}

	return store.Options{
		Backend:       store.Backend(c.Store.Backend),
		Path:          path,
		RedisAddr:     c.Store.RedisAddr,
		RedisPassword: c.Store.RedisPassword,
		RedisDB:       c.Store.RedisDB,
		KeyPrefix:     c.Store.KeyPrefix,
	}
}

// ShouldConfirm reports whether destructive actions need confirmation.
func (c *Config) ShouldConfirm() bool {
	return c.Settings.Confirm && !c.CLI.AssumeYes
}

func (c *Config) normalize() {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))

	// only the stock layout follows the clock setting
	if !c.Display.TwentyFourHour &&
		c.Display.DateFormat == timeutil.DefaultDateFormat {
		c.Display.DateFormat = timeutil.DateFormat12Hr
	}
}
