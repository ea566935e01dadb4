package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/stint/internal/timeutil"
	"github.com/ayoisaiah/stint/store"
)

const (
	keyStoreBackend         = "store.backend"
	keyStorePath            = "store.path"
	keyStoreRedisAddr       = "store.redis_addr"
	keyStoreRedisPassword   = "store.redis_password"
	keyStoreRedisDB         = "store.redis_db"
	keyStoreKeyPrefix       = "store.key_prefix"
	keyTwentyFourHour       = "display.24hr_clock"
	keyDateFormat           = "display.date_format"
	keyDarkTheme            = "display.dark_theme"
	keyTickInterval         = "watch.tick_interval"
	keyNotificationsEnabled = "notifications.enabled"
	keySessionCmd           = "settings.cmd"
	keyConfirm              = "settings.confirm"
	keyLogLevel             = "log.level"
	keyLogMaxSize           = "log.max_size_mb"
	keyLogMaxBackups        = "log.max_backups"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if it does
// not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyStoreBackend, string(store.BackendBolt))
	v.SetDefault(keyStorePath, "")
	v.SetDefault(keyStoreRedisAddr, "localhost:6379")
	v.SetDefault(keyStoreRedisPassword, "")
	v.SetDefault(keyStoreRedisDB, 0)
	v.SetDefault(keyStoreKeyPrefix, "stint:")
	v.SetDefault(keyTwentyFourHour, true)
	v.SetDefault(keyDateFormat, timeutil.DefaultDateFormat)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTickInterval, "1s")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyConfirm, true)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSize, 10)
	v.SetDefault(keyLogMaxBackups, 3)
}

func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
