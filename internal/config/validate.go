package config

import (
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/stint/store"
)

var (
	minTickInterval = 100 * time.Millisecond
	maxTickInterval = 1 * time.Minute

	logLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateStore(); err != nil {
		return err
	}

	if c.Watch.TickInterval < minTickInterval ||
		c.Watch.TickInterval > maxTickInterval {
		return errInvalidTickInterval.Fmt(minTickInterval, maxTickInterval)
	}

	if strings.TrimSpace(c.Display.DateFormat) == "" {
		return errEmptyDateFormat
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errInvalidLogLevel.Fmt(c.Log.Level, strings.Join(logLevels, ", "))
	}

	if c.Log.MaxSizeMB < 1 || c.Log.MaxBackups < 0 {
		return errInvalidLogRotation
	}

	return nil
}

func (c *Config) validateStore() error {
	backend := store.Backend(c.Store.Backend)

	if !slices.Contains(store.Backends, backend) {
		names := make([]string, len(store.Backends))
		for i := range store.Backends {
			names[i] = string(store.Backends[i])
		}

		return errInvalidBackend.Fmt(c.Store.Backend, strings.Join(names, ", "))
	}

	if backend == store.BackendRedis && strings.TrimSpace(c.Store.RedisAddr) == "" {
		return errMissingRedisAddr
	}

	if c.Store.RedisDB < 0 {
		return errInvalidRedisDB
	}

	return nil
}
