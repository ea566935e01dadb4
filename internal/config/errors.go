package config

import "github.com/ayoisaiah/stint/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidBackend = &apperr.Error{
		Message: "unknown store backend %q (expected one of: %s)",
	}

	errMissingRedisAddr = &apperr.Error{
		Message: "the redis store requires store.redis_addr",
	}

	errInvalidRedisDB = &apperr.Error{
		Message: "store.redis_db cannot be negative",
	}

	errInvalidTickInterval = &apperr.Error{
		Message: "watch tick interval must be between %v and %v",
	}

	errEmptyDateFormat = &apperr.Error{
		Message: "display date format cannot be empty",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level %q (expected one of: %s)",
	}

	errInvalidLogRotation = &apperr.Error{
		Message: "log.max_size_mb must be at least 1 and log.max_backups cannot be negative",
	}
)
