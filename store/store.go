// Package store provides the key-value stores that hold the persisted
// application state. Every backend stores opaque string values by key.
package store

import (
	"context"

	"github.com/ayoisaiah/stint/internal/apperr"
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value stored under key. ok is false if the key does
	// not exist.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// Close releases the underlying connection.
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendBolt   Backend = "bolt"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

// Backends lists the supported backends.
var Backends = []Backend{
	BackendBolt,
	BackendSQLite,
	BackendRedis,
	BackendMemory,
}

// Options selects and configures a backend.
type Options struct {
	Backend Backend
	// Path is the database file used by the bolt and sqlite backends
	Path          string
	RedisAddr     string
	RedisPassword string
	// KeyPrefix namespaces keys in a shared redis database
	KeyPrefix string
	RedisDB   int
}

var (
	errUnknownBackend = &apperr.Error{
		Message: "unknown store backend: %s",
	}

	errStoreLocked = &apperr.Error{
		Message: "the data store is locked: is stint watch running in another terminal?",
	}

	errOpenStore = &apperr.Error{
		Message: "unable to open the data store",
	}
)

// Open connects to the backend named in opts.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendBolt, "":
		return NewBoltStore(opts.Path)
	case BackendSQLite:
		return NewSQLStore(opts.Path)
	case BackendRedis:
		return NewRedisStore(ctx, opts)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errUnknownBackend.Fmt(opts.Backend)
	}
}
