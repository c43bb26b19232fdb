// Package cache keeps per-domain traffic snapshots between popup opens.
package cache

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by Store.Get when the key has no value.
var ErrNotFound = errors.New("cache entry not found")

// Store is the key/value medium the gateway reads and writes.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Record is a stored value as listed by a Backend.
type Record struct {
	Key       string
	Value     string
	UpdatedAt time.Time // zero when the backend does not track it
}

// Backend is a Store with the maintenance operations used by the cache
// subcommand.
type Backend interface {
	Store
	Delete(key string) error
	List() ([]Record, error)
	Clear() error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendCookie = "cookie"
	BackendSQLite = "sqlite"
	BackendPebble = "pebble"
	BackendMemory = "memory"
)

// Open creates the named backend rooted at path. The memory backend ignores
// path.
func Open(backend, path string) (Backend, error) {
	switch backend {
	case BackendCookie, "":
		return NewCookieStore(path)
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendPebble:
		return NewPebbleStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}
