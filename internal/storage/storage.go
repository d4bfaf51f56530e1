// Package storage provides the durable key-value entries that back the
// saved-recipes collection. Values are opaque bytes; callers own the encoding.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Backend is a durable key-value store.
type Backend interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the backend.
	Close() error
}

// Driver selects a Backend implementation.
type Driver string

const (
	// DriverFile stores one JSON file per key in a directory.
	DriverFile Driver = "file"
	// DriverSQLite stores keys in a single SQLite database.
	DriverSQLite Driver = "sqlite"
	// DriverMemory keeps values in process memory only.
	DriverMemory Driver = "memory"
)

// IsValid returns true if the driver is known.
func (d Driver) IsValid() bool {
	switch d {
	case DriverFile, DriverSQLite, DriverMemory:
		return true
	default:
		return false
	}
}

// Options configures Open.
type Options struct {
	// Driver selects the backend (default: file).
	Driver Driver
	// Dir is the directory for file and sqlite backends.
	Dir string
}

// DatabaseFilename is the sqlite database name inside Options.Dir.
const DatabaseFilename = "cookbook.db"

// Open creates the backend described by opts.
func Open(opts Options) (Backend, error) {
	driver := Driver(strings.ToLower(string(opts.Driver)))
	if driver == "" {
		driver = DriverFile
	}

	switch driver {
	case DriverFile:
		return NewFileBackend(opts.Dir)
	case DriverSQLite:
		return OpenSQLite(joinPath(opts.Dir, DatabaseFilename))
	case DriverMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q: must be 'file', 'sqlite', or 'memory'", opts.Driver)
	}
}

// validateKey rejects keys that could escape the storage directory.
func validateKey(key string) error {
	if key == "" {
		return errors.New("storage: empty key")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("storage: invalid key %q", key)
	}
	return nil
}
