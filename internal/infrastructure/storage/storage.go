// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Storage is a flat key-value store holding string values, the persistence
// surface the cart store writes through to.
type Storage interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// Event describes a change to a key made by another execution context
// sharing the same storage. A nil Value means the key was removed.
type Event struct {
	Key    string
	Value  *string
	Origin string
}

// Watcher is implemented by backends that can deliver change notifications
// originating from other execution contexts. Events caused by this handle's
// own writes are never delivered to it, matching browser storage events.
type Watcher interface {
	// Watch registers fn for changes to key and returns a stop function that
	// deregisters it. fn may be invoked from a separate goroutine.
	Watch(ctx context.Context, key string, fn func(Event)) (func(), error)
}
