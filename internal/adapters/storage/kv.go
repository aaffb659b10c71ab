// Package storage provides the durable key-value primitive under the
// record store: string keys, string values, no multi-key transactions.
package storage

import "context"

// KV is the minimal contract the record layer needs from a store.
// Implementations must survive process restarts except where documented.
type KV interface {
	// Get returns the value at key, or ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set durably writes value at key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the given keys. Missing keys are not an error.
	Remove(ctx context.Context, keys ...string) error

	// Close releases the underlying resources.
	Close() error
}
