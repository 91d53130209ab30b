package storage

import (
	"context"
)

// Store is the durable key-value boundary the tracker persists through.
// Keys are logical names (see keys.go); values are serialized records.
// Implementations must survive process restarts.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put writes the value for key, replacing any previous value.
	Put(ctx context.Context, key string, value string) error

	// Delete removes the value for key. Deleting an absent key is not an
	// error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}
