// Package interfaces defines the contracts between the fusion core and the
// outside world. Everything the core needs injected lives here so that
// services stay testable with hand-rolled mocks.
package interfaces

import (
	"context"
	"time"
)

// Cache is the contract for cache backends (memory, Redis, SQLite).
// The core treats cached values as opaque bytes.
type Cache interface {
	// Get returns the cached bytes for key, or an error on miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
