package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// Allows swapping the implementation (Redis, in-memory) in tests.
type Cache interface {
	// Get reads data from cache and unmarshals it into dest.
	// Returns: (found bool, error)
	// - found = true: cache hit, data unmarshaled into dest
	// - found = false: cache miss, dest untouched
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores data in cache with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error

	// Publish sends a message on a channel (session change notifications).
	Publish(ctx context.Context, channel string, payload interface{}) error

	// Subscribe returns a stream of raw messages for a channel.
	// The returned channel is closed when ctx is cancelled.
	Subscribe(ctx context.Context, channel string) (<-chan string, error)
}
