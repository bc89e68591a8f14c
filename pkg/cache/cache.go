// Package cache provides the byte-level cache used for Steam web responses.
//
// Two implementations are provided: [FileCache], which stores entries as
// JSON files under a directory (the CLI uses ~/.cache/sudet), and
// [NullCache], which stores nothing and is used for --no-cache and in tests.
// [Scoped] prefixes keys so that several clients can share one backend.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with an optional TTL.
type Cache interface {
	// Get returns the value for key. A miss or an expired entry reports
	// hit=false with a nil error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
