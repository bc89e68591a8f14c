package cache

import (
	"context"
	"time"
)

// ScopedCache prefixes every key before delegating to an inner Cache.
//
//	community := cache.Scoped(backend, "community:")
//	store := cache.Scoped(backend, "store:")
type ScopedCache struct {
	inner  Cache
	prefix string
}

// Scoped returns a Cache that stores keys under prefix in inner.
// A nil inner is replaced by a NullCache.
func Scoped(inner Cache, prefix string) Cache {
	if inner == nil {
		inner = NewNullCache()
	}
	return &ScopedCache{inner: inner, prefix: prefix}
}

// Get retrieves prefix+key from the inner cache.
func (s *ScopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

// Set stores prefix+key in the inner cache.
func (s *ScopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

// Delete removes prefix+key from the inner cache.
func (s *ScopedCache) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

// Close closes the inner cache.
func (s *ScopedCache) Close() error { return s.inner.Close() }

var _ Cache = (*ScopedCache)(nil)
