// Package cache stores rendered layout artifacts so repeated exports of an
// unchanged board skip rendering.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance for preview servers
//   - [None]: misses every lookup and drops writes (--no-cache)
//
// Keys come from a [Keyer]. [Fetch] wraps the get-or-render sequence and
// reports hits, misses and writes to the registered observability hooks.
package cache

import (
	"context"
	"time"

	"github.com/matzehuels/exhibitboard/pkg/observability"
)

// DefaultTTL is how long rendered artifacts stay cached.
const DefaultTTL = 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Fetch returns the cached value for key or calls render, stores its result
// and returns it. keyType labels the key for observability hooks. Backend
// read failures are retried when marked [Retryable] and otherwise treated as
// a miss; a failed write still returns the rendered data.
func Fetch(ctx context.Context, c Cache, key, keyType string, ttl time.Duration, render func() ([]byte, error)) ([]byte, error) {
	hooks := observability.Cache()

	var (
		data []byte
		hit  bool
	)
	err := RetryWithBackoff(ctx, func() error {
		var err error
		data, hit, err = c.Get(ctx, key)
		return err
	})
	if err == nil && hit {
		hooks.OnCacheHit(ctx, keyType)
		return data, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	hooks.OnCacheMiss(ctx, keyType)

	data, err = render()
	if err != nil {
		return nil, err
	}
	if err := c.Set(ctx, key, data, ttl); err == nil {
		hooks.OnCacheSet(ctx, keyType, len(data))
	}
	return data, nil
}
