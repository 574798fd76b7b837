// Package cache stores computed layouts and rendered artifacts.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: shared cache for `seqmap serve` deployments
//   - [NullCache]: disables caching
//
// # Keys
//
// A [Keyer] derives keys from a content hash of the input document and the
// options that influence the result, so a changed viewport or zoom level
// never returns a stale layout. [ScopedKeyer] prefixes keys for callers
// sharing one Redis instance.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/seqmap/pkg/observability"
)

// Default entry lifetimes.
const (
	LayoutTTL   = 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Instrumented wraps c so every lookup and store reports to the
// registered observability.CacheHooks.
func Instrumented(c Cache) Cache {
	return &instrumented{Cache: c}
}

type instrumented struct {
	Cache
}

func (c *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := c.Cache.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(ctx, keyType(key))
		} else {
			observability.Cache().OnCacheMiss(ctx, keyType(key))
		}
	}
	return data, ok, err
}

func (c *instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.Cache.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, keyType(key), len(data))
	return nil
}

// keyType returns the segment before the hash, e.g. "layout" for
// "staging:layout:ab12...".
func keyType(key string) string {
	if i := strings.LastIndexByte(key, ':'); i >= 0 {
		key = key[:i]
	}
	if i := strings.LastIndexByte(key, ':'); i >= 0 {
		key = key[i+1:]
	}
	return key
}
