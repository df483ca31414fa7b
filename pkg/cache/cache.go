// Package cache provides pluggable byte caches for rendered artifacts.
//
// The render CLI path always runs uncached: a mindmap tree never outlives
// one render invocation. Caching exists for the preview server, which keys
// finished artifact bytes (SVG/PNG) by a content hash of the outline and the
// render parameters. Three backends are provided:
//
//   - FileCache: on-disk entries for a single-instance server
//   - RedisCache: shared entries for multi-instance deployments
//   - NullCache: caching disabled
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry class.
const (
	// TTLArtifact is how long rendered artifact bytes stay valid. Renders
	// are deterministic in (outline, theme, size, format), so entries
	// only go stale when the outline file changes, which the content
	// hash already captures. The TTL is a safety valve against unbounded
	// growth.
	TTLArtifact = 24 * time.Hour

	// TTLIndex is how long the server's outline directory listing is
	// cached between filesystem scans.
	TTLIndex = 30 * time.Second
)

// Cache is the interface for cache storage backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
