// Package cache provides pluggable caching for chart pipeline stages.
//
// Layouts and rendered artifacts are cached under content-derived keys,
// so a chart whose data and options have not changed never recomputes
// its geometry or re-renders its output.
//
// The [Cache] interface has two implementations:
//   - [FileCache]: directory-backed entries with TTL metadata, for CLI use
//   - [NullCache]: no-op, for tests and --no-cache runs
//
// Keys are built by a [Keyer], which hashes the inputs that determine
// each stage's output. [ScopedKeyer] prefixes keys for per-chart
// isolation within a shared cache directory.
package cache

import (
	"context"
	"time"
)

// TTLs per cached stage. Layouts are pure functions of their inputs, so
// their entries only expire to bound cache size, not for correctness.
const (
	TTLLayout   = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented cache with TTL support.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
