// Package cache provides result memoization for the calculation pipeline.
//
// The core is pure and cheap, but external callers (the CLI in particular)
// re-run identical configurations constantly while a user iterates on a
// quote. The cache stores serialized calculation results keyed by a hash of
// the canonical input and effective parameters, so a repeated run is a
// lookup instead of a recomputation. The cache is memoization only - it is
// never a system of record, and every entry can be dropped at any time.
//
// Three backends implement [Cache]:
//   - [FileCache]: per-user on-disk cache for CLI usage
//   - [RedisCache]: shared cache for multi-instance deployments
//   - [NullCache]: disabled caching for tests and --no-cache
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long calculation results stay cached. Results are
// deterministic for a given input, but parameters defaults can change
// between releases, so entries do expire.
const DefaultTTL = 24 * time.Hour

// Cache is the storage interface shared by all backends.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss;
// errors are reserved for backend failures. Implementations must be safe
// for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
