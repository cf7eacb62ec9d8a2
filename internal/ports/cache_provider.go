package ports

import (
	"context"
	"time"
)

// CacheProvider is the byte level store behind SnapshotCache. Get reports a
// missing or expired key as a not found error.
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
}

// CacheMetrics exposes hit and miss counters of a CacheProvider
type CacheMetrics interface {
	GetStats() CacheStats
	RecordHit()
	RecordMiss()
}

// ExpiringCache is implemented by caches that keep expired entries until swept
type ExpiringCache interface {
	Sweep(ctx context.Context) int
}
