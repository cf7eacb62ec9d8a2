package external

import (
	"sync/atomic"
	"time"

	"uvdash.app/internal/ports"
)

// cacheCounters is embedded by every cache backend to satisfy ports.CacheMetrics
type cacheCounters struct {
	hits     atomic.Int64
	misses   atomic.Int64
	lastSeen atomic.Int64
}

func (c *cacheCounters) RecordHit() {
	c.hits.Add(1)
	c.lastSeen.Store(time.Now().UnixNano())
}

func (c *cacheCounters) RecordMiss() {
	c.misses.Add(1)
	c.lastSeen.Store(time.Now().UnixNano())
}

// GetStats reports counters since process start. LastUpdated is the time of
// the most recent lookup, or now when nothing has been looked up yet.
func (c *cacheCounters) GetStats() ports.CacheStats {
	hits, misses := c.hits.Load(), c.misses.Load()
	stats := ports.CacheStats{
		Hits:        hits,
		Misses:      misses,
		TotalOps:    hits + misses,
		LastUpdated: time.Now(),
	}
	if stats.TotalOps > 0 {
		stats.HitRatio = float64(hits) / float64(stats.TotalOps)
	}
	if seen := c.lastSeen.Load(); seen != 0 {
		stats.LastUpdated = time.Unix(0, seen)
	}
	return stats
}
