package external

import (
	"context"
	"encoding/json"
	"time"

	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

// snapshotCacheVersion is bumped whenever the cached JSON layout changes;
// entries written under another version are treated as misses.
const snapshotCacheVersion = 1

type snapshotEnvelope struct {
	Version  int                   `json:"v"`
	CachedAt time.Time             `json:"cachedAt"`
	Snapshot *ports.UVSnapshotData `json:"snapshot"`
}

// SnapshotCacheAdapter bridges generic CacheProvider to the UV specific SnapshotCache
type SnapshotCacheAdapter struct {
	cacheProvider ports.CacheProvider
	logger        ports.Logger
	now           func() time.Time
}

// NewSnapshotCacheAdapter creates a snapshot cache using a generic cache provider
func NewSnapshotCacheAdapter(cacheProvider ports.CacheProvider, logger ports.Logger) *SnapshotCacheAdapter {
	return &SnapshotCacheAdapter{
		cacheProvider: cacheProvider,
		logger:        logger,
		now:           time.Now,
	}
}

// Get retrieves a snapshot from cache. Unreadable or outdated entries are
// evicted and reported as a miss.
func (s *SnapshotCacheAdapter) Get(ctx context.Context, key string) (*ports.UVSnapshotData, error) {
	data, err := s.cacheProvider.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var envelope snapshotEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		s.evict(ctx, key)
		return nil, errors.NewCacheError("failed to deserialize UV snapshot", err)
	}
	if envelope.Version != snapshotCacheVersion || envelope.Snapshot == nil {
		s.evict(ctx, key)
		return nil, errors.NewNotFoundError("cache miss")
	}

	return envelope.Snapshot, nil
}

// evict drops an entry Get cannot use; a failure only means the next Get evicts again
func (s *SnapshotCacheAdapter) evict(ctx context.Context, key string) {
	if err := s.cacheProvider.Delete(ctx, key); err != nil {
		s.logger.Warn("Failed to evict unusable UV snapshot",
			ports.F("key", key),
			ports.F("error", err))
	}
}

// Set stores a snapshot in cache
func (s *SnapshotCacheAdapter) Set(ctx context.Context, key string, snapshot *ports.UVSnapshotData, ttl time.Duration) error {
	if snapshot == nil {
		return errors.NewValidationError("snapshot cannot be nil")
	}

	data, err := json.Marshal(snapshotEnvelope{
		Version:  snapshotCacheVersion,
		CachedAt: s.now().UTC(),
		Snapshot: snapshot,
	})
	if err != nil {
		return errors.NewCacheError("failed to serialize UV snapshot", err)
	}

	return s.cacheProvider.Set(ctx, key, data, ttl)
}
