package ports

import (
	"context"
	"time"
)

// Provider names accepted by configuration and the HTTP API
const (
	ProviderOpenUV      = "openuv"
	ProviderOpenMeteo   = "openmeteo"
	ProviderMeteomatics = "meteomatics"
)

// UVReadingData represents a single UV index observation
type UVReadingData struct {
	Value      float64   `json:"value"`
	ObservedAt time.Time `json:"observedAt"`
}

// UVSnapshotData is the normalized result of one provider fetch
type UVSnapshotData struct {
	Current     UVReadingData   `json:"current"`
	DailyMax    *UVReadingData  `json:"dailyMax,omitempty"`
	Forecast    []UVReadingData `json:"forecast,omitempty"`
	SourceLabel string          `json:"sourceLabel"`
	Coordinate  Coordinate      `json:"coordinate"`
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}

// UVProvider defines the contract for UV data providers
type UVProvider interface {
	FetchSnapshot(ctx context.Context, coord Coordinate) (*UVSnapshotData, error)
	GetProviderName() string
}

// UVProviderRegistry holds the configured providers and looks one up by name
type UVProviderRegistry interface {
	Get(name string) (UVProvider, error)
	DefaultProvider() string
	Names() []string
	GetProviderInfo() map[string]interface{}
}

// SnapshotCache defines the contract for caching normalized snapshots
type SnapshotCache interface {
	Get(ctx context.Context, key string) (*UVSnapshotData, error)
	Set(ctx context.Context, key string, snapshot *UVSnapshotData, ttl time.Duration) error
}

// UVMetrics defines the contract for provider and cache metrics
type UVMetrics interface {
	GetProviderInfo() map[string]interface{}
	GetCacheMetrics() (CacheStats, error)
}
