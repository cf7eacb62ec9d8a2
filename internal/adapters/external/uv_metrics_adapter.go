package external

import (
	"time"

	"uvdash.app/internal/ports"
)

// UVMetricsAdapter implements UVMetrics port
type UVMetricsAdapter struct {
	cache        ports.CacheProvider
	registry     ports.UVProviderRegistry
	cacheEnabled bool
}

// NewUVMetricsAdapter creates a new UV metrics adapter
func NewUVMetricsAdapter(cache ports.CacheProvider, registry ports.UVProviderRegistry, cacheEnabled bool) *UVMetricsAdapter {
	return &UVMetricsAdapter{
		cache:        cache,
		registry:     registry,
		cacheEnabled: cacheEnabled,
	}
}

// GetProviderInfo returns registry information enriched with cache status
func (m *UVMetricsAdapter) GetProviderInfo() map[string]interface{} {
	result := map[string]interface{}{
		"providers":     m.registry.Names(),
		"cache_enabled": m.cacheEnabled,
		"status":        "active",
	}

	for key, value := range m.registry.GetProviderInfo() {
		result[key] = value
	}

	return result
}

// GetCacheMetrics returns cache performance metrics
func (m *UVMetricsAdapter) GetCacheMetrics() (ports.CacheStats, error) {
	if cacheWithStats, ok := m.cache.(ports.CacheMetrics); ok {
		return cacheWithStats.GetStats(), nil
	}

	return ports.CacheStats{
		LastUpdated: time.Now(),
	}, nil
}
