package infrastructure

import (
	"context"

	"uvdash.app/internal/core/location"
	"uvdash.app/internal/ports"
)

// LocationStatus exposes the memoized location without triggering a lookup
type LocationStatus interface {
	Current() (location.Resolution, bool)
}

// MetricsSummaryAdapter aggregates provider, cache and location state for the JSON metrics endpoint
type MetricsSummaryAdapter struct {
	uvMetrics ports.UVMetrics
	location  LocationStatus
}

// MetricsSummaryConfig holds configuration for creating the metrics summary
type MetricsSummaryConfig struct {
	UVMetrics ports.UVMetrics
	Location  LocationStatus
}

// NewMetricsSummaryAdapter creates a new metrics summary adapter
func NewMetricsSummaryAdapter(config MetricsSummaryConfig) *MetricsSummaryAdapter {
	return &MetricsSummaryAdapter{
		uvMetrics: config.UVMetrics,
		location:  config.Location,
	}
}

// GetMetrics returns aggregated metrics from all monitored components
func (m *MetricsSummaryAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := map[string]interface{}{}

	if m.uvMetrics != nil {
		metrics["uv"] = m.uvMetrics.GetProviderInfo()

		if cacheStats, err := m.uvMetrics.GetCacheMetrics(); err == nil {
			metrics["cache"] = map[string]interface{}{
				"hits":      cacheStats.Hits,
				"misses":    cacheStats.Misses,
				"total_ops": cacheStats.TotalOps,
				"hit_ratio": cacheStats.HitRatio,
				"updated":   cacheStats.LastUpdated,
			}
		}
	}

	if m.location != nil {
		loc := map[string]interface{}{"resolved": false}
		if res, ok := m.location.Current(); ok {
			loc["resolved"] = true
			loc["source"] = res.Source
			loc["is_fallback"] = res.IsFallback
			loc["resolved_at"] = res.ResolvedAt
		}
		metrics["location"] = loc
	}

	return metrics, nil
}
