package infrastructure

import (
	"context"

	"uvdash.app/internal/ports"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker implements snapshot cache backend health checking
type CacheHealthChecker struct {
	cache     ports.CacheProvider
	cacheType string
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cache ports.CacheProvider, cacheType string) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache, cacheType: cacheType}
}

// Check verifies cache connectivity for backends that support it
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.cache == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "cache instance is nil"
		return status
	}

	if p, ok := c.cache.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			status.Status = ports.StatusUnhealthy
			status.Error = err.Error()
			return status
		}
	}

	status.Status = ports.StatusHealthy
	status.Details["connected"] = true
	return status
}
