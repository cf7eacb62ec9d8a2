package infrastructure

import (
	"context"

	"uvdash.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	cacheChecker    ports.HealthChecker
	uvChecker       ports.HealthChecker
	locationChecker ports.HealthChecker
	configProvider  ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	CacheChecker    ports.HealthChecker
	UVChecker       ports.HealthChecker
	LocationChecker ports.HealthChecker
	ConfigProvider  ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		cacheChecker:    config.CacheChecker,
		uvChecker:       config.UVChecker,
		locationChecker: config.LocationChecker,
		configProvider:  config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.cacheChecker != nil {
		results["cache"] = s.cacheChecker.Check(ctx)
	}

	if s.uvChecker != nil {
		results["uvProviders"] = s.uvChecker.Check(ctx)
	}

	if s.locationChecker != nil {
		results["location"] = s.locationChecker.Check(ctx)
	}

	if s.configProvider != nil {
		uvConfig := s.configProvider.GetUVConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    ports.StatusHealthy,
			Details: map[string]interface{}{
				"defaultProvider": uvConfig.DefaultProvider,
				"cacheEnabled":    uvConfig.EnableCache,
				"cacheTTL":        uvConfig.CacheTTL.String(),
				"locationSource":  s.configProvider.GetLocationConfig().Source,
			},
		}
	}

	return results
}
