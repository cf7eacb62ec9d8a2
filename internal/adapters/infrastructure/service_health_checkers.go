package infrastructure

import (
	"context"

	"uvdash.app/internal/ports"
)

// UVProviderHealthChecker reports on configured UV providers and their circuit breakers
type UVProviderHealthChecker struct {
	registry ports.UVProviderRegistry
}

// NewUVProviderHealthChecker creates a new UV provider health checker
func NewUVProviderHealthChecker(registry ports.UVProviderRegistry) *UVProviderHealthChecker {
	return &UVProviderHealthChecker{registry: registry}
}

// Check marks the component unhealthy when the default provider's breaker is open
func (u *UVProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "uvProviders",
		Status:    ports.StatusHealthy,
		Details:   make(map[string]interface{}),
	}

	if u.registry == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "UV provider registry is not available"
		return status
	}

	defaultProvider := u.registry.DefaultProvider()
	status.Details["default_provider"] = defaultProvider
	status.Details["providers"] = u.registry.Names()

	breakers, _ := u.registry.GetProviderInfo()["circuit_breakers"].(map[string]string)
	if len(breakers) > 0 {
		status.Details["circuit_breakers"] = breakers
	}
	if breakers[defaultProvider] == "open" {
		status.Status = ports.StatusUnhealthy
		status.Error = "circuit breaker for " + defaultProvider + " is open"
	}

	return status
}

// LocationHealthChecker reports how the viewer's location is currently resolved
type LocationHealthChecker struct {
	location LocationStatus
	source   string
}

// NewLocationHealthChecker creates a new location health checker
func NewLocationHealthChecker(location LocationStatus, source string) *LocationHealthChecker {
	return &LocationHealthChecker{location: location, source: source}
}

// Check never fails the component: a fallback location is reported as degraded
func (l *LocationHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "location",
		Status:    ports.StatusHealthy,
		Details: map[string]interface{}{
			"source":   l.source,
			"resolved": false,
		},
	}

	if l.location == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "location resolver is not available"
		return status
	}

	res, ok := l.location.Current()
	if !ok {
		return status
	}

	status.Details["resolved"] = true
	status.Details["resolved_by"] = res.Source
	if res.IsFallback {
		status.Status = ports.StatusDegraded
		status.Details["using_default_location"] = true
	}
	return status
}
