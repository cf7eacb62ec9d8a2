package infrastructure

import (
	"time"

	"uvdash.app/internal/config"
	"uvdash.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetUVConfig returns UV service configuration
func (c *ConfigProviderAdapter) GetUVConfig() ports.UVConfig {
	return ports.UVConfig{
		DefaultProvider: c.config.UV.Provider,
		ForecastHours:   c.config.UV.ForecastHours,
		EnableCache:     c.config.UV.EnableCache,
		CacheTTL:        time.Duration(c.config.UV.CacheTTLMinutes) * time.Minute,
		HTTPTimeout:     time.Duration(c.config.UV.HTTPTimeoutSeconds) * time.Second,
	}
}

// GetLocationConfig returns location resolution configuration
func (c *ConfigProviderAdapter) GetLocationConfig() ports.LocationConfig {
	return ports.LocationConfig{
		Source:  c.config.Location.Source.String(),
		Timeout: time.Duration(c.config.Location.TimeoutMillis) * time.Millisecond,
		Fallback: ports.Coordinate{
			Latitude:  c.config.Location.FallbackLatitude,
			Longitude: c.config.Location.FallbackLongitude,
			Label:     c.config.Location.FallbackLabel,
		},
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:      c.config.Server.Port,
		StaticDir: c.config.Server.StaticDir,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type:          c.config.Cache.Type.String(),
		SweepInterval: time.Duration(c.config.Cache.SweepIntervalSeconds) * time.Second,
	}
}
