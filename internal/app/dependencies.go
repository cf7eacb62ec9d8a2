package app

import (
	"fmt"
	"log/slog"
	"time"

	"uvdash.app/internal/adapters/external"
	"uvdash.app/internal/adapters/infrastructure"
	"uvdash.app/internal/config"
	"uvdash.app/internal/ports"
)

type DependencyContainer struct {
	config     *config.Config
	ports      *ports.ApplicationPorts
	prometheus *infrastructure.PrometheusMetricsCollector
	fileLogger *infrastructure.FileLoggerAdapter
}

// DependencyOptions lets callers replace the network facing pieces
type DependencyOptions struct {
	HTTPClient external.HTTPClient
	Logger     *slog.Logger
}

func NewDependencyContainer(appConfig *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if appConfig == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	container := &DependencyContainer{
		config: appConfig,
	}

	if err := container.initializePorts(opts); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(opts DependencyOptions) error {
	slog.Info("Initializing ports...")

	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(opts.Logger)

	// Provider traffic goes to its own file when enabled
	providerLogger := logger
	if c.config.UV.EnableLogging && c.config.UV.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.UV.LogFilePath, c.config.Log.Level)
		if err != nil {
			slog.Warn("Failed to create provider file logger, falling back to slog", "error", err)
		} else {
			c.fileLogger = fileLogger
			providerLogger = fileLogger
			slog.Info("Provider request logging enabled", "path", c.config.UV.LogFilePath)
		}
	}

	httpTimeout := time.Duration(c.config.UV.HTTPTimeoutSeconds) * time.Second

	registry, err := external.NewUVProviderRegistryAdapter(external.ProviderRegistryConfig{
		DefaultProvider:     c.config.UV.Provider,
		OpenUVKey:           c.config.UV.OpenUVKey,
		OpenUVURL:           c.config.UV.OpenUVBaseURL,
		OpenMeteoURL:        c.config.UV.OpenMeteoBaseURL,
		MeteomaticsUsername: c.config.UV.MeteomaticsUsername,
		MeteomaticsPassword: c.config.UV.MeteomaticsPassword,
		MeteomaticsURL:      c.config.UV.MeteomaticsBaseURL,
		ForecastHours:       c.config.UV.ForecastHours,
		HTTPTimeout:         httpTimeout,
		Breaker: external.BreakerSettings{
			Enabled:     c.config.UV.EnableCircuitBreaker,
			MaxFailures: uint32(c.config.UV.BreakerMaxFailures),
			Cooldown:    time.Duration(c.config.UV.BreakerCooldownSeconds) * time.Second,
		},
		HTTPClient:     opts.HTTPClient,
		EnableLogging:  c.config.UV.EnableLogging,
		ProviderLogger: providerLogger,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("create UV provider registry: %w", err)
	}

	cacheProvider, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	slog.Info("Cache provider initialized", "type", c.config.Cache.Type.String())

	snapshotCache := external.NewSnapshotCacheAdapter(cacheProvider, logger)
	uvMetrics := external.NewUVMetricsAdapter(cacheProvider, registry, c.config.UV.EnableCache)

	positionSource, err := external.NewPositionSource(external.PositionSourceParams{
		Source:   c.config.Location.Source.String(),
		IPAPIURL: c.config.Location.IPAPIBaseURL,
		Static: ports.Coordinate{
			Latitude:  c.config.Location.StaticLatitude,
			Longitude: c.config.Location.StaticLongitude,
			Label:     c.config.Location.StaticLabel,
		},
		HTTPClient:  opts.HTTPClient,
		HTTPTimeout: time.Duration(c.config.Location.TimeoutMillis) * time.Millisecond,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("create position source: %w", err)
	}

	catalog, err := infrastructure.NewCityCatalogAdapter(c.config.Location.CitiesFile)
	if err != nil {
		return fmt.Errorf("load city catalog: %w", err)
	}

	c.prometheus = infrastructure.NewPrometheusMetricsCollector()

	c.ports = &ports.ApplicationPorts{
		// UV
		UVProviders:   registry,
		SnapshotCache: snapshotCache,
		UVMetrics:     uvMetrics,

		// Location
		PositionSource: positionSource,
		CityCatalog:    catalog,

		// Cache
		CacheProvider: cacheProvider,

		// Infrastructure
		ConfigProvider:   infrastructure.NewConfigProviderAdapter(c.config),
		Logger:           logger,
		MetricsCollector: c.prometheus,
	}

	slog.Info("Ports initialized successfully",
		"providers", registry.Names(),
		"default_provider", registry.DefaultProvider(),
		"location_source", c.config.Location.Source.String())
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Prometheus returns the collector backing the /metrics endpoint
func (c *DependencyContainer) Prometheus() *infrastructure.PrometheusMetricsCollector {
	return c.prometheus
}

// Cleanup releases the cache connection and the provider log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	if c.ports != nil {
		if closer, ok := c.ports.CacheProvider.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				firstErr = fmt.Errorf("close cache: %w", err)
			}
		}
	}
	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close provider log: %w", err)
		}
	}
	return firstErr
}
