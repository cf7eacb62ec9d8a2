package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"uvdash.app/internal/adapters/api"
	"uvdash.app/internal/adapters/infrastructure"
	"uvdash.app/internal/config"
	"uvdash.app/internal/core/location"
	"uvdash.app/internal/core/uv"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/logger"
)

type Application struct {
	config *config.Config

	// Use Cases
	uvUseCase        *uv.UseCase
	locationResolver *location.Resolver

	// Adapters
	httpServer *http.Server
	router     *gin.Engine
	janitor    *infrastructure.CacheJanitor

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	logger.NewFromOptions(os.Stdout, cfg.Log.Level, cfg.Log.Format).SetDefault()

	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application from an already built container
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	uvUseCase, err := uv.NewUseCase(uv.UseCaseDependencies{
		Providers: a.ports.UVProviders,
		Cache:     a.ports.SnapshotCache,
		Config:    a.ports.ConfigProvider,
		Logger:    a.ports.Logger,
		Metrics:   a.ports.UVMetrics,
		Collector: a.ports.MetricsCollector,
	})
	if err != nil {
		return fmt.Errorf("create UV use case: %w", err)
	}
	a.uvUseCase = uvUseCase

	resolver, err := location.NewResolver(location.ResolverDependencies{
		Source:    a.ports.PositionSource,
		Catalog:   a.ports.CityCatalog,
		Config:    a.ports.ConfigProvider,
		Logger:    a.ports.Logger,
		Collector: a.ports.MetricsCollector,
	})
	if err != nil {
		return fmt.Errorf("create location resolver: %w", err)
	}
	a.locationResolver = resolver

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	metricsSummary := infrastructure.NewMetricsSummaryAdapter(infrastructure.MetricsSummaryConfig{
		UVMetrics: a.ports.UVMetrics,
		Location:  a.locationResolver,
	})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		CacheChecker:    infrastructure.NewCacheHealthChecker(a.ports.CacheProvider, a.config.Cache.Type.String()),
		UVChecker:       infrastructure.NewUVProviderHealthChecker(a.ports.UVProviders),
		LocationChecker: infrastructure.NewLocationHealthChecker(a.locationResolver, a.config.Location.Source.String()),
		ConfigProvider:  a.ports.ConfigProvider,
	})

	var metricsHandler http.Handler
	if a.deps != nil && a.deps.Prometheus() != nil {
		metricsHandler = a.deps.Prometheus().Handler()
	}

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			StaticDir: a.config.Server.StaticDir,
		},
		UVUseCase:        a.uvUseCase,
		LocationResolver: a.locationResolver,
		MetricsCollector: metricsSummary,
		HealthChecker:    systemHealthChecker,
		MetricsHandler:   metricsHandler,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	// Store router for testing access
	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      httpAdapter.GetRouter(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Only the in-process cache needs sweeping; Redis and Valkey expire keys themselves
	if expiring, ok := a.ports.CacheProvider.(ports.ExpiringCache); ok {
		interval := time.Duration(a.config.Cache.SweepIntervalSeconds) * time.Second
		janitor, err := infrastructure.NewCacheJanitor(expiring, interval, a.ports.Logger)
		if err != nil {
			return fmt.Errorf("create cache janitor: %w", err)
		}
		a.janitor = janitor
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if a.janitor != nil {
		if err := a.janitor.Start(); err != nil {
			return fmt.Errorf("start cache janitor: %w", err)
		}
	}

	// Resolve the device position in the background so the first page load is warm
	go a.locationResolver.Resolve(ctx)

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if a.janitor != nil {
		a.janitor.Stop()
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if a.deps != nil {
		if err := a.deps.Cleanup(); err != nil {
			slog.Warn("Error releasing resources", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetUVUseCase returns the UV use case for testing
func (a *Application) GetUVUseCase() *uv.UseCase {
	return a.uvUseCase
}

// GetLocationResolver returns the location resolver for testing
func (a *Application) GetLocationResolver() *location.Resolver {
	return a.locationResolver
}
