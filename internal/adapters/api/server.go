// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"uvdash.app/internal/core/location"
	"uvdash.app/internal/core/uv"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
	"uvdash.app/pkg/validation"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	StaticDir string
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	uvUseCase        UVUseCase
	locationResolver LocationResolver
	metricsCollector MetricsCollector
	healthChecker    ports.SystemHealthChecker
	metricsHandler   http.Handler
}

// Use case interfaces that the HTTP adapter depends on
type UVUseCase interface {
	GetSnapshot(ctx context.Context, request uv.SnapshotRequest) (*uv.Snapshot, error)
	GetProviderInfo(ctx context.Context) map[string]interface{}
}

type LocationResolver interface {
	Resolve(ctx context.Context) location.Resolution
	Refresh(ctx context.Context) location.Resolution
	Select(coord ports.Coordinate) (location.Resolution, error)
	SelectCity(name string) (location.Resolution, error)
	IsFallback(coord ports.Coordinate) bool
	Cities() []ports.City
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	UVUseCase        UVUseCase
	LocationResolver LocationResolver
	MetricsCollector MetricsCollector
	HealthChecker    ports.SystemHealthChecker
	MetricsHandler   http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), requestIDMiddleware())

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		uvUseCase:        opts.UVUseCase,
		locationResolver: opts.LocationResolver,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.HealthChecker,
		metricsHandler:   opts.MetricsHandler,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.UVUseCase == nil {
		return errors.NewValidationError("UV use case is required")
	}
	if opts.LocationResolver == nil {
		return errors.NewValidationError("location resolver is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

var registerOnce sync.Once
var registerErr error

// RegisterValidators installs the custom binding tags on gin's validator engine
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = v.RegisterValidation("uvprovider", validateProvider)
	})
	return registerErr
}

// validateProvider accepts an empty value so the default provider applies
func validateProvider(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || validation.IsValidProviderName(value)
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/uv", s.getUV)
		api.GET("/location", s.getLocation)
		api.PUT("/location", s.selectLocation)
		api.POST("/location/refresh", s.refreshLocation)
		api.GET("/cities", s.getCities)
		api.GET("/providers", s.getProviders)
		api.GET("/metrics", s.getMetrics)
		api.GET("/health", s.getHealth)
	}

	if s.metricsHandler != nil {
		s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
	}
	s.setupStaticFiles()
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// setupStaticFiles configures static file serving
func (s *HTTPServerAdapter) setupStaticFiles() {
	dir := s.config.StaticDir
	if dir == "" {
		return
	}
	s.router.Static("/static", filepath.Join(dir, "static"))
	s.router.StaticFile("/", filepath.Join(dir, "index.html"))
	s.router.StaticFile("/favicon.ico", filepath.Join(dir, "favicon.ico"))
}
