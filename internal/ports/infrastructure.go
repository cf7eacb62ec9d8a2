package ports

import (
	"context"
	"time"
)

// UVConfig represents UV service configuration
type UVConfig struct {
	DefaultProvider string
	ForecastHours   int
	EnableCache     bool
	CacheTTL        time.Duration
	HTTPTimeout     time.Duration
}

// LocationConfig represents location resolution configuration
type LocationConfig struct {
	Source   string
	Timeout  time.Duration
	Fallback Coordinate
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port      int
	StaticDir string
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type          string
	SweepInterval time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetUVConfig() UVConfig
	GetLocationConfig() LocationConfig
	GetServerConfig() ServerConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context)
	RecordCacheMiss(ctx context.Context)
	RecordUpstreamCall(ctx context.Context, provider string, outcome string, duration time.Duration)
	RecordLocationResolution(ctx context.Context, source string, fallback bool)
}
