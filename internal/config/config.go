package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"uvdash.app/pkg/errors"
	"uvdash.app/pkg/validation"
)

const (
	maxRedisDB          = 15
	maxCacheTTLMinutes  = 1440
	maxPortNumber       = 65535
	maxForecastHours    = 24
	maxLocationTimeout  = 60000
	maxHTTPTimeoutSecs  = 120
	minSweepIntervalSec = 1
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Log      LogConfig      `split_words:"true"`
	UV       UVConfig       `split_words:"true"`
	Location LocationConfig `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
}

type ServerConfig struct {
	Port      int    `envconfig:"SERVER_PORT" default:"8080"`
	StaticDir string `envconfig:"STATIC_DIR" default:"./public"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// UVConfig holds the data source selection and upstream credentials
type UVConfig struct {
	Provider               string `envconfig:"UV_PROVIDER" default:"openmeteo"`
	OpenUVKey              string `envconfig:"OPENUV_API_KEY"`
	OpenUVBaseURL          string `envconfig:"OPENUV_API_BASE_URL" default:"https://api.openuv.io/api/v1"`
	OpenMeteoBaseURL       string `envconfig:"OPENMETEO_API_BASE_URL" default:"https://air-quality-api.open-meteo.com/v1"`
	MeteomaticsUsername    string `envconfig:"METEOMATICS_USERNAME"`
	MeteomaticsPassword    string `envconfig:"METEOMATICS_PASSWORD"`
	MeteomaticsBaseURL     string `envconfig:"METEOMATICS_API_BASE_URL" default:"https://api.meteomatics.com"`
	ForecastHours          int    `envconfig:"UV_FORECAST_HOURS" default:"24"`
	EnableCache            bool   `envconfig:"UV_ENABLE_CACHE" default:"true"`
	CacheTTLMinutes        int    `envconfig:"UV_CACHE_TTL_MINUTES" default:"5"`
	EnableLogging          bool   `envconfig:"UV_ENABLE_LOGGING" default:"true"`
	LogFilePath            string `envconfig:"UV_LOG_FILE_PATH" default:"logs/uv_providers.log"`
	HTTPTimeoutSeconds     int    `envconfig:"UV_HTTP_TIMEOUT_SECONDS" default:"10"`
	EnableCircuitBreaker   bool   `envconfig:"UV_CIRCUIT_BREAKER_ENABLED" default:"true"`
	BreakerMaxFailures     int    `envconfig:"UV_CIRCUIT_BREAKER_MAX_FAILURES" default:"5"`
	BreakerCooldownSeconds int    `envconfig:"UV_CIRCUIT_BREAKER_COOLDOWN_SECONDS" default:"60"`
}

// LocationSource selects where the resolver gets the device position from
type LocationSource int

const (
	LocationSourceUnknown LocationSource = iota
	LocationSourceIPAPI
	LocationSourceStatic
	LocationSourceNone
)

// String returns the string representation of location source
func (s LocationSource) String() string {
	switch s {
	case LocationSourceIPAPI:
		return "ipapi"
	case LocationSourceStatic:
		return "static"
	case LocationSourceNone:
		return "none"
	default:
		return "unknown"
	}
}

// IsValid checks if the location source is valid
func (s LocationSource) IsValid() bool {
	return s == LocationSourceIPAPI || s == LocationSourceStatic || s == LocationSourceNone
}

// LocationSourceFromString converts string to LocationSource enum
func LocationSourceFromString(s string) LocationSource {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ipapi":
		return LocationSourceIPAPI
	case "static":
		return LocationSourceStatic
	case "none":
		return LocationSourceNone
	default:
		return LocationSourceUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *LocationSource) UnmarshalText(text []byte) error {
	*s = LocationSourceFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s LocationSource) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type LocationConfig struct {
	Source            LocationSource `envconfig:"LOCATION_SOURCE" default:"ipapi"`
	TimeoutMillis     int            `envconfig:"LOCATION_TIMEOUT_MS" default:"5000"`
	IPAPIBaseURL      string         `envconfig:"LOCATION_IPAPI_BASE_URL" default:"http://ip-api.com/json"`
	FallbackLatitude  float64        `envconfig:"LOCATION_FALLBACK_LAT" default:"59.3293"`
	FallbackLongitude float64        `envconfig:"LOCATION_FALLBACK_LON" default:"18.0686"`
	FallbackLabel     string         `envconfig:"LOCATION_FALLBACK_LABEL" default:"Stockholm"`
	StaticLatitude    float64        `envconfig:"LOCATION_STATIC_LAT"`
	StaticLongitude   float64        `envconfig:"LOCATION_STATIC_LON"`
	StaticLabel       string         `envconfig:"LOCATION_STATIC_LABEL"`
	CitiesFile        string         `envconfig:"LOCATION_CITIES_FILE"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
	CacheTypeValkey
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	case CacheTypeValkey:
		return "valkey"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis || c == CacheTypeValkey
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	case "valkey":
		return CacheTypeValkey
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type                 CacheType    `envconfig:"CACHE_TYPE" default:"memory"`
	SweepIntervalSeconds int          `envconfig:"CACHE_SWEEP_INTERVAL_SECONDS" default:"60"`
	Redis                RedisConfig  `split_words:"true"`
	Valkey               ValkeyConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"uvdash"`
}

type ValkeyConfig struct {
	Addr     string `envconfig:"VALKEY_ADDR" default:"localhost:6379"`
	Password string `envconfig:"VALKEY_PASSWORD" default:""`
	DB       int    `envconfig:"VALKEY_DB" default:"0"`
	Prefix   string `envconfig:"VALKEY_KEY_PREFIX" default:"uvdash"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.UV.Validate(); err != nil {
		return err
	}
	if err := c.Location.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return errors.NewConfigurationError("LOG_FORMAT must be one of: json, text", nil)
	}
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	return nil
}

func (u *UVConfig) Validate() error {
	if !validation.IsValidProviderName(u.Provider) {
		return errors.NewConfigurationError(fmt.Sprintf("invalid UV provider: %s", u.Provider), nil)
	}

	if !u.IsProviderConfigured(u.Provider) {
		return errors.NewConfigurationError(
			fmt.Sprintf("UV_PROVIDER %s is selected but its credentials are not configured", u.Provider), nil)
	}

	for name, baseURL := range map[string]string{
		"OPENUV_API_BASE_URL":      u.OpenUVBaseURL,
		"OPENMETEO_API_BASE_URL":   u.OpenMeteoBaseURL,
		"METEOMATICS_API_BASE_URL": u.MeteomaticsBaseURL,
	} {
		if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
			return errors.NewConfigurationError(fmt.Sprintf("%s must start with http:// or https://", name), nil)
		}
	}

	if (u.MeteomaticsUsername == "") != (u.MeteomaticsPassword == "") {
		return errors.NewConfigurationError("METEOMATICS_USERNAME and METEOMATICS_PASSWORD must both be provided or both be empty", nil)
	}

	if u.ForecastHours < 1 || u.ForecastHours > maxForecastHours {
		return errors.NewConfigurationError("UV_FORECAST_HOURS must be between 1 and 24", nil)
	}

	if u.CacheTTLMinutes < 1 || u.CacheTTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("UV_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}

	if u.HTTPTimeoutSeconds < 1 || u.HTTPTimeoutSeconds > maxHTTPTimeoutSecs {
		return errors.NewConfigurationError("UV_HTTP_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}

	if u.EnableCircuitBreaker {
		if u.BreakerMaxFailures < 1 {
			return errors.NewConfigurationError("UV_CIRCUIT_BREAKER_MAX_FAILURES must be at least 1", nil)
		}
		if u.BreakerCooldownSeconds < 1 {
			return errors.NewConfigurationError("UV_CIRCUIT_BREAKER_COOLDOWN_SECONDS must be at least 1", nil)
		}
	}

	return nil
}

// IsProviderConfigured reports whether the named provider has the credentials it needs
func (u *UVConfig) IsProviderConfigured(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "openuv":
		return u.OpenUVKey != ""
	case "meteomatics":
		return u.MeteomaticsUsername != "" && u.MeteomaticsPassword != ""
	case "openmeteo":
		return true
	default:
		return false
	}
}

func (l *LocationConfig) Validate() error {
	if !l.Source.IsValid() {
		return errors.NewConfigurationError("LOCATION_SOURCE must be one of: ipapi, static, none", nil)
	}
	if l.TimeoutMillis < 1 || l.TimeoutMillis > maxLocationTimeout {
		return errors.NewConfigurationError("LOCATION_TIMEOUT_MS must be between 1 and 60000", nil)
	}
	if !validation.IsValidLatitude(l.FallbackLatitude) || !validation.IsValidLongitude(l.FallbackLongitude) {
		return errors.NewConfigurationError("LOCATION_FALLBACK_LAT/LON must be a valid coordinate", nil)
	}
	if l.Source == LocationSourceIPAPI &&
		!strings.HasPrefix(l.IPAPIBaseURL, "http://") && !strings.HasPrefix(l.IPAPIBaseURL, "https://") {
		return errors.NewConfigurationError("LOCATION_IPAPI_BASE_URL must start with http:// or https://", nil)
	}
	if l.Source == LocationSourceStatic &&
		(!validation.IsValidLatitude(l.StaticLatitude) || !validation.IsValidLongitude(l.StaticLongitude)) {
		return errors.NewConfigurationError("LOCATION_STATIC_LAT/LON must be a valid coordinate", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis, valkey", nil)
	}

	if c.SweepIntervalSeconds < minSweepIntervalSec {
		return errors.NewConfigurationError("CACHE_SWEEP_INTERVAL_SECONDS must be at least 1 second", nil)
	}

	switch c.Type {
	case CacheTypeRedis:
		return c.Redis.Validate()
	case CacheTypeValkey:
		return c.Valkey.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (v *ValkeyConfig) Validate() error {
	if v.Addr == "" {
		return errors.NewConfigurationError("VALKEY_ADDR cannot be empty when using Valkey cache", nil)
	}
	if v.DB < 0 || v.DB > maxRedisDB {
		return errors.NewConfigurationError("VALKEY_DB must be between 0 and 15", nil)
	}
	return nil
}
