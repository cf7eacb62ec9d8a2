package external

import (
	"fmt"
	"strings"
	"time"

	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
	"uvdash.app/pkg/validation"
)

// UVProviderRegistryAdapter holds one adapter per configured UV provider.
// Providers are used independently; a failing provider is never replaced by another.
type UVProviderRegistryAdapter struct {
	providers       map[string]ports.UVProvider
	order           []string
	defaultProvider string
	loggingEnabled  bool
	logger          ports.Logger
}

// ProviderRegistryConfig holds configuration for creating the provider registry
type ProviderRegistryConfig struct {
	DefaultProvider     string
	OpenUVKey           string
	OpenUVURL           string
	OpenMeteoURL        string
	MeteomaticsUsername string
	MeteomaticsPassword string
	MeteomaticsURL      string
	ForecastHours       int
	HTTPTimeout         time.Duration
	Breaker             BreakerSettings
	HTTPClient          HTTPClient
	EnableLogging       bool
	ProviderLogger      ports.Logger
	Logger              ports.Logger
}

// NewUVProviderRegistryAdapter creates the registry with every provider whose credentials are present
func NewUVProviderRegistryAdapter(config ProviderRegistryConfig) (*UVProviderRegistryAdapter, error) {
	registry := &UVProviderRegistryAdapter{
		providers:       make(map[string]ports.UVProvider),
		defaultProvider: strings.ToLower(strings.TrimSpace(config.DefaultProvider)),
		loggingEnabled:  config.EnableLogging,
		logger:          config.Logger,
	}

	if config.OpenUVKey != "" {
		registry.register(NewOpenUVProviderAdapter(OpenUVProviderParams{
			APIKey:     config.OpenUVKey,
			BaseURL:    config.OpenUVURL,
			HTTPClient: config.HTTPClient,
			Timeout:    config.HTTPTimeout,
			Breaker:    config.Breaker,
			Logger:     config.Logger,
		}), config)
	}

	registry.register(NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{
		BaseURL:       config.OpenMeteoURL,
		ForecastHours: config.ForecastHours,
		HTTPClient:    config.HTTPClient,
		Timeout:       config.HTTPTimeout,
		Breaker:       config.Breaker,
		Logger:        config.Logger,
	}), config)

	if config.MeteomaticsUsername != "" && config.MeteomaticsPassword != "" {
		registry.register(NewMeteomaticsProviderAdapter(MeteomaticsProviderParams{
			Username:      config.MeteomaticsUsername,
			Password:      config.MeteomaticsPassword,
			BaseURL:       config.MeteomaticsURL,
			ForecastHours: config.ForecastHours,
			HTTPClient:    config.HTTPClient,
			Timeout:       config.HTTPTimeout,
			Breaker:       config.Breaker,
			Logger:        config.Logger,
		}), config)
	}

	if registry.defaultProvider == "" {
		registry.defaultProvider = ports.ProviderOpenMeteo
	}
	if _, ok := registry.providers[registry.defaultProvider]; !ok {
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("default UV provider %s is not configured", registry.defaultProvider), nil)
	}

	return registry, nil
}

func (r *UVProviderRegistryAdapter) register(provider ports.UVProvider, config ProviderRegistryConfig) {
	name := provider.GetProviderName()
	if config.EnableLogging && config.ProviderLogger != nil {
		provider = NewUVProviderLoggingDecorator(provider, config.ProviderLogger)
	}
	r.providers[name] = provider
	r.order = append(r.order, name)

	if r.logger != nil {
		r.logger.Debug("Created UV provider", ports.F("provider", name))
	}
}

// Get returns the provider registered under name
func (r *UVProviderRegistryAdapter) Get(name string) (ports.UVProvider, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !validation.IsValidProviderName(name) {
		return nil, errors.NewValidationError("unknown UV provider: " + name)
	}

	provider, ok := r.providers[name]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("UV provider %s is not configured", name))
	}
	return provider, nil
}

// DefaultProvider returns the provider used when a request names none
func (r *UVProviderRegistryAdapter) DefaultProvider() string {
	return r.defaultProvider
}

// Names returns configured provider names in registration order
func (r *UVProviderRegistryAdapter) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// GetProviderInfo returns information about configured providers
func (r *UVProviderRegistryAdapter) GetProviderInfo() map[string]interface{} {
	breakers := make(map[string]string, len(r.order))
	for _, name := range r.order {
		if b, ok := unwrapProvider(r.providers[name]).(interface{ BreakerState() string }); ok {
			breakers[name] = b.BreakerState()
		}
	}

	return map[string]interface{}{
		"total_providers":      len(r.order),
		"configured_providers": r.Names(),
		"default_provider":     r.defaultProvider,
		"chain_enabled":        false,
		"logging_enabled":      r.loggingEnabled,
		"circuit_breakers":     breakers,
	}
}

func unwrapProvider(provider ports.UVProvider) ports.UVProvider {
	if d, ok := provider.(*UVProviderLoggingDecorator); ok {
		return d.provider
	}
	return provider
}
