package external

import (
	"fmt"

	"uvdash.app/internal/config"
	"uvdash.app/internal/ports"
	"uvdash.app/pkg/errors"
)

type CacheProviderFactory struct{}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{}
}

// CreateCacheProvider builds the byte level cache backing the snapshot cache
func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCacheProvider(), nil
	case config.CacheTypeRedis:
		return NewRedisCacheProviderAdapter(&cfg.Redis)
	case config.CacheTypeValkey:
		return NewValkeyCacheProviderAdapter(&cfg.Valkey)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
