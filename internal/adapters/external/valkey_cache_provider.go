package external

import (
	"context"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"
	"uvdash.app/internal/config"
	"uvdash.app/pkg/errors"
)

// ValkeyCacheProviderAdapter implements CacheProvider port on top of a Valkey
// (or any RESP compatible) server.
type ValkeyCacheProviderAdapter struct {
	client valkey.Client
	prefix string

	cacheCounters
}

// NewValkeyCacheProviderAdapter connects to Valkey and verifies the connection with PING
func NewValkeyCacheProviderAdapter(cfg *config.ValkeyConfig) (*ValkeyCacheProviderAdapter, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("valkey config cannot be nil", nil)
	}

	opt, err := buildValkeyOptions(cfg)
	if err != nil {
		return nil, errors.NewConfigurationError("invalid valkey address", err)
	}

	client, err := valkey.NewClient(opt)
	if err != nil {
		return nil, errors.NewCacheError("failed to connect to Valkey", err)
	}

	adapter := NewValkeyCacheProviderFromClient(client, cfg.Prefix)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := adapter.Ping(ctx); err != nil {
		client.Close()
		return nil, err
	}

	return adapter, nil
}

// NewValkeyCacheProviderFromClient wraps an existing client
func NewValkeyCacheProviderFromClient(client valkey.Client, prefix string) *ValkeyCacheProviderAdapter {
	return &ValkeyCacheProviderAdapter{client: client, prefix: prefix}
}

func buildValkeyOptions(cfg *config.ValkeyConfig) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Addr)
		if err != nil {
			return valkey.ClientOption{}, err
		}
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Addr}}
	}
	if cfg.Password != "" {
		opt.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opt.SelectDB = cfg.DB
	}
	// snapshots are short lived, server assisted client caching buys nothing here
	opt.DisableCache = true
	return opt, nil
}

func (v *ValkeyCacheProviderAdapter) key(key string) string {
	if v.prefix == "" {
		return key
	}
	return v.prefix + ":" + key
}

func (v *ValkeyCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	payload, err := v.client.Do(ctx, v.client.B().Get().Key(v.key(key)).Build()).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			v.RecordMiss()
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewCacheError("valkey get operation failed", err)
	}

	v.RecordHit()
	return payload, nil
}

func (v *ValkeyCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	if ttl < time.Second {
		ttl = time.Second
	}
	cmd := v.client.B().Set().Key(v.key(key)).Value(valkey.BinaryString(value)).Ex(ttl).Build()
	if err := v.client.Do(ctx, cmd).Error(); err != nil {
		return errors.NewCacheError("valkey set operation failed", err)
	}

	return nil
}

func (v *ValkeyCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	if err := v.client.Do(ctx, v.client.B().Del().Key(v.key(key)).Build()).Error(); err != nil {
		return errors.NewCacheError("valkey delete operation failed", err)
	}

	return nil
}

func (v *ValkeyCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	count, err := v.client.Do(ctx, v.client.B().Exists().Key(v.key(key)).Build()).AsInt64()
	if err != nil {
		return false, errors.NewCacheError("valkey exists operation failed", err)
	}

	return count > 0, nil
}

// Clear removes every key under the adapter prefix, or the whole database when no prefix is set
func (v *ValkeyCacheProviderAdapter) Clear(ctx context.Context) error {
	if v.prefix == "" {
		if err := v.client.Do(ctx, v.client.B().Flushdb().Build()).Error(); err != nil {
			return errors.NewCacheError("valkey clear operation failed", err)
		}
		return nil
	}

	var cursor uint64
	for {
		cmd := v.client.B().Scan().Cursor(cursor).Match(v.prefix + ":*").Count(clearScanBatch).Build()
		entry, err := v.client.Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return errors.NewCacheError("valkey clear operation failed", err)
		}
		if len(entry.Elements) > 0 {
			del := v.client.B().Del().Key(entry.Elements...).Build()
			if err := v.client.Do(ctx, del).Error(); err != nil {
				return errors.NewCacheError("valkey clear operation failed", err)
			}
		}
		if entry.Cursor == 0 {
			return nil
		}
		cursor = entry.Cursor
	}
}

// Ping checks if the Valkey connection is alive
func (v *ValkeyCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := v.client.Do(ctx, v.client.B().Ping().Build()).Error(); err != nil {
		return errors.NewCacheError("Valkey ping failed", err)
	}
	return nil
}

func (v *ValkeyCacheProviderAdapter) Close() error {
	v.client.Close()
	return nil
}
