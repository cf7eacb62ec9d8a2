package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"uvdash.app/internal/config"
	"uvdash.app/pkg/errors"
)

const clearScanBatch = 100

// RedisCacheProviderAdapter implements CacheProvider port using Redis.
// Keys are namespaced with the configured prefix so Clear never touches foreign data.
type RedisCacheProviderAdapter struct {
	client *redis.Client
	prefix string

	cacheCounters
}

// NewRedisCacheProviderAdapter creates a new Redis cache provider adapter
func NewRedisCacheProviderAdapter(config *config.RedisConfig) (*RedisCacheProviderAdapter, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewCacheError("failed to connect to Redis", err)
	}

	return &RedisCacheProviderAdapter{
		client: client,
		prefix: config.KeyPrefix,
	}, nil
}

func (r *RedisCacheProviderAdapter) key(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

// Get retrieves a value from Redis cache
func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			r.RecordMiss()
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewCacheError("redis get operation failed", err)
	}

	r.RecordHit()
	return val, nil
}

// Set stores a value in Redis cache with TTL
func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return errors.NewCacheError("redis set operation failed", err)
	}

	return nil
}

// Delete removes a value from Redis cache
func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return errors.NewCacheError("redis delete operation failed", err)
	}

	return nil
}

// Exists checks if a key exists in Redis cache
func (r *RedisCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	count, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, errors.NewCacheError("redis exists operation failed", err)
	}

	return count > 0, nil
}

// Clear removes every key under the adapter prefix, or the whole database when no prefix is set
func (r *RedisCacheProviderAdapter) Clear(ctx context.Context) error {
	if r.prefix == "" {
		if err := r.client.FlushDB(ctx).Err(); err != nil {
			return errors.NewCacheError("redis clear operation failed", err)
		}
		return nil
	}

	iter := r.client.Scan(ctx, 0, r.prefix+":*", clearScanBatch).Iterator()
	batch := make([]string, 0, clearScanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == clearScanBatch {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return errors.NewCacheError("redis clear operation failed", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.NewCacheError("redis clear operation failed", err)
	}
	if len(batch) > 0 {
		if err := r.client.Del(ctx, batch...).Err(); err != nil {
			return errors.NewCacheError("redis clear operation failed", err)
		}
	}

	return nil
}

// Close closes the Redis client connection
func (r *RedisCacheProviderAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewCacheError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewCacheError("Redis ping failed", err)
	}
	return nil
}
