package cache

import (
	"context"
	"time"

	"campus-pulse/core/config"
	"campus-pulse/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache is the small slice of redis the application needs directly.
// The task queue holds its own connection.
type Cache interface {
	SetOnce(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}

type redisCache struct {
	rdb *redis.Client
}

func NewCache(cfg config.RedisConfig) (Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("Cache:NewCache:Ping", err)
		return nil, err
	}

	return &redisCache{rdb: rdb}, nil
}

// SetOnce sets the key if absent and reports whether this caller won.
// Used as an idempotency guard for at-most-once side effects.
func (c *redisCache) SetOnce(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := c.rdb.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		logger.Error("Cache:SetOnce", err)
		return false, err
	}
	return ok, nil
}

func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		logger.Error("Cache:Exists", err)
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		logger.Error("Cache:Delete", err)
		return err
	}
	return nil
}
