// Package cache holds the read-through product cache.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"padelpoint/config"
	"padelpoint/internal/domain/entity"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "product:"

type redisProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewProductCache returns a Redis cache, or a pass-through cache when no address is configured.
func NewProductCache(params CacheParams) service.ProductCache {
	redisCfg := params.Config.Cache.Redis
	if redisCfg.Addr == "" {
		params.Logger.Info("Redis not configured, product cache disabled")

		return noopProductCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// The cache is optional; a dead Redis only costs cache misses.
				params.Logger.Warn("Redis ping failed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return newRedisProductCache(client, redisCfg.TTL, params.Logger)
}

func newRedisProductCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *redisProductCache {
	return &redisProductCache{client: client, ttl: ttl, logger: logger}
}

func key(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

func (c *redisProductCache) Get(ctx context.Context, id int64) (*entity.Product, error) {
	val, err := c.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil //nolint:nilnil // a miss is not an error
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get")
	}

	var product entity.Product
	if err := json.Unmarshal(val, &product); err != nil {
		// A corrupt entry behaves like a miss and is overwritten on the next Set.
		c.logger.Warn("Discarding unreadable cached product", slog.Int64("product_id", id), slog.Any("error", err))

		return nil, nil //nolint:nilnil // treated as a miss
	}

	return &product, nil
}

func (c *redisProductCache) Set(ctx context.Context, product *entity.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(c.client.Set(ctx, key(product.ID), data, c.ttl).Err(), "redis set")
}

func (c *redisProductCache) Invalidate(ctx context.Context, id int64) error {
	return errors.Wrap(c.client.Del(ctx, key(id)).Err(), "redis del")
}

type noopProductCache struct{}

func (noopProductCache) Get(context.Context, int64) (*entity.Product, error) {
	return nil, nil //nolint:nilnil // always a miss
}

func (noopProductCache) Set(context.Context, *entity.Product) error { return nil }

func (noopProductCache) Invalidate(context.Context, int64) error { return nil }
