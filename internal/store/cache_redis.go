package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-grocery-list/internal/config"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/models"
)

const (
	itemListCacheKey = "grocery:items:all"
	redisPingTimeout = 5 * time.Second
)

// redisListCache keeps the JSON-encoded item list under a single key.
type redisListCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisListCache connects to Redis and verifies the connection.
func NewRedisListCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (ListCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisListCache").Str("addr", cfg.RedisAddress).Msg("failed to connect to redis")
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info().Str("func", "NewRedisListCache").Str("addr", cfg.RedisAddress).Msg("connected to redis")

	return &redisListCache{
		client: client,
		key:    itemListCacheKey,
		ttl:    cfg.TTL,
	}, nil
}

func (c *redisListCache) GetList(ctx context.Context) ([]models.GroceryItem, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var items []models.GroceryItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding cached list: %w", err)
	}
	return items, nil
}

func (c *redisListCache) SetList(ctx context.Context, items []models.GroceryItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, data, c.ttl).Err()
}

func (c *redisListCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}

func (c *redisListCache) Close() error {
	return c.client.Close()
}
