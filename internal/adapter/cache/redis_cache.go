package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ji-nious/mosi-project-sub001/internal/usecase"
)

type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func statusKey(orderCode string) string { return "order:status:" + orderCode }

func (r *RedisCache) SetStatus(ctx context.Context, orderCode string, status string) error {
	return r.rdb.Set(ctx, statusKey(orderCode), status, r.ttl).Err()
}

func (r *RedisCache) GetStatus(ctx context.Context, orderCode string) (string, bool, error) {
	val, err := r.rdb.Get(ctx, statusKey(orderCode)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

var _ usecase.OrderCache = (*RedisCache)(nil)
