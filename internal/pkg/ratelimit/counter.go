package ratelimit

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Counter counts hits per key inside a fixed window that starts at the first
// hit.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type RedisCounter struct {
	rdb *redis.Client
}

func NewRedisCounter(rdb *redis.Client) *RedisCounter {
	return &RedisCounter{rdb: rdb}
}

func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}

type MemoryCounter struct {
	hits *cache.Cache
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{hits: cache.New(cache.NoExpiration, time.Minute)}
}

func (c *MemoryCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	for {
		// Add fails when the window is already open
		_ = c.hits.Add(key, int64(0), window)

		count, err := c.hits.IncrementInt64(key, 1)
		if err == nil {
			return count, nil
		}
		// expired between Add and Increment
	}
}
