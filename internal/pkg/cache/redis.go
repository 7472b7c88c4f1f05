package cache

import (
	rdbutil "SocialNetwork/internal/pkg/redis"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache 基于 Redis 的实现，过期交给 Redis 的 PX
type RedisCache struct {
	rdb    redis.Cmdable
	prefix string
}

func NewRedisCache(rdb redis.Cmdable, prefix string) *RedisCache {
	return &RedisCache{rdb: rdb, prefix: prefix}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return rdbutil.GetBytes(ctx, c.rdb, c.prefix+key)
}

func (c *RedisCache) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return rdbutil.SetWithExpiration(ctx, c.rdb, c.prefix+key, value, ttl)
}
