package cache

import (
	"SocialNetwork/internal/testutils"
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache(t *testing.T) {
	rdb := testutils.SetupRedis(t)
	ctx := context.Background()
	c := NewRedisCache(rdb, "test:")

	t.Run("miss", func(t *testing.T) {
		_, hit, err := c.Get(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("put get with prefix and ttl", func(t *testing.T) {
		require.NoError(t, c.Put(ctx, "analytics:2024-01-01:2024-01-03", []byte(`[{"day":"2024-01-01","count":2}]`), time.Minute))

		v, hit, err := c.Get(ctx, "analytics:2024-01-01:2024-01-03")
		require.NoError(t, err)
		assert.True(t, hit)
		assert.JSONEq(t, `[{"day":"2024-01-01","count":2}]`, string(v))

		ttl, err := rdb.PTTL(ctx, "test:analytics:2024-01-01:2024-01-03").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)
	})

	t.Run("expires", func(t *testing.T) {
		require.NoError(t, c.Put(ctx, "short", []byte("v"), 50*time.Millisecond))
		assert.Eventually(t, func() bool {
			_, hit, err := c.Get(ctx, "short")
			return err == nil && !hit
		}, 2*time.Second, 20*time.Millisecond)
	})
}

func TestRedisCache_Unreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer func() { _ = rdb.Close() }()

	c := NewRedisCache(rdb, "test:")
	_, hit, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, hit)
	assert.Error(t, c.Put(context.Background(), "k", []byte("v"), time.Minute))
}
