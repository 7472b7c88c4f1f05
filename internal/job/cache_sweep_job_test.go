package job

import (
	"SocialNetwork/internal/pkg/cache"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSweepJob(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := cache.NewMemoryCache(cache.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "short", []byte("a"), time.Minute))
	require.NoError(t, c.Put(ctx, "long", []byte("b"), time.Hour))

	now = now.Add(2 * time.Minute)
	NewCacheSweepJob(c).Run()

	assert.Equal(t, 1, c.Len())
	_, hit, err := c.Get(ctx, "long")
	require.NoError(t, err)
	assert.True(t, hit)
}
