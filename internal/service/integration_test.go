package service

import (
	"SocialNetwork/internal/model"
	"SocialNetwork/internal/pkg/cache"
	"SocialNetwork/internal/repository"
	"SocialNetwork/internal/testutils"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeEngineMySQL(t *testing.T) {
	env := testutils.SetupMySQL(t)
	ctx := context.Background()

	userRepo := repository.NewUserRepo(env.DB)
	postRepo := repository.NewPostRepo(env.DB)
	likeRepo := repository.NewLikeRepo(env.DB)
	svc := NewPostActionService(likeRepo, postRepo)

	user := &model.User{Username: "racer", PasswordHash: "x"}
	require.NoError(t, userRepo.CreateUser(ctx, user))
	post := &model.Post{UserID: user.ID, Title: "t", Body: "b", CreatedAt: time.Now().UTC()}
	require.NoError(t, postRepo.CreatePost(ctx, post))

	t.Run("concurrent likes", func(t *testing.T) {
		const n = 10
		var created, existing int
		var mu sync.Mutex
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := svc.LikePost(ctx, user.ID, post.ID)
				assert.NoError(t, err)
				mu.Lock()
				defer mu.Unlock()
				switch res {
				case LikeCreated:
					created++
				case LikeAlreadyExists:
					existing++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, created)
		assert.Equal(t, n-1, existing)
		count, err := likeRepo.GetLikeCountByPostID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("concurrent unlikes", func(t *testing.T) {
		const n = 10
		var removed int
		var mu sync.Mutex
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := svc.UnlikePost(ctx, user.ID, post.ID)
				assert.NoError(t, err)
				if res == UnlikeRemoved {
					mu.Lock()
					removed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, removed)
	})

	t.Run("unknown post", func(t *testing.T) {
		_, err := svc.LikePost(ctx, user.ID, post.ID+1000)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestAnalyticsMySQL(t *testing.T) {
	env := testutils.SetupMySQL(t)
	ctx := context.Background()

	userRepo := repository.NewUserRepo(env.DB)
	postRepo := repository.NewPostRepo(env.DB)
	likeRepo := repository.NewLikeRepo(env.DB)

	owner := &model.User{Username: "owner", PasswordHash: "x"}
	require.NoError(t, userRepo.CreateUser(ctx, owner))
	post := &model.Post{UserID: owner.ID, Title: "t", Body: "b", CreatedAt: time.Now().UTC()}
	require.NoError(t, postRepo.CreatePost(ctx, post))

	for i, at := range []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 23, 59, 59, 0, time.UTC),
	} {
		u := &model.User{Username: fmt.Sprintf("liker%d", i), PasswordHash: "x"}
		require.NoError(t, userRepo.CreateUser(ctx, u))
		require.NoError(t, likeRepo.CreateLike(ctx, &model.Like{UserID: u.ID, PostID: post.ID, CreatedAt: at}))
	}

	svc := NewAnalyticsService(NewAggregator(likeRepo), cache.NewMemoryCache(), time.Hour)
	res, err := svc.Query(ctx, "2024-01-01", "2024-01-03")
	require.NoError(t, err)
	require.Len(t, res.Days, 2)
	assert.Equal(t, "2024-01-01", res.Days[0].Day)
	assert.Equal(t, int64(2), res.Days[0].Count)
	assert.Equal(t, "2024-01-03", res.Days[1].Day)
	assert.Equal(t, int64(1), res.Days[1].Count)

	again, err := svc.Query(ctx, "2024-01-01", "2024-01-03")
	require.NoError(t, err)
	assert.True(t, again.FromCache)
	assert.Equal(t, res.Days, again.Days)
}
