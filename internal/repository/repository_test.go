package repository

import (
	"SocialNetwork/internal/model"
	"SocialNetwork/internal/testutils"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUserAndPost(t *testing.T, db *gorm.DB, username string) (*model.User, *model.Post) {
	t.Helper()
	ctx := context.Background()

	user := &model.User{Username: username, PasswordHash: "x"}
	require.NoError(t, NewUserRepo(db).CreateUser(ctx, user))
	post := &model.Post{UserID: user.ID, Title: "title", Body: "body", CreatedAt: time.Now().UTC()}
	require.NoError(t, NewPostRepo(db).CreatePost(ctx, post))
	return user, post
}

func TestRepositories(t *testing.T) {
	env := testutils.SetupMySQL(t)
	ctx := context.Background()

	t.Run("user lookups and touches", func(t *testing.T) {
		env.Reset(t)
		repo := NewUserRepo(env.DB)

		user := &model.User{Username: "alice", Email: "a@example.com", PasswordHash: "hash"}
		require.NoError(t, repo.CreateUser(ctx, user))

		err := repo.CreateUser(ctx, &model.User{Username: "alice", PasswordHash: "hash"})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

		found, err := repo.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.ID, found.ID)

		missing, err := repo.GetUserById(ctx, user.ID+1000)
		require.NoError(t, err)
		assert.Nil(t, missing)

		at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		rows, err := repo.TouchLastRequest(ctx, user.ID, at)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		// 相同取值仍计为匹配行
		rows, err = repo.TouchLastRequest(ctx, user.ID, at)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		rows, err = repo.TouchLastRequest(ctx, user.ID+1000, at)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rows)

		require.NoError(t, repo.TouchLastLogin(ctx, user.ID, at))
		found, err = repo.GetUserById(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, found.LastLogin)
		assert.True(t, at.Equal(*found.LastLogin))
	})

	t.Run("like uniqueness and conditional delete", func(t *testing.T) {
		env.Reset(t)
		user, post := seedUserAndPost(t, env.DB, "bob")
		likes := NewLikeRepo(env.DB)

		require.NoError(t, likes.CreateLike(ctx, &model.Like{UserID: user.ID, PostID: post.ID, CreatedAt: time.Now().UTC()}))
		err := likes.CreateLike(ctx, &model.Like{UserID: user.ID, PostID: post.ID, CreatedAt: time.Now().UTC()})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

		count, err := likes.GetLikeCountByPostID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		rows, err := likes.DeleteLike(ctx, user.ID, post.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		rows, err = likes.DeleteLike(ctx, user.ID, post.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})

	t.Run("like on missing post violates foreign key", func(t *testing.T) {
		env.Reset(t)
		user, post := seedUserAndPost(t, env.DB, "carol")
		err := NewLikeRepo(env.DB).CreateLike(ctx, &model.Like{UserID: user.ID, PostID: post.ID + 1000, CreatedAt: time.Now().UTC()})
		assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
	})

	t.Run("count likes by day", func(t *testing.T) {
		env.Reset(t)
		u1, post := seedUserAndPost(t, env.DB, "dave")
		u2, _ := seedUserAndPost(t, env.DB, "erin")
		u3, _ := seedUserAndPost(t, env.DB, "frank")
		u4, post2 := seedUserAndPost(t, env.DB, "grace")
		likes := NewLikeRepo(env.DB)

		for _, l := range []*model.Like{
			{UserID: u1.ID, PostID: post.ID, CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
			{UserID: u2.ID, PostID: post.ID, CreatedAt: time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC)},
			{UserID: u3.ID, PostID: post.ID, CreatedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
			{UserID: u4.ID, PostID: post.ID, CreatedAt: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)},
			{UserID: u4.ID, PostID: post2.ID, CreatedAt: time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)},
		} {
			require.NoError(t, likes.CreateLike(ctx, l))
		}

		rows, err := likes.CountLikesByDay(ctx,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "2024-01-01", rows[0].Day.Format("2006-01-02"))
		assert.Equal(t, int64(2), rows[0].Count)
		assert.Equal(t, "2024-01-03", rows[1].Day.Format("2006-01-02"))
		assert.Equal(t, int64(1), rows[1].Count)
	})

	t.Run("posts list and cascade", func(t *testing.T) {
		env.Reset(t)
		user, first := seedUserAndPost(t, env.DB, "heidi")
		posts := NewPostRepo(env.DB)
		second := &model.Post{UserID: user.ID, Title: "second", Body: "b", CreatedAt: first.CreatedAt.Add(time.Second)}
		require.NoError(t, posts.CreatePost(ctx, second))
		require.NoError(t, NewLikeRepo(env.DB).CreateLike(ctx, &model.Like{UserID: user.ID, PostID: first.ID, CreatedAt: time.Now().UTC()}))

		list, total, err := posts.ListPosts(ctx, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID)

		exists, err := posts.PostExists(ctx, first.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, env.DB.Exec("DELETE FROM users WHERE id = ?", user.ID).Error)
		exists, err = posts.PostExists(ctx, first.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		count, err := NewLikeRepo(env.DB).GetLikeCountByPostID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}
