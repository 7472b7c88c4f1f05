package service

import (
	"SocialNetwork/internal/model"
	"SocialNetwork/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// LikeResult 点赞结果
type LikeResult int

const (
	LikeCreated LikeResult = iota + 1
	LikeAlreadyExists
)

func (r LikeResult) String() string {
	switch r {
	case LikeCreated:
		return "created"
	case LikeAlreadyExists:
		return "already-exists"
	default:
		return "unknown"
	}
}

// UnlikeResult 取消点赞结果
type UnlikeResult int

const (
	UnlikeRemoved UnlikeResult = iota + 1
	UnlikeNotFound
)

func (r UnlikeResult) String() string {
	switch r {
	case UnlikeRemoved:
		return "removed"
	case UnlikeNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// PostActionService 点赞开关。唯一性由存储层唯一索引保证，不做先查后写；
// 取消点赞是单条条件 DELETE，并发取消时至多一个返回 UnlikeRemoved
type PostActionService interface {
	LikePost(ctx context.Context, userID, postID uint64) (LikeResult, error)
	UnlikePost(ctx context.Context, userID, postID uint64) (UnlikeResult, error)
}

type postActionServiceImpl struct {
	likeRepo repository.LikeRepo
	postRepo repository.PostRepo
	now      func() time.Time
}

func NewPostActionService(likeRepo repository.LikeRepo, postRepo repository.PostRepo) PostActionService {
	return &postActionServiceImpl{
		likeRepo: likeRepo,
		postRepo: postRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *postActionServiceImpl) LikePost(ctx context.Context, userID, postID uint64) (LikeResult, error) {
	if err := s.getPostCheck(ctx, postID); err != nil {
		return 0, err
	}

	err := s.likeRepo.CreateLike(ctx, &model.Like{UserID: userID, PostID: postID, CreatedAt: s.now()})
	if err != nil {
		if isDuplicateError(err) {
			return LikeAlreadyExists, nil
		}
		// 帖子在检查之后被删除
		if isForeignKeyError(err) {
			return 0, ErrPostNotFound
		}
		return 0, storageError("create like", err)
	}

	log.InfoContext(ctx, "post liked", "user_id", userID, "post_id", postID)
	return LikeCreated, nil
}

func (s *postActionServiceImpl) UnlikePost(ctx context.Context, userID, postID uint64) (UnlikeResult, error) {
	if err := s.getPostCheck(ctx, postID); err != nil {
		return 0, err
	}

	rows, err := s.likeRepo.DeleteLike(ctx, userID, postID)
	if err != nil {
		return 0, storageError("delete like", err)
	}
	if rows == 0 {
		return UnlikeNotFound, nil
	}

	log.InfoContext(ctx, "post unliked", "user_id", userID, "post_id", postID)
	return UnlikeRemoved, nil
}

func (s *postActionServiceImpl) getPostCheck(ctx context.Context, postID uint64) error {
	exists, err := s.postRepo.PostExists(ctx, postID)
	if err != nil {
		return storageError("check post", err)
	}
	if !exists {
		return ErrPostNotFound
	}
	return nil
}

func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func isForeignKeyError(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1452
}
