package repository

import (
	"SocialNetwork/internal/model"
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type LikeRepo interface {
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, userID, postID uint64) (int64, error)
	GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error)
	CountLikesByDay(ctx context.Context, start, end time.Time) ([]model.DailyLikes, error)
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{db: db}
}

// CreateLike 唯一键 (user_id, post_id) 冲突时返回的错误可被识别为重复点赞
func (s *LikeRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	return errors.Wrap(s.db.WithContext(ctx).Create(like).Error, "create like")
}

// DeleteLike 条件删除，返回受影响行数
func (s *LikeRepoImpl) DeleteLike(ctx context.Context, userID, postID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "delete like")
	}
	return result.RowsAffected, nil
}

func (s *LikeRepoImpl) GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, errors.Wrapf(err, "count likes of post %d", postID)
}

// CountLikesByDay 统计 [start, end) 内每个 UTC 日的点赞数，无点赞的日期不返回
func (s *LikeRepoImpl) CountLikesByDay(ctx context.Context, start, end time.Time) ([]model.DailyLikes, error) {
	rows := make([]model.DailyLikes, 0)
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Select("DATE(created_at) AS day, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("day").
		Order("day").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count likes by day")
	}
	return rows, nil
}
