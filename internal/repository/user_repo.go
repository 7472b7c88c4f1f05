package repository

import (
	"SocialNetwork/internal/model"
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	TouchLastLogin(ctx context.Context, id uint64, at time.Time) error
	TouchLastRequest(ctx context.Context, id uint64, at time.Time) (int64, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return errors.Wrap(s.db.WithContext(ctx).Create(user).Error, "create user")
}

// GetUserById 不存在时返回 nil, nil
func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	err := s.db.WithContext(ctx).First(user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get user %d", id)
	}
	return user, nil
}

// GetUserByUsername 不存在时返回 nil, nil
func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	err := s.db.WithContext(ctx).Where("username = ?", username).First(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "get user by username")
	}
	return user, nil
}

func (s *UserRepoImpl) TouchLastLogin(ctx context.Context, id uint64, at time.Time) error {
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("last_login", at).Error
	return errors.Wrapf(err, "touch last_login of user %d", id)
}

// TouchLastRequest 更新最近请求时间，返回受影响行数，0 表示用户不存在
func (s *UserRepoImpl) TouchLastRequest(ctx context.Context, id uint64, at time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("last_request", at)
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "touch last_request of user %d", id)
	}
	return result.RowsAffected, nil
}
