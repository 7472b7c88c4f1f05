package service

import (
	"SocialNetwork/internal/api/dto"
	"SocialNetwork/internal/model"
	"SocialNetwork/internal/pkg/security"
	"SocialNetwork/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.LoginDTO, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	VerifyToken(ctx context.Context, token string) (uint64, error)
	GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	Activity(ctx context.Context, id uint64) (*dto.ActivityDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	jwt      *security.JWTManager
	now      func() time.Time
}

func NewUserService(userRepo repository.UserRepo, jwt *security.JWTManager) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		jwt:      jwt,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Register 注册，用户名唯一；并发注册同名用户由唯一索引兜底
func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.UserDTO, error) {
	found, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return nil, storageError("find user", err)
	}
	if found != nil {
		return nil, ErrUsernameExists
	}

	hash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &model.User{
		Username:     regDTO.Username,
		Email:        regDTO.Email,
		PasswordHash: hash,
		LastLogin:    &now,
		LastRequest:  &now,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if isDuplicateError(err) {
			return nil, ErrUsernameExists
		}
		return nil, storageError("create user", err)
	}

	log.InfoContext(ctx, "user registered", "user_id", user.ID)
	return toUserDTO(user)
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.LoginDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, credDTO.Username)
	if err != nil {
		return nil, storageError("find user", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err = security.CheckPasswordHash(credDTO.Password, user.PasswordHash); err != nil {
		if errors.Is(err, security.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	now := s.now()
	if err = s.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, storageError("touch last_login", err)
	}
	user.LastLogin = &now

	pair, err := s.jwt.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, err
	}

	userDTO, err := toUserDTO(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginDTO{Access: pair.Access, Refresh: pair.Refresh, User: userDTO}, nil
}

// Refresh 用 refresh token 换取新的 access token
func (s *UserServiceImpl) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwt.ValidateToken(refreshToken, security.TokenTypeRefresh)
	if err != nil {
		log.DebugContext(ctx, "refresh token rejected", "err", err)
		return "", ErrUnauthorized
	}

	user, err := s.userRepo.GetUserById(ctx, claims.UserID)
	if err != nil {
		return "", storageError("find user", err)
	}
	if user == nil {
		return "", ErrUnauthorized
	}

	return s.jwt.GenerateAccess(user.ID)
}

// VerifyToken 校验 access token，并在同一次 UPDATE 中刷新 last_request
func (s *UserServiceImpl) VerifyToken(ctx context.Context, token string) (uint64, error) {
	claims, err := s.jwt.ValidateToken(token, security.TokenTypeAccess)
	if err != nil {
		log.DebugContext(ctx, "access token rejected", "err", err)
		return 0, ErrUnauthorized
	}

	rows, err := s.userRepo.TouchLastRequest(ctx, claims.UserID, s.now())
	if err != nil {
		return 0, storageError("touch last_request", err)
	}
	if rows == 0 {
		return 0, ErrUnauthorized
	}
	return claims.UserID, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, storageError("find user", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user)
}

func (s *UserServiceImpl) Activity(ctx context.Context, id uint64) (*dto.ActivityDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, storageError("find user", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &dto.ActivityDTO{LastLogin: user.LastLogin, LastRequest: user.LastRequest}, nil
}

func toUserDTO(user *model.User) (*dto.UserDTO, error) {
	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	return userDTO, nil
}
