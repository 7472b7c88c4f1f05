package dto

import "time"

// UserDTO 用户信息，不包含密码
type UserDTO struct {
	ID          uint64     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	LastLogin   *time.Time `json:"last_login"`
	LastRequest *time.Time `json:"last_request"`
	CreatedAt   time.Time  `json:"created_at"`
}

// RegisterDTO 注册
type RegisterDTO struct {
	Username string `json:"username" validate:"required,min=3,max=150,username_chars"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	Password string `json:"password" validate:"required,max=128,password_policy"`
}

// CredentialDTO 登录
type CredentialDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshDTO 刷新 access token
type RefreshDTO struct {
	Refresh string `json:"refresh" validate:"required"`
}

// LoginDTO 登录结果
type LoginDTO struct {
	Access  string   `json:"access"`
	Refresh string   `json:"refresh"`
	User    *UserDTO `json:"user"`
}

// AccessDTO 刷新结果
type AccessDTO struct {
	Access string `json:"access"`
}

// ActivityDTO 用户活跃信息
type ActivityDTO struct {
	LastLogin   *time.Time `json:"last_login"`
	LastRequest *time.Time `json:"last_request"`
}
