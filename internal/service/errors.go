package service

import (
	"SocialNetwork/internal/pkg/consts"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrParamInvalid       = errors.New("invalid parameters")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("authentication credentials were not provided or are invalid")
	ErrPostNotFound       = errors.New("post not found")
	ErrAlreadyLiked       = errors.New("you have already liked this post")
	ErrNotLiked           = errors.New("you have not liked this post")
	ErrInvalidRange       = errors.New("date_from and date_to must be YYYY-MM-DD dates with date_from <= date_to")
)

// ErrorInfo 错误对应的 HTTP 状态码与 status 字符串
type ErrorInfo struct {
	Code   int
	Status string
}

var ErrorMap = map[error]ErrorInfo{
	ErrParamInvalid:       {http.StatusBadRequest, consts.StatusValidationFailed},
	ErrUserNotFound:       {http.StatusNotFound, consts.StatusUserNotFound},
	ErrUsernameExists:     {http.StatusBadRequest, consts.StatusUsernameExists},
	ErrInvalidCredentials: {http.StatusUnauthorized, consts.StatusInvalidCredentials},
	ErrUnauthorized:       {http.StatusUnauthorized, consts.StatusUnauthorized},
	ErrPostNotFound:       {http.StatusNotFound, consts.StatusPostNotFound},
	ErrAlreadyLiked:       {http.StatusBadRequest, consts.StatusAlreadyLiked},
	ErrNotLiked:           {http.StatusBadRequest, consts.StatusNotLiked},
	ErrInvalidRange:       {http.StatusBadRequest, consts.StatusInvalidRange},
}

// LookupError 沿错误链查找已登记的业务错误
func LookupError(err error) (ErrorInfo, bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if info, ok := ErrorMap[e]; ok {
			return info, true
		}
	}
	return ErrorInfo{}, false
}

// StorageError 存储层的瞬时故障，调用方可重试
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage unavailable during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
