package middleware

import (
	"SocialNetwork/internal/pkg/response"
	"SocialNetwork/internal/service"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDKey gin.Context 中保存当前用户 ID 的 key
const UserIDKey = "user_id"

// TokenVerifier 校验 access token 并返回用户 ID
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (uint64, error)
}

// AuthMiddleware 验证 Bearer Token 并注入用户 ID，同时刷新用户的最近请求时间
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, service.ErrUnauthorized)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		userID, err := verifier.VerifyToken(c.Request.Context(), tokenString)
		if err != nil {
			response.Error(c, err)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID 取出当前用户 ID，未鉴权时返回 0
func CurrentUserID(c *gin.Context) uint64 {
	return c.GetUint64(UserIDKey)
}
