package api

import (
	"SocialNetwork/internal/api/handler"
	"SocialNetwork/internal/api/middleware"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	PostHandler       *handler.PostHandler
	PostActionHandler *handler.PostActionHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	TokenVerifier     middleware.TokenVerifier
}
