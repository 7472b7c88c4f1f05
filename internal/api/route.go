package api

import (
	"SocialNetwork/internal/api/middleware"
	"SocialNetwork/internal/pkg/consts"
	"SocialNetwork/internal/pkg/logger"
	"SocialNetwork/internal/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"127.0.0.1"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "not-found", "resource not found")
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			response.Success(c, consts.StatusOK, "pong")
		})

		userGroup := apiGroup.Group("/users")
		{
			userGroup.POST("/signup", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/token/refresh", group.UserHandler.RefreshToken)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware(group.TokenVerifier))
			{
				authGroup.GET("/activity", group.UserHandler.Activity)
			}
		}

		postGroup := apiGroup.Group("/posts")
		postGroup.Use(middleware.AuthMiddleware(group.TokenVerifier))
		{
			postGroup.POST("", group.PostHandler.CreatePost)
			postGroup.GET("", group.PostHandler.ListPosts)
			postGroup.GET("/analytics", group.AnalyticsHandler.LikesByDay)
			postGroup.GET("/:post_id", group.PostHandler.GetPost)
			postGroup.POST("/:post_id/like", group.PostActionHandler.LikePost)
			postGroup.POST("/:post_id/unlike", group.PostActionHandler.UnlikePost)
		}
	}

	return r
}
