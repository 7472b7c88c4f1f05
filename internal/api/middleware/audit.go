package middleware

import (
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// AuditMiddleware 记录请求与响应概要，不记录请求体（注册、登录含明文密码）
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		startTime := time.Now()

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", c.Request.URL.RawQuery),
			log.String("client_ip", c.ClientIP()),
		)

		c.Next()

		attrs := []any{
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.Int("size", c.Writer.Size()),
		}
		if uid, ok := c.Get(UserIDKey); ok {
			attrs = append(attrs, log.Any("user_id", uid))
		}
		log.InfoContext(ctx, "Send Response", attrs...)
	}
}
