package middleware

import (
	"SocialNetwork/internal/pkg/logger"
	"SocialNetwork/internal/service"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	userID uint64
	err    error
	seen   string
}

func (s *stubVerifier) VerifyToken(_ context.Context, token string) (uint64, error) {
	s.seen = token
	return s.userID, s.err
}

func newAuthRouter(v TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware(), AuthMiddleware(v))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c), "trace": logger.TraceID(c.Request.Context())})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		newAuthRouter(&stubVerifier{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("verifier rejects", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer bad")
		newAuthRouter(&stubVerifier{err: service.ErrUnauthorized}).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("storage failure is 503", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer ok")
		v := &stubVerifier{err: &service.StorageError{Op: "touch last_request", Err: errors.New("down")}}
		newAuthRouter(v).ServeHTTP(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("accepted", func(t *testing.T) {
		v := &stubVerifier{userID: 7}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer good")
		req.Header.Set("X-Trace-ID", "trace-1")
		newAuthRouter(v).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "good", v.seen)
		assert.Equal(t, "trace-1", w.Header().Get("X-Trace-ID"))

		var body struct {
			UserID uint64 `json:"user_id"`
			Trace  string `json:"trace"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, uint64(7), body.UserID)
		assert.Equal(t, "trace-1", body.Trace)
	})
}

func TestTraceMiddlewareGeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get("X-Trace-ID"), 36)
}
