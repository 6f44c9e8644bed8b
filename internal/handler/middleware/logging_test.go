//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"slot-booking/internal/handler/middleware"
	"slot-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggingRouter(t *testing.T) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := middleware.NewLogger(config.NewTestConfig().Log)
	seen := new(string)

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		*seen = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
	})
	return r, seen
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	t.Run("リクエストIDがなければ生成する", func(t *testing.T) {
		r, seen := newLoggingRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		got := w.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, got, *seen)
	})

	t.Run("呼び出し元のリクエストIDを引き継ぐ", func(t *testing.T) {
		r, seen := newLoggingRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "edge-1234")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "edge-1234", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "edge-1234", *seen)
	})

	t.Run("長すぎるリクエストIDは置き換える", func(t *testing.T) {
		r, _ := newLoggingRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, strings.Repeat("x", 200))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.NotEqual(t, strings.Repeat("x", 200), w.Header().Get(middleware.RequestIDHeader))
	})
}
