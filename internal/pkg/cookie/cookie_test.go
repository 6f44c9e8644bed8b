//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issued(t *testing.T, fn func(c *gin.Context)) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	fn(c)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestSetAccessToken(t *testing.T) {
	t.Run("HttpOnlyでAPI配下に限定される", func(t *testing.T) {
		got := issued(t, func(c *gin.Context) {
			cookie.SetAccessToken(c, config.CookieConfig{SameSite: "strict"}, "tok", time.Hour)
		})

		assert.Equal(t, "tok", got.Value)
		assert.Equal(t, "/api", got.Path)
		assert.Equal(t, 3600, got.MaxAge)
		assert.True(t, got.HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, got.SameSite)
		assert.False(t, got.Secure)
	})

	t.Run("SameSite=NoneはSecureを強制する", func(t *testing.T) {
		got := issued(t, func(c *gin.Context) {
			cookie.SetAccessToken(c, config.CookieConfig{SameSite: "None"}, "tok", time.Hour)
		})

		assert.True(t, got.Secure)
	})
}

func TestClearAccessToken(t *testing.T) {
	got := issued(t, func(c *gin.Context) {
		cookie.ClearAccessToken(c, config.CookieConfig{})
	})

	assert.Empty(t, got.Value)
	assert.Less(t, got.MaxAge, 0)
}

func TestGetAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)

	assert.Empty(t, cookie.GetAccessToken(c))

	c.Request.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "tok"})
	assert.Equal(t, "tok", cookie.GetAccessToken(c))
}
