//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"slot-booking/internal/handler/dto/request"
	"slot-booking/internal/handler/dto/response"
	"slot-booking/internal/pkg/cookie"
	"slot-booking/tests/common/dbtest"
	"slot-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// TestPassword matches dbtest.TestPasswordHash and the seeded admin.
const TestPassword = "password123"

// LoginUser logs in through the API and returns the access token, checking
// that the body and the cookie carry the same one.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.Do(t, router, http.MethodPost, "/api/auth/login", request.LoginRequest{Email: email, Password: password})

	var res response.LoginResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEmpty(t, res.AccessToken, "login returned no token")

	c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, c, "login set no %s cookie", cookie.AccessTokenCookieName)
	require.Equal(t, res.AccessToken, c.Value)

	return res.AccessToken
}

// CreateAndLogin inserts an active user with TestPassword and logs them in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, TestPassword)
}
