// Package cookie carries the access token for browser clients. API clients
// send the same token as a Bearer header instead.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"slot-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "access_token"
	cookiePath            = "/api"
)

func SetAccessToken(c *gin.Context, cfg config.CookieConfig, token string, ttl time.Duration) {
	http.SetCookie(c.Writer, accessCookie(cfg, token, int(ttl.Seconds())))
}

// ClearAccessToken expires the cookie; the token itself stays valid until its exp claim.
func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	http.SetCookie(c.Writer, accessCookie(cfg, "", -1))
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}

func accessCookie(cfg config.CookieConfig, value string, maxAge int) *http.Cookie {
	sameSite := parseSameSite(cfg.SameSite)
	return &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    value,
		Path:     cookiePath,
		Domain:   cfg.Domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		// browsers drop SameSite=None cookies that are not Secure
		Secure:   cfg.Secure || sameSite == http.SameSiteNoneMode,
		SameSite: sameSite,
	}
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
