//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"slot-booking/internal/domain/user"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens signed with the server's test key, without a login
// round trip.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.tokenAt(t, time.Now(), userID, role)
}

// CreateExpiredToken backdates issuance so the token expired a minute ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.tokenAt(t, time.Now().Add(-h.cfg.Duration-time.Minute), userID, role)
}

func (h *JWTHelper) tokenAt(t *testing.T, issuedAt time.Time, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg, clock.NewMockClock(issuedAt)).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
