package response

import (
	"time"

	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        *UserResponse `json:"user"`
}

func FromAuthorizedUser(v *queries.AuthorizedUserView) *UserResponse {
	return mustCopy[UserResponse](v)
}

func FromAuthResult(r *commands.AuthResult, expiresAt time.Time) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.AccessToken,
		ExpiresAt:   expiresAt,
		User:        FromAuthorizedUser(r.User),
	}
}
