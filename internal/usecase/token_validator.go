package usecase

import (
	"slot-booking/internal/domain/user"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/jwt"
	"slot-booking/internal/usecase/shared"
)

// TokenValidator turns an access token into the caller identity used by every
// booking operation.
type TokenValidator interface {
	ValidateToken(token string) (shared.Actor, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{
		jwtService: jwtService,
	}
}

func (v *jwtTokenValidator) ValidateToken(token string) (shared.Actor, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return shared.Actor{}, err
	}

	// a token signed before a role was renamed must not grant anything
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, errs.Mark(errs.Wrap(err, "token role"), jwt.ErrInvalidToken)
	}

	return shared.Actor{ID: claims.UserID, Role: role}, nil
}
