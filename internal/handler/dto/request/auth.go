package request

import (
	"slot-booking/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=100"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=30"`
}

type Registration struct {
	Name        user.Name
	Credentials user.Credentials
	Phone       *string
}

func (r *RegisterRequest) ToDomain() (Registration, error) {
	name, err := user.NewName(r.Name)
	if err != nil {
		return Registration{}, err
	}
	creds, err := user.NewCredentials(r.Email, r.Password)
	if err != nil {
		return Registration{}, err
	}
	return Registration{Name: name, Credentials: creds, Phone: r.Phone}, nil
}

// UpdateProfileRequest changes the caller's own account. Omitted fields are
// kept; an empty phone clears it.
type UpdateProfileRequest struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Phone           *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	CurrentPassword string  `json:"current_password,omitempty"`
	NewPassword     *string `json:"new_password,omitempty" binding:"omitempty,min=8"`
}

type ProfileChange struct {
	Name            *user.Name
	Phone           *string
	CurrentPassword string
	NewPassword     *user.Password
}

func (r *UpdateProfileRequest) ToDomain() (ProfileChange, error) {
	change := ProfileChange{Phone: r.Phone, CurrentPassword: r.CurrentPassword}
	if r.Name != nil {
		name, err := user.NewName(*r.Name)
		if err != nil {
			return ProfileChange{}, err
		}
		change.Name = &name
	}
	if r.NewPassword != nil {
		pw, err := user.NewPassword(*r.NewPassword)
		if err != nil {
			return ProfileChange{}, err
		}
		change.NewPassword = &pw
	}
	return change, nil
}
