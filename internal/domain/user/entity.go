package user

import (
	"strings"

	"github.com/google/uuid"
)

// User is the write model for an account. Login bookkeeping (last login)
// lives only in the database and read models.
type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	phone        *string
	role         Role
	isActive     bool
}

// NewUser creates an active account with the given role. A blank phone is
// stored as absent.
func NewUser(name Name, email Email, passwordHash string, phone *string, role Role) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        normalizePhone(phone),
		role:         role,
		isActive:     true,
	}
}

// RegisterClient is the self-service signup path; admins are provisioned out of band.
func RegisterClient(name Name, email Email, passwordHash string, phone *string) *User {
	return NewUser(name, email, passwordHash, phone, RoleClient)
}

func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	p := strings.TrimSpace(*phone)
	if p == "" {
		return nil
	}
	return &p
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Phone() *string       { return u.phone }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }

// ReconstructUser rebuilds an account from storage without re-validating it.
func ReconstructUser(id uuid.UUID, name, email, passwordHash string, phone *string, role Role, isActive bool) *User {
	return &User{
		id:           id,
		name:         Name{value: name},
		email:        Email{value: email},
		passwordHash: passwordHash,
		phone:        phone,
		role:         role,
		isActive:     isActive,
	}
}

func (u *User) Rename(name Name) {
	u.name = name
}

// ChangePhone replaces the phone; blank clears it.
func (u *User) ChangePhone(phone *string) {
	u.phone = normalizePhone(phone)
}

func (u *User) ChangePasswordHash(hash string) {
	u.passwordHash = hash
}
