package password

import (
	"slot-booking/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errs.New("password hashing failed")
	ErrMismatch      = errs.New("password does not match")
	ErrInvalid       = errs.Mark(errs.New("password is empty or longer than 72 bytes"), errs.ErrValidation)
)

// bcrypt silently ignores input past 72 bytes
const MaxBytes = 72

type Hasher struct {
	cost int
}

// NewHasher falls back to bcrypt.DefaultCost for an out-of-range cost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	if plain == "" || len(plain) > MaxBytes {
		return "", ErrInvalid
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "bcrypt"), ErrHashingFailed)
	}
	return string(hashed), nil
}

// Compare returns ErrMismatch for a wrong password and a wrapped error for a corrupt hash.
func (h *Hasher) Compare(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "compare password hash")
	}
}
