package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"slot-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
)

// Cursor is the opaque "after" token a client echoes back for the next page.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// Keyset is a decoded cursor position: rows strictly older than (CreatedAt, ID).
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Encode uses microseconds, the precision PostgreSQL stores timestamps at,
// so the row the cursor was cut from compares equal on the next query.
func (k Keyset) Encode() string {
	raw := strconv.FormatInt(k.CreatedAt.UnixMicro(), 36) + "." + k.ID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeKeyset(token string) (Keyset, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Keyset{}, invalidCursor(err, "cursor encoding")
	}

	micros, id, ok := strings.Cut(string(raw), ".")
	if !ok {
		return Keyset{}, ErrInvalidCursor
	}
	ts, err := strconv.ParseInt(micros, 36, 64)
	if err != nil {
		return Keyset{}, invalidCursor(err, "cursor timestamp")
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return Keyset{}, invalidCursor(err, "cursor id")
	}
	return Keyset{CreatedAt: time.UnixMicro(ts).UTC(), ID: uid}, nil
}

func invalidCursor(err error, msg string) error {
	return errs.Mark(errs.Mark(errs.Wrap(err, msg), ErrInvalidCursor), errs.ErrValidation)
}

// Keyset returns nil for the first page.
func (c *Cursor) Keyset() (*Keyset, error) {
	if c == nil || c.After == "" {
		return nil, nil
	}
	k, err := DecodeKeyset(c.After)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
