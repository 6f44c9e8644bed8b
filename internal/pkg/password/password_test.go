//go:build unit

package password

import (
	"strings"
	"testing"

	"slot-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	t.Run("ハッシュ化と照合", func(t *testing.T) {
		hashed, err := h.Hash("password123")
		require.NoError(t, err)

		assert.NoError(t, h.Compare(hashed, "password123"))
		assert.ErrorIs(t, h.Compare(hashed, "password124"), ErrMismatch)
	})

	t.Run("空と72バイト超は検証エラー", func(t *testing.T) {
		_, err := h.Hash("")
		assert.True(t, errs.Is(err, errs.ErrValidation))

		_, err = h.Hash(strings.Repeat("a", MaxBytes+1))
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("壊れたハッシュは不一致ではない", func(t *testing.T) {
		err := h.Compare("not-a-bcrypt-hash", "password123")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrMismatch)
	})

	t.Run("範囲外のコストは既定値", func(t *testing.T) {
		assert.Equal(t, bcrypt.DefaultCost, NewHasher(100).cost)
	})
}
