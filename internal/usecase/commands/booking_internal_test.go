//go:build unit

package commands

import (
	"testing"

	reqdto "slot-booking/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashRequest(t *testing.T) {
	notes := "window seat"
	req := reqdto.CreateAppointmentRequest{ServiceID: uuid.New(), SlotID: uuid.New(), Notes: &notes}

	first, err := hashRequest(req)
	require.NoError(t, err)
	assert.Len(t, first, 64)

	t.Run("同じ内容は同じハッシュ", func(t *testing.T) {
		again, err := hashRequest(req)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	})

	t.Run("メモが違えば別のハッシュ", func(t *testing.T) {
		other := "aisle"
		changed := req
		changed.Notes = &other

		got, err := hashRequest(changed)
		require.NoError(t, err)
		assert.NotEqual(t, first, got)
	})
}
