//go:build unit

package slot_test

import (
	"testing"
	"time"

	"slot-booking/internal/domain/slot"
	"slot-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeSlot(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsAvailable())
		assert.Equal(t, time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC), actual.Date())
		assert.Equal(t, "10:00", actual.Start().String())
		assert.Equal(t, "11:00", actual.End().String())
		assert.Equal(t, time.Hour, actual.Duration())
	})

	cases := []struct {
		name   string
		mutate func(*builder.SlotBuilder)
		errIs  error
	}{
		{
			name:   "開始と終了が同じNG",
			mutate: func(b *builder.SlotBuilder) { b.WithTimes("10:00", "10:00") },
			errIs:  slot.ErrInvalidRange,
		},
		{
			name:   "終了が開始より前NG",
			mutate: func(b *builder.SlotBuilder) { b.WithTimes("11:00", "10:30") },
			errIs:  slot.ErrInvalidRange,
		},
		{
			name:   "時刻形式NG",
			mutate: func(b *builder.SlotBuilder) { b.WithTimes("10am", "11:00") },
			errIs:  slot.ErrInvalidClockTime,
		},
		{
			name:   "24時NG",
			mutate: func(b *builder.SlotBuilder) { b.WithTimes("23:00", "24:00") },
			errIs:  slot.ErrInvalidClockTime,
		},
		{
			name:   "日付形式NG",
			mutate: func(b *builder.SlotBuilder) { b.WithDate("15/01/2030") },
			errIs:  slot.ErrInvalidDate,
		},
		{
			name:   "存在しない日付NG",
			mutate: func(b *builder.SlotBuilder) { b.WithDate("2030-02-30") },
			errIs:  slot.ErrInvalidDate,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewSlotBuilder().With(c.mutate).BuildDomain()
			require.Nil(t, actual)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestFits(t *testing.T) {
	s, err := builder.NewSlotBuilder().WithTimes("09:00", "09:45").BuildDomain()
	require.NoError(t, err)

	assert.True(t, s.Fits(30))
	assert.True(t, s.Fits(45))
	assert.False(t, s.Fits(60))
}

func TestClockTime(t *testing.T) {
	t.Run("分からの変換", func(t *testing.T) {
		c, err := slot.ClockTimeFromMinutes(9*60 + 5)
		require.NoError(t, err)
		assert.Equal(t, "09:05", c.String())

		_, err = slot.ClockTimeFromMinutes(24 * 60)
		require.ErrorIs(t, err, slot.ErrInvalidClockTime)

		_, err = slot.ClockTimeFromMinutes(-1)
		require.ErrorIs(t, err, slot.ErrInvalidClockTime)
	})

	t.Run("比較", func(t *testing.T) {
		a, _ := slot.ParseClockTime("08:30")
		b, _ := slot.ParseClockTime("08:31")
		assert.True(t, a.Before(b))
		assert.False(t, b.Before(a))
		assert.False(t, a.Before(a))
	})
}

func TestDateRange(t *testing.T) {
	t.Run("両端なしは無制限", func(t *testing.T) {
		r, err := slot.NewDateRange("", "")
		require.NoError(t, err)
		assert.True(t, r.IsUnbounded())
		assert.Nil(t, r.Start())
		assert.Nil(t, r.End())
	})

	t.Run("片側のみOK", func(t *testing.T) {
		r, err := slot.NewDateRange("2030-01-01", "")
		require.NoError(t, err)
		require.NotNil(t, r.Start())
		assert.Nil(t, r.End())
		assert.False(t, r.IsUnbounded())
	})

	t.Run("同日OK", func(t *testing.T) {
		_, err := slot.NewDateRange("2030-01-01", "2030-01-01")
		require.NoError(t, err)
	})

	t.Run("開始が終了より後NG", func(t *testing.T) {
		_, err := slot.NewDateRange("2030-01-02", "2030-01-01")
		require.ErrorIs(t, err, slot.ErrInvalidDateRange)
	})

	t.Run("日付形式NG", func(t *testing.T) {
		_, err := slot.NewDateRange("2030-1-1", "")
		require.ErrorIs(t, err, slot.ErrInvalidDate)
	})
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	in := time.Date(2030, 3, 4, 23, 59, 0, 0, loc)
	assert.Equal(t, time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC), slot.NormalizeDate(in))
}
