//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"slot-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	errSlotHeld := errs.Mark(errs.New("slot is held"), errs.ErrConflict)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "marked sentinel", err: errSlotHeld, want: "conflict"},
		{name: "wrapped marked sentinel", err: errs.Wrap(errSlotHeld, "delete slot"), want: "conflict"},
		{name: "kind itself", err: errs.ErrForbidden, want: "forbidden"},
		{name: "unauthenticated is not forbidden", err: errs.Mark(errs.New("no actor"), errs.ErrUnauthenticated), want: "unauthenticated"},
		{name: "plain error", err: errors.New("boom"), want: "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.Kind(tt.err))
		})
	}
}

func TestIs_SeesMarks(t *testing.T) {
	specific := errs.Mark(errs.New("service unavailable"), errs.ErrSlotUnavailable)
	wrapped := errs.Wrap(specific, "create appointment")

	assert.True(t, errs.Is(wrapped, specific))
	assert.True(t, errs.Is(wrapped, errs.ErrSlotUnavailable))
	assert.False(t, errs.Is(wrapped, errs.ErrNotFound))
}
