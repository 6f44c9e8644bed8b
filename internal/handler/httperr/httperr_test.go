//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"slot-booking/internal/domain/appointment"
	"slot-booking/internal/handler/httperr"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: commands.ErrAppointmentNotFound, want: http.StatusNotFound},
		{name: "unauthenticated", err: commands.ErrUnauthenticated, want: http.StatusUnauthorized},
		{name: "unauthenticated read", err: queries.ErrUnauthenticated, want: http.StatusUnauthorized},
		{name: "forbidden", err: commands.ErrAdminOnly, want: http.StatusForbidden},
		{name: "slot unavailable", err: commands.ErrSlotUnavailable, want: http.StatusConflict},
		{name: "invalid transition", err: appointment.ErrInvalidTransition, want: http.StatusConflict},
		{name: "conflict", err: commands.ErrDuplicateSlot, want: http.StatusConflict},
		{name: "validation", err: errs.Mark(errors.New("bad notes"), errs.ErrValidation), want: http.StatusUnprocessableEntity},
		{name: "wrapped kind survives", err: errs.Wrap(commands.ErrSlotHeld, "delete slot"), want: http.StatusConflict},
		{name: "unmarked", err: errors.New("connection reset"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusFor(tt.err))
		})
	}
}
