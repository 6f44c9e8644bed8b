//go:build unit

package uow

import (
	"testing"
	"time"

	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "deadlock", err: errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "claim slot"), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "domain error", err: errs.New("slot unavailable"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retryable(tt.err))
		})
	}
}

func TestRetryPolicy_Backoff(t *testing.T) {
	p := RetryPolicy{MaxRetries: 3, Base: 10 * time.Millisecond}

	for attempt := range 3 {
		want := p.Base << attempt
		got := p.backoff(attempt)
		assert.GreaterOrEqual(t, got, want)
		assert.LessOrEqual(t, got, want+want/5)
	}

	assert.Zero(t, RetryPolicy{}.backoff(2))
}

func TestNewRetryPolicy(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.DB.TxMaxRetries = -1

	assert.Equal(t, 0, NewRetryPolicy(cfg).MaxRetries)
}
