package uow

import (
	"errors"
	"math/rand/v2"
	"time"

	"slot-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

// RetryPolicy bounds how often a transaction that lost a serialization race
// is re-run.
type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
}

func NewRetryPolicy(cfg config.Config) RetryPolicy {
	return RetryPolicy{
		MaxRetries: max(cfg.DB.TxMaxRetries, 0),
		Base:       cfg.DB.TxRetryBase,
	}
}

// backoff doubles per attempt with up to 20% jitter.
func (p RetryPolicy) backoff(attempt int) time.Duration {
	wait := p.Base << attempt
	if wait <= 0 {
		return 0
	}
	return wait + rand.N(wait/5+1)
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}
