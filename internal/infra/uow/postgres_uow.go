package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
	errRetriesExhausted  = errs.New("transaction retries exhausted")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, retry RetryPolicy) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q, retry: retry}
}

// Within uses read committed: slot claims are single conditional updates, so
// the stronger levels only add serialization failures.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.runOnce(ctx, fn)
		if err == nil || !retryable(err) {
			return err
		}
		if attempt >= u.retry.MaxRetries {
			slog.ErrorContext(ctx, "transaction retries exhausted", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errRetriesExhausted)
		}

		wait := u.retry.backoff(attempt)
		slog.WarnContext(ctx, "retrying transaction", "attempt", attempt+1, "wait", wait, "error", err.Error())

		select {
		case <-ctx.Done():
			return errs.Wrap(ctx.Err(), "transaction retry")
		case <-time.After(wait):
		}
	}
}

func (u *PostgresUoW) runOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if err != nil {
			rollback(ctx, pgxTx)
		}
	}()

	if err = fn(ctx, newTx(u.q, pgxTx)); err != nil {
		return err
	}
	if err = pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	// the request may already be cancelled; the rollback still has to reach the server
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.WarnContext(ctx, "rollback failed", "error", err.Error())
	}
}
