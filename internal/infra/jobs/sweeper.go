package jobs

import (
	"context"
	"log/slog"
	"time"

	"slot-booking/internal/usecase/commands"
)

// IdempotencySweeper periodically deletes expired idempotency keys.
type IdempotencySweeper struct {
	maintenance commands.MaintenanceCommands
	every       time.Duration
}

func NewIdempotencySweeper(maintenance commands.MaintenanceCommands, every time.Duration) *IdempotencySweeper {
	if every <= 0 {
		every = time.Hour
	}
	return &IdempotencySweeper{maintenance: maintenance, every: every}
}

func (s *IdempotencySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *IdempotencySweeper) sweep(ctx context.Context) {
	n, err := s.maintenance.PurgeExpiredIdempotencyKeys(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "idempotency sweep failed", "error", err.Error())
		return
	}
	if n > 0 {
		slog.InfoContext(ctx, "expired idempotency keys purged", "count", n)
	}
}
