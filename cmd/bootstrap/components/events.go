package components

import (
	"context"
	"log/slog"

	"slot-booking/internal/infra/events"
	"slot-booking/internal/infra/jobs"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Invoke(
		StartOutboxPublisher,
		StartIdempotencySweeper,
	),
)

func StartOutboxPublisher(lc fx.Lifecycle, uow shared.UnitOfWork, cfg config.Config) {
	if !cfg.Kafka.Enabled() {
		slog.Warn("outbox publisher disabled (no kafka brokers configured)")
		return
	}

	publisher := events.NewPublisher(uow, events.NewKafkaWriter(cfg.Kafka), cfg.Outbox)
	runInBackground(lc, publisher.Run, publisher.Close)
}

func StartIdempotencySweeper(lc fx.Lifecycle, maintenance commands.MaintenanceCommands, cfg config.Config) {
	sweeper := jobs.NewIdempotencySweeper(maintenance, cfg.Booking.IdempotencySweepEvery)
	runInBackground(lc, sweeper.Run, nil)
}

func runInBackground(lc fx.Lifecycle, run func(context.Context), closeFn func() error) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			if closeFn != nil {
				return closeFn()
			}
			return nil
		},
	})
}
