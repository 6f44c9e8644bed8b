package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"slot-booking/internal/infra/db"
	"slot-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const dbConnectTimeout = 10 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB fails application start when the database is unreachable.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() {
		stat := pool.Stat()
		logger.Info("closing database pool",
			"acquired", stat.AcquiredConns(),
			"total", stat.TotalConns(),
			"acquire_count", stat.AcquireCount(),
		)
		pool.Close()
	}))
	return pool, nil
}
