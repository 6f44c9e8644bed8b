package db

import (
	"context"
	"time"

	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	applicationName   = "slot-booking"
	healthCheckPeriod = 30 * time.Second
)

// Connect opens a pool and pings it; the caller owns Close.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, errs.Wrap(err, "parse database config")
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolCfg.HealthCheckPeriod = healthCheckPeriod
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errs.Wrap(err, "open database pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errs.Wrapf(err, "ping database %s:%s", cfg.Host, cfg.Port)
	}
	return pool, nil
}
