package bootstrap

import (
	"context"
	"log/slog"

	"slot-booking/internal/handler/middleware"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRateLimitBackend,
	),
)

// NewRateLimitBackend uses Redis when an address is configured so that every instance shares the counters.
func NewRateLimitBackend(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) middleware.Limiter {
	if cfg.Redis.Addr == "" {
		slog.Info("rate limiting uses the in-process limiter (REDIS_ADDR not set)")
		return middleware.NewLocalLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window, clk)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				// the limiter fails open, so an unreachable Redis does not block startup
				slog.WarnContext(ctx, "redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return middleware.NewRedisLimiter(rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window)
}
