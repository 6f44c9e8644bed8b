package bootstrap

import (
	"log/slog"

	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(
		ValidateConfig,
		LogEffectiveConfig,
	),
)

const minJWTSecretLen = 32

// ValidateConfig rejects settings that would start the server in a broken
// booking setup rather than failing on the first request.
func ValidateConfig(cfg config.Config) error {
	if len(cfg.JWT.Secret) < minJWTSecretLen {
		return errs.Newf("JWT_SECRET must be at least %d bytes", minJWTSecretLen)
	}
	if cfg.Booking.IdempotencyTTL <= 0 {
		return errs.New("IDEMPOTENCY_TTL must be positive")
	}
	if cfg.Booking.IdempotencySweepEvery <= 0 {
		return errs.New("IDEMPOTENCY_SWEEP_INTERVAL must be positive")
	}
	return nil
}

func LogEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"redis", cfg.Redis.Addr != "",
		"kafka", cfg.Kafka.Enabled(),
		"rate_limit", cfg.RateLimit.Limit,
		"telemetry", cfg.Telemetry.Enabled,
		"idempotency_ttl", cfg.Booking.IdempotencyTTL,
	)
}
