package bootstrap

import (
	"log/slog"

	"slot-booking/internal/handler/middleware"
	"slot-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLoggerConfig,
		middleware.NewLogger,
		NewSlogLogger,
	),
)

func NewLoggerConfig(cfg config.Config) config.LogConfig {
	return cfg.Log
}

func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}
