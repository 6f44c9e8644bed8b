package components

import (
	"slot-booking/internal/handler"
	"slot-booking/internal/handler/api"
	"slot-booking/internal/handler/middleware"
	"slot-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHealthHandler,
		api.NewAuthHandler,
		api.NewAppointmentHandler,
		api.NewServiceHandler,
		api.NewAdminHandler,
		api.NewScheduleHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
		newHandlers,
		newMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(limiter middleware.Limiter, cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(limiter, cfg.RateLimit)
}

func newHandlers(
	health *api.HealthHandler,
	auth *api.AuthHandler,
	appointment *api.AppointmentHandler,
	service *api.ServiceHandler,
	admin *api.AdminHandler,
	schedule *api.ScheduleHandler,
) handler.Handlers {
	return handler.Handlers{
		Health:      health,
		Auth:        auth,
		Appointment: appointment,
		Service:     service,
		Admin:       admin,
		Schedule:    schedule,
	}
}

func newMiddlewares(auth *middleware.AuthMiddleware, rateLimit *middleware.RateLimiter, logger *middleware.Logger) handler.Middlewares {
	return handler.Middlewares{
		Auth:      auth,
		RateLimit: rateLimit,
		Logger:    logger,
	}
}
