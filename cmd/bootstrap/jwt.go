package bootstrap

import (
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

// JWTModule relies on the clock provided by the usecase module so token
// expiry and booking times agree.
var JWTModule = fx.Module("jwt",
	fx.Provide(
		func(cfg config.Config, clk clock.Clock) *jwt.Service {
			return jwt.NewService(cfg.JWT, clk)
		},
	),
)
