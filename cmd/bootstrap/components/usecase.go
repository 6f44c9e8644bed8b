package components

import (
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/jwt"
	"slot-booking/internal/pkg/password"
	"slot-booking/internal/usecase"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"
	"slot-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(s *jwt.Service) *jwt.Service { return s },
		fx.As(new(commands.TokenIssuer)),
	),
	fx.Annotate(
		NewPasswordHasher,
		fx.As(new(commands.PasswordHasher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		NewBookingCommands,
		commands.NewSlotCommands,
		commands.NewServiceCommands,
		commands.NewMaintenanceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewAppointmentQueries,
		queries.NewSlotQueries,
		queries.NewServiceQueries,
		queries.NewReportQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPasswordHasher(cfg config.Config) *password.Hasher {
	return password.NewHasher(cfg.Auth.BcryptCost)
}

func NewBookingCommands(uow shared.UnitOfWork, appointments queries.AppointmentQueries, clk clock.Clock, cfg config.Config) commands.BookingCommands {
	return commands.NewBookingCommands(uow, appointments, clk, cfg.Booking.IdempotencyTTL)
}
