package components

import (
	"github.com/rahma103/calendrier-reservation-v2/internal/domain/slot"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/config"
	"github.com/rahma103/calendrier-reservation-v2/internal/usecase"
	"github.com/rahma103/calendrier-reservation-v2/internal/usecase/commands"
	"github.com/rahma103/calendrier-reservation-v2/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) slot.Renderer {
		return slot.NewRenderer(cfg.Booking.DisplayYear)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
