package components

import (
	"lardocepet-api/internal/domain/booking"
	"lardocepet-api/internal/pkg/clock"
	"lardocepet-api/internal/usecase/commands"
	"lardocepet-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewDefaultPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		commands.NewBookingValidator,
		commands.NewReviewValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewReviewCommands,
		commands.NewHostCommands,
		commands.NewPetCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewHostQueries,
		queries.NewPetQueries,
	),
)
