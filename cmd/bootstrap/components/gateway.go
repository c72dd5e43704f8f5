package components

import (
	"lardocepet-api/internal/infra/gateway"
	"lardocepet-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		// Host
		fx.Annotate(
			gateway.NewHostStore,
			fx.As(new(shared.HostReader)),
			fx.As(new(shared.HostWriter)),
		),
		// Pet
		fx.Annotate(
			gateway.NewPetStore,
			fx.As(new(shared.PetReader)),
			fx.As(new(shared.PetWriter)),
		),
		// Booking
		fx.Annotate(
			gateway.NewBookingStore,
			fx.As(new(shared.BookingReader)),
			fx.As(new(shared.BookingWriter)),
		),
		// Review
		fx.Annotate(
			gateway.NewReviewStore,
			fx.As(new(shared.ReviewReader)),
			fx.As(new(shared.ReviewWriter)),
		),
	),
)
