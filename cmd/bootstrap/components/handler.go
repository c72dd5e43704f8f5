package components

import (
	"lardocepet-api/internal/handler"
	"lardocepet-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewHostHandler,
		api.NewPetHandler,
	),
	fx.Invoke(handler.NewRouter),
)
