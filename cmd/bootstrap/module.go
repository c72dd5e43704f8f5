package bootstrap

import (
	"lardocepet-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	SupabaseModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
