package bootstrap

import (
	"lardocepet-api/internal/infra/supabase"
	"lardocepet-api/internal/pkg/config"

	"go.uber.org/fx"
)

var SupabaseModule = fx.Module("supabase",
	fx.Provide(
		func(cfg config.Config) *supabase.Client {
			return supabase.NewClient(cfg.Supabase)
		},
	),
)
