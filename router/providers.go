package router

import "go.uber.org/fx"

var Module = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewAssetRouter),
	fx.Provide(NewCoverageRouter),
	fx.Provide(NewTaxonomyRouter),
)
