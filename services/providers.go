package services

import (
	"go.uber.org/fx"

	"github.com/forshine-dev/shinebuilder/shared"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewIdentifierService, fx.As(new(shared.IdentifierService)))),
	fx.Provide(fx.Annotate(NewLifecycleService, fx.As(new(shared.LifecycleService)))),
	fx.Provide(fx.Annotate(NewCoverageService, fx.As(new(shared.CoverageService)))),
	fx.Provide(fx.Annotate(NewTaxonomyService, fx.As(new(shared.TaxonomyService)))),
)
