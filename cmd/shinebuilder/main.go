// Copyright (C) 2025 forshine-dev
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/forshine-dev/shinebuilder/classifier"
	"github.com/forshine-dev/shinebuilder/cmd/shinebuilder/api"
	"github.com/forshine-dev/shinebuilder/controllers"
	"github.com/forshine-dev/shinebuilder/database"
	"github.com/forshine-dev/shinebuilder/database/repositories"
	"github.com/forshine-dev/shinebuilder/middlewares"
	"github.com/forshine-dev/shinebuilder/router"
	"github.com/forshine-dev/shinebuilder/services"
	"github.com/forshine-dev/shinebuilder/shared"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

//	@title			shinebuilder API
//	@version		v1
//	@description	Content lifecycle and taxonomy coverage API

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	db, err := shared.DatabaseFactory()
	if err != nil {
		slog.Error(err.Error()) // print detailed error message to stdout
		panic(errors.New("failed to setup database connection"))
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrations(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Provide(api.NewServer),
		fx.Provide(middlewares.NewRBACMiddleware),
		repositories.Module,
		services.Module,
		controllers.Module,
		classifier.Module,
		router.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(assetRouter router.AssetRouter) {}),
		fx.Invoke(func(coverageRouter router.CoverageRouter) {}),
		fx.Invoke(func(taxonomyRouter router.TaxonomyRouter) {}),
	).Run()
}
