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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package router

import (
	"github.com/forshine-dev/shinebuilder/controllers"
	"github.com/forshine-dev/shinebuilder/shared"
	"github.com/labstack/echo/v4"
)

type AssetRouter struct {
	*echo.Group
}

// NewAssetRouter registers the asset lifecycle routes. The middleware guards
// here are coarse: they keep guests and under-privileged roles out. The
// transition-specific permissions (who may approve, who may edit a validated
// asset) live in the lifecycle service, which is also what the audit log
// records against.
func NewAssetRouter(
	apiV1Router APIV1Router,
	assetController *controllers.AssetController,
	rbac shared.RBACMiddleware,
) AssetRouter {
	assetRouter := apiV1Router.Group.Group("/assets")

	assetRouter.GET("/", assetController.List)
	assetRouter.GET("/:assetID/", assetController.Read)
	assetRouter.GET("/:assetID/events/", assetController.Events)

	assetRouter.POST("/", assetController.Create, rbac(shared.RoleCurator))
	assetRouter.PATCH("/:assetID/", assetController.Patch, rbac(shared.RoleCurator))
	assetRouter.POST("/:assetID/submit/", assetController.Submit, rbac(shared.RoleCurator))

	assetRouter.POST("/:assetID/approve/", assetController.Approve, rbac(shared.RoleAuditor))
	assetRouter.POST("/:assetID/reject/", assetController.Reject, rbac(shared.RoleAuditor))

	// reported by the media processing pipeline, which authenticates like
	// every other caller
	assetRouter.POST("/:assetID/processing-result/", assetController.ProcessingResult, rbac(shared.RoleCurator))

	assetRouter.DELETE("/:assetID/", assetController.Delete, rbac(shared.RoleMethodologist))

	return AssetRouter{Group: assetRouter}
}
