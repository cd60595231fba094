package router

import (
	"github.com/forshine-dev/shinebuilder/controllers"
	"github.com/labstack/echo/v4"
)

type CoverageRouter struct {
	*echo.Group
}

func NewCoverageRouter(apiV1Router APIV1Router, coverageController *controllers.CoverageController) CoverageRouter {
	coverageRouter := apiV1Router.Group.Group("/coverage")

	coverageRouter.GET("/", coverageController.Report)
	coverageRouter.GET("/export/", coverageController.Export)

	return CoverageRouter{Group: coverageRouter}
}
