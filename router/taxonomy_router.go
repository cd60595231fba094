package router

import (
	"github.com/forshine-dev/shinebuilder/controllers"
	"github.com/labstack/echo/v4"
)

type TaxonomyRouter struct {
	*echo.Group
}

func NewTaxonomyRouter(apiV1Router APIV1Router, taxonomyController *controllers.TaxonomyController) TaxonomyRouter {
	taxonomyRouter := apiV1Router.Group.Group("/taxonomy")

	taxonomyRouter.GET("/", taxonomyController.Tree)

	return TaxonomyRouter{Group: taxonomyRouter}
}
