package controllers

import (
	"net/http"

	"github.com/forshine-dev/shinebuilder/shared"
	"github.com/labstack/echo/v4"
)

type TaxonomyController struct {
	taxonomyService shared.TaxonomyService
}

func NewTaxonomyController(taxonomyService shared.TaxonomyService) *TaxonomyController {
	return &TaxonomyController{taxonomyService: taxonomyService}
}

func (h *TaxonomyController) Tree(c shared.Context) error {
	tree, err := h.taxonomyService.Tree()
	if err != nil {
		return echo.NewHTTPError(shared.HTTPStatus(err), err.Error()).WithInternal(err)
	}

	return c.JSON(http.StatusOK, tree)
}
