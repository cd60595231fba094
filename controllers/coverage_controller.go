package controllers

import (
	"net/http"

	"github.com/forshine-dev/shinebuilder/export"
	"github.com/forshine-dev/shinebuilder/shared"
	"github.com/labstack/echo/v4"
)

type CoverageController struct {
	coverageService shared.CoverageService
}

func NewCoverageController(coverageService shared.CoverageService) *CoverageController {
	return &CoverageController{coverageService: coverageService}
}

func (h *CoverageController) Report(c shared.Context) error {
	report, err := h.coverageService.Report()
	if err != nil {
		return echo.NewHTTPError(shared.HTTPStatus(err), err.Error()).WithInternal(err)
	}

	return c.JSON(http.StatusOK, report)
}

// Export renders the coverage report in the format given by the ?format=
// query parameter. JSON is the default.
func (h *CoverageController) Export(c shared.Context) error {
	format := export.Format(c.QueryParam("format"))
	if format == "" {
		format = export.FormatJSON
	}

	info, ok := export.GetFormatInfo(format)
	if !ok {
		return echo.NewHTTPError(400, "unsupported export format")
	}

	report, err := h.coverageService.Report()
	if err != nil {
		return echo.NewHTTPError(shared.HTTPStatus(err), err.Error()).WithInternal(err)
	}

	rendered, err := export.Render(report, format)
	if err != nil {
		return echo.NewHTTPError(500, "could not render coverage report").WithInternal(err)
	}

	return c.Blob(http.StatusOK, info.MIMEType, rendered)
}
