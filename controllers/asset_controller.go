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

package controllers

import (
	"net/http"

	"github.com/forshine-dev/shinebuilder/database/models"
	"github.com/forshine-dev/shinebuilder/dtos"
	"github.com/forshine-dev/shinebuilder/shared"
	"github.com/forshine-dev/shinebuilder/transformer"
	"github.com/labstack/echo/v4"
)

type AssetController struct {
	lifecycleService   shared.LifecycleService
	assetRepository    shared.AssetRepository
	auditLogRepository shared.AuditLogRepository
}

func NewAssetController(lifecycleService shared.LifecycleService, assetRepository shared.AssetRepository, auditLogRepository shared.AuditLogRepository) *AssetController {
	return &AssetController{lifecycleService: lifecycleService, assetRepository: assetRepository, auditLogRepository: auditLogRepository}
}

func (h *AssetController) List(c shared.Context) error {
	status := dtos.AssetStatus(c.QueryParam("status"))

	var assets []models.Asset
	var err error
	if status != "" {
		if !status.Valid() {
			return echo.NewHTTPError(400, "unknown status filter")
		}
		assets, err = h.assetRepository.GetByStatus(status)
	} else {
		assets, err = h.assetRepository.All()
	}
	if err != nil {
		return echo.NewHTTPError(500, "could not list assets").WithInternal(err)
	}

	return c.JSON(http.StatusOK, transformer.AssetsToDTOs(assets))
}

func (h *AssetController) Read(c shared.Context) error {
	humanID, err := shared.GetAssetHumanID(c)
	if err != nil {
		return err
	}

	asset, err := h.assetRepository.ReadByHumanID(humanID)
	if err != nil {
		return echo.NewHTTPError(404, "asset not found").WithInternal(err)
	}

	return c.JSON(http.StatusOK, transformer.AssetToDTO(asset))
}

func (h *AssetController) Create(c shared.Context) error {
	var req dtos.AssetCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	asset, err := h.lifecycleService.Create(shared.GetActor(c), req)
	if err != nil {
		return echo.NewHTTPError(shared.HTTPStatus(err), err.Error()).WithInternal(err)
	}

	return c.JSON(http.StatusCreated, transformer.AssetToDTO(asset))
}

func (h *AssetController) Patch(c shared.Context) error {
	humanID, err := shared.GetAssetHumanID(c)
	if err != nil {
		return err
	}

	var patch dtos.AssetPatchRequest
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	asset, err := h.lifecycleService.Update(shared.GetActor(c), humanID, patch)
	if err != nil {
		return echo.NewHTTPError(shared.HTTPStatus(err), err.Error()).WithInternal(err)
	}

	return c.JSON(http.StatusOK, transformer.AssetToDTO(asset))
}

func (h *AssetController) Submit(c shared.Context) error {
	humanID, err := shared.GetAssetHumanID(c)
	if err != nil {
		return err
	}

	asset, err := h.lifecycleService.SubmitForReview(shared.GetActor(c), humanID)
	if err != nil {
		return echo.NewHTTPError(shared.HTTPStatus(err), err.Error()).WithInternal(err)
	}

	return c.JSON(http.StatusOK, transformer.AssetToDTO(asset))
}

func (h *AssetController) Approve(c shared.Context) error {
	humanID, err := shared.GetAssetHumanID(c)
	if err != nil {
		return err
	}

	var req dtos.ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	asset, err := h.lifecycleService.Approve(shared.GetActor(c), humanID, req)
	if err != nil {
		return echo.NewHTTPError(shared.HTTPStatus(err), err.Error()).WithInternal(err)
	}

	return c.JSON(http.StatusOK, transformer.AssetToDTO(asset))
}

func (h *AssetController) Reject(c shared.Context) error {
	humanID, err := shared.GetAssetHumanID(c)
	if err != nil {
		return err
	}

	var req dtos.RejectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, "a rejection needs a reason").WithInternal(err)
	}

	asset, err := h.lifecycleService.Reject(shared.GetActor(c), humanID, req.Reason)
	if err != nil {
		return echo.NewHTTPError(shared.HTTPStatus(err), err.Error()).WithInternal(err)
	}

	return c.JSON(http.StatusOK, transformer.AssetToDTO(asset))
}

// ProcessingResult is reported by the media processing collaborator, not by
// a human - the session headers carry the pipeline identity.
func (h *AssetController) ProcessingResult(c shared.Context) error {
	humanID, err := shared.GetAssetHumanID(c)
	if err != nil {
		return err
	}

	var req dtos.ProcessingResultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	asset, err := h.lifecycleService.CompleteProcessing(humanID, req)
	if err != nil {
		return echo.NewHTTPError(shared.HTTPStatus(err), err.Error()).WithInternal(err)
	}

	return c.JSON(http.StatusOK, transformer.AssetToDTO(asset))
}

func (h *AssetController) Events(c shared.Context) error {
	humanID, err := shared.GetAssetHumanID(c)
	if err != nil {
		return err
	}

	// make sure the asset exists - an empty trail for a missing asset would
	// be indistinguishable from a fresh one
	if _, err := h.assetRepository.ReadByHumanID(humanID); err != nil {
		return echo.NewHTTPError(404, "asset not found").WithInternal(err)
	}

	entries, err := h.auditLogRepository.GetByAssetHumanID(humanID)
	if err != nil {
		return echo.NewHTTPError(500, "could not load audit trail").WithInternal(err)
	}

	return c.JSON(http.StatusOK, transformer.AuditLogsToDTOs(entries))
}

func (h *AssetController) Delete(c shared.Context) error {
	humanID, err := shared.GetAssetHumanID(c)
	if err != nil {
		return err
	}

	var req dtos.RejectRequest
	// the body is optional on delete; a missing reason is recorded as such
	_ = c.Bind(&req)

	if err := h.lifecycleService.Delete(shared.GetActor(c), humanID, req.Reason); err != nil {
		return echo.NewHTTPError(shared.HTTPStatus(err), err.Error()).WithInternal(err)
	}

	return c.NoContent(http.StatusNoContent)
}
