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
package statemachine

import (
	"testing"

	"github.com/forshine-dev/shinebuilder/database/models"
	"github.com/forshine-dev/shinebuilder/dtos"
	"github.com/forshine-dev/shinebuilder/shared"
	"github.com/stretchr/testify/assert"
)

func completeChecklist() dtos.ApprovalChecklist {
	return dtos.ApprovalChecklist{
		TechnicalQuality:        true,
		MethodologicalCoherence: true,
		FileIntegrity:           true,
	}
}

func assetInReview() models.Asset {
	return models.Asset{HumanID: "DOC-001", Status: dtos.AssetStatusReview}
}

func TestCanTransition(t *testing.T) {
	t.Run("should allow draft to review", func(t *testing.T) {
		assert.True(t, CanTransition(dtos.AssetStatusDraft, dtos.AssetStatusReview))
	})

	t.Run("should allow review to validated and back to draft", func(t *testing.T) {
		assert.True(t, CanTransition(dtos.AssetStatusReview, dtos.AssetStatusValidated))
		assert.True(t, CanTransition(dtos.AssetStatusReview, dtos.AssetStatusDraft))
	})

	t.Run("should allow processing to validated and error", func(t *testing.T) {
		assert.True(t, CanTransition(dtos.AssetStatusProcessing, dtos.AssetStatusValidated))
		assert.True(t, CanTransition(dtos.AssetStatusProcessing, dtos.AssetStatusError))
	})

	t.Run("should not allow draft to validated directly", func(t *testing.T) {
		assert.False(t, CanTransition(dtos.AssetStatusDraft, dtos.AssetStatusValidated))
	})

	t.Run("should not allow any transition out of validated", func(t *testing.T) {
		for _, to := range []dtos.AssetStatus{dtos.AssetStatusDraft, dtos.AssetStatusReview, dtos.AssetStatusProcessing, dtos.AssetStatusError} {
			assert.False(t, CanTransition(dtos.AssetStatusValidated, to))
		}
	})
}

func TestGuardApprove(t *testing.T) {
	t.Run("should reject a curator even with a complete checklist", func(t *testing.T) {
		err := GuardApprove(shared.RoleCurator, assetInReview(), completeChecklist())

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindAuthorization, shared.KindOf(err))
	})

	t.Run("should allow an auditor with a complete checklist", func(t *testing.T) {
		assert.NoError(t, GuardApprove(shared.RoleAuditor, assetInReview(), completeChecklist()))
	})

	t.Run("should allow an admin with a complete checklist", func(t *testing.T) {
		assert.NoError(t, GuardApprove(shared.RoleAdmin, assetInReview(), completeChecklist()))
	})

	t.Run("should reject an incomplete checklist with a human readable reason", func(t *testing.T) {
		checklist := completeChecklist()
		checklist.FileIntegrity = false

		err := GuardApprove(shared.RoleAuditor, assetInReview(), checklist)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindValidation, shared.KindOf(err))
		assert.Contains(t, err.Error(), "checklist")
	})

	t.Run("should reject an asset that is not in review", func(t *testing.T) {
		asset := assetInReview()
		asset.Status = dtos.AssetStatusDraft

		err := GuardApprove(shared.RoleAuditor, asset, completeChecklist())

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindValidation, shared.KindOf(err))
	})

	t.Run("should reject third-party content without licensing language", func(t *testing.T) {
		asset := assetInReview()
		asset.IPOwner = dtos.IPOwnerThirdParty
		asset.Observations = "contenido del socio externo"

		err := GuardApprove(shared.RoleAuditor, asset, completeChecklist())

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindValidation, shared.KindOf(err))
	})

	t.Run("should approve third-party content once the observations carry licensing language", func(t *testing.T) {
		asset := assetInReview()
		asset.IPOwner = dtos.IPOwnerThirdParty
		asset.Observations = "Uso autorizado por el socio hasta 2027."

		assert.NoError(t, GuardApprove(shared.RoleAuditor, asset, completeChecklist()))
	})

	t.Run("should not require licensing language for own content", func(t *testing.T) {
		asset := assetInReview()
		asset.IPOwner = "Propio"

		assert.NoError(t, GuardApprove(shared.RoleAuditor, asset, completeChecklist()))
	})
}

func TestHasLicenseText(t *testing.T) {
	t.Run("should match the markers case insensitively in both languages", func(t *testing.T) {
		assert.True(t, HasLicenseText("LICENCIA perpetua"))
		assert.True(t, HasLicenseText("derechos de uso autorizado"))
		assert.True(t, HasLicenseText("License granted by the partner"))
		assert.True(t, HasLicenseText("con permiso escrito"))
	})

	t.Run("should not match unrelated text", func(t *testing.T) {
		assert.False(t, HasLicenseText("material de un tercero, pendiente"))
		assert.False(t, HasLicenseText(""))
	})
}

func TestGuardReject(t *testing.T) {
	t.Run("should require a reason", func(t *testing.T) {
		err := GuardReject(shared.RoleAuditor, assetInReview(), "   ")

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindValidation, shared.KindOf(err))
	})

	t.Run("should reject a curator", func(t *testing.T) {
		err := GuardReject(shared.RoleCurator, assetInReview(), "missing file")

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindAuthorization, shared.KindOf(err))
	})

	t.Run("should allow an auditor with a reason", func(t *testing.T) {
		assert.NoError(t, GuardReject(shared.RoleAuditor, assetInReview(), "missing file"))
	})
}

func TestGuardSubmit(t *testing.T) {
	t.Run("should reject a guest", func(t *testing.T) {
		err := GuardSubmit(shared.RoleGuest, models.Asset{Status: dtos.AssetStatusDraft})

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindAuthorization, shared.KindOf(err))
	})

	t.Run("should allow a curator to submit a draft", func(t *testing.T) {
		assert.NoError(t, GuardSubmit(shared.RoleCurator, models.Asset{Status: dtos.AssetStatusDraft}))
	})

	t.Run("should reject submitting an asset that is already in review", func(t *testing.T) {
		err := GuardSubmit(shared.RoleCurator, models.Asset{Status: dtos.AssetStatusReview})

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindValidation, shared.KindOf(err))
	})
}

func TestGuardValidatedEdit(t *testing.T) {
	t.Run("should reject non-admins regardless of reason", func(t *testing.T) {
		for _, role := range []shared.Role{shared.RoleAuditor, shared.RoleMethodologist, shared.RoleCurator, shared.RoleGuest} {
			err := GuardValidatedEdit(role, "typo in title")
			assert.Error(t, err)
			assert.Equal(t, shared.ErrorKindAuthorization, shared.KindOf(err))
		}
	})

	t.Run("should reject an admin without an override reason", func(t *testing.T) {
		err := GuardValidatedEdit(shared.RoleAdmin, "")

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindValidation, shared.KindOf(err))
	})

	t.Run("should allow an admin with an override reason", func(t *testing.T) {
		assert.NoError(t, GuardValidatedEdit(shared.RoleAdmin, "typo in title"))
	})
}

func TestGuardProcessingResult(t *testing.T) {
	t.Run("should only accept results for assets in processing", func(t *testing.T) {
		assert.NoError(t, GuardProcessingResult(models.Asset{Status: dtos.AssetStatusProcessing}))

		err := GuardProcessingResult(models.Asset{Status: dtos.AssetStatusDraft})
		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindValidation, shared.KindOf(err))
	})
}

func TestApply(t *testing.T) {
	t.Run("should replay state changing events onto the asset", func(t *testing.T) {
		asset := models.Asset{Status: dtos.AssetStatusDraft}

		Apply(&asset, models.AuditLog{Action: dtos.AuditActionSubmittedForReview})
		assert.Equal(t, dtos.AssetStatusReview, asset.Status)

		Apply(&asset, models.AuditLog{Action: dtos.AuditActionApproved})
		assert.Equal(t, dtos.AssetStatusValidated, asset.Status)
	})

	t.Run("should leave the status untouched for non state changing events", func(t *testing.T) {
		asset := models.Asset{Status: dtos.AssetStatusValidated}

		Apply(&asset, models.AuditLog{Action: dtos.AuditActionValidatedOverride})
		assert.Equal(t, dtos.AssetStatusValidated, asset.Status)

		Apply(&asset, models.AuditLog{Action: dtos.AuditActionUpdated})
		assert.Equal(t, dtos.AssetStatusValidated, asset.Status)
	})
}
