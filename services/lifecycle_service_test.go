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
package services

import (
	"testing"

	"github.com/forshine-dev/shinebuilder/database/models"
	"github.com/forshine-dev/shinebuilder/dtos"
	"github.com/forshine-dev/shinebuilder/mocks"
	"github.com/forshine-dev/shinebuilder/shared"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func curator() shared.Actor {
	return shared.Actor{ID: "user-1", Role: shared.RoleCurator}
}

func auditor() shared.Actor {
	return shared.Actor{ID: "user-2", Role: shared.RoleAuditor}
}

func TestCreate(t *testing.T) {
	t.Run("should allocate an identifier, persist the asset in draft and audit it", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)
		auditLogRepository := mocks.NewAuditLogRepository(t)
		identifierService := mocks.NewIdentifierService(t)

		identifierService.On("Next", dtos.ContentTypeDocument).Return("DOC-001", nil)
		assetRepository.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Asset) bool {
			return a.HumanID == "DOC-001" && a.Status == dtos.AssetStatusDraft
		})).Return(nil)
		auditLogRepository.On("Create", mock.Anything, mock.MatchedBy(func(e *models.AuditLog) bool {
			return e.Action == dtos.AuditActionCreated && *e.AssetHumanID == "DOC-001"
		})).Return(nil)

		service := NewLifecycleService(assetRepository, auditLogRepository, identifierService, nil)

		asset, err := service.Create(curator(), dtos.AssetCreateRequest{
			Title:         "Feedback conversations",
			ContentType:   dtos.ContentTypeDocument,
			PrimaryPillar: "Shine Out",
		})

		assert.NoError(t, err)
		assert.Equal(t, "DOC-001", asset.HumanID)
		assert.Equal(t, dtos.AssetStatusDraft, asset.Status)
		auditLogRepository.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("should reject a guest", func(t *testing.T) {
		service := NewLifecycleService(mocks.NewAssetRepository(t), mocks.NewAuditLogRepository(t), mocks.NewIdentifierService(t), nil)

		_, err := service.Create(shared.Actor{ID: "anon", Role: shared.RoleGuest}, dtos.AssetCreateRequest{Title: "x", ContentType: dtos.ContentTypeDocument})

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindAuthorization, shared.KindOf(err))
	})

	t.Run("should reject a missing title", func(t *testing.T) {
		service := NewLifecycleService(mocks.NewAssetRepository(t), mocks.NewAuditLogRepository(t), mocks.NewIdentifierService(t), nil)

		_, err := service.Create(curator(), dtos.AssetCreateRequest{Title: "   ", ContentType: dtos.ContentTypeDocument})

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindValidation, shared.KindOf(err))
	})

	t.Run("should not write an audit entry when the primary write fails", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)
		auditLogRepository := mocks.NewAuditLogRepository(t)
		identifierService := mocks.NewIdentifierService(t)

		identifierService.On("Next", dtos.ContentTypeVideo).Return("VID-007", nil)
		assetRepository.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		service := NewLifecycleService(assetRepository, auditLogRepository, identifierService, nil)

		_, err := service.Create(curator(), dtos.AssetCreateRequest{Title: "Intro video", ContentType: dtos.ContentTypeVideo})

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindUpstream, shared.KindOf(err))
		auditLogRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should swallow an audit sink failure", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)
		auditLogRepository := mocks.NewAuditLogRepository(t)
		identifierService := mocks.NewIdentifierService(t)

		identifierService.On("Next", dtos.ContentTypeDocument).Return("DOC-002", nil)
		assetRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		auditLogRepository.On("Create", mock.Anything, mock.Anything).Return(errors.New("audit sink down"))

		service := NewLifecycleService(assetRepository, auditLogRepository, identifierService, nil)

		_, err := service.Create(curator(), dtos.AssetCreateRequest{Title: "Coaching canvas", ContentType: dtos.ContentTypeDocument})

		assert.NoError(t, err)
	})

	t.Run("should take the classifier proposal when the curator left the classification empty", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)
		auditLogRepository := mocks.NewAuditLogRepository(t)
		identifierService := mocks.NewIdentifierService(t)
		classifier := mocks.NewClassifier(t)

		identifierService.On("Next", dtos.ContentTypeDocument).Return("DOC-003", nil)
		classifier.On("Classify", "Leading through change", mock.Anything).Return(dtos.ClassificationProposal{
			PrimaryPillar: "Shine Out",
			SubComponent:  "Influence",
			Competence:    "Change Leadership",
			Behavior:      "Communicates the why behind a change",
		}, nil)
		assetRepository.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Asset) bool {
			return a.PrimaryPillar == "Shine Out" && a.Behavior == "Communicates the why behind a change"
		})).Return(nil)
		auditLogRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		service := NewLifecycleService(assetRepository, auditLogRepository, identifierService, classifier)

		asset, err := service.Create(curator(), dtos.AssetCreateRequest{Title: "Leading through change", ContentType: dtos.ContentTypeDocument})

		assert.NoError(t, err)
		assert.Equal(t, "Shine Out", asset.PrimaryPillar)
	})

	t.Run("should keep the asset unclassified when the classifier fails", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)
		auditLogRepository := mocks.NewAuditLogRepository(t)
		identifierService := mocks.NewIdentifierService(t)
		classifier := mocks.NewClassifier(t)

		identifierService.On("Next", dtos.ContentTypeDocument).Return("DOC-004", nil)
		classifier.On("Classify", mock.Anything, mock.Anything).Return(dtos.ClassificationProposal{}, errors.New("model unavailable"))
		assetRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		auditLogRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		service := NewLifecycleService(assetRepository, auditLogRepository, identifierService, classifier)

		asset, err := service.Create(curator(), dtos.AssetCreateRequest{Title: "Untagged upload", ContentType: dtos.ContentTypeDocument})

		assert.NoError(t, err)
		assert.Empty(t, asset.PrimaryPillar)
		assert.Equal(t, dtos.AssetStatusDraft, asset.Status)
	})

	t.Run("should drop the primary pillar from the secondary set", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)
		auditLogRepository := mocks.NewAuditLogRepository(t)
		identifierService := mocks.NewIdentifierService(t)

		identifierService.On("Next", dtos.ContentTypeDocument).Return("DOC-005", nil)
		assetRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		auditLogRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		service := NewLifecycleService(assetRepository, auditLogRepository, identifierService, nil)

		asset, err := service.Create(curator(), dtos.AssetCreateRequest{
			Title:            "Pillar overlap",
			ContentType:      dtos.ContentTypeDocument,
			PrimaryPillar:    "Shine In",
			SecondaryPillars: []string{"Shine In", "Shine Out"},
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"Shine Out"}, []string(asset.SecondaryPillars))
	})
}

func TestApprove(t *testing.T) {
	t.Run("should validate the asset and audit exactly once", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)
		auditLogRepository := mocks.NewAuditLogRepository(t)

		assetRepository.On("ReadByHumanID", "DOC-001").Return(models.Asset{HumanID: "DOC-001", Title: "Feedback conversations", Status: dtos.AssetStatusReview}, nil)
		assetRepository.On("Save", mock.Anything, mock.MatchedBy(func(a *models.Asset) bool {
			return a.Status == dtos.AssetStatusValidated
		})).Return(nil)
		auditLogRepository.On("Create", mock.Anything, mock.MatchedBy(func(e *models.AuditLog) bool {
			return e.Action == dtos.AuditActionApproved && e.ActorID == "user-2"
		})).Return(nil)

		service := NewLifecycleService(assetRepository, auditLogRepository, mocks.NewIdentifierService(t), nil)

		asset, err := service.Approve(auditor(), "DOC-001", dtos.ApprovalRequest{Checklist: dtos.ApprovalChecklist{TechnicalQuality: true, MethodologicalCoherence: true, FileIntegrity: true}})

		assert.NoError(t, err)
		assert.Equal(t, dtos.AssetStatusValidated, asset.Status)
		auditLogRepository.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("should leave the status untouched when the checklist is incomplete", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)
		auditLogRepository := mocks.NewAuditLogRepository(t)

		assetRepository.On("ReadByHumanID", "DOC-001").Return(models.Asset{HumanID: "DOC-001", Status: dtos.AssetStatusReview}, nil)

		service := NewLifecycleService(assetRepository, auditLogRepository, mocks.NewIdentifierService(t), nil)

		_, err := service.Approve(auditor(), "DOC-001", dtos.ApprovalRequest{Checklist: dtos.ApprovalChecklist{TechnicalQuality: true}})

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindValidation, shared.KindOf(err))
		assetRepository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		auditLogRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should apply IP amendments in the same write", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)
		auditLogRepository := mocks.NewAuditLogRepository(t)

		assetRepository.On("ReadByHumanID", "DOC-001").Return(models.Asset{HumanID: "DOC-001", Status: dtos.AssetStatusReview}, nil)
		assetRepository.On("Save", mock.Anything, mock.MatchedBy(func(a *models.Asset) bool {
			return a.IPOwner == "Propio" && a.Confidentiality == "internal"
		})).Return(nil)
		auditLogRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		service := NewLifecycleService(assetRepository, auditLogRepository, mocks.NewIdentifierService(t), nil)

		owner := "Propio"
		confidentiality := "internal"
		_, err := service.Approve(auditor(), "DOC-001", dtos.ApprovalRequest{
			Checklist:    dtos.ApprovalChecklist{TechnicalQuality: true, MethodologicalCoherence: true, FileIntegrity: true},
			IPAmendments: dtos.IPAmendments{IPOwner: &owner, Confidentiality: &confidentiality},
		})

		assert.NoError(t, err)
	})

	t.Run("should map a missing asset to a not found error", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)

		assetRepository.On("ReadByHumanID", "DOC-999").Return(models.Asset{}, gorm.ErrRecordNotFound)

		service := NewLifecycleService(assetRepository, mocks.NewAuditLogRepository(t), mocks.NewIdentifierService(t), nil)

		_, err := service.Approve(auditor(), "DOC-999", dtos.ApprovalRequest{})

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindNotFound, shared.KindOf(err))
	})
}

func TestReject(t *testing.T) {
	t.Run("should persist the reason in the audit entry, not on the asset", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)
		auditLogRepository := mocks.NewAuditLogRepository(t)

		assetRepository.On("ReadByHumanID", "DOC-001").Return(models.Asset{HumanID: "DOC-001", Status: dtos.AssetStatusReview}, nil)
		assetRepository.On("Save", mock.Anything, mock.MatchedBy(func(a *models.Asset) bool {
			return a.Status == dtos.AssetStatusDraft
		})).Return(nil)
		auditLogRepository.On("Create", mock.Anything, mock.MatchedBy(func(e *models.AuditLog) bool {
			return e.Action == dtos.AuditActionRejected && e.Detail == "rejected: file is corrupted"
		})).Return(nil)

		service := NewLifecycleService(assetRepository, auditLogRepository, mocks.NewIdentifierService(t), nil)

		asset, err := service.Reject(auditor(), "DOC-001", "file is corrupted")

		assert.NoError(t, err)
		assert.Equal(t, dtos.AssetStatusDraft, asset.Status)
	})

	t.Run("should require a reason", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)

		assetRepository.On("ReadByHumanID", "DOC-001").Return(models.Asset{HumanID: "DOC-001", Status: dtos.AssetStatusReview}, nil)

		service := NewLifecycleService(assetRepository, mocks.NewAuditLogRepository(t), mocks.NewIdentifierService(t), nil)

		_, err := service.Reject(auditor(), "DOC-001", "")

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindValidation, shared.KindOf(err))
	})
}

func TestUpdate(t *testing.T) {
	title := "Renamed asset"

	t.Run("should audit a validated edit once with the override reason", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)
		auditLogRepository := mocks.NewAuditLogRepository(t)

		assetRepository.On("ReadByHumanID", "DOC-001").Return(models.Asset{HumanID: "DOC-001", Status: dtos.AssetStatusValidated}, nil)
		assetRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		auditLogRepository.On("Create", mock.Anything, mock.MatchedBy(func(e *models.AuditLog) bool {
			return e.Action == dtos.AuditActionValidatedOverride && e.Detail == "validated asset edited: legal requested a retitle"
		})).Return(nil)

		service := NewLifecycleService(assetRepository, auditLogRepository, mocks.NewIdentifierService(t), nil)

		asset, err := service.Update(shared.Actor{ID: "admin-1", Role: shared.RoleAdmin}, "DOC-001", dtos.AssetPatchRequest{
			Title:          &title,
			OverrideReason: "legal requested a retitle",
		})

		assert.NoError(t, err)
		assert.Equal(t, dtos.AssetStatusValidated, asset.Status)
		assert.Equal(t, title, asset.Title)
		auditLogRepository.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("should refuse a validated edit without an override reason", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)

		assetRepository.On("ReadByHumanID", "DOC-001").Return(models.Asset{HumanID: "DOC-001", Status: dtos.AssetStatusValidated}, nil)

		service := NewLifecycleService(assetRepository, mocks.NewAuditLogRepository(t), mocks.NewIdentifierService(t), nil)

		_, err := service.Update(shared.Actor{ID: "admin-1", Role: shared.RoleAdmin}, "DOC-001", dtos.AssetPatchRequest{Title: &title})

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindValidation, shared.KindOf(err))
		assetRepository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should refuse a validated edit by a non-admin", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)

		assetRepository.On("ReadByHumanID", "DOC-001").Return(models.Asset{HumanID: "DOC-001", Status: dtos.AssetStatusValidated}, nil)

		service := NewLifecycleService(assetRepository, mocks.NewAuditLogRepository(t), mocks.NewIdentifierService(t), nil)

		_, err := service.Update(auditor(), "DOC-001", dtos.AssetPatchRequest{Title: &title, OverrideReason: "still not allowed"})

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindAuthorization, shared.KindOf(err))
	})

	t.Run("should reject an empty patch", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)

		assetRepository.On("ReadByHumanID", "DOC-001").Return(models.Asset{HumanID: "DOC-001", Status: dtos.AssetStatusDraft}, nil)

		service := NewLifecycleService(assetRepository, mocks.NewAuditLogRepository(t), mocks.NewIdentifierService(t), nil)

		_, err := service.Update(curator(), "DOC-001", dtos.AssetPatchRequest{})

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindValidation, shared.KindOf(err))
	})

	t.Run("should recompute the completeness on every write", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)
		auditLogRepository := mocks.NewAuditLogRepository(t)

		assetRepository.On("ReadByHumanID", "DOC-001").Return(models.Asset{HumanID: "DOC-001", Status: dtos.AssetStatusDraft}, nil)
		assetRepository.On("Save", mock.Anything, mock.MatchedBy(func(a *models.Asset) bool {
			return a.Completeness == a.ComputeCompleteness()
		})).Return(nil)
		auditLogRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		service := NewLifecycleService(assetRepository, auditLogRepository, mocks.NewIdentifierService(t), nil)

		_, err := service.Update(curator(), "DOC-001", dtos.AssetPatchRequest{Title: &title})

		assert.NoError(t, err)
	})
}

func TestCompleteProcessing(t *testing.T) {
	t.Run("should validate the asset on success and attribute the event to the system", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)
		auditLogRepository := mocks.NewAuditLogRepository(t)

		assetRepository.On("ReadByHumanID", "VID-001").Return(models.Asset{HumanID: "VID-001", Status: dtos.AssetStatusProcessing}, nil)
		assetRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		auditLogRepository.On("Create", mock.Anything, mock.MatchedBy(func(e *models.AuditLog) bool {
			return e.Action == dtos.AuditActionProcessingCompleted && e.ActorID == "system"
		})).Return(nil)

		service := NewLifecycleService(assetRepository, auditLogRepository, mocks.NewIdentifierService(t), nil)

		asset, err := service.CompleteProcessing("VID-001", dtos.ProcessingResultRequest{Success: true, Detail: "transcoded"})

		assert.NoError(t, err)
		assert.Equal(t, dtos.AssetStatusValidated, asset.Status)
	})

	t.Run("should park the asset in error on failure", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)
		auditLogRepository := mocks.NewAuditLogRepository(t)

		assetRepository.On("ReadByHumanID", "VID-001").Return(models.Asset{HumanID: "VID-001", Status: dtos.AssetStatusProcessing}, nil)
		assetRepository.On("Save", mock.Anything, mock.Anything).Return(nil)
		auditLogRepository.On("Create", mock.Anything, mock.MatchedBy(func(e *models.AuditLog) bool {
			return e.Action == dtos.AuditActionProcessingFailed
		})).Return(nil)

		service := NewLifecycleService(assetRepository, auditLogRepository, mocks.NewIdentifierService(t), nil)

		asset, err := service.CompleteProcessing("VID-001", dtos.ProcessingResultRequest{Success: false, Detail: "codec unsupported"})

		assert.NoError(t, err)
		assert.Equal(t, dtos.AssetStatusError, asset.Status)
	})

	t.Run("should refuse a result for an asset that is not processing", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)

		assetRepository.On("ReadByHumanID", "DOC-001").Return(models.Asset{HumanID: "DOC-001", Status: dtos.AssetStatusValidated}, nil)

		service := NewLifecycleService(assetRepository, mocks.NewAuditLogRepository(t), mocks.NewIdentifierService(t), nil)

		_, err := service.CompleteProcessing("DOC-001", dtos.ProcessingResultRequest{Success: true})

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindValidation, shared.KindOf(err))
	})
}

func TestDelete(t *testing.T) {
	t.Run("should let a methodologist delete and audit it", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)
		auditLogRepository := mocks.NewAuditLogRepository(t)

		asset := models.Asset{HumanID: "DOC-001", Status: dtos.AssetStatusDraft}
		assetRepository.On("ReadByHumanID", "DOC-001").Return(asset, nil)
		assetRepository.On("Delete", mock.Anything, asset.ID).Return(nil)
		auditLogRepository.On("Create", mock.Anything, mock.MatchedBy(func(e *models.AuditLog) bool {
			return e.Action == dtos.AuditActionDeleted
		})).Return(nil)

		service := NewLifecycleService(assetRepository, auditLogRepository, mocks.NewIdentifierService(t), nil)

		err := service.Delete(shared.Actor{ID: "user-3", Role: shared.RoleMethodologist}, "DOC-001", "duplicate")

		assert.NoError(t, err)
	})

	t.Run("should refuse a curator", func(t *testing.T) {
		assetRepository := mocks.NewAssetRepository(t)

		assetRepository.On("ReadByHumanID", "DOC-001").Return(models.Asset{HumanID: "DOC-001"}, nil)

		service := NewLifecycleService(assetRepository, mocks.NewAuditLogRepository(t), mocks.NewIdentifierService(t), nil)

		err := service.Delete(curator(), "DOC-001", "nope")

		assert.Error(t, err)
		assert.Equal(t, shared.ErrorKindAuthorization, shared.KindOf(err))
	})
}
