package services

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gosimple/slug"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/forshine-dev/shinebuilder/accesscontrol"
	"github.com/forshine-dev/shinebuilder/database/models"
	"github.com/forshine-dev/shinebuilder/dtos"
	"github.com/forshine-dev/shinebuilder/shared"
	"github.com/forshine-dev/shinebuilder/statemachine"
)

type lifecycleService struct {
	assetRepository    shared.AssetRepository
	auditLogRepository shared.AuditLogRepository
	identifierService  shared.IdentifierService
	classifier         shared.Classifier
}

func NewLifecycleService(assetRepository shared.AssetRepository, auditLogRepository shared.AuditLogRepository, identifierService shared.IdentifierService, classifier shared.Classifier) *lifecycleService {
	return &lifecycleService{
		assetRepository:    assetRepository,
		auditLogRepository: auditLogRepository,
		identifierService:  identifierService,
		classifier:         classifier,
	}
}

// emitAudit writes a single audit entry. The audit sink is best effort: a
// failed write is logged and never aborts the operation that triggered it.
func (s *lifecycleService) emitAudit(action dtos.AuditAction, actor shared.Actor, detail, assetHumanID string) {
	entry := models.NewAuditLog(action, actor.ID, string(actor.Role), detail, assetHumanID)
	if err := s.auditLogRepository.Create(nil, &entry); err != nil {
		slog.Warn("could not write audit log entry", "action", action, "asset", assetHumanID, "err", err)
	}
}

func (s *lifecycleService) readAsset(humanID string) (models.Asset, error) {
	asset, err := s.assetRepository.ReadByHumanID(humanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return asset, shared.NewNotFoundError(fmt.Sprintf("asset %s does not exist", humanID))
		}
		return asset, shared.NewUpstreamError("could not fetch asset", err)
	}
	return asset, nil
}

func (s *lifecycleService) Create(actor shared.Actor, req dtos.AssetCreateRequest) (models.Asset, error) {
	if !accesscontrol.CanCurate(actor.Role) {
		return models.Asset{}, shared.NewAuthorizationError("guests cannot create assets")
	}
	if strings.TrimSpace(req.Title) == "" {
		return models.Asset{}, shared.NewValidationError("a title is required")
	}

	humanID, err := s.identifierService.Next(req.ContentType)
	if err != nil {
		return models.Asset{}, err
	}

	asset := models.Asset{
		HumanID:          humanID,
		Title:            req.Title,
		Slug:             slug.Make(req.Title),
		ContentType:      req.ContentType,
		PrimaryPillar:    req.PrimaryPillar,
		SecondaryPillars: pq.StringArray(req.SecondaryPillars),
		SubComponent:     req.SubComponent,
		Competence:       req.Competence,
		Behavior:         req.Behavior,
		MaturityLevel:    req.MaturityLevel,
		TargetRole:       req.TargetRole,
		Status:           dtos.AssetStatusDraft,
		IPOwner:          req.IPOwner,
		IPType:           req.IPType,
		Confidentiality:  req.Confidentiality,
		FileRef:          req.FileRef,
		Version:          req.Version,
		Observations:     req.Observations,
	}

	// Ask the AI collaborator for a proposal when the curator left the
	// classification empty. Never fatal - the asset just stays
	// unclassified in draft.
	if asset.PrimaryPillar == "" && s.classifier != nil {
		proposal, err := s.classifier.Classify(req.Title, req.Observations)
		if err != nil {
			slog.Warn("classification proposal failed", "asset", humanID, "err", err)
		} else if !proposal.Empty() {
			asset.PrimaryPillar = proposal.PrimaryPillar
			asset.SubComponent = proposal.SubComponent
			asset.Competence = proposal.Competence
			asset.Behavior = proposal.Behavior
			if asset.MaturityLevel == "" {
				asset.MaturityLevel = proposal.MaturityLevel
			}
		}
	}

	asset.SecondaryPillars = pq.StringArray(withoutPrimary(asset.SecondaryPillars, asset.PrimaryPillar))
	asset.Completeness = asset.ComputeCompleteness()

	if err := s.assetRepository.Create(nil, &asset); err != nil {
		return models.Asset{}, shared.NewUpstreamError("could not create asset", err)
	}

	s.emitAudit(dtos.AuditActionCreated, actor, fmt.Sprintf("created %q as %s", asset.Title, asset.HumanID), asset.HumanID)
	return asset, nil
}

func (s *lifecycleService) SubmitForReview(actor shared.Actor, humanID string) (models.Asset, error) {
	asset, err := s.readAsset(humanID)
	if err != nil {
		return models.Asset{}, err
	}

	if err := statemachine.GuardSubmit(actor.Role, asset); err != nil {
		return models.Asset{}, err
	}

	asset.Status = dtos.AssetStatusReview
	asset.Completeness = asset.ComputeCompleteness()
	if err := s.assetRepository.Save(nil, &asset); err != nil {
		return models.Asset{}, shared.NewUpstreamError("could not save asset", err)
	}

	s.emitAudit(dtos.AuditActionSubmittedForReview, actor, "submitted for review", asset.HumanID)
	return asset, nil
}

func (s *lifecycleService) Approve(actor shared.Actor, humanID string, req dtos.ApprovalRequest) (models.Asset, error) {
	asset, err := s.readAsset(humanID)
	if err != nil {
		return models.Asset{}, err
	}

	if err := statemachine.GuardApprove(actor.Role, asset, req.Checklist); err != nil {
		return models.Asset{}, err
	}

	// IP governance fields may be amended in the same write that
	// validates the asset.
	if req.IPAmendments.IPOwner != nil {
		asset.IPOwner = *req.IPAmendments.IPOwner
	}
	if req.IPAmendments.IPType != nil {
		asset.IPType = *req.IPAmendments.IPType
	}
	if req.IPAmendments.Confidentiality != nil {
		asset.Confidentiality = *req.IPAmendments.Confidentiality
	}

	asset.Status = dtos.AssetStatusValidated
	asset.Completeness = asset.ComputeCompleteness()
	if err := s.assetRepository.Save(nil, &asset); err != nil {
		return models.Asset{}, shared.NewUpstreamError("could not save asset", err)
	}

	s.emitAudit(dtos.AuditActionApproved, actor, "approved with complete checklist", asset.HumanID)
	return asset, nil
}

func (s *lifecycleService) Reject(actor shared.Actor, humanID string, reason string) (models.Asset, error) {
	asset, err := s.readAsset(humanID)
	if err != nil {
		return models.Asset{}, err
	}

	if err := statemachine.GuardReject(actor.Role, asset, reason); err != nil {
		return models.Asset{}, err
	}

	asset.Status = dtos.AssetStatusDraft
	asset.Completeness = asset.ComputeCompleteness()
	if err := s.assetRepository.Save(nil, &asset); err != nil {
		return models.Asset{}, shared.NewUpstreamError("could not save asset", err)
	}

	s.emitAudit(dtos.AuditActionRejected, actor, fmt.Sprintf("rejected: %s", strings.TrimSpace(reason)), asset.HumanID)
	return asset, nil
}

func (s *lifecycleService) Update(actor shared.Actor, humanID string, patch dtos.AssetPatchRequest) (models.Asset, error) {
	asset, err := s.readAsset(humanID)
	if err != nil {
		return models.Asset{}, err
	}

	override := asset.Status == dtos.AssetStatusValidated
	if override {
		if err := statemachine.GuardValidatedEdit(actor.Role, patch.OverrideReason); err != nil {
			return models.Asset{}, err
		}
	} else if !accesscontrol.CanCurate(actor.Role) {
		return models.Asset{}, shared.NewAuthorizationError("guests cannot edit assets")
	}

	if patch.Empty() {
		return models.Asset{}, shared.NewValidationError("nothing to update")
	}

	applyPatch(&asset, patch)
	asset.SecondaryPillars = pq.StringArray(withoutPrimary(asset.SecondaryPillars, asset.PrimaryPillar))
	asset.Completeness = asset.ComputeCompleteness()
	if err := s.assetRepository.Save(nil, &asset); err != nil {
		return models.Asset{}, shared.NewUpstreamError("could not save asset", err)
	}

	// An override edit is logged once, with its reason. Everything else
	// gets the generic update entry.
	if override {
		s.emitAudit(dtos.AuditActionValidatedOverride, actor, fmt.Sprintf("validated asset edited: %s", strings.TrimSpace(patch.OverrideReason)), asset.HumanID)
	} else {
		s.emitAudit(dtos.AuditActionUpdated, actor, "updated", asset.HumanID)
	}
	return asset, nil
}

func (s *lifecycleService) CompleteProcessing(humanID string, result dtos.ProcessingResultRequest) (models.Asset, error) {
	asset, err := s.readAsset(humanID)
	if err != nil {
		return models.Asset{}, err
	}

	if err := statemachine.GuardProcessingResult(asset); err != nil {
		return models.Asset{}, err
	}

	// system-initiated transition, no role check
	systemActor := shared.Actor{ID: "system", Role: "system"}
	if result.Success {
		asset.Status = dtos.AssetStatusValidated
	} else {
		asset.Status = dtos.AssetStatusError
	}
	asset.Completeness = asset.ComputeCompleteness()
	if err := s.assetRepository.Save(nil, &asset); err != nil {
		return models.Asset{}, shared.NewUpstreamError("could not save asset", err)
	}

	if result.Success {
		s.emitAudit(dtos.AuditActionProcessingCompleted, systemActor, result.Detail, asset.HumanID)
	} else {
		s.emitAudit(dtos.AuditActionProcessingFailed, systemActor, result.Detail, asset.HumanID)
	}
	return asset, nil
}

func (s *lifecycleService) Delete(actor shared.Actor, humanID string, reason string) error {
	asset, err := s.readAsset(humanID)
	if err != nil {
		return err
	}

	if !accesscontrol.CanDelete(actor.Role) {
		return shared.NewAuthorizationError("only admins and methodologists can delete assets")
	}

	if err := s.assetRepository.Delete(nil, asset.ID); err != nil {
		return shared.NewUpstreamError("could not delete asset", err)
	}

	s.emitAudit(dtos.AuditActionDeleted, actor, fmt.Sprintf("deleted %s: %s", asset.HumanID, reason), asset.HumanID)
	return nil
}

// withoutPrimary enforces the invariant that the secondary pillar set never
// contains the primary pillar.
func withoutPrimary(secondary []string, primary string) []string {
	if len(secondary) == 0 {
		return secondary
	}
	out := make([]string, 0, len(secondary))
	for _, pillar := range secondary {
		if !strings.EqualFold(strings.TrimSpace(pillar), strings.TrimSpace(primary)) {
			out = append(out, pillar)
		}
	}
	return out
}

func applyPatch(asset *models.Asset, patch dtos.AssetPatchRequest) {
	if patch.Title != nil {
		asset.Title = *patch.Title
		asset.Slug = slug.Make(*patch.Title)
	}
	if patch.PrimaryPillar != nil {
		asset.PrimaryPillar = *patch.PrimaryPillar
	}
	if patch.SecondaryPillars != nil {
		asset.SecondaryPillars = pq.StringArray(patch.SecondaryPillars)
	}
	if patch.SubComponent != nil {
		asset.SubComponent = *patch.SubComponent
	}
	if patch.Competence != nil {
		asset.Competence = *patch.Competence
	}
	if patch.Behavior != nil {
		asset.Behavior = *patch.Behavior
	}
	if patch.MaturityLevel != nil {
		asset.MaturityLevel = *patch.MaturityLevel
	}
	if patch.TargetRole != nil {
		asset.TargetRole = *patch.TargetRole
	}
	if patch.IPOwner != nil {
		asset.IPOwner = *patch.IPOwner
	}
	if patch.IPType != nil {
		asset.IPType = *patch.IPType
	}
	if patch.Confidentiality != nil {
		asset.Confidentiality = *patch.Confidentiality
	}
	if patch.FileRef != nil {
		asset.FileRef = patch.FileRef
	}
	if patch.Version != nil {
		asset.Version = *patch.Version
	}
	if patch.Observations != nil {
		asset.Observations = *patch.Observations
	}
}
