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
	"fmt"
	"strings"

	"github.com/forshine-dev/shinebuilder/accesscontrol"
	"github.com/forshine-dev/shinebuilder/database/models"
	"github.com/forshine-dev/shinebuilder/dtos"
	"github.com/forshine-dev/shinebuilder/shared"
)

// transitions is the full transition table over asset statuses. The
// validated->anything path is intentionally absent here: edits of a
// validated asset go through the admin override guard instead.
var transitions = map[dtos.AssetStatus][]dtos.AssetStatus{
	dtos.AssetStatusDraft:      {dtos.AssetStatusReview},
	dtos.AssetStatusReview:     {dtos.AssetStatusValidated, dtos.AssetStatusDraft},
	dtos.AssetStatusProcessing: {dtos.AssetStatusValidated, dtos.AssetStatusError},
}

func CanTransition(from, to dtos.AssetStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// licenseMarkers are the substrings that count as licensing language inside
// the observations field. Case-insensitive; the curators write Spanish or
// English.
var licenseMarkers = []string{"licencia", "license", "uso autorizado", "permiso"}

func HasLicenseText(observations string) bool {
	lower := strings.ToLower(observations)
	for _, marker := range licenseMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// GuardSubmit checks the draft->review transition. Any authenticated
// curator may submit.
func GuardSubmit(role shared.Role, asset models.Asset) error {
	if !accesscontrol.CanCurate(role) {
		return shared.NewAuthorizationError("guests cannot submit assets for review")
	}
	if !CanTransition(asset.Status, dtos.AssetStatusReview) {
		return shared.NewValidationError(fmt.Sprintf("asset %s cannot be submitted for review from status %q", asset.HumanID, asset.Status))
	}
	return nil
}

// GuardApprove checks the review->validated transition: auditor or admin,
// the full three-item checklist, and licensing language in the observations
// when the intellectual property belongs to a third party.
func GuardApprove(role shared.Role, asset models.Asset, checklist dtos.ApprovalChecklist) error {
	if !accesscontrol.CanApprove(role) {
		return shared.NewAuthorizationError(fmt.Sprintf("role %q is not allowed to approve assets, auditor or admin required", role))
	}
	if !CanTransition(asset.Status, dtos.AssetStatusValidated) {
		return shared.NewValidationError(fmt.Sprintf("asset %s is in status %q, only assets in review can be approved", asset.HumanID, asset.Status))
	}
	if !checklist.Complete() {
		return shared.NewValidationError("approval checklist incomplete: technical quality, methodological coherence and file integrity must all be confirmed")
	}
	if asset.IPOwner == dtos.IPOwnerThirdParty && !HasLicenseText(asset.Observations) {
		return shared.NewValidationError("third-party content requires licensing language in the observations field before approval")
	}
	return nil
}

// GuardReject checks the review->draft transition. The reason is mandatory;
// it is persisted as an audit entry, not on the asset.
func GuardReject(role shared.Role, asset models.Asset, reason string) error {
	if !accesscontrol.CanReject(role) {
		return shared.NewAuthorizationError(fmt.Sprintf("role %q is not allowed to reject assets, auditor or admin required", role))
	}
	if !CanTransition(asset.Status, dtos.AssetStatusDraft) {
		return shared.NewValidationError(fmt.Sprintf("asset %s is in status %q, only assets in review can be rejected", asset.HumanID, asset.Status))
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewValidationError("a rejection reason is required")
	}
	return nil
}

// GuardValidatedEdit checks any write to an asset that already reached
// validated. Non-admins are rejected outright; admins need a documented
// override reason.
func GuardValidatedEdit(role shared.Role, overrideReason string) error {
	if !accesscontrol.CanEditValidated(role) {
		return shared.NewAuthorizationError("validated assets can only be edited by an admin")
	}
	if strings.TrimSpace(overrideReason) == "" {
		return shared.NewValidationError("editing a validated asset requires an override reason")
	}
	return nil
}

// GuardProcessingResult checks the system transitions out of processing.
// They are reported by the media processing collaborator; no role check.
func GuardProcessingResult(asset models.Asset) error {
	if asset.Status != dtos.AssetStatusProcessing {
		return shared.NewValidationError(fmt.Sprintf("asset %s is in status %q, no processing result expected", asset.HumanID, asset.Status))
	}
	return nil
}

// ActionToStatus maps a state-changing audit action to the status it leaves
// the asset in.
func ActionToStatus(action dtos.AuditAction) (dtos.AssetStatus, error) {
	switch action {
	case dtos.AuditActionCreated:
		return dtos.AssetStatusDraft, nil
	case dtos.AuditActionSubmittedForReview:
		return dtos.AssetStatusReview, nil
	case dtos.AuditActionApproved:
		return dtos.AssetStatusValidated, nil
	case dtos.AuditActionRejected:
		return dtos.AssetStatusDraft, nil
	case dtos.AuditActionProcessingCompleted:
		return dtos.AssetStatusValidated, nil
	case dtos.AuditActionProcessingFailed:
		return dtos.AssetStatusError, nil
	default:
		return "", fmt.Errorf("action %s does not map to a status", action)
	}
}

// Apply replays an audit event onto the asset state. Non-state-changing
// actions (updated, validatedOverride) leave the status untouched.
func Apply(asset *models.Asset, event models.AuditLog) {
	status, err := ActionToStatus(event.Action)
	if err != nil {
		return
	}
	asset.Status = status
}
