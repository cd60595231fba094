package dtos

import (
	"time"

	"github.com/google/uuid"
)

type AuditAction string

const (
	// Manual actions (triggered by a curator, auditor or admin)
	AuditActionCreated            AuditAction = "created"
	AuditActionSubmittedForReview AuditAction = "submittedForReview"
	AuditActionApproved           AuditAction = "approved"
	AuditActionRejected           AuditAction = "rejected"
	AuditActionUpdated            AuditAction = "updated"
	AuditActionValidatedOverride  AuditAction = "validatedOverride"
	AuditActionDeleted            AuditAction = "deleted"

	// System actions (reported by the media processing collaborator)
	AuditActionProcessingCompleted AuditAction = "processingCompleted"
	AuditActionProcessingFailed    AuditAction = "processingFailed"
)

type AuditLogDTO struct {
	ID           uuid.UUID   `json:"id"`
	Action       AuditAction `json:"action"`
	ActorID      string      `json:"actorId"`
	ActorRole    string      `json:"actorRole"`
	Detail       string      `json:"detail"`
	AssetHumanID *string     `json:"assetHumanId,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}
