package models

import (
	"github.com/forshine-dev/shinebuilder/dtos"
)

// AuditLog records one state-changing action on an asset. Rejection and
// override reasons live here, never on the asset itself.
type AuditLog struct {
	Model
	Action       dtos.AuditAction `json:"action" gorm:"type:text;not null;"`
	ActorID      string           `json:"actorId" gorm:"type:text;not null;"`
	ActorRole    string           `json:"actorRole" gorm:"type:text;"`
	Detail       string           `json:"detail" gorm:"type:text;"`
	AssetHumanID *string          `json:"assetHumanId" gorm:"type:text;index;"`
}

func (l AuditLog) TableName() string {
	return "audit_logs"
}

func NewAuditLog(action dtos.AuditAction, actorID, actorRole, detail string, assetHumanID string) AuditLog {
	log := AuditLog{
		Action:    action,
		ActorID:   actorID,
		ActorRole: actorRole,
		Detail:    detail,
	}
	if assetHumanID != "" {
		log.AssetHumanID = &assetHumanID
	}
	return log
}
