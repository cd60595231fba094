package transformer

import (
	"github.com/forshine-dev/shinebuilder/database/models"
	"github.com/forshine-dev/shinebuilder/dtos"
)

func AuditLogToDTO(e models.AuditLog) dtos.AuditLogDTO {
	return dtos.AuditLogDTO{
		ID:           e.ID,
		Action:       e.Action,
		ActorID:      e.ActorID,
		ActorRole:    e.ActorRole,
		Detail:       e.Detail,
		AssetHumanID: e.AssetHumanID,
		CreatedAt:    e.CreatedAt,
	}
}

func AuditLogsToDTOs(entries []models.AuditLog) []dtos.AuditLogDTO {
	out := make([]dtos.AuditLogDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditLogToDTO(e))
	}
	return out
}
