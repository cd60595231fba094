package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forshine-dev/shinebuilder/database/models"
)

type auditLogRepository struct {
	*GormRepository[uuid.UUID, models.AuditLog]
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *auditLogRepository {
	return &auditLogRepository{
		GormRepository: newGormRepository[uuid.UUID, models.AuditLog](db),
		db:             db,
	}
}

func (r *auditLogRepository) GetByAssetHumanID(humanID string) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.Where("asset_human_id = ?", humanID).Order("created_at ASC").Find(&entries).Error
	return entries, err
}
