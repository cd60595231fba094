package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forshine-dev/shinebuilder/database/models"
)

type releaseRepository struct {
	*GormRepository[uuid.UUID, models.Release]
}

func NewReleaseRepository(db *gorm.DB) *releaseRepository {
	return &releaseRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Release](db),
	}
}
