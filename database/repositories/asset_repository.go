package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forshine-dev/shinebuilder/database/models"
	"github.com/forshine-dev/shinebuilder/dtos"
)

type assetRepository struct {
	*GormRepository[uuid.UUID, models.Asset]
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *assetRepository {
	return &assetRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Asset](db),
		db:             db,
	}
}

func (r *assetRepository) ReadByHumanID(humanID string) (models.Asset, error) {
	var asset models.Asset
	err := r.db.First(&asset, "human_id = ?", humanID).Error
	return asset, err
}

func (r *assetRepository) GetByStatus(status dtos.AssetStatus) ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.Where("status = ?", status).Order("human_id ASC").Find(&assets).Error
	return assets, err
}

func (r *assetRepository) All() ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.Order("human_id ASC").Find(&assets).Error
	return assets, err
}
