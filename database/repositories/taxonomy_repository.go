package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forshine-dev/shinebuilder/database/models"
)

type taxonomyRepository struct {
	*GormRepository[uuid.UUID, models.TaxonomyNode]
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) *taxonomyRepository {
	return &taxonomyRepository{
		GormRepository: newGormRepository[uuid.UUID, models.TaxonomyNode](db),
		db:             db,
	}
}

func (r *taxonomyRepository) All() ([]models.TaxonomyNode, error) {
	var nodes []models.TaxonomyNode
	err := r.db.Order("display_order ASC, name ASC").Find(&nodes).Error
	return nodes, err
}

func (r *taxonomyRepository) GetActiveNodes() ([]models.TaxonomyNode, error) {
	var nodes []models.TaxonomyNode
	err := r.db.Where("active = ?", true).Order("display_order ASC, name ASC").Find(&nodes).Error
	return nodes, err
}

func (r *taxonomyRepository) FindByParentAndName(tx *gorm.DB, parentID *uuid.UUID, name string) (models.TaxonomyNode, error) {
	var node models.TaxonomyNode
	query := r.GetDB(tx).Where("name = ?", name)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}
	err := query.First(&node).Error
	return node, err
}
