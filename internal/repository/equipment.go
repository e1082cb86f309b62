package repository

import (
	"context"
	"strings"

	"astrofolio/internal/models"

	"gorm.io/gorm"
)

// EquipmentRepository defines the interface for equipment reference data.
// The table only backs autocomplete; images never reference it by key.
type EquipmentRepository interface {
	Create(ctx context.Context, equipment *models.Equipment) error
	Suggest(ctx context.Context, equipmentType, query string, limit int) ([]*models.Equipment, error)
}

// equipmentRepository implements EquipmentRepository
type equipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *gorm.DB) EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, equipment *models.Equipment) error {
	return r.db.WithContext(ctx).Create(equipment).Error
}

func (r *equipmentRepository) Suggest(ctx context.Context, equipmentType, query string, limit int) ([]*models.Equipment, error) {
	like := "%" + strings.ToLower(query) + "%"
	q := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(model) LIKE ?", like, like, like)
	if equipmentType != "" {
		q = q.Where("LOWER(type) = ?", strings.ToLower(equipmentType))
	}

	var items []*models.Equipment
	err := q.Order("name ASC").Limit(limit).Find(&items).Error
	return items, err
}
