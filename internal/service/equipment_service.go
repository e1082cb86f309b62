package service

import (
	"context"
	"strings"

	"astrofolio/internal/models"
	"astrofolio/internal/repository"
)

const (
	defaultSuggestLimit = 10
	maxSuggestLimit     = 25
	minSuggestQueryLen  = 2
)

// EquipmentService serves equipment autocomplete suggestions.
type EquipmentService struct {
	equipmentRepo repository.EquipmentRepository
}

// NewEquipmentService returns a new EquipmentService.
func NewEquipmentService(equipmentRepo repository.EquipmentRepository) *EquipmentService {
	return &EquipmentService{equipmentRepo: equipmentRepo}
}

// Suggest returns equipment entries matching the query by name, brand or
// model. Queries shorter than two characters yield no suggestions.
func (s *EquipmentService) Suggest(ctx context.Context, equipmentType, query string, limit int) ([]*models.Equipment, error) {
	query = strings.TrimSpace(query)
	if len(query) < minSuggestQueryLen {
		return []*models.Equipment{}, nil
	}

	if limit <= 0 {
		limit = defaultSuggestLimit
	}
	if limit > maxSuggestLimit {
		limit = maxSuggestLimit
	}

	items, err := s.equipmentRepo.Suggest(ctx, equipmentType, query, limit)
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	if items == nil {
		items = []*models.Equipment{}
	}
	return items, nil
}
