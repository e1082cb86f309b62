package repository

import (
	"context"
	"strings"

	"astrofolio/internal/cache"
	"astrofolio/internal/models"

	"gorm.io/gorm"
)

// CatalogRepository defines the interface for catalog data operations
type CatalogRepository interface {
	Create(ctx context.Context, catalog *models.Catalog) error
	List(ctx context.Context) ([]*models.Catalog, error)
	GetByCode(ctx context.Context, code string) (*models.Catalog, error)
}

// catalogRepository implements CatalogRepository
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) Create(ctx context.Context, catalog *models.Catalog) error {
	err := r.db.WithContext(ctx).Create(catalog).Error
	if err == nil {
		cache.Invalidate(ctx, cache.CatalogsKey)
	}
	return err
}

func (r *catalogRepository) List(ctx context.Context) ([]*models.Catalog, error) {
	var catalogs []*models.Catalog
	err := cache.Aside(ctx, cache.CatalogsKey, &catalogs, cache.CatalogTTL, func() error {
		return r.db.WithContext(ctx).Order("name ASC").Find(&catalogs).Error
	})
	return catalogs, err
}

func (r *catalogRepository) GetByCode(ctx context.Context, code string) (*models.Catalog, error) {
	var catalog models.Catalog
	err := r.db.WithContext(ctx).
		Where("LOWER(code) = ?", strings.ToLower(code)).
		First(&catalog).Error
	if err != nil {
		return nil, err
	}
	return &catalog, nil
}
