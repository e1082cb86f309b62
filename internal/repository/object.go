// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"strings"

	"astrofolio/internal/cache"
	"astrofolio/internal/models"

	"gorm.io/gorm"
)

// ObjectRepository defines the interface for astronomical object data operations
type ObjectRepository interface {
	Create(ctx context.Context, object *models.AstronomicalObject) error
	Update(ctx context.Context, object *models.AstronomicalObject) error
	GetByID(ctx context.Context, id uint) (*models.AstronomicalObject, error)
	ListByCatalog(ctx context.Context, catalogCode string, limit, offset int) ([]*models.AstronomicalObject, error)
	// FindAnchor locates the single object matched by a designation or
	// common-name query; returns gorm.ErrRecordNotFound when nothing matches.
	FindAnchor(ctx context.Context, query string) (*models.AstronomicalObject, error)
	// FindRelated returns every other object sharing at least one non-empty
	// alternate designation column with the anchor, ordered by catalog name.
	FindRelated(ctx context.Context, anchor *models.AstronomicalObject) ([]*models.AstronomicalObject, error)
}

// objectRepository implements ObjectRepository
type objectRepository struct {
	db *gorm.DB
}

// NewObjectRepository creates a new object repository
func NewObjectRepository(db *gorm.DB) ObjectRepository {
	return &objectRepository{db: db}
}

func (r *objectRepository) Create(ctx context.Context, object *models.AstronomicalObject) error {
	err := r.db.WithContext(ctx).Create(object).Error
	if err == nil {
		cache.InvalidateResolutions(ctx)
	}
	return err
}

func (r *objectRepository) Update(ctx context.Context, object *models.AstronomicalObject) error {
	if err := r.db.WithContext(ctx).Save(object).Error; err != nil {
		return err
	}
	cache.InvalidateObject(ctx, object.ID)
	return nil
}

func (r *objectRepository) GetByID(ctx context.Context, id uint) (*models.AstronomicalObject, error) {
	var object models.AstronomicalObject
	key := cache.ObjectKey(id)

	err := cache.Aside(ctx, key, &object, cache.ObjectTTL, func() error {
		return r.db.WithContext(ctx).Preload("Catalog").First(&object, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &object, nil
}

func (r *objectRepository) ListByCatalog(ctx context.Context, catalogCode string, limit, offset int) ([]*models.AstronomicalObject, error) {
	var objects []*models.AstronomicalObject
	err := r.db.WithContext(ctx).
		Preload("Catalog").
		Joins("JOIN catalogs ON catalogs.id = objects.catalog_id").
		Where("LOWER(catalogs.code) = ?", strings.ToLower(catalogCode)).
		Order("objects.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&objects).Error
	return objects, err
}

// FindAnchor matches the query against the primary designation, each of the
// five alternate designation columns (case-insensitive equality), or the
// common names (case-insensitive substring). Ties break on lowest id so the
// anchor is deterministic.
func (r *objectRepository) FindAnchor(ctx context.Context, query string) (*models.AstronomicalObject, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	like := "%" + q + "%"

	var object models.AstronomicalObject
	err := r.db.WithContext(ctx).
		Preload("Catalog").
		Where(
			"LOWER(designation) = ?"+
				" OR (messier_number <> '' AND LOWER(messier_number) = ?)"+
				" OR (ngc_number <> '' AND LOWER(ngc_number) = ?)"+
				" OR (ic_number <> '' AND LOWER(ic_number) = ?)"+
				" OR (caldwell_number <> '' AND LOWER(caldwell_number) = ?)"+
				" OR (sharpless_number <> '' AND LOWER(sharpless_number) = ?)"+
				" OR LOWER(common_names) LIKE ?",
			q, q, q, q, q, q, like,
		).
		Order("id ASC").
		First(&object).Error
	if err != nil {
		return nil, err
	}
	return &object, nil
}

// alternateColumns maps each alternate designation column to its value on the
// given object. Iteration order is fixed so generated SQL is stable.
var alternateColumns = []string{
	"messier_number",
	"ngc_number",
	"ic_number",
	"caldwell_number",
	"sharpless_number",
}

func alternateValue(o *models.AstronomicalObject, column string) string {
	switch column {
	case "messier_number":
		return o.MessierNumber
	case "ngc_number":
		return o.NGCNumber
	case "ic_number":
		return o.ICNumber
	case "caldwell_number":
		return o.CaldwellNumber
	case "sharpless_number":
		return o.SharplessNumber
	}
	return ""
}

// FindRelated relates rows per-column: two objects cross-reference only when
// the same alternate column is non-empty and equal on both sides. An anchor
// with no alternate designations has no relatives by definition.
func (r *objectRepository) FindRelated(ctx context.Context, anchor *models.AstronomicalObject) ([]*models.AstronomicalObject, error) {
	var conds []string
	var args []interface{}
	for _, col := range alternateColumns {
		val := alternateValue(anchor, col)
		if val == "" {
			continue
		}
		conds = append(conds, "("+col+" <> '' AND LOWER("+col+") = ?)")
		args = append(args, strings.ToLower(val))
	}
	if len(conds) == 0 {
		return nil, nil
	}

	var objects []*models.AstronomicalObject
	err := r.db.WithContext(ctx).
		Preload("Catalog").
		Joins("JOIN catalogs ON catalogs.id = objects.catalog_id").
		Where("objects.id <> ?", anchor.ID).
		Where(strings.Join(conds, " OR "), args...).
		Order("catalogs.name ASC, objects.id ASC").
		Find(&objects).Error
	if err != nil {
		return nil, err
	}
	return objects, nil
}
