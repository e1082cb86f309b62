// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"
	"errors"
	"strings"

	"astrofolio/internal/cache"
	"astrofolio/internal/models"
	"astrofolio/internal/observability"
	"astrofolio/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// CatalogService answers catalog and cross-reference queries.
type CatalogService struct {
	catalogRepo repository.CatalogRepository
	objectRepo  repository.ObjectRepository
}

// NewCatalogService returns a new CatalogService.
func NewCatalogService(catalogRepo repository.CatalogRepository, objectRepo repository.ObjectRepository) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		objectRepo:  objectRepo,
	}
}

// ListCatalogs returns every catalog ordered by name.
func (s *CatalogService) ListCatalogs(ctx context.Context) ([]*models.Catalog, error) {
	return s.catalogRepo.List(ctx)
}

// ListObjects returns a page of objects belonging to the catalog with the
// given code. An unknown code is a not-found error, not an empty page.
func (s *CatalogService) ListObjects(ctx context.Context, catalogCode string, limit, offset int) ([]*models.AstronomicalObject, error) {
	if _, err := s.catalogRepo.GetByCode(ctx, catalogCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Catalog", catalogCode)
		}
		return nil, err
	}
	return s.objectRepo.ListByCatalog(ctx, catalogCode, limit, offset)
}

// GetObject returns a single object by id.
func (s *CatalogService) GetObject(ctx context.Context, id uint) (*models.AstronomicalObject, error) {
	object, err := s.objectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Object", id)
		}
		return nil, err
	}
	return object, nil
}

// ResolveCrossReferences finds the anchor object for a designation or common
// name and every other row sharing one of its alternate designations. A query
// that matches nothing yields an empty result, not an error; only storage
// failures are surfaced as errors.
func (s *CatalogService) ResolveCrossReferences(ctx context.Context, query string) (*models.CrossReference, error) {
	span, ctx := observability.NewSpan(ctx, "catalog.resolve_cross_references")
	defer span.End()

	q := strings.TrimSpace(query)
	if q == "" {
		return nil, models.NewValidationError("Query is required")
	}
	span.AddAttributes(attribute.String("resolver.query", q))

	var result models.CrossReference
	err := cache.Aside(ctx, cache.ResolveKey(q), &result, cache.ResolveTTL, func() error {
		anchor, err := s.objectRepo.FindAnchor(ctx, q)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result = models.CrossReference{CrossReferences: []*models.AstronomicalObject{}}
				return nil
			}
			return err
		}

		related, err := s.objectRepo.FindRelated(ctx, anchor)
		if err != nil {
			return err
		}
		if related == nil {
			related = []*models.AstronomicalObject{}
		}
		result = models.CrossReference{MainObject: anchor, CrossReferences: related}
		return nil
	})
	if err != nil {
		span.SetError(err)
		return nil, models.NewStorageError(err)
	}

	if result.MainObject == nil {
		observability.CrossReferenceLookups.WithLabelValues("miss").Inc()
	} else {
		observability.CrossReferenceLookups.WithLabelValues("hit").Inc()
	}

	return &result, nil
}
