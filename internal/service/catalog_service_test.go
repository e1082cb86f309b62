package service

import (
	"context"
	"errors"
	"testing"

	"astrofolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCatalogService_ResolveCrossReferences_EmptyQuery(t *testing.T) {
	svc := NewCatalogService(noopCatalogRepo(), noopObjectRepo())

	for _, query := range []string{"", "   ", "\t"} {
		_, err := svc.ResolveCrossReferences(context.Background(), query)
		assertValidationError(t, err)
	}
}

func TestCatalogService_ResolveCrossReferences_NoMatch(t *testing.T) {
	objects := noopObjectRepo()
	objects.findAnchorFn = func(_ context.Context, query string) (*models.AstronomicalObject, error) {
		assert.Equal(t, "NGC 99999", query)
		return nil, gorm.ErrRecordNotFound
	}
	svc := NewCatalogService(noopCatalogRepo(), objects)

	result, err := svc.ResolveCrossReferences(context.Background(), "  NGC 99999  ")
	require.NoError(t, err)
	assert.Nil(t, result.MainObject)
	require.NotNil(t, result.CrossReferences)
	assert.Empty(t, result.CrossReferences)
}

func TestCatalogService_ResolveCrossReferences_Hit(t *testing.T) {
	anchor := &models.AstronomicalObject{ID: 1, Designation: "M31", NGCNumber: "NGC 224"}
	related := &models.AstronomicalObject{ID: 2, Designation: "NGC 224"}

	objects := noopObjectRepo()
	objects.findAnchorFn = func(_ context.Context, _ string) (*models.AstronomicalObject, error) {
		return anchor, nil
	}
	objects.findRelatedFn = func(_ context.Context, got *models.AstronomicalObject) ([]*models.AstronomicalObject, error) {
		assert.Equal(t, anchor.ID, got.ID)
		return []*models.AstronomicalObject{related}, nil
	}
	svc := NewCatalogService(noopCatalogRepo(), objects)

	result, err := svc.ResolveCrossReferences(context.Background(), "M31")
	require.NoError(t, err)
	require.NotNil(t, result.MainObject)
	assert.Equal(t, "M31", result.MainObject.Designation)
	require.Len(t, result.CrossReferences, 1)
	assert.Equal(t, "NGC 224", result.CrossReferences[0].Designation)
}

func TestCatalogService_ResolveCrossReferences_NilRelatedBecomesEmpty(t *testing.T) {
	objects := noopObjectRepo()
	objects.findAnchorFn = func(_ context.Context, _ string) (*models.AstronomicalObject, error) {
		return &models.AstronomicalObject{ID: 1, Designation: "M45"}, nil
	}
	objects.findRelatedFn = func(_ context.Context, _ *models.AstronomicalObject) ([]*models.AstronomicalObject, error) {
		return nil, nil
	}
	svc := NewCatalogService(noopCatalogRepo(), objects)

	result, err := svc.ResolveCrossReferences(context.Background(), "M45")
	require.NoError(t, err)
	require.NotNil(t, result.CrossReferences)
	assert.Empty(t, result.CrossReferences)
}

func TestCatalogService_ResolveCrossReferences_StorageError(t *testing.T) {
	objects := noopObjectRepo()
	objects.findAnchorFn = func(_ context.Context, _ string) (*models.AstronomicalObject, error) {
		return nil, errors.New("connection refused")
	}
	svc := NewCatalogService(noopCatalogRepo(), objects)

	_, err := svc.ResolveCrossReferences(context.Background(), "M31")
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORAGE_ERROR", appErr.Code)
}

func TestCatalogService_ListObjects_UnknownCatalog(t *testing.T) {
	catalogs := noopCatalogRepo()
	catalogs.getByCodeFn = func(_ context.Context, _ string) (*models.Catalog, error) {
		return nil, gorm.ErrRecordNotFound
	}
	svc := NewCatalogService(catalogs, noopObjectRepo())

	_, err := svc.ListObjects(context.Background(), "XYZ", 10, 0)
	assertNotFoundError(t, err)
}

func TestCatalogService_GetObject_NotFound(t *testing.T) {
	objects := noopObjectRepo()
	objects.getByIDFn = func(_ context.Context, _ uint) (*models.AstronomicalObject, error) {
		return nil, gorm.ErrRecordNotFound
	}
	svc := NewCatalogService(noopCatalogRepo(), objects)

	_, err := svc.GetObject(context.Background(), 42)
	assertNotFoundError(t, err)
}
