package seed

import (
	"context"
	"testing"

	"astrofolio/internal/database"
	"astrofolio/internal/models"
	"astrofolio/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(database.Models()...))
	return db
}

func TestRun_ReferenceDataOnly(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Run(db, Options{SkipGeneratedData: true}))

	var catalogCount, objectCount, equipmentCount, userCount int64
	require.NoError(t, db.Model(&models.Catalog{}).Count(&catalogCount).Error)
	require.NoError(t, db.Model(&models.AstronomicalObject{}).Count(&objectCount).Error)
	require.NoError(t, db.Model(&models.Equipment{}).Count(&equipmentCount).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)

	assert.Equal(t, int64(len(catalogPresets)), catalogCount)
	assert.Equal(t, int64(len(objectPresets)), objectCount)
	assert.NotZero(t, equipmentCount)
	assert.Zero(t, userCount)
}

func TestRun_SeededCrossReferencesResolve(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Run(db, Options{SkipGeneratedData: true}))

	repo := repository.NewObjectRepository(db)
	ctx := context.Background()

	anchor, err := repo.FindAnchor(ctx, "M31")
	require.NoError(t, err)
	assert.Equal(t, "M31", anchor.Designation)

	related, err := repo.FindRelated(ctx, anchor)
	require.NoError(t, err)
	require.NotEmpty(t, related)

	designations := make([]string, 0, len(related))
	for _, object := range related {
		designations = append(designations, object.Designation)
	}
	assert.Contains(t, designations, "NGC 224")
}

func TestRun_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Run(db, Options{SkipGeneratedData: true}))
	var firstObjects int64
	require.NoError(t, db.Model(&models.AstronomicalObject{}).Count(&firstObjects).Error)

	require.NoError(t, Run(db, Options{SkipGeneratedData: true}))
	var secondObjects, catalogs int64
	require.NoError(t, db.Model(&models.AstronomicalObject{}).Count(&secondObjects).Error)
	require.NoError(t, db.Model(&models.Catalog{}).Count(&catalogs).Error)

	assert.Equal(t, firstObjects, secondObjects)
	assert.Equal(t, int64(len(catalogPresets)), catalogs)
}

func TestRun_CatalogCountersMatch(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Run(db, Options{SkipGeneratedData: true}))

	var catalogs []models.Catalog
	require.NoError(t, db.Find(&catalogs).Error)
	for _, catalog := range catalogs {
		var count int64
		require.NoError(t, db.Model(&models.AstronomicalObject{}).
			Where("catalog_id = ?", catalog.ID).
			Count(&count).Error)
		assert.Equal(t, count, int64(catalog.TotalObjects), "catalog %s", catalog.Code)
	}
}

func TestRun_GeneratedData(t *testing.T) {
	db := setupTestDB(t)

	opts := Options{
		NumUsers:         3,
		ImagesPerUser:    2,
		CommentsPerImage: 2,
		LikeProbability:  1.0,
	}
	require.NoError(t, Run(db, opts))

	var users []models.User
	require.NoError(t, db.Order("id ASC").Find(&users).Error)
	require.Len(t, users, 3)
	assert.True(t, users[0].IsAdmin, "first seeded user is the demo admin")

	var imageCount int64
	require.NoError(t, db.Model(&models.Image{}).Count(&imageCount).Error)
	assert.Equal(t, int64(6), imageCount)

	// Every user likes every image they do not own.
	var images []models.Image
	require.NoError(t, db.Find(&images).Error)
	for _, image := range images {
		var likeCount int64
		require.NoError(t, db.Model(&models.Like{}).
			Where("image_id = ?", image.ID).
			Count(&likeCount).Error)
		assert.Equal(t, int64(2), likeCount, "image %d", image.ID)
		assert.Equal(t, 2, image.LikesCount, "image %d counter", image.ID)
	}

	var commentCount int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&commentCount).Error)
	assert.Equal(t, int64(12), commentCount)

	t.Run("clean wipes everything", func(t *testing.T) {
		require.NoError(t, Run(db, Options{ShouldClean: true, SkipGeneratedData: true}))
		var userCount int64
		require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
		assert.Zero(t, userCount)
	})
}
