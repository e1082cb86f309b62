package repository

import (
	"context"
	"strings"
	"time"

	"astrofolio/internal/cache"
	"astrofolio/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sort orders supported by image listings.
const (
	SortPopular = "popular" // likes_count DESC, created_at DESC
	SortRecent  = "recent"  // created_at DESC
)

// ImageFilters is the conjunction of optional constraints applied to image
// search. Zero values mean "no constraint on this dimension"; pointer fields
// distinguish "absent" from a legitimate zero.
type ImageFilters struct {
	Status        models.ImageStatus
	Search        string
	Object        string
	ObjectType    string
	Catalog       string
	Constellation string
	Telescope     string
	TelescopeType string
	Camera        string
	CameraType    string
	MinExposure   *int
	MaxExposure   *int
	MinAperture   *float64
	DateFrom      *time.Time
	DateTo        *time.Time
	Featured      *bool
}

// ImageRepository defines the interface for image data operations
type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Image, error)
	Search(ctx context.Context, filters ImageFilters, sort string, limit, offset int, currentUserID uint) ([]*models.Image, error)
	Count(ctx context.Context, filters ImageFilters) (int64, error)
	Update(ctx context.Context, image *models.Image) error
	Delete(ctx context.Context, id uint) error
	ToggleLike(ctx context.Context, userID, imageID uint) (bool, error)
	IsLiked(ctx context.Context, userID, imageID uint) (bool, error)
	IncrementViews(ctx context.Context, id uint) error
}

// imageRepository implements ImageRepository
type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new image repository
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *imageRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Image, error) {
	var image models.Image
	err := r.applyImageDetails(r.db.WithContext(ctx).Model(&models.Image{}), currentUserID).
		Preload("User").
		Preload("Object").
		Preload("Object.Catalog").
		First(&image, "images.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// applyFilters appends the WHERE clauses and joins for the given filters.
// Object and catalog joins are always present; search/object filters reach
// across them and LEFT JOIN keeps unlinked images visible.
func (r *imageRepository) applyFilters(db *gorm.DB, f ImageFilters) *gorm.DB {
	db = db.
		Joins("LEFT JOIN objects ON objects.id = images.object_id").
		Joins("LEFT JOIN catalogs ON catalogs.id = objects.catalog_id")

	if f.Status != "" {
		db = db.Where("images.status = ?", f.Status)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		db = db.Where(
			"LOWER(images.title) LIKE ? OR LOWER(images.description) LIKE ?"+
				" OR LOWER(objects.designation) LIKE ? OR LOWER(objects.common_names) LIKE ?",
			like, like, like, like,
		)
	}
	if f.Object != "" {
		db = db.Where("LOWER(objects.designation) = ?", strings.ToLower(f.Object))
	}
	if f.ObjectType != "" {
		db = db.Where("LOWER(objects.object_type) = ?", strings.ToLower(f.ObjectType))
	}
	if f.Catalog != "" {
		name := strings.ToLower(f.Catalog)
		db = db.Where("LOWER(catalogs.name) = ? OR LOWER(catalogs.code) = ?", name, name)
	}
	if f.Constellation != "" {
		db = db.Where("LOWER(objects.constellation) = ?", strings.ToLower(f.Constellation))
	}
	if f.Telescope != "" {
		db = db.Where("LOWER(images.telescope) LIKE ?", "%"+strings.ToLower(f.Telescope)+"%")
	}
	if f.TelescopeType != "" {
		db = db.Where("LOWER(images.telescope_type) = ?", strings.ToLower(f.TelescopeType))
	}
	if f.Camera != "" {
		db = db.Where("LOWER(images.camera_name) LIKE ?", "%"+strings.ToLower(f.Camera)+"%")
	}
	if f.CameraType != "" {
		db = db.Where("LOWER(images.camera_type) = ?", strings.ToLower(f.CameraType))
	}
	if f.MinExposure != nil {
		db = db.Where("images.total_exposure_time >= ?", *f.MinExposure)
	}
	if f.MaxExposure != nil {
		db = db.Where("images.total_exposure_time <= ?", *f.MaxExposure)
	}
	if f.MinAperture != nil {
		db = db.Where("images.aperture_mm >= ?", *f.MinAperture)
	}
	if f.DateFrom != nil {
		db = db.Where("images.acquisition_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		db = db.Where("images.acquisition_date <= ?", *f.DateTo)
	}
	if f.Featured != nil {
		db = db.Where("images.featured = ?", *f.Featured)
	}

	return db
}

// applyImageDetails adds the liked flag for the requesting user in a single query.
func (r *imageRepository) applyImageDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	if currentUserID != 0 {
		return db.Select("images.*, EXISTS(SELECT 1 FROM likes WHERE likes.image_id = images.id AND likes.user_id = ?) as liked", currentUserID)
	}
	return db.Select("images.*")
}

func (r *imageRepository) applySort(db *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case SortRecent:
		return db.Order("images.created_at DESC, images.id DESC")
	default: // SortPopular and anything unrecognized
		return db.Order("images.likes_count DESC, images.created_at DESC, images.id DESC")
	}
}

func (r *imageRepository) Search(ctx context.Context, filters ImageFilters, sort string, limit, offset int, currentUserID uint) ([]*models.Image, error) {
	var images []*models.Image
	base := r.applyImageDetails(
		r.applyFilters(r.db.WithContext(ctx).Model(&models.Image{}), filters),
		currentUserID,
	).
		Preload("User").
		Preload("Object").
		Preload("Object.Catalog")
	err := r.applySort(base, sort).
		Limit(limit).
		Offset(offset).
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepository) Count(ctx context.Context, filters ImageFilters) (int64, error) {
	var count int64
	err := r.applyFilters(r.db.WithContext(ctx).Model(&models.Image{}), filters).
		Count(&count).Error
	return count, err
}

func (r *imageRepository) Update(ctx context.Context, image *models.Image) error {
	if err := r.db.WithContext(ctx).Save(image).Error; err != nil {
		return err
	}
	cache.InvalidateImage(ctx, image.ID)
	return nil
}

// Delete removes the image along with its likes and comments.
func (r *imageRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("image_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("image_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Image{}, id).Error
	})
	if err == nil {
		cache.InvalidateImage(ctx, id)
	}
	return err
}

// ToggleLike flips the (userID, imageID) like state and keeps the
// denormalized counter in step, all inside one transaction. The unique index
// on (user_id, image_id) makes the insert race-free: ON CONFLICT DO NOTHING
// reports zero rows affected when another request got there first, and the
// counter is only touched when a row was actually inserted or deleted.
func (r *imageRepository) ToggleLike(ctx context.Context, userID, imageID uint) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "image_id"}},
			DoNothing: true,
		}).Create(&models.Like{UserID: userID, ImageID: imageID})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 1 {
			liked = true
			return tx.Model(&models.Image{}).
				Where("id = ?", imageID).
				Update("likes_count", gorm.Expr("likes_count + 1")).Error
		}

		// Row already existed: this toggle is an unlike.
		del := tx.Where("user_id = ? AND image_id = ?", userID, imageID).Delete(&models.Like{})
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected == 1 {
			return tx.Model(&models.Image{}).
				Where("id = ? AND likes_count > 0", imageID).
				Update("likes_count", gorm.Expr("likes_count - 1")).Error
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	cache.InvalidateImage(ctx, imageID)
	return liked, nil
}

func (r *imageRepository) IsLiked(ctx context.Context, userID, imageID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND image_id = ?", userID, imageID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// IncrementViews bumps the view counter in a single UPDATE. Best-effort:
// lost increments under failure are acceptable for this counter.
func (r *imageRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Image{}).
		Where("id = ?", id).
		Update("views_count", gorm.Expr("views_count + 1")).Error
}
