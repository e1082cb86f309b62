package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"astrofolio/internal/middleware"
	"astrofolio/internal/models"
	"astrofolio/internal/observability"
	"astrofolio/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// ImageService handles image submission, search and like operations.
type ImageService struct {
	imageRepo  repository.ImageRepository
	objectRepo repository.ObjectRepository
	userRepo   repository.UserRepository
}

// NewImageService returns a new ImageService.
func NewImageService(imageRepo repository.ImageRepository, objectRepo repository.ObjectRepository, userRepo repository.UserRepository) *ImageService {
	return &ImageService{
		imageRepo:  imageRepo,
		objectRepo: objectRepo,
		userRepo:   userRepo,
	}
}

// CreateImageInput carries the fields accepted when submitting an image.
type CreateImageInput struct {
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	ImageURL     string             `json:"image_url"`
	ThumbnailURL string             `json:"thumbnail_url"`
	ObjectID     *uint              `json:"object_id"`
	Status       models.ImageStatus `json:"status"`

	AcquisitionDate   *time.Time `json:"acquisition_date"`
	Location          string     `json:"location"`
	Latitude          float64    `json:"latitude"`
	Longitude         float64    `json:"longitude"`
	Telescope         string     `json:"telescope"`
	TelescopeType     string     `json:"telescope_type"`
	ApertureMM        float64    `json:"aperture_mm"`
	FocalLengthMM     float64    `json:"focal_length_mm"`
	CameraName        string     `json:"camera_name"`
	CameraType        string     `json:"camera_type"`
	Mount             string     `json:"mount"`
	Filters           string     `json:"filters"`
	TotalExposureTime int        `json:"total_exposure_time"`
	Binning           string     `json:"binning"`
	TemperatureC      float64    `json:"temperature_c"`
	ProcessingNotes   string     `json:"processing_notes"`
}

// CreateImage validates and persists a new image owned by userID.
func (s *ImageService) CreateImage(ctx context.Context, userID uint, input CreateImageInput) (*models.Image, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, models.NewValidationError("Image URL is required")
	}
	if input.TotalExposureTime < 0 {
		return nil, models.NewValidationError("Total exposure time must not be negative")
	}

	status := input.Status
	if status == "" {
		status = models.ImageStatusDraft
	}
	if !models.ValidImageStatus(status) {
		return nil, models.NewValidationError(fmt.Sprintf("Invalid status %q", input.Status))
	}

	if input.ObjectID != nil {
		if _, err := s.objectRepo.GetByID(ctx, *input.ObjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewNotFoundError("Object", *input.ObjectID)
			}
			return nil, models.NewStorageError(err)
		}
	}

	image := &models.Image{
		UserID:            userID,
		ObjectID:          input.ObjectID,
		Title:             strings.TrimSpace(input.Title),
		Description:       input.Description,
		ImageURL:          input.ImageURL,
		ThumbnailURL:      input.ThumbnailURL,
		AcquisitionDate:   input.AcquisitionDate,
		Location:          input.Location,
		Latitude:          input.Latitude,
		Longitude:         input.Longitude,
		Telescope:         input.Telescope,
		TelescopeType:     input.TelescopeType,
		ApertureMM:        input.ApertureMM,
		FocalLengthMM:     input.FocalLengthMM,
		CameraName:        input.CameraName,
		CameraType:        input.CameraType,
		Mount:             input.Mount,
		Filters:           input.Filters,
		TotalExposureTime: input.TotalExposureTime,
		Binning:           input.Binning,
		TemperatureC:      input.TemperatureC,
		ProcessingNotes:   input.ProcessingNotes,
		Status:            status,
	}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		return nil, models.NewStorageError(err)
	}
	return s.GetImage(ctx, image.ID, userID)
}

// GetImage returns a single image with the liked flag resolved for
// currentUserID (0 for anonymous).
func (s *ImageService) GetImage(ctx context.Context, id uint, currentUserID uint) (*models.Image, error) {
	image, err := s.imageRepo.GetByID(ctx, id, currentUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Image", id)
		}
		return nil, models.NewStorageError(err)
	}
	return image, nil
}

// ViewImage returns the image and bumps its view counter. Counter failures
// are logged but never fail the read.
func (s *ImageService) ViewImage(ctx context.Context, id uint, currentUserID uint) (*models.Image, error) {
	image, err := s.GetImage(ctx, id, currentUserID)
	if err != nil {
		return nil, err
	}
	if err := s.imageRepo.IncrementViews(ctx, id); err != nil {
		middleware.Logger.Warn("failed to increment views", "image_id", id, "error", err)
	} else {
		image.ViewsCount++
	}
	return image, nil
}

// SearchImagesInput bundles the validated filters plus paging for a search.
type SearchImagesInput struct {
	Filters       repository.ImageFilters
	Sort          string
	Limit         int
	Offset        int
	CurrentUserID uint
}

// SearchResult pairs one page of images with the total match count for the
// same filters, so clients can page consistently.
type SearchResult struct {
	Images []*models.Image `json:"images"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// SearchImages runs the filtered, ranked image search. All filters are ANDed;
// the page size is clamped to maxSearchLimit.
func (s *ImageService) SearchImages(ctx context.Context, input SearchImagesInput) (*SearchResult, error) {
	span, ctx := observability.NewSpan(ctx, "image.search")
	defer span.End()
	start := time.Now()

	if input.Filters.Status != "" && !models.ValidImageStatus(input.Filters.Status) {
		return nil, models.NewValidationError(fmt.Sprintf("Invalid status %q", input.Filters.Status))
	}
	if input.Filters.MinExposure != nil && *input.Filters.MinExposure < 0 {
		return nil, models.NewValidationError("min_exposure must not be negative")
	}
	if input.Filters.MinExposure != nil && input.Filters.MaxExposure != nil &&
		*input.Filters.MinExposure > *input.Filters.MaxExposure {
		return nil, models.NewValidationError("min_exposure must not exceed max_exposure")
	}
	if input.Filters.DateFrom != nil && input.Filters.DateTo != nil &&
		input.Filters.DateFrom.After(*input.Filters.DateTo) {
		return nil, models.NewValidationError("date_from must not be after date_to")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}
	span.AddAttributes(
		attribute.Int("search.limit", limit),
		attribute.Int("search.offset", offset),
		attribute.String("search.sort", input.Sort),
	)

	images, err := s.imageRepo.Search(ctx, input.Filters, input.Sort, limit, offset, input.CurrentUserID)
	if err != nil {
		span.SetError(err)
		return nil, models.NewStorageError(err)
	}
	total, err := s.imageRepo.Count(ctx, input.Filters)
	if err != nil {
		span.SetError(err)
		return nil, models.NewStorageError(err)
	}

	observability.SearchLatency.Observe(time.Since(start).Seconds())
	if images == nil {
		images = []*models.Image{}
	}
	return &SearchResult{Images: images, Total: total, Limit: limit, Offset: offset}, nil
}

// UpdateImageInput carries the mutable image fields. Pointer fields are only
// applied when present in the request body.
type UpdateImageInput struct {
	Title           *string             `json:"title"`
	Description     *string             `json:"description"`
	ThumbnailURL    *string             `json:"thumbnail_url"`
	ObjectID        *uint               `json:"object_id"`
	Status          *models.ImageStatus `json:"status"`
	Featured        *bool               `json:"featured"`
	Telescope       *string             `json:"telescope"`
	TelescopeType   *string             `json:"telescope_type"`
	CameraName      *string             `json:"camera_name"`
	CameraType      *string             `json:"camera_type"`
	Mount           *string             `json:"mount"`
	Filters         *string             `json:"filters"`
	ProcessingNotes *string             `json:"processing_notes"`
}

// UpdateImage applies the provided fields. Only the owner or an admin may
// update; only admins may change the featured flag.
func (s *ImageService) UpdateImage(ctx context.Context, userID, imageID uint, input UpdateImageInput) (*models.Image, error) {
	image, err := s.imageRepo.GetByID(ctx, imageID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Image", imageID)
		}
		return nil, models.NewStorageError(err)
	}

	admin := s.isAdmin(ctx, userID)
	if image.UserID != userID && !admin {
		return nil, models.NewUnauthorizedError("You can only update your own images")
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, models.NewValidationError("Title is required")
		}
		image.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		image.Description = *input.Description
	}
	if input.ThumbnailURL != nil {
		image.ThumbnailURL = *input.ThumbnailURL
	}
	if input.ObjectID != nil {
		if _, err := s.objectRepo.GetByID(ctx, *input.ObjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewNotFoundError("Object", *input.ObjectID)
			}
			return nil, models.NewStorageError(err)
		}
		image.ObjectID = input.ObjectID
	}
	if input.Status != nil {
		if !models.ValidImageStatus(*input.Status) {
			return nil, models.NewValidationError(fmt.Sprintf("Invalid status %q", *input.Status))
		}
		image.Status = *input.Status
	}
	if input.Featured != nil {
		if !admin {
			return nil, models.NewUnauthorizedError("Only admins can feature images")
		}
		image.Featured = *input.Featured
	}
	if input.Telescope != nil {
		image.Telescope = *input.Telescope
	}
	if input.TelescopeType != nil {
		image.TelescopeType = *input.TelescopeType
	}
	if input.CameraName != nil {
		image.CameraName = *input.CameraName
	}
	if input.CameraType != nil {
		image.CameraType = *input.CameraType
	}
	if input.Mount != nil {
		image.Mount = *input.Mount
	}
	if input.Filters != nil {
		image.Filters = *input.Filters
	}
	if input.ProcessingNotes != nil {
		image.ProcessingNotes = *input.ProcessingNotes
	}

	if err := s.imageRepo.Update(ctx, image); err != nil {
		return nil, models.NewStorageError(err)
	}
	return s.GetImage(ctx, imageID, userID)
}

// DeleteImage removes an image and its likes and comments. Owner or admin only.
func (s *ImageService) DeleteImage(ctx context.Context, userID, imageID uint) error {
	image, err := s.imageRepo.GetByID(ctx, imageID, 0)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Image", imageID)
		}
		return models.NewStorageError(err)
	}
	if image.UserID != userID && !s.isAdmin(ctx, userID) {
		return models.NewUnauthorizedError("You can only delete your own images")
	}
	if err := s.imageRepo.Delete(ctx, imageID); err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

// LikeState is the outcome of a toggle: the resulting state and the counter
// read back after the transaction committed.
type LikeState struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// ToggleLike flips userID's like on imageID and returns the resulting state.
// Repeated calls alternate; concurrent duplicates collapse to one state change.
func (s *ImageService) ToggleLike(ctx context.Context, userID, imageID uint) (*LikeState, error) {
	span, ctx := observability.NewSpan(ctx, "image.toggle_like")
	defer span.End()

	if _, err := s.imageRepo.GetByID(ctx, imageID, 0); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Image", imageID)
		}
		return nil, models.NewStorageError(err)
	}

	liked, err := s.imageRepo.ToggleLike(ctx, userID, imageID)
	if err != nil {
		span.SetError(err)
		return nil, models.NewStorageError(err)
	}

	state := "unliked"
	if liked {
		state = "liked"
	}
	observability.LikeToggles.WithLabelValues(state).Inc()

	image, err := s.imageRepo.GetByID(ctx, imageID, 0)
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return &LikeState{Liked: liked, LikesCount: image.LikesCount}, nil
}

func (s *ImageService) isAdmin(ctx context.Context, userID uint) bool {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false
	}
	return user.IsAdmin
}
