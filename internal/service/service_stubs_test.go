package service

import (
	"context"
	"errors"
	"testing"

	"astrofolio/internal/models"
	"astrofolio/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// objectRepoStub is a stub for repository.ObjectRepository.
type objectRepoStub struct {
	createFn        func(context.Context, *models.AstronomicalObject) error
	updateFn        func(context.Context, *models.AstronomicalObject) error
	getByIDFn       func(context.Context, uint) (*models.AstronomicalObject, error)
	listByCatalogFn func(context.Context, string, int, int) ([]*models.AstronomicalObject, error)
	findAnchorFn    func(context.Context, string) (*models.AstronomicalObject, error)
	findRelatedFn   func(context.Context, *models.AstronomicalObject) ([]*models.AstronomicalObject, error)
}

func (s *objectRepoStub) Create(ctx context.Context, o *models.AstronomicalObject) error {
	return s.createFn(ctx, o)
}
func (s *objectRepoStub) Update(ctx context.Context, o *models.AstronomicalObject) error {
	return s.updateFn(ctx, o)
}
func (s *objectRepoStub) GetByID(ctx context.Context, id uint) (*models.AstronomicalObject, error) {
	return s.getByIDFn(ctx, id)
}
func (s *objectRepoStub) ListByCatalog(ctx context.Context, code string, limit, offset int) ([]*models.AstronomicalObject, error) {
	return s.listByCatalogFn(ctx, code, limit, offset)
}
func (s *objectRepoStub) FindAnchor(ctx context.Context, query string) (*models.AstronomicalObject, error) {
	return s.findAnchorFn(ctx, query)
}
func (s *objectRepoStub) FindRelated(ctx context.Context, anchor *models.AstronomicalObject) ([]*models.AstronomicalObject, error) {
	return s.findRelatedFn(ctx, anchor)
}

func noopObjectRepo() *objectRepoStub {
	return &objectRepoStub{
		createFn:  func(_ context.Context, _ *models.AstronomicalObject) error { return nil },
		updateFn:  func(_ context.Context, _ *models.AstronomicalObject) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.AstronomicalObject, error) { return &models.AstronomicalObject{}, nil },
		listByCatalogFn: func(_ context.Context, _ string, _, _ int) ([]*models.AstronomicalObject, error) {
			return nil, nil
		},
		findAnchorFn: func(_ context.Context, _ string) (*models.AstronomicalObject, error) {
			return nil, errors.New("findAnchorFn not set")
		},
		findRelatedFn: func(_ context.Context, _ *models.AstronomicalObject) ([]*models.AstronomicalObject, error) {
			return nil, nil
		},
	}
}

// catalogRepoStub is a stub for repository.CatalogRepository.
type catalogRepoStub struct {
	createFn    func(context.Context, *models.Catalog) error
	listFn      func(context.Context) ([]*models.Catalog, error)
	getByCodeFn func(context.Context, string) (*models.Catalog, error)
}

func (s *catalogRepoStub) Create(ctx context.Context, c *models.Catalog) error { return s.createFn(ctx, c) }
func (s *catalogRepoStub) List(ctx context.Context) ([]*models.Catalog, error) { return s.listFn(ctx) }
func (s *catalogRepoStub) GetByCode(ctx context.Context, code string) (*models.Catalog, error) {
	return s.getByCodeFn(ctx, code)
}

func noopCatalogRepo() *catalogRepoStub {
	return &catalogRepoStub{
		createFn:    func(_ context.Context, _ *models.Catalog) error { return nil },
		listFn:      func(_ context.Context) ([]*models.Catalog, error) { return nil, nil },
		getByCodeFn: func(_ context.Context, _ string) (*models.Catalog, error) { return &models.Catalog{}, nil },
	}
}

// imageRepoStub is a stub for repository.ImageRepository.
type imageRepoStub struct {
	createFn         func(context.Context, *models.Image) error
	getByIDFn        func(context.Context, uint, uint) (*models.Image, error)
	searchFn         func(context.Context, repository.ImageFilters, string, int, int, uint) ([]*models.Image, error)
	countFn          func(context.Context, repository.ImageFilters) (int64, error)
	updateFn         func(context.Context, *models.Image) error
	deleteFn         func(context.Context, uint) error
	toggleLikeFn     func(context.Context, uint, uint) (bool, error)
	isLikedFn        func(context.Context, uint, uint) (bool, error)
	incrementViewsFn func(context.Context, uint) error
}

func (s *imageRepoStub) Create(ctx context.Context, image *models.Image) error {
	return s.createFn(ctx, image)
}
func (s *imageRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Image, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *imageRepoStub) Search(ctx context.Context, filters repository.ImageFilters, sort string, limit, offset int, currentUserID uint) ([]*models.Image, error) {
	return s.searchFn(ctx, filters, sort, limit, offset, currentUserID)
}
func (s *imageRepoStub) Count(ctx context.Context, filters repository.ImageFilters) (int64, error) {
	return s.countFn(ctx, filters)
}
func (s *imageRepoStub) Update(ctx context.Context, image *models.Image) error {
	return s.updateFn(ctx, image)
}
func (s *imageRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }
func (s *imageRepoStub) ToggleLike(ctx context.Context, userID, imageID uint) (bool, error) {
	return s.toggleLikeFn(ctx, userID, imageID)
}
func (s *imageRepoStub) IsLiked(ctx context.Context, userID, imageID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, imageID)
}
func (s *imageRepoStub) IncrementViews(ctx context.Context, id uint) error {
	return s.incrementViewsFn(ctx, id)
}

func noopImageRepo() *imageRepoStub {
	return &imageRepoStub{
		createFn:  func(_ context.Context, _ *models.Image) error { return nil },
		getByIDFn: func(_ context.Context, _, _ uint) (*models.Image, error) { return &models.Image{}, nil },
		searchFn: func(_ context.Context, _ repository.ImageFilters, _ string, _, _ int, _ uint) ([]*models.Image, error) {
			return nil, nil
		},
		countFn:          func(_ context.Context, _ repository.ImageFilters) (int64, error) { return 0, nil },
		updateFn:         func(_ context.Context, _ *models.Image) error { return nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
		toggleLikeFn:     func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		isLikedFn:        func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		incrementViewsFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn       func(context.Context, *models.Comment) error
	getByIDFn      func(context.Context, uint) (*models.Comment, error)
	listByImageFn  func(context.Context, uint, models.CommentStatus) ([]*models.Comment, error)
	updateFn       func(context.Context, *models.Comment) error
	updateStatusFn func(context.Context, uint, models.CommentStatus) error
	deleteFn       func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByImage(ctx context.Context, imageID uint, status models.CommentStatus) ([]*models.Comment, error) {
	return s.listByImageFn(ctx, imageID, status)
}
func (s *commentRepoStub) Update(ctx context.Context, c *models.Comment) error {
	return s.updateFn(ctx, c)
}
func (s *commentRepoStub) UpdateStatus(ctx context.Context, id uint, status models.CommentStatus) error {
	return s.updateStatusFn(ctx, id, status)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:  func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByImageFn: func(_ context.Context, _ uint, _ models.CommentStatus) ([]*models.Comment, error) {
			return nil, nil
		},
		updateFn:       func(_ context.Context, _ *models.Comment) error { return nil },
		updateStatusFn: func(_ context.Context, _ uint, _ models.CommentStatus) error { return nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, u *models.User) error { return s.createFn(ctx, u) }
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
	}
}

// equipmentRepoStub is a stub for repository.EquipmentRepository.
type equipmentRepoStub struct {
	createFn  func(context.Context, *models.Equipment) error
	suggestFn func(context.Context, string, string, int) ([]*models.Equipment, error)
}

func (s *equipmentRepoStub) Create(ctx context.Context, e *models.Equipment) error {
	return s.createFn(ctx, e)
}
func (s *equipmentRepoStub) Suggest(ctx context.Context, equipmentType, query string, limit int) ([]*models.Equipment, error) {
	return s.suggestFn(ctx, equipmentType, query, limit)
}

func noopEquipmentRepo() *equipmentRepoStub {
	return &equipmentRepoStub{
		createFn: func(_ context.Context, _ *models.Equipment) error { return nil },
		suggestFn: func(_ context.Context, _, _ string, _ int) ([]*models.Equipment, error) {
			return nil, nil
		},
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// assertUnauthorizedError asserts that err is an AppError with code UNAUTHORIZED.
func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

// assertNotFoundError asserts that err is an AppError with code NOT_FOUND.
func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
