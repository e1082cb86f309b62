// Package seed provides helpers to create demo and test data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"astrofolio/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	telescopeChoices = []struct {
		Name          string
		Type          string
		ApertureMM    float64
		FocalLengthMM float64
	}{
		{"Sky-Watcher Esprit 100ED", "refractor", 100, 550},
		{"William Optics RedCat 51", "refractor", 51, 250},
		{"Celestron EdgeHD 8", "sct", 203, 2032},
		{"Takahashi FSQ-106EDX4", "refractor", 106, 530},
		{"Sky-Watcher 200P", "newtonian", 200, 1000},
	}

	cameraChoices = []struct {
		Name string
		Type string
	}{
		{"ZWO ASI2600MC Pro", "cmos"},
		{"ZWO ASI1600MM Pro", "cmos"},
		{"Canon EOS Ra", "dslr"},
		{"Nikon D810A", "dslr"},
	}

	mountChoices  = []string{"Sky-Watcher EQ6-R Pro", "iOptron CEM40", "Celestron CGX", "Rainbow Astro RST-135"}
	filterChoices = []string{"Optolong L-eXtreme", "Astronomik Ha 6nm", "Baader UV/IR Cut", "RGB filter set"}
	binningValues = []string{"1x1", "2x2"}
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:        gofakeit.Email(),
		PasswordHash: string(hash),
		DisplayName:  gofakeit.Name(),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildImage constructs a realistic image for the given user and object but
// does not persist it. Useful for batching.
func (f *Factory) BuildImage(user *models.User, object *models.AstronomicalObject, overrides ...func(*models.Image)) *models.Image {
	telescope := telescopeChoices[f.rng.Intn(len(telescopeChoices))]
	camera := cameraChoices[f.rng.Intn(len(cameraChoices))]

	acquired := time.Now().Add(-time.Duration(f.rng.Intn(365*24)) * time.Hour)
	image := &models.Image{
		UserID:            user.ID,
		Title:             gofakeit.Sentence(4),
		Description:       gofakeit.Paragraph(1, 3, 8, "\n"),
		ImageURL:          fmt.Sprintf("https://picsum.photos/seed/%s/1600/1200", gofakeit.UUID()),
		ThumbnailURL:      fmt.Sprintf("https://picsum.photos/seed/%s/400/300", gofakeit.UUID()),
		AcquisitionDate:   &acquired,
		Location:          gofakeit.City(),
		Latitude:          gofakeit.Latitude(),
		Longitude:         gofakeit.Longitude(),
		Telescope:         telescope.Name,
		TelescopeType:     telescope.Type,
		ApertureMM:        telescope.ApertureMM,
		FocalLengthMM:     telescope.FocalLengthMM,
		CameraName:        camera.Name,
		CameraType:        camera.Type,
		Mount:             mountChoices[f.rng.Intn(len(mountChoices))],
		Filters:           filterChoices[f.rng.Intn(len(filterChoices))],
		TotalExposureTime: (f.rng.Intn(40) + 1) * 600,
		Binning:           binningValues[f.rng.Intn(len(binningValues))],
		TemperatureC:      float64(f.rng.Intn(30) - 15),
		ProcessingNotes:   gofakeit.Sentence(10),
		Status:            models.ImageStatusPublished,
	}
	if object != nil {
		image.ObjectID = &object.ID
		image.Title = fmt.Sprintf("%s in %s", firstCommonName(object), object.Constellation)
	}

	for _, override := range overrides {
		override(image)
	}
	return image
}

// CreateImage builds and persists one image.
func (f *Factory) CreateImage(user *models.User, object *models.AstronomicalObject, overrides ...func(*models.Image)) (*models.Image, error) {
	image := f.BuildImage(user, object, overrides...)
	if err := f.db.Create(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}

// CreateImagesBatch persists multiple images in a single DB call.
func (f *Factory) CreateImagesBatch(images []*models.Image) error {
	if len(images) == 0 {
		return nil
	}
	return f.db.Create(&images).Error
}

// CreateComment persists a comment on the image, optionally threaded.
func (f *Factory) CreateComment(user *models.User, image *models.Image, parent *models.Comment) (*models.Comment, error) {
	comment := &models.Comment{
		ImageID: image.ID,
		UserID:  user.ID,
		Content: gofakeit.Sentence(f.rng.Intn(15) + 3),
		Status:  models.CommentStatusApproved,
	}
	if parent != nil {
		comment.ParentID = &parent.ID
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike inserts a like row and bumps the denormalized counter the same
// way the toggle path does.
func (f *Factory) CreateLike(user *models.User, image *models.Image) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Like{UserID: user.ID, ImageID: image.ID}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Image{}).
			Where("id = ?", image.ID).
			Update("likes_count", gorm.Expr("likes_count + 1")).Error
	})
}

func firstCommonName(object *models.AstronomicalObject) string {
	if object.CommonNames == "" {
		return object.Designation
	}
	for i := 0; i < len(object.CommonNames); i++ {
		if object.CommonNames[i] == ',' {
			return object.CommonNames[:i]
		}
	}
	return object.CommonNames
}
