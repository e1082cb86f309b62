package seed

import (
	"fmt"
	"log"

	"astrofolio/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configuration for the seeder
type Options struct {
	NumUsers          int
	ImagesPerUser     int
	CommentsPerImage  int
	LikeProbability   float64
	ShouldClean       bool
	SkipGeneratedData bool // only reference data (catalogs, objects, equipment)
}

// DefaultOptions returns a sensible demo-sized configuration.
func DefaultOptions() Options {
	return Options{
		NumUsers:         12,
		ImagesPerUser:    4,
		CommentsPerImage: 3,
		LikeProbability:  0.35,
	}
}

// Run populates the database: reference data first (catalogs, curated
// objects, equipment), then generated users, images, likes and comments.
func Run(db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return fmt.Errorf("clean failed: %w", err)
		}
	}

	catalogsByCode, err := SeedCatalogs(db)
	if err != nil {
		return fmt.Errorf("seeding catalogs failed: %w", err)
	}
	objects, err := SeedObjects(db, catalogsByCode)
	if err != nil {
		return fmt.Errorf("seeding objects failed: %w", err)
	}
	if err := SeedEquipment(db); err != nil {
		return fmt.Errorf("seeding equipment failed: %w", err)
	}

	if opts.SkipGeneratedData {
		log.Printf("Seeded reference data: %d catalogs, %d objects", len(catalogsByCode), len(objects))
		return nil
	}

	factory := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("seeding user failed: %w", err)
		}
		users = append(users, user)
	}
	// First user doubles as the demo admin.
	if len(users) > 0 {
		if err := db.Model(users[0]).Update("is_admin", true).Error; err != nil {
			return err
		}
	}

	var images []*models.Image
	for _, user := range users {
		for i := 0; i < opts.ImagesPerUser; i++ {
			object := objects[factory.rng.Intn(len(objects))]
			image, err := factory.CreateImage(user, object)
			if err != nil {
				return fmt.Errorf("seeding image failed: %w", err)
			}
			images = append(images, image)
		}
	}

	for _, image := range images {
		for _, user := range users {
			if user.ID == image.UserID {
				continue
			}
			if factory.rng.Float64() < opts.LikeProbability {
				if err := factory.CreateLike(user, image); err != nil {
					return fmt.Errorf("seeding like failed: %w", err)
				}
			}
		}

		var parent *models.Comment
		for i := 0; i < opts.CommentsPerImage; i++ {
			commenter := users[factory.rng.Intn(len(users))]
			comment, err := factory.CreateComment(commenter, image, parent)
			if err != nil {
				return fmt.Errorf("seeding comment failed: %w", err)
			}
			// Thread roughly every other comment under the previous one.
			if i%2 == 0 {
				parent = comment
			} else {
				parent = nil
			}
		}
	}

	log.Printf("Seeded %d users, %d images across %d objects", len(users), len(images), len(objects))
	return nil
}

// SeedCatalogs upserts the catalog presets and returns them keyed by code.
func SeedCatalogs(db *gorm.DB) (map[string]*models.Catalog, error) {
	byCode := make(map[string]*models.Catalog, len(catalogPresets))
	for i := range catalogPresets {
		catalog := catalogPresets[i]
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).Create(&catalog).Error; err != nil {
			return nil, err
		}
		if catalog.ID == 0 {
			if err := db.Where("code = ?", catalog.Code).First(&catalog).Error; err != nil {
				return nil, err
			}
		}
		byCode[catalog.Code] = &catalog
	}
	return byCode, nil
}

// SeedObjects inserts the curated object rows, skipping designations that
// already exist so reseeding is idempotent.
func SeedObjects(db *gorm.DB, catalogsByCode map[string]*models.Catalog) ([]*models.AstronomicalObject, error) {
	objects := make([]*models.AstronomicalObject, 0, len(objectPresets))
	for _, preset := range objectPresets {
		catalog, ok := catalogsByCode[preset.Catalog]
		if !ok {
			return nil, fmt.Errorf("unknown catalog code %q for %s", preset.Catalog, preset.Designation)
		}

		object := &models.AstronomicalObject{
			Designation:     preset.Designation,
			CatalogID:       catalog.ID,
			MessierNumber:   preset.Messier,
			NGCNumber:       preset.NGC,
			ICNumber:        preset.IC,
			CaldwellNumber:  preset.Caldwell,
			SharplessNumber: preset.Sharpless,
			ObjectType:      preset.ObjectType,
			Constellation:   preset.Constellation,
			RAHours:         preset.RAHours,
			DecDegrees:      preset.DecDegrees,
			Magnitude:       preset.Magnitude,
			Size:            preset.Size,
			Distance:        preset.Distance,
			CommonNames:     preset.CommonNames,
		}

		var existing models.AstronomicalObject
		err := db.Where("designation = ? AND catalog_id = ?", object.Designation, catalog.ID).
			First(&existing).Error
		switch {
		case err == nil:
			objects = append(objects, &existing)
			continue
		case err != gorm.ErrRecordNotFound:
			return nil, err
		}

		if err := db.Create(object).Error; err != nil {
			return nil, err
		}
		objects = append(objects, object)
	}

	// Keep the per-catalog counters honest.
	for code, catalog := range catalogsByCode {
		var count int64
		if err := db.Model(&models.AstronomicalObject{}).
			Where("catalog_id = ?", catalog.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if err := db.Model(&models.Catalog{}).
			Where("code = ?", code).
			Update("total_objects", count).Error; err != nil {
			return nil, err
		}
	}

	return objects, nil
}

// SeedEquipment inserts the equipment presets, skipping existing names.
func SeedEquipment(db *gorm.DB) error {
	for _, preset := range equipmentPresets {
		item := preset
		var count int64
		if err := db.Model(&models.Equipment{}).
			Where("name = ?", item.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}

func clean(db *gorm.DB) error {
	// Leaf tables first to respect FK constraints.
	tables := []string{"likes", "comments", "images", "objects", "catalogs", "equipment", "users"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
