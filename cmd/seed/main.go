// Command seed populates the database with reference and demo data.
package main

import (
	"flag"
	"log"

	"astrofolio/internal/config"
	"astrofolio/internal/database"
	"astrofolio/internal/seed"
)

func main() {
	var (
		users    = flag.Int("users", 12, "number of demo users to create")
		images   = flag.Int("images", 4, "images per user")
		comments = flag.Int("comments", 3, "comments per image")
		clean    = flag.Bool("clean", false, "delete existing rows before seeding")
		refOnly  = flag.Bool("ref-only", false, "seed only catalogs, objects and equipment")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.DefaultOptions()
	opts.NumUsers = *users
	opts.ImagesPerUser = *images
	opts.CommentsPerImage = *comments
	opts.ShouldClean = *clean
	opts.SkipGeneratedData = *refOnly

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
