// Command seed fills the development database with demo data.
package main

import (
	"flag"
	"log"

	"plaza/internal/config"
	"plaza/internal/database"
	"plaza/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "number of users to create")
	numPublications := flag.Int("publications", 100, "number of publications to create")
	clean := flag.Bool("clean", false, "delete existing data first")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:        *numUsers,
		NumPublications: *numPublications,
		ShouldClean:     *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
