// Package seed provides database seeding utilities for development and
// testing. Not intended for production databases.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"plaza/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder
type Options struct {
	NumUsers        int
	NumPublications int
	ShouldClean     bool
}

// defaultPassword is the login password for every seeded account.
const defaultPassword = "password123"

// Seed populates the database with demo accounts, a follow mesh,
// publications, and comments
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	log.Printf("🌱 Seeding database with %d users and %d publications...", opts.NumUsers, opts.NumPublications)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	follows, err := createFollowMesh(db, users)
	if err != nil {
		return fmt.Errorf("failed to create follow mesh: %w", err)
	}
	log.Printf("✓ %d follow edges created", follows)

	publications, err := createPublications(db, users, opts.NumPublications)
	if err != nil {
		return fmt.Errorf("failed to create publications: %w", err)
	}
	log.Printf("✓ %d publications created", len(publications))

	comments, err := createComments(db, users, publications)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", comments)

	log.Printf("🌱 Seeding complete. All accounts use password %q", defaultPassword)
	return nil
}

func clearData(db *gorm.DB) error {
	// Children before parents
	tables := []string{"comments", "publications", "follows", "users"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	seen := map[string]bool{}
	for i := 0; i < count; i++ {
		username := strings.ToLower(gofakeit.Username())
		if len(username) < 3 || seen[username] {
			username = fmt.Sprintf("%s%d", strings.ToLower(gofakeit.FirstName()), gofakeit.Number(100, 9999))
		}
		seen[username] = true

		users = append(users, models.User{
			Username:    username,
			Email:       fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
			Password:    string(hashed),
			Description: gofakeit.Sentence(8),
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// createFollowMesh gives every user a handful of random followees so feeds
// have content out of the box.
func createFollowMesh(db *gorm.DB, users []models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := 0
	for _, follower := range users {
		targets := r.Intn(5) + 1
		picked := map[uint]bool{}
		for t := 0; t < targets; t++ {
			followed := users[r.Intn(len(users))]
			if followed.ID == follower.ID || picked[followed.ID] {
				continue
			}
			picked[followed.ID] = true

			follow := models.Follow{FollowerID: follower.ID, FollowedID: followed.ID}
			if err := db.Create(&follow).Error; err != nil {
				// Duplicate edges from the random picks are fine to skip
				continue
			}
			created++
		}
	}
	return created, nil
}

func createPublications(db *gorm.DB, users []models.User, count int) ([]models.Publication, error) {
	if len(users) == 0 || count == 0 {
		return nil, nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	publications := make([]models.Publication, 0, count)
	for i := 0; i < count; i++ {
		author := users[r.Intn(len(users))]
		pub := models.Publication{
			AuthorID: author.ID,
			Text:     gofakeit.Paragraph(1, 3, 8, "\n"),
			// Spread creation times so ordering is visible in the UI
			CreatedAt: time.Now().Add(-time.Duration(r.Intn(60*24*30)) * time.Minute),
		}
		if r.Intn(3) == 0 {
			pub.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
		}
		publications = append(publications, pub)
	}

	if err := db.Create(&publications).Error; err != nil {
		return nil, err
	}
	return publications, nil
}

func createComments(db *gorm.DB, users []models.User, publications []models.Publication) (int, error) {
	if len(users) == 0 || len(publications) == 0 {
		return 0, nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	comments := make([]models.Comment, 0, len(publications)*2)
	for _, pub := range publications {
		for n := r.Intn(4); n > 0; n-- {
			author := users[r.Intn(len(users))]
			comments = append(comments, models.Comment{
				AuthorID:      author.ID,
				PublicationID: pub.ID,
				Text:          gofakeit.Sentence(r.Intn(12) + 3),
			})
		}
	}
	if len(comments) == 0 {
		return 0, nil
	}

	if err := db.Create(&comments).Error; err != nil {
		return 0, err
	}
	return len(comments), nil
}
