package db

import (
	"log"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/darkhuo10/vgameshop/internal/models"
)

// SeedDatabase populates empty tables with default users and an initial
// game catalog. User and game seeding have no ordering dependency and run
// concurrently.
func SeedDatabase() {
	log.Println("Seeding database...")

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		seedUsers()
	}()

	go func() {
		defer wg.Done()
		seedGames()
	}()

	wg.Wait()

	log.Println("Database seeding completed")
}

func seedUsers() {
	var count int64
	DB.Model(&models.User{}).Count(&count)

	if count > 0 {
		log.Println("Users already exist, skipping...")
		return
	}

	defaults := []struct {
		user     models.User
		password string
	}{
		{
			user: models.User{
				Name:     "Admin",
				Surname:  "Admin",
				Username: "admin",
				Email:    "admin@vgameshop.com",
				Role:     models.RoleAdmin,
				Active:   true,
			},
			password: "admin123",
		},
		{
			user: models.User{
				Name:      "Test",
				Surname:   "User",
				Username:  "testuser",
				Email:     "user@vgameshop.com",
				Role:      models.RoleUser,
				Active:    true,
				Birthdate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			password: "user123",
		},
	}

	for _, entry := range defaults {
		hash, err := bcrypt.GenerateFromPassword([]byte(entry.password), bcrypt.DefaultCost)

		if err != nil {
			log.Printf("Error hashing password for %s: %v", entry.user.Username, err)
			return
		}

		user := entry.user
		user.PasswordHash = string(hash)

		// New accounts always get an empty wishlist and library
		err = DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}

			if err := tx.Create(&models.Wishlist{UserID: user.ID}).Error; err != nil {
				return err
			}

			return tx.Create(&models.Library{UserID: user.ID}).Error
		})

		if err != nil {
			log.Printf("Error creating user %s: %v", user.Username, err)
			return
		}
	}

	log.Println("Users seeded successfully")
}

func seedGames() {
	var count int64
	DB.Model(&models.Game{}).Count(&count)

	if count > 0 {
		log.Println("Games already exist, skipping...")
		return
	}

	games := []models.Game{
		{
			Name:        "Starfall Tactics",
			Description: "Turn-based squad tactics across a collapsing star system.",
			Publisher:   "Nova Forge",
			Developer:   "Nova Forge",
			Genres:      datatypes.NewJSONSlice([]string{"Strategy", "Tactics"}),
			Languages:   datatypes.NewJSONSlice([]string{"English", "Spanish"}),
			Price:       29.99,
			ReleaseDate: time.Date(2023, 3, 14, 0, 0, 0, 0, time.UTC),
			Visible:     true,
		},
		{
			Name:        "Harbor Lights",
			Description: "A cozy harbor town builder with seasonal trading routes.",
			Publisher:   "Lighthouse Games",
			Developer:   "Driftwood Studio",
			Genres:      datatypes.NewJSONSlice([]string{"Simulation", "Casual"}),
			Languages:   datatypes.NewJSONSlice([]string{"English", "German", "French"}),
			Price:       19.99,
			ReleaseDate: time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
			Visible:     true,
		},
		{
			Name:        "Ashen Vow",
			Description: "Action RPG set in a kingdom rebuilt from volcanic glass.",
			Publisher:   "Obsidian Gate",
			Developer:   "Obsidian Gate",
			Genres:      datatypes.NewJSONSlice([]string{"RPG", "Action"}),
			Languages:   datatypes.NewJSONSlice([]string{"English", "Japanese"}),
			Price:       49.99,
			ReleaseDate: time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC),
			Visible:     true,
		},
	}

	for _, game := range games {
		if err := DB.Create(&game).Error; err != nil {
			log.Printf("Error creating game %s: %v", game.Name, err)
			return
		}
	}

	log.Println("Games seeded successfully")
}
