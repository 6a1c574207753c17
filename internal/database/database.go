package database

import (
	"errors"
	"log"

	"github.com/silkway-travel/tour-booking-api/internal/config"
	"github.com/silkway-travel/tour-booking-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto Migrate
	err = db.AutoMigrate(
		&models.Region{},
		&models.Category{},
		&models.CarType{},
		&models.Tour{},
		&models.Price{},
		&models.Route{},
		&models.TourImage{},
		&models.Slider{},
		&models.ArticleCategory{},
		&models.Article{},
		&models.Gallery{},
		&models.FAQ{},
		&models.Request{},
		&models.TourRequest{},
		&models.SiteReview{},
		&models.TourReview{},
		&models.CustomTourRequest{},
		&models.CarRentalRequest{},
		&models.Feedback{},
		&models.Lead{},
		&models.Traveler{},
		&models.AdminUser{},
		&models.APIKey{},
		&models.StatusChange{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	return db
}

// SeedAdmin makes sure the configured backoffice account exists and its
// password matches the configuration.
func SeedAdmin(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, admin login disabled")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	var user models.AdminUser
	err = db.Where(&models.AdminUser{Username: cfg.AdminUsername}).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.AdminUser{Username: cfg.AdminUsername, PasswordHash: string(hash)}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
	case err != nil:
		log.Fatalf("Failed to look up admin user: %v", err)
	default:
		if err := db.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
			log.Fatalf("Failed to update admin password: %v", err)
		}
	}
}
