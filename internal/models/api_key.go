package models

import (
	"time"

	"gorm.io/gorm"
)

// APIKey lets backoffice automation call the admin surface without a session.
type APIKey struct {
	gorm.Model
	UserID     uint
	User       AdminUser `gorm:"foreignKey:UserID"`
	Key        string    `gorm:"uniqueIndex"`
	Name       string
	ExpiresAt  *time.Time
	LastUsedAt *time.Time
}
