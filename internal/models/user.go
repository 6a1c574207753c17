package models

import (
	"gorm.io/gorm"
)

// AdminUser is a backoffice account. Public intake is anonymous; only the
// admin surface authenticates.
type AdminUser struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex"`
	PasswordHash string
}
