package models

import (
	"time"

	"gorm.io/gorm"
)

// Review rows are unique per (user, game); the create path updates the
// existing row in place instead of inserting a second one.
type Review struct {
	gorm.Model

	UserID      uint      `gorm:"not null;uniqueIndex:idx_user_game"`
	GameID      uint      `gorm:"not null;uniqueIndex:idx_user_game"`
	Rating      float64   `gorm:"not null"`
	Description string    `gorm:"not null"`
	PublishDate time.Time `gorm:"not null"`
}
