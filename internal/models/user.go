package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	gorm.Model

	Name           string `gorm:"not null"`
	Surname        string
	Username       string `gorm:"uniqueIndex;not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	PasswordHash   string `gorm:"not null"`
	Birthdate      time.Time
	Role           string `gorm:"not null;default:USER"` // "USER" or "ADMIN"
	Active         bool   `gorm:"not null;default:true"`
	ProfilePicture string // object key in the asset store, empty if none

	// Relationships
	Reviews []Review `gorm:"foreignKey:UserID"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
