package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Game struct {
	gorm.Model

	Name           string                      `gorm:"not null;index"`
	Developer      string                      `gorm:"not null"`
	Publisher      string                      `gorm:"not null"`
	Genres         datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Languages      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Price          float64                     `gorm:"not null"`
	Description    string
	ReleaseDate    time.Time
	SellNumber     int64 `gorm:"not null;default:0"`
	Visible        bool  `gorm:"not null;default:true"`
	MainImage      string
	ShowcaseImages datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	File           string // object key of the downloadable binary, empty if not uploaded yet

	// Relationships
	Reviews []Review `gorm:"foreignKey:GameID"`
}

func (g *Game) HasGenre(genre string) bool {
	for _, v := range g.Genres {
		if v == genre {
			return true
		}
	}
	return false
}

func (g *Game) HasLanguage(language string) bool {
	for _, v := range g.Languages {
		if v == language {
			return true
		}
	}
	return false
}
