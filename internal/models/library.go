package models

import (
	"gorm.io/datatypes"
)

// Library is keyed by the owning user's ID, there is no surrogate key.
type Library struct {
	UserID  uint                      `gorm:"primaryKey"`
	GameIDs datatypes.JSONSlice[uint] `gorm:"type:jsonb"`
}

func (l *Library) Contains(gameID uint) bool {
	for _, id := range l.GameIDs {
		if id == gameID {
			return true
		}
	}
	return false
}

// Add appends gameID to the library. Adding an owned game is a no-op.
func (l *Library) Add(gameID uint) {
	if !l.Contains(gameID) {
		l.GameIDs = append(l.GameIDs, gameID)
	}
}
