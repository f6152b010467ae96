package models

import (
	"gorm.io/datatypes"
)

// Wishlist is keyed by the owning user's ID, like Library.
type Wishlist struct {
	UserID  uint                      `gorm:"primaryKey"`
	GameIDs datatypes.JSONSlice[uint] `gorm:"type:jsonb"`
}

func (w *Wishlist) Contains(gameID uint) bool {
	for _, id := range w.GameIDs {
		if id == gameID {
			return true
		}
	}
	return false
}

// Add appends gameID to the wishlist. Adding a game already present is a no-op.
func (w *Wishlist) Add(gameID uint) {
	if !w.Contains(gameID) {
		w.GameIDs = append(w.GameIDs, gameID)
	}
}

// Remove drops gameID from the wishlist. Removing an absent game is a no-op.
func (w *Wishlist) Remove(gameID uint) {
	for i, id := range w.GameIDs {
		if id == gameID {
			w.GameIDs = append(w.GameIDs[:i], w.GameIDs[i+1:]...)
			return
		}
	}
}
