package store

import (
	"errors"

	"github.com/darkhuo10/vgameshop/internal/models"
	"gorm.io/gorm"
)

type gormGameStore struct {
	db *gorm.DB
}

func NewGameStore(db *gorm.DB) GameStore {
	return &gormGameStore{db: db}
}

func (s *gormGameStore) GameByID(id uint) (*models.Game, error) {
	var game models.Game

	if err := s.db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &game, nil
}

func (s *gormGameStore) ListGames() ([]models.Game, error) {
	var games []models.Game

	if err := s.db.Find(&games).Error; err != nil {
		return nil, err
	}

	return games, nil
}

func (s *gormGameStore) CreateGame(game *models.Game) error {
	return s.db.Create(game).Error
}

func (s *gormGameStore) SaveGame(game *models.Game) error {
	return s.db.Save(game).Error
}
