package store

import (
	"errors"

	"github.com/darkhuo10/vgameshop/internal/models"
	"gorm.io/gorm"
)

type gormReviewStore struct {
	db *gorm.DB
}

func NewReviewStore(db *gorm.DB) ReviewStore {
	return &gormReviewStore{db: db}
}

func (s *gormReviewStore) ReviewByID(id uint) (*models.Review, error) {
	var review models.Review

	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &review, nil
}

func (s *gormReviewStore) ReviewByUserAndGame(userID, gameID uint) (*models.Review, error) {
	var review models.Review

	if err := s.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &review, nil
}

func (s *gormReviewStore) ListReviews() ([]models.Review, error) {
	var reviews []models.Review

	if err := s.db.Find(&reviews).Error; err != nil {
		return nil, err
	}

	return reviews, nil
}

func (s *gormReviewStore) ReviewsByUser(userID uint) ([]models.Review, error) {
	var reviews []models.Review

	if err := s.db.Where("user_id = ?", userID).Find(&reviews).Error; err != nil {
		return nil, err
	}

	return reviews, nil
}

func (s *gormReviewStore) ReviewsByGame(gameID uint) ([]models.Review, error) {
	var reviews []models.Review

	if err := s.db.Where("game_id = ?", gameID).Find(&reviews).Error; err != nil {
		return nil, err
	}

	return reviews, nil
}

func (s *gormReviewStore) SaveReview(review *models.Review) error {
	return s.db.Save(review).Error
}

func (s *gormReviewStore) DeleteReview(id uint) error {
	result := s.db.Delete(&models.Review{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
