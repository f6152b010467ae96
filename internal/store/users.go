package store

import (
	"errors"

	"github.com/darkhuo10/vgameshop/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type gormUserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

func (s *gormUserStore) Register(user *models.User) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		library := models.Library{UserID: user.ID, GameIDs: datatypes.JSONSlice[uint]{}}
		if err := tx.Create(&library).Error; err != nil {
			return err
		}

		wishlist := models.Wishlist{UserID: user.ID, GameIDs: datatypes.JSONSlice[uint]{}}
		return tx.Create(&wishlist).Error
	})
}

func (s *gormUserStore) UserByID(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (s *gormUserStore) UserByUsername(username string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (s *gormUserStore) UserExists(username, email string) (bool, error) {
	var count int64

	if err := s.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *gormUserStore) ListUsers(active *bool) ([]models.User, error) {
	query := s.db

	if active != nil {
		query = query.Where("active = ?", *active)
	}

	var users []models.User

	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (s *gormUserStore) SaveUser(user *models.User) error {
	return s.db.Save(user).Error
}
