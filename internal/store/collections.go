package store

import (
	"errors"

	"github.com/darkhuo10/vgameshop/internal/models"
	"gorm.io/gorm"
)

// Libraries and wishlists are keyed by the owning user's ID, so lookups go
// straight through the primary key.

type gormLibraryStore struct {
	db *gorm.DB
}

func NewLibraryStore(db *gorm.DB) LibraryStore {
	return &gormLibraryStore{db: db}
}

func (s *gormLibraryStore) LibraryByUserID(userID uint) (*models.Library, error) {
	var library models.Library

	if err := s.db.First(&library, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &library, nil
}

func (s *gormLibraryStore) ListLibraries() ([]models.Library, error) {
	var libraries []models.Library

	if err := s.db.Find(&libraries).Error; err != nil {
		return nil, err
	}

	return libraries, nil
}

func (s *gormLibraryStore) SaveLibrary(library *models.Library) error {
	return s.db.Save(library).Error
}

type gormWishlistStore struct {
	db *gorm.DB
}

func NewWishlistStore(db *gorm.DB) WishlistStore {
	return &gormWishlistStore{db: db}
}

func (s *gormWishlistStore) WishlistByUserID(userID uint) (*models.Wishlist, error) {
	var wishlist models.Wishlist

	if err := s.db.First(&wishlist, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &wishlist, nil
}

func (s *gormWishlistStore) ListWishlists() ([]models.Wishlist, error) {
	var wishlists []models.Wishlist

	if err := s.db.Find(&wishlists).Error; err != nil {
		return nil, err
	}

	return wishlists, nil
}

func (s *gormWishlistStore) SaveWishlist(wishlist *models.Wishlist) error {
	return s.db.Save(wishlist).Error
}
