package services

import (
	"github.com/darkhuo10/vgameshop/internal/models"
	"github.com/darkhuo10/vgameshop/internal/store"
)

// EntitlementService manages which games a user owns (library) and which
// games a user wants (wishlist). All mutations are idempotent.
type EntitlementService struct {
	libraries store.LibraryStore
	wishlists store.WishlistStore
}

func NewEntitlementService(libraries store.LibraryStore, wishlists store.WishlistStore) *EntitlementService {
	return &EntitlementService{libraries: libraries, wishlists: wishlists}
}

// Owns reports whether gameID is in userID's library.
func (s *EntitlementService) Owns(userID, gameID uint) (bool, error) {
	library, err := s.libraries.LibraryByUserID(userID)

	if err != nil {
		return false, err
	}

	return library.Contains(gameID), nil
}

// Grant adds gameID to userID's library and drops it from the wishlist if it
// was wished for. Granting an already-owned game changes nothing and still
// returns the current library.
func (s *EntitlementService) Grant(userID, gameID uint) (*models.Library, error) {
	library, err := s.libraries.LibraryByUserID(userID)

	if err != nil {
		return nil, err
	}

	if !library.Contains(gameID) {
		library.Add(gameID)

		if err := s.libraries.SaveLibrary(library); err != nil {
			return nil, err
		}
	}

	// Owning a game removes the wish for it.
	wishlist, err := s.wishlists.WishlistByUserID(userID)

	if err == nil && wishlist.Contains(gameID) {
		wishlist.Remove(gameID)

		if err := s.wishlists.SaveWishlist(wishlist); err != nil {
			return nil, err
		}
	}

	return library, nil
}

// Wish adds gameID to userID's wishlist. Wishing twice is a no-op.
func (s *EntitlementService) Wish(userID, gameID uint) (*models.Wishlist, error) {
	wishlist, err := s.wishlists.WishlistByUserID(userID)

	if err != nil {
		return nil, err
	}

	if !wishlist.Contains(gameID) {
		wishlist.Add(gameID)

		if err := s.wishlists.SaveWishlist(wishlist); err != nil {
			return nil, err
		}
	}

	return wishlist, nil
}

// Unwish removes gameID from userID's wishlist. Removing an absent game is
// a no-op, not an error.
func (s *EntitlementService) Unwish(userID, gameID uint) (*models.Wishlist, error) {
	wishlist, err := s.wishlists.WishlistByUserID(userID)

	if err != nil {
		return nil, err
	}

	if wishlist.Contains(gameID) {
		wishlist.Remove(gameID)

		if err := s.wishlists.SaveWishlist(wishlist); err != nil {
			return nil, err
		}
	}

	return wishlist, nil
}

func (s *EntitlementService) LibraryOf(userID uint) (*models.Library, error) {
	return s.libraries.LibraryByUserID(userID)
}

func (s *EntitlementService) WishlistOf(userID uint) (*models.Wishlist, error) {
	return s.wishlists.WishlistByUserID(userID)
}

func (s *EntitlementService) Libraries() ([]models.Library, error) {
	return s.libraries.ListLibraries()
}

func (s *EntitlementService) Wishlists() ([]models.Wishlist, error) {
	return s.wishlists.ListWishlists()
}
