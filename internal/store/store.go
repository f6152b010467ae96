package store

import (
	"errors"

	"github.com/darkhuo10/vgameshop/internal/models"
)

var (
	// ErrNotFound is returned when the addressed entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a uniqueness constraint would be violated.
	ErrConflict = errors.New("already exists")
)

type UserStore interface {
	// Register persists the user together with its empty library and
	// wishlist in a single transaction. Either all three records exist
	// afterwards or none of them do.
	Register(user *models.User) error
	UserByID(id uint) (*models.User, error)
	UserByUsername(username string) (*models.User, error)
	UserExists(username, email string) (bool, error)
	ListUsers(active *bool) ([]models.User, error)
	SaveUser(user *models.User) error
}

type GameStore interface {
	GameByID(id uint) (*models.Game, error)
	ListGames() ([]models.Game, error)
	CreateGame(game *models.Game) error
	SaveGame(game *models.Game) error
}

type ReviewStore interface {
	ReviewByID(id uint) (*models.Review, error)
	ReviewByUserAndGame(userID, gameID uint) (*models.Review, error)
	ListReviews() ([]models.Review, error)
	ReviewsByUser(userID uint) ([]models.Review, error)
	ReviewsByGame(gameID uint) ([]models.Review, error)
	SaveReview(review *models.Review) error
	DeleteReview(id uint) error
}

type LibraryStore interface {
	LibraryByUserID(userID uint) (*models.Library, error)
	ListLibraries() ([]models.Library, error)
	SaveLibrary(library *models.Library) error
}

type WishlistStore interface {
	WishlistByUserID(userID uint) (*models.Wishlist, error)
	ListWishlists() ([]models.Wishlist, error)
	SaveWishlist(wishlist *models.Wishlist) error
}
