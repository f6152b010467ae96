// Package memory provides map-backed implementations of the store
// interfaces. They keep the full service and handler stack runnable without
// a database, which is how the test suites exercise it.
package memory

import (
	"sync"

	"github.com/darkhuo10/vgameshop/internal/models"
	"github.com/darkhuo10/vgameshop/internal/store"
)

type Store struct {
	mu sync.RWMutex

	users     map[uint]models.User
	games     map[uint]models.Game
	reviews   map[uint]models.Review
	libraries map[uint]models.Library
	wishlists map[uint]models.Wishlist

	nextUserID   uint
	nextGameID   uint
	nextReviewID uint
}

func New() *Store {
	return &Store{
		users:     make(map[uint]models.User),
		games:     make(map[uint]models.Game),
		reviews:   make(map[uint]models.Review),
		libraries: make(map[uint]models.Library),
		wishlists: make(map[uint]models.Wishlist),
	}
}

func (s *Store) Users() store.UserStore         { return (*userView)(s) }
func (s *Store) Games() store.GameStore         { return (*gameView)(s) }
func (s *Store) Reviews() store.ReviewStore     { return (*reviewView)(s) }
func (s *Store) Libraries() store.LibraryStore  { return (*libraryView)(s) }
func (s *Store) Wishlists() store.WishlistStore { return (*wishlistView)(s) }

type userView Store

func (v *userView) Register(user *models.User) error {
	s := (*Store)(v)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return store.ErrConflict
		}
	}

	s.nextUserID++
	user.ID = s.nextUserID
	s.users[user.ID] = *user
	s.libraries[user.ID] = models.Library{UserID: user.ID}
	s.wishlists[user.ID] = models.Wishlist{UserID: user.ID}
	return nil
}

func (v *userView) UserByID(id uint) (*models.User, error) {
	s := (*Store)(v)
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &user, nil
}

func (v *userView) UserByUsername(username string) (*models.User, error) {
	s := (*Store)(v)
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (v *userView) UserExists(username, email string) (bool, error) {
	s := (*Store)(v)
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (v *userView) ListUsers(active *bool) ([]models.User, error) {
	s := (*Store)(v)
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []models.User
	for id := uint(1); id <= s.nextUserID; id++ {
		user, ok := s.users[id]
		if !ok {
			continue
		}
		if active != nil && user.Active != *active {
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func (v *userView) SaveUser(user *models.User) error {
	s := (*Store)(v)
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == 0 {
		s.nextUserID++
		user.ID = s.nextUserID
	}
	s.users[user.ID] = *user
	return nil
}

type gameView Store

func (v *gameView) GameByID(id uint) (*models.Game, error) {
	s := (*Store)(v)
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &game, nil
}

func (v *gameView) ListGames() ([]models.Game, error) {
	s := (*Store)(v)
	s.mu.RLock()
	defer s.mu.RUnlock()

	var games []models.Game
	for id := uint(1); id <= s.nextGameID; id++ {
		if game, ok := s.games[id]; ok {
			games = append(games, game)
		}
	}
	return games, nil
}

func (v *gameView) CreateGame(game *models.Game) error {
	s := (*Store)(v)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextGameID++
	game.ID = s.nextGameID
	s.games[game.ID] = *game
	return nil
}

func (v *gameView) SaveGame(game *models.Game) error {
	s := (*Store)(v)
	s.mu.Lock()
	defer s.mu.Unlock()

	if game.ID == 0 {
		s.nextGameID++
		game.ID = s.nextGameID
	}
	s.games[game.ID] = *game
	return nil
}

type reviewView Store

func (v *reviewView) ReviewByID(id uint) (*models.Review, error) {
	s := (*Store)(v)
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.reviews[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &review, nil
}

func (v *reviewView) ReviewByUserAndGame(userID, gameID uint) (*models.Review, error) {
	s := (*Store)(v)
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, review := range s.reviews {
		if review.UserID == userID && review.GameID == gameID {
			r := review
			return &r, nil
		}
	}
	return nil, store.ErrNotFound
}

func (v *reviewView) ListReviews() ([]models.Review, error) {
	return v.filter(func(models.Review) bool { return true })
}

func (v *reviewView) ReviewsByUser(userID uint) ([]models.Review, error) {
	return v.filter(func(r models.Review) bool { return r.UserID == userID })
}

func (v *reviewView) ReviewsByGame(gameID uint) ([]models.Review, error) {
	return v.filter(func(r models.Review) bool { return r.GameID == gameID })
}

func (v *reviewView) filter(keep func(models.Review) bool) ([]models.Review, error) {
	s := (*Store)(v)
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reviews []models.Review
	for id := uint(1); id <= s.nextReviewID; id++ {
		if review, ok := s.reviews[id]; ok && keep(review) {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (v *reviewView) SaveReview(review *models.Review) error {
	s := (*Store)(v)
	s.mu.Lock()
	defer s.mu.Unlock()

	if review.ID == 0 {
		s.nextReviewID++
		review.ID = s.nextReviewID
	}
	s.reviews[review.ID] = *review
	return nil
}

func (v *reviewView) DeleteReview(id uint) error {
	s := (*Store)(v)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.reviews, id)
	return nil
}

type libraryView Store

func (v *libraryView) LibraryByUserID(userID uint) (*models.Library, error) {
	s := (*Store)(v)
	s.mu.RLock()
	defer s.mu.RUnlock()

	library, ok := s.libraries[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	library.GameIDs = append(library.GameIDs[:0:0], library.GameIDs...)
	return &library, nil
}

func (v *libraryView) ListLibraries() ([]models.Library, error) {
	s := (*Store)(v)
	s.mu.RLock()
	defer s.mu.RUnlock()

	var libraries []models.Library
	for id := uint(1); id <= s.nextUserID; id++ {
		if library, ok := s.libraries[id]; ok {
			libraries = append(libraries, library)
		}
	}
	return libraries, nil
}

func (v *libraryView) SaveLibrary(library *models.Library) error {
	s := (*Store)(v)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.libraries[library.UserID] = *library
	return nil
}

type wishlistView Store

func (v *wishlistView) WishlistByUserID(userID uint) (*models.Wishlist, error) {
	s := (*Store)(v)
	s.mu.RLock()
	defer s.mu.RUnlock()

	wishlist, ok := s.wishlists[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	wishlist.GameIDs = append(wishlist.GameIDs[:0:0], wishlist.GameIDs...)
	return &wishlist, nil
}

func (v *wishlistView) ListWishlists() ([]models.Wishlist, error) {
	s := (*Store)(v)
	s.mu.RLock()
	defer s.mu.RUnlock()

	var wishlists []models.Wishlist
	for id := uint(1); id <= s.nextUserID; id++ {
		if wishlist, ok := s.wishlists[id]; ok {
			wishlists = append(wishlists, wishlist)
		}
	}
	return wishlists, nil
}

func (v *wishlistView) SaveWishlist(wishlist *models.Wishlist) error {
	s := (*Store)(v)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlists[wishlist.UserID] = *wishlist
	return nil
}
