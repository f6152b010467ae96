package services

import (
	"errors"
	"sort"
	"time"

	"github.com/darkhuo10/vgameshop/internal/models"
	"github.com/darkhuo10/vgameshop/internal/store"
)

// MinDescriptionLength is the shortest review body accepted.
const MinDescriptionLength = 10

var (
	// ErrNotOwned rejects reviews for games absent from the author's library.
	ErrNotOwned = errors.New("cannot review a game you do not own")
	// ErrDescriptionTooShort rejects review bodies below MinDescriptionLength.
	ErrDescriptionTooShort = errors.New("review description is too short")
)

// ReviewService enforces the one-review-per-user-per-game rule and gates
// review creation on game ownership.
type ReviewService struct {
	reviews     store.ReviewStore
	entitlement *EntitlementService
}

func NewReviewService(reviews store.ReviewStore, entitlement *EntitlementService) *ReviewService {
	return &ReviewService{reviews: reviews, entitlement: entitlement}
}

// Upsert creates a review for (userID, gameID), or overwrites the existing
// one in place keeping its identity. It returns created=true only on the
// first write for the pair.
//
// Validation runs before any state is touched; an out-of-range rating is
// clamped to [0, 5] rather than rejected.
func (s *ReviewService) Upsert(userID, gameID uint, rating float64, description string) (*models.Review, bool, error) {
	if len(description) < MinDescriptionLength {
		return nil, false, ErrDescriptionTooShort
	}

	owns, err := s.entitlement.Owns(userID, gameID)

	if err != nil {
		return nil, false, err
	}

	if !owns {
		return nil, false, ErrNotOwned
	}

	rating = ClampRating(rating)
	now := time.Now()

	existing, err := s.reviews.ReviewByUserAndGame(userID, gameID)

	if err == nil {
		existing.Rating = rating
		existing.Description = description
		existing.PublishDate = now

		if err := s.reviews.SaveReview(existing); err != nil {
			return nil, false, err
		}

		return existing, false, nil
	}

	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}

	review := &models.Review{
		UserID:      userID,
		GameID:      gameID,
		Rating:      rating,
		Description: description,
		PublishDate: now,
	}

	if err := s.reviews.SaveReview(review); err != nil {
		return nil, false, err
	}

	return review, true, nil
}

func (s *ReviewService) ByID(id uint) (*models.Review, error) {
	return s.reviews.ReviewByID(id)
}

func (s *ReviewService) All() ([]models.Review, error) {
	return s.reviews.ListReviews()
}

func (s *ReviewService) ByUser(userID uint) ([]models.Review, error) {
	return s.reviews.ReviewsByUser(userID)
}

func (s *ReviewService) ByGame(gameID uint) ([]models.Review, error) {
	return s.reviews.ReviewsByGame(gameID)
}

func (s *ReviewService) Delete(id uint) error {
	return s.reviews.DeleteReview(id)
}

// ClampRating normalizes rating into [0, 5]. Out-of-range input is a
// deliberate silent correction, not an error.
func ClampRating(rating float64) float64 {
	if rating < 0 {
		return 0
	}
	if rating > 5 {
		return 5
	}
	return rating
}

// SortReviews orders reviews for display: the requester's own review first
// (if present), the rest by publish date ascending. requesterID 0 means an
// anonymous requester.
func SortReviews(reviews []models.Review, requesterID uint) {
	sort.SliceStable(reviews, func(i, j int) bool {
		if requesterID != 0 {
			iOwn := reviews[i].UserID == requesterID
			jOwn := reviews[j].UserID == requesterID

			if iOwn != jOwn {
				return iOwn
			}
		}

		return reviews[i].PublishDate.Before(reviews[j].PublishDate)
	})
}
