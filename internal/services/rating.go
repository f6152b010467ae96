package services

import (
	"math"

	"github.com/darkhuo10/vgameshop/internal/models"
)

// AverageRating derives a game's displayed rating from its reviews: the
// mean rounded to two decimals, 0 when there are no reviews. It is computed
// on every read and never persisted, so it cannot go stale.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum float64

	for _, review := range reviews {
		sum += review.Rating
	}

	return math.Round(sum/float64(len(reviews))*100) / 100
}
