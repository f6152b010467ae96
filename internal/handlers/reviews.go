package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/darkhuo10/vgameshop/internal/models"
	"github.com/darkhuo10/vgameshop/internal/services"
	"github.com/darkhuo10/vgameshop/internal/store"
	"github.com/darkhuo10/vgameshop/internal/types"
	"github.com/darkhuo10/vgameshop/internal/utils"
)

type UpsertReviewRequest struct {
	GameID      uint    `json:"game_id" binding:"required"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description" binding:"required"`
}

type ReviewsHandler struct {
	reviews *services.ReviewService
	users   store.UserStore
	games   store.GameStore
}

func NewReviewsHandler(reviews *services.ReviewService, users store.UserStore, games store.GameStore) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviews, users: users, games: games}
}

// ListReviews returns all reviews, optionally narrowed by user_id, game_id,
// minimum rating and publish date. The requester's own review sorts first,
// the rest by publish date ascending.
func (h *ReviewsHandler) ListReviews(ctx *gin.Context) {
	reviews, err := h.reviews.All()

	if err != nil {
		log.Printf("Failed to list reviews: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviews"})
		return
	}

	if raw := ctx.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID filter"})
			return
		}

		reviews = filterReviews(reviews, func(r models.Review) bool { return r.UserID == uint(id) })
	}

	if raw := ctx.Query("game_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID filter"})
			return
		}

		reviews = filterReviews(reviews, func(r models.Review) bool { return r.GameID == uint(id) })
	}

	if raw := ctx.Query("rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating filter"})
			return
		}

		reviews = filterReviews(reviews, func(r models.Review) bool { return r.Rating >= minRating })
	}

	if raw := ctx.Query("publish_date"); raw != "" {
		after, err := time.Parse(time.RFC3339, raw)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publish date filter"})
			return
		}

		reviews = filterReviews(reviews, func(r models.Review) bool { return !r.PublishDate.Before(after) })
	}

	h.respondList(ctx, reviews)
}

func (h *ReviewsHandler) GetReview(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("review_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	review, err := h.reviews.ByID(uint(id))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		log.Printf("Failed to fetch review: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve review"})
		return
	}

	response, err := h.hydrate(*review, make(map[uint]types.UserSummary), make(map[uint]types.GameSummary))

	if err != nil {
		log.Printf("Failed to hydrate review: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve review"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ReviewsHandler) ListByUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("user_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	reviews, err := h.reviews.ByUser(uint(id))

	if err != nil {
		log.Printf("Failed to list reviews: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviews"})
		return
	}

	h.respondList(ctx, reviews)
}

func (h *ReviewsHandler) ListByGame(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("game_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	reviews, err := h.reviews.ByGame(uint(id))

	if err != nil {
		log.Printf("Failed to list reviews: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviews"})
		return
	}

	h.respondList(ctx, reviews)
}

// UpsertReview is the single write path for reviews: it creates a review
// for (caller, game) or overwrites the existing one in place. 201 signals a
// new review, 200 an update.
func (h *ReviewsHandler) UpsertReview(ctx *gin.Context) {
	current, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req UpsertReviewRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := h.games.GameByID(req.GameID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		log.Printf("Failed to fetch game: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return
	}

	review, created, err := h.reviews.Upsert(current.ID, req.GameID, req.Rating, req.Description)

	if err != nil {
		switch {
		case errors.Is(err, services.ErrDescriptionTooShort):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Description must be at least 10 characters"})
		case errors.Is(err, services.ErrNotOwned):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Cannot review a game you do not own"})
		case errors.Is(err, store.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Library not found"})
		default:
			log.Printf("Failed to upsert review: %v", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to save review"})
		}
		return
	}

	response, err := h.hydrate(*review, make(map[uint]types.UserSummary), make(map[uint]types.GameSummary))

	if err != nil {
		log.Printf("Failed to hydrate review: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve review"})
		return
	}

	BroadcastReviewRefresh(strconv.FormatUint(uint64(review.GameID), 10))

	if created {
		ctx.JSON(http.StatusCreated, response)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteReview physically removes a review. Only the review's author or an
// admin may do it.
func (h *ReviewsHandler) DeleteReview(ctx *gin.Context) {
	current, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := strconv.ParseUint(ctx.Param("review_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	review, err := h.reviews.ByID(uint(id))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		log.Printf("Failed to fetch review: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve review"})
		return
	}

	if review.UserID != current.ID && current.Role != models.RoleAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := h.reviews.Delete(review.ID); err != nil {
		log.Printf("Failed to delete review: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to delete review"})
		return
	}

	BroadcastReviewRefresh(strconv.FormatUint(uint64(review.GameID), 10))

	ctx.Status(http.StatusNoContent)
}

func (h *ReviewsHandler) respondList(ctx *gin.Context, reviews []models.Review) {
	var requesterID uint

	if current, err := utils.GetCurrentUser(ctx); err == nil {
		requesterID = current.ID
	}

	services.SortReviews(reviews, requesterID)

	userCache := make(map[uint]types.UserSummary)
	gameCache := make(map[uint]types.GameSummary)
	response := make([]types.ReviewResponse, 0, len(reviews))

	for _, review := range reviews {
		hydrated, err := h.hydrate(review, userCache, gameCache)

		if err != nil {
			log.Printf("Failed to hydrate review: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviews"})
			return
		}

		response = append(response, hydrated)
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ReviewsHandler) hydrate(review models.Review, userCache map[uint]types.UserSummary, gameCache map[uint]types.GameSummary) (types.ReviewResponse, error) {
	user, ok := userCache[review.UserID]

	if !ok {
		record, err := h.users.UserByID(review.UserID)

		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return types.ReviewResponse{}, err
		}

		// Reviews outlive disabled accounts; fall back to the bare ID.
		user = types.UserSummary{ID: review.UserID}

		if err == nil {
			user.Username = record.Username
		}

		userCache[review.UserID] = user
	}

	game, ok := gameCache[review.GameID]

	if !ok {
		record, err := h.games.GameByID(review.GameID)

		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return types.ReviewResponse{}, err
		}

		game = types.GameSummary{ID: review.GameID}

		if err == nil {
			game.Name = record.Name
		}

		gameCache[review.GameID] = game
	}

	return types.ReviewResponse{
		ID:          review.ID,
		User:        user,
		Game:        game,
		Rating:      review.Rating,
		Description: review.Description,
		PublishDate: review.PublishDate,
	}, nil
}

func filterReviews(reviews []models.Review, keep func(models.Review) bool) []models.Review {
	filtered := reviews[:0:0]

	for _, review := range reviews {
		if keep(review) {
			filtered = append(filtered, review)
		}
	}

	return filtered
}
