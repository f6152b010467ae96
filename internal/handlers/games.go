package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/darkhuo10/vgameshop/internal/models"
	"github.com/darkhuo10/vgameshop/internal/mq"
	"github.com/darkhuo10/vgameshop/internal/services"
	"github.com/darkhuo10/vgameshop/internal/storage"
	"github.com/darkhuo10/vgameshop/internal/store"
	"github.com/darkhuo10/vgameshop/internal/types"
	"github.com/darkhuo10/vgameshop/internal/utils"
)

type CreateGameRequest struct {
	Name        string    `json:"name" binding:"required"`
	Developer   string    `json:"developer" binding:"required"`
	Publisher   string    `json:"publisher" binding:"required"`
	Genres      []string  `json:"genres"`
	Languages   []string  `json:"languages"`
	Price       float64   `json:"price" binding:"gte=0"`
	Description string    `json:"description"`
	ReleaseDate time.Time `json:"release_date"`
}

// UpdateGameRequest is a partial update; nil fields keep the stored value.
type UpdateGameRequest struct {
	Name        *string    `json:"name"`
	Developer   *string    `json:"developer"`
	Publisher   *string    `json:"publisher"`
	Genres      *[]string  `json:"genres"`
	Languages   *[]string  `json:"languages"`
	Price       *float64   `json:"price"`
	Description *string    `json:"description"`
	ReleaseDate *time.Time `json:"release_date"`
}

type GamesHandler struct {
	games       store.GameStore
	reviews     store.ReviewStore
	entitlement *services.EntitlementService
	assets      storage.ObjectStore
	events      mq.Publisher
}

func NewGamesHandler(games store.GameStore, reviews store.ReviewStore, entitlement *services.EntitlementService, assets storage.ObjectStore, events mq.Publisher) *GamesHandler {
	return &GamesHandler{
		games:       games,
		reviews:     reviews,
		entitlement: entitlement,
		assets:      assets,
		events:      events,
	}
}

// gameFilter captures the catalog query parameters.
type gameFilter struct {
	Genre     string
	Language  string
	Name      string
	Publisher string
	Developer string
	MinRating float64
	HasRating bool
}

func (f gameFilter) matches(game *models.Game, rating float64) bool {
	if f.Genre != "" && !game.HasGenre(f.Genre) {
		return false
	}
	if f.Language != "" && !game.HasLanguage(f.Language) {
		return false
	}
	if f.Name != "" && !strings.Contains(strings.ToLower(game.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Publisher != "" && !strings.Contains(strings.ToLower(game.Publisher), strings.ToLower(f.Publisher)) {
		return false
	}
	if f.Developer != "" && !strings.Contains(strings.ToLower(game.Developer), strings.ToLower(f.Developer)) {
		return false
	}
	if f.HasRating && rating < f.MinRating {
		return false
	}
	return true
}

// ListGames returns the visible catalog, filtered by the query parameters.
// The displayed rating is derived from each game's reviews on the fly.
func (h *GamesHandler) ListGames(ctx *gin.Context) {
	filter := gameFilter{
		Genre:     strings.TrimSpace(ctx.Query("genre")),
		Language:  strings.TrimSpace(ctx.Query("language")),
		Name:      strings.TrimSpace(ctx.Query("name")),
		Publisher: strings.TrimSpace(ctx.Query("publisher")),
		Developer: strings.TrimSpace(ctx.Query("developer")),
	}

	if raw := ctx.Query("rating"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating filter"})
			return
		}

		filter.MinRating = value
		filter.HasRating = true
	}

	games, err := h.games.ListGames()

	if err != nil {
		log.Printf("Failed to list games: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	response := make([]types.GameResponse, 0, len(games))

	for i := range games {
		game := &games[i]

		if !game.Visible {
			continue
		}

		rating, err := h.ratingFor(game.ID)

		if err != nil {
			log.Printf("Failed to compute rating for game %d: %v", game.ID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
			return
		}

		if filter.matches(game, rating) {
			response = append(response, toGameResponse(game, rating))
		}
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *GamesHandler) GetGame(ctx *gin.Context) {
	game, ok := h.lookupGame(ctx)

	if !ok {
		return
	}

	rating, err := h.ratingFor(game.ID)

	if err != nil {
		log.Printf("Failed to compute rating for game %d: %v", game.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return
	}

	ctx.JSON(http.StatusOK, toGameResponse(game, rating))
}

func (h *GamesHandler) CreateGame(ctx *gin.Context) {
	var req CreateGameRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	game := models.Game{
		Name:        req.Name,
		Developer:   req.Developer,
		Publisher:   req.Publisher,
		Genres:      req.Genres,
		Languages:   req.Languages,
		Price:       req.Price,
		Description: req.Description,
		ReleaseDate: req.ReleaseDate,
		Visible:     true,
	}

	if err := h.games.CreateGame(&game); err != nil {
		log.Printf("Failed to create game: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to create game"})
		return
	}

	ctx.JSON(http.StatusCreated, toGameResponse(&game, 0))
}

// applyGamePatch merges the present fields of patch into game. Pure: no
// validation, no persistence.
func applyGamePatch(game models.Game, patch UpdateGameRequest) models.Game {
	if patch.Name != nil {
		game.Name = *patch.Name
	}
	if patch.Developer != nil {
		game.Developer = *patch.Developer
	}
	if patch.Publisher != nil {
		game.Publisher = *patch.Publisher
	}
	if patch.Genres != nil {
		game.Genres = *patch.Genres
	}
	if patch.Languages != nil {
		game.Languages = *patch.Languages
	}
	if patch.Price != nil {
		game.Price = *patch.Price
	}
	if patch.Description != nil {
		game.Description = *patch.Description
	}
	if patch.ReleaseDate != nil {
		game.ReleaseDate = *patch.ReleaseDate
	}
	return game
}

func (h *GamesHandler) UpdateGame(ctx *gin.Context) {
	game, ok := h.lookupGame(ctx)

	if !ok {
		return
	}

	var patch UpdateGameRequest

	if err := ctx.BindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if patch.Price != nil && *patch.Price < 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	updated := applyGamePatch(*game, patch)

	if err := h.games.SaveGame(&updated); err != nil {
		log.Printf("Failed to update game: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to update game"})
		return
	}

	rating, err := h.ratingFor(updated.ID)

	if err != nil {
		log.Printf("Failed to compute rating for game %d: %v", updated.ID, err)
		rating = 0
	}

	ctx.JSON(http.StatusOK, toGameResponse(&updated, rating))
}

// DeleteGame toggles catalog visibility. Games are never hard-deleted so
// that libraries and reviews keep valid references.
func (h *GamesHandler) DeleteGame(ctx *gin.Context) {
	game, ok := h.lookupGame(ctx)

	if !ok {
		return
	}

	game.Visible = !game.Visible

	if err := h.games.SaveGame(game); err != nil {
		log.Printf("Failed to toggle game visibility: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to delete game"})
		return
	}

	rating, err := h.ratingFor(game.ID)

	if err != nil {
		rating = 0
	}

	ctx.JSON(http.StatusOK, toGameResponse(game, rating))
}

func (h *GamesHandler) UploadImage(ctx *gin.Context) {
	game, ok := h.lookupGame(ctx)

	if !ok {
		return
	}

	header, err := ctx.FormFile("file")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}

	contentType := header.Header.Get("Content-Type")

	if !strings.HasPrefix(contentType, "image/") {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file is not an image"})
		return
	}

	file, err := header.Open()

	if err != nil {
		log.Printf("Failed to open uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer file.Close()

	key := uuid.New().String() + filepath.Ext(header.Filename)

	if err := h.assets.Upload(ctx.Request.Context(), key, contentType, file); err != nil {
		log.Printf("Failed to upload game image: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to store image"})
		return
	}

	game.MainImage = key

	if err := h.games.SaveGame(game); err != nil {
		log.Printf("Failed to save game: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to update game"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"main_image": key})
}

func (h *GamesHandler) GetImage(ctx *gin.Context) {
	game, ok := h.lookupGame(ctx)

	if !ok {
		return
	}

	if game.MainImage == "" {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Game has no image"})
		return
	}

	data, contentType, err := h.assets.Download(ctx.Request.Context(), game.MainImage)

	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Game image not found"})
			return
		}
		log.Printf("Failed to fetch game image: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to retrieve image"})
		return
	}

	ctx.Data(http.StatusOK, contentType, data)
}

func (h *GamesHandler) UploadFile(ctx *gin.Context) {
	game, ok := h.lookupGame(ctx)

	if !ok {
		return
	}

	header, err := ctx.FormFile("file")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}

	file, err := header.Open()

	if err != nil {
		log.Printf("Failed to open uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := uuid.New().String() + filepath.Ext(header.Filename)

	if err := h.assets.Upload(ctx.Request.Context(), key, contentType, file); err != nil {
		log.Printf("Failed to upload game file: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to store file"})
		return
	}

	game.File = key

	if err := h.games.SaveGame(game); err != nil {
		log.Printf("Failed to save game: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to update game"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"file": key})
}

// Download streams the game binary to its buyer. On success the sell count
// goes up, the game lands in the user's library and disappears from their
// wishlist; a download event is published best effort.
func (h *GamesHandler) Download(ctx *gin.Context) {
	game, ok := h.lookupGame(ctx)

	if !ok {
		return
	}

	current, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	userID, err := strconv.ParseUint(ctx.Query("user_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if uint(userID) != current.ID && current.Role != models.RoleAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if game.File == "" {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Game has no downloadable file"})
		return
	}

	data, contentType, err := h.assets.Download(ctx.Request.Context(), game.File)

	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Game file not found"})
			return
		}
		log.Printf("Failed to fetch game file: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to retrieve file"})
		return
	}

	game.SellNumber++

	if err := h.games.SaveGame(game); err != nil {
		log.Printf("Failed to update sell count: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to record download"})
		return
	}

	if _, err := h.entitlement.Grant(uint(userID), game.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Library not found"})
			return
		}
		log.Printf("Failed to grant entitlement: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to record download"})
		return
	}

	// Best effort: a stats consumer losing an event must not fail the download.
	if err := h.events.PublishDownload(ctx.Request.Context(), mq.DownloadEvent{
		UserID:       uint(userID),
		GameID:       game.ID,
		GameName:     game.Name,
		Price:        game.Price,
		DownloadedAt: time.Now(),
	}); err != nil {
		log.Printf("Failed to publish download event: %v", err)
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", game.File))
	ctx.Data(http.StatusOK, contentType, data)
}

func (h *GamesHandler) ratingFor(gameID uint) (float64, error) {
	reviews, err := h.reviews.ReviewsByGame(gameID)

	if err != nil {
		return 0, err
	}

	return services.AverageRating(reviews), nil
}

func (h *GamesHandler) lookupGame(ctx *gin.Context) (*models.Game, bool) {
	id, err := strconv.ParseUint(ctx.Param("game_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return nil, false
	}

	game, err := h.games.GameByID(uint(id))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return nil, false
		}
		log.Printf("Failed to fetch game: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game"})
		return nil, false
	}

	return game, true
}
