package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/darkhuo10/vgameshop/internal/services"
	"github.com/darkhuo10/vgameshop/internal/store"
	"github.com/darkhuo10/vgameshop/internal/types"
)

type WishlistsHandler struct {
	entitlement *services.EntitlementService
}

func NewWishlistsHandler(entitlement *services.EntitlementService) *WishlistsHandler {
	return &WishlistsHandler{entitlement: entitlement}
}

func (h *WishlistsHandler) ListWishlists(ctx *gin.Context) {
	wishlists, err := h.entitlement.Wishlists()

	if err != nil {
		log.Printf("Failed to list wishlists: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve wishlists"})
		return
	}

	response := make([]types.CollectionResponse, 0, len(wishlists))

	for _, wishlist := range wishlists {
		response = append(response, toCollectionResponse(wishlist.UserID, wishlist.GameIDs))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *WishlistsHandler) GetWishlist(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")

	if !ok {
		return
	}

	wishlist, err := h.entitlement.WishlistOf(userID)

	if err != nil {
		h.respondError(ctx, err, "Wishlist")
		return
	}

	ctx.JSON(http.StatusOK, toCollectionResponse(wishlist.UserID, wishlist.GameIDs))
}

// Exists lets clients check a game's wishlist membership before offering an
// "add to wishlist" action.
func (h *WishlistsHandler) Exists(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")

	if !ok {
		return
	}

	gameID, ok := parseIDQuery(ctx, "game_id")

	if !ok {
		return
	}

	wishlist, err := h.entitlement.WishlistOf(userID)

	if err != nil {
		h.respondError(ctx, err, "Wishlist")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"exists": wishlist.Contains(gameID)})
}

func (h *WishlistsHandler) AddGame(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")

	if !ok {
		return
	}

	gameID, ok := parseIDQuery(ctx, "game_id")

	if !ok {
		return
	}

	wishlist, err := h.entitlement.Wish(userID, gameID)

	if err != nil {
		h.respondError(ctx, err, "Wishlist")
		return
	}

	ctx.JSON(http.StatusOK, toCollectionResponse(wishlist.UserID, wishlist.GameIDs))
}

func (h *WishlistsHandler) RemoveGame(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")

	if !ok {
		return
	}

	gameID, ok := parseIDQuery(ctx, "game_id")

	if !ok {
		return
	}

	wishlist, err := h.entitlement.Unwish(userID, gameID)

	if err != nil {
		h.respondError(ctx, err, "Wishlist")
		return
	}

	ctx.JSON(http.StatusOK, toCollectionResponse(wishlist.UserID, wishlist.GameIDs))
}

func (h *WishlistsHandler) respondError(ctx *gin.Context, err error, entity string) {
	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
		return
	}

	log.Printf("Wishlist operation failed: %v", err)
	ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to update wishlist"})
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}

	return uint(id), true
}

func parseIDQuery(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Query(name), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}

	return uint(id), true
}
