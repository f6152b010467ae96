package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darkhuo10/vgameshop/internal/services"
	"github.com/darkhuo10/vgameshop/internal/store"
	"github.com/darkhuo10/vgameshop/internal/types"
)

type LibrariesHandler struct {
	entitlement *services.EntitlementService
}

func NewLibrariesHandler(entitlement *services.EntitlementService) *LibrariesHandler {
	return &LibrariesHandler{entitlement: entitlement}
}

func (h *LibrariesHandler) ListLibraries(ctx *gin.Context) {
	libraries, err := h.entitlement.Libraries()

	if err != nil {
		log.Printf("Failed to list libraries: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve libraries"})
		return
	}

	response := make([]types.CollectionResponse, 0, len(libraries))

	for _, library := range libraries {
		response = append(response, toCollectionResponse(library.UserID, library.GameIDs))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *LibrariesHandler) GetLibrary(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")

	if !ok {
		return
	}

	library, err := h.entitlement.LibraryOf(userID)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toCollectionResponse(library.UserID, library.GameIDs))
}

// AddGame grants a game outside the download flow, for purchases settled
// elsewhere.
func (h *LibrariesHandler) AddGame(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")

	if !ok {
		return
	}

	gameID, ok := parseIDQuery(ctx, "game_id")

	if !ok {
		return
	}

	library, err := h.entitlement.Grant(userID, gameID)

	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toCollectionResponse(library.UserID, library.GameIDs))
}

func (h *LibrariesHandler) respondError(ctx *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Library not found"})
		return
	}

	log.Printf("Library operation failed: %v", err)
	ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to update library"})
}
