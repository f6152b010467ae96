package handlers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/darkhuo10/vgameshop/internal/models"
	"github.com/darkhuo10/vgameshop/internal/storage"
	"github.com/darkhuo10/vgameshop/internal/store"
)

// UpdateUserRequest carries only the fields the client wants changed; nil
// fields keep the stored value.
type UpdateUserRequest struct {
	Name      *string    `json:"name"`
	Surname   *string    `json:"surname"`
	Email     *string    `json:"email" binding:"omitempty,email"`
	Password  *string    `json:"password"`
	Birthdate *time.Time `json:"birthdate"`
}

type UsersHandler struct {
	users  store.UserStore
	assets storage.ObjectStore
}

func NewUsersHandler(users store.UserStore, assets storage.ObjectStore) *UsersHandler {
	return &UsersHandler{users: users, assets: assets}
}

func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	var active *bool

	if raw := ctx.Query("active"); raw != "" {
		value, err := strconv.ParseBool(raw)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid active filter"})
			return
		}

		active = &value
	}

	users, err := h.users.ListUsers(active)

	if err != nil {
		log.Printf("Failed to list users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	response := make([]any, 0, len(users))

	for i := range users {
		response = append(response, toUserResponse(&users[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *UsersHandler) GetUser(ctx *gin.Context) {
	user, ok := h.lookupUser(ctx)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, toUserResponse(user))
}

// applyUserPatch merges the present fields of patch into user. Pure: no
// validation, no persistence.
func applyUserPatch(user models.User, patch UpdateUserRequest) models.User {
	if patch.Name != nil {
		user.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Surname != nil {
		user.Surname = strings.TrimSpace(*patch.Surname)
	}
	if patch.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*patch.Email))
	}
	if patch.Birthdate != nil {
		user.Birthdate = *patch.Birthdate
	}
	return user
}

func (h *UsersHandler) UpdateUser(ctx *gin.Context) {
	user, ok := h.lookupUser(ctx)

	if !ok {
		return
	}

	var patch UpdateUserRequest

	if err := ctx.BindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if patch.Name != nil && len(strings.TrimSpace(*patch.Name)) < 2 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name must be at least 2 characters"})
		return
	}

	updated := applyUserPatch(*user, patch)

	if patch.Password != nil {
		if len(*patch.Password) < 5 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 5 characters"})
			return
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)

		if err != nil {
			log.Printf("Failed to hash password: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		updated.PasswordHash = string(passwordHash)
	}

	if err := h.users.SaveUser(&updated); err != nil {
		log.Printf("Failed to update user: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to update user"})
		return
	}

	ctx.JSON(http.StatusOK, toUserResponse(&updated))
}

// DeleteUser is a soft toggle: it disables an enabled account and re-enables
// a disabled one. Accounts are never hard-deleted.
func (h *UsersHandler) DeleteUser(ctx *gin.Context) {
	user, ok := h.lookupUser(ctx)

	if !ok {
		return
	}

	user.Active = !user.Active

	if err := h.users.SaveUser(user); err != nil {
		log.Printf("Failed to toggle user: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to delete user"})
		return
	}

	ctx.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UsersHandler) UploadPicture(ctx *gin.Context) {
	user, ok := h.lookupUser(ctx)

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
		log.Printf("Failed to upload profile picture: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to store picture"})
		return
	}

	user.ProfilePicture = key

	if err := h.users.SaveUser(user); err != nil {
		log.Printf("Failed to save user: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to update user"})
		return
	}

	ctx.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UsersHandler) GetPicture(ctx *gin.Context) {
	user, ok := h.lookupUser(ctx)

	if !ok {
		return
	}

	if user.ProfilePicture == "" {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User has no profile picture"})
		return
	}

	data, contentType, err := h.assets.Download(ctx.Request.Context(), user.ProfilePicture)

	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile picture not found"})
			return
		}
		log.Printf("Failed to fetch profile picture: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to retrieve picture"})
		return
	}

	ctx.Data(http.StatusOK, contentType, data)
}

func (h *UsersHandler) lookupUser(ctx *gin.Context) (*models.User, bool) {
	id, err := strconv.ParseUint(ctx.Param("user_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return nil, false
	}

	user, err := h.users.UserByID(uint(id))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return nil, false
		}
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return nil, false
	}

	return user, true
}
