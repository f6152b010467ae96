package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/darkhuo10/vgameshop/internal/auth"
	"github.com/darkhuo10/vgameshop/internal/models"
	"github.com/darkhuo10/vgameshop/internal/store"
	"github.com/darkhuo10/vgameshop/internal/types"
	"github.com/darkhuo10/vgameshop/internal/utils"
)

type RegisterRequest struct {
	Name           string    `json:"name" binding:"required,min=2"`
	Surname        string    `json:"surname"`
	Username       string    `json:"username" binding:"required"`
	Email          string    `json:"email" binding:"required,email"`
	Password       string    `json:"password" binding:"required,min=5"`
	RepeatPassword string    `json:"repeat_password" binding:"required"`
	Birthdate      time.Time `json:"birthdate"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	users store.UserStore
}

func NewAuthHandler(users store.UserStore) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register creates the user together with its empty library and wishlist.
// The three records are written in one transaction, so a failure leaves no
// partial account behind.
func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Password != req.RepeatPassword {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := h.users.UserExists(req.Username, req.Email)

	if err != nil {
		log.Printf("Failed to check existing user: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to create user"})
		return
	}

	if exists {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Surname:      req.Surname,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Birthdate:    req.Birthdate,
		Role:         models.RoleUser,
		Active:       true,
	}

	if err := h.users.Register(&user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
			return
		}
		log.Printf("Failed to register user: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Username, user.Role)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, types.TokenResponse{User: toUserResponse(&user), Token: token})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.users.UserByUsername(req.Username)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Username, user.Role)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.TokenResponse{User: toUserResponse(user), Token: token})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	current, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.users.UserByID(current.ID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}
