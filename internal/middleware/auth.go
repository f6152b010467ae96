package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/darkhuo10/vgameshop/internal/auth"
	"github.com/darkhuo10/vgameshop/internal/models"
	"github.com/darkhuo10/vgameshop/internal/types"
	"github.com/gin-gonic/gin"
)

type AuthenticatedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthMiddleware verifies the bearer token and stores the decoded session in
// the request context. It fails closed: any missing, malformed, expired or
// otherwise invalid token aborts with 401. It performs no reads or writes
// beyond the context entry.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := auth.ParseClaims(parts[1])

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		})
		ctx.Next()
	}
}

// OptionalAuthMiddleware decodes a bearer token when one is present so that
// read endpoints can personalize their output, but never rejects the
// request. An invalid token is treated the same as no token.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := auth.ParseClaims(parts[1]); err == nil {
				ctx.Set(types.ContextUserKey, AuthenticatedUser{
					ID:       claims.UserID,
					Username: claims.Username,
					Role:     claims.Role,
				})
			}
		}

		ctx.Next()
	}
}

// RequireRoles aborts with 403 unless the authenticated user's role is one
// of allowedRoles. Must run after AuthMiddleware.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := currentUser(ctx)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		for _, role := range allowedRoles {
			if user.Role == role {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	}
}

// RequireRolesOrSelf passes when the token subject's ID equals the idParam
// path parameter, regardless of role. Otherwise only ADMIN (or another role
// in allowedRoles) gets through.
func RequireRolesOrSelf(idParam string, allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := currentUser(ctx)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		if id, err := strconv.ParseUint(ctx.Param(idParam), 10, 64); err == nil && uint(id) == user.ID {
			ctx.Next()
			return
		}

		// A non-matching caller is rejected unless it is an admin and admins
		// are among the allowed roles.
		if user.Role == models.RoleAdmin {
			for _, role := range allowedRoles {
				if role == models.RoleAdmin {
					ctx.Next()
					return
				}
			}
		}

		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	}
}

func currentUser(ctx *gin.Context) (AuthenticatedUser, bool) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return AuthenticatedUser{}, false
	}

	user, ok := value.(AuthenticatedUser)
	return user, ok
}
