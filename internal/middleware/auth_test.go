package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/darkhuo10/vgameshop/internal/auth"
	"github.com/darkhuo10/vgameshop/internal/middleware"
	"github.com/darkhuo10/vgameshop/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
	auth.SetJWTSecret("test-secret-for-middleware-tests")
}

func token(t *testing.T, userID uint, username, role string) string {
	t.Helper()

	tok, err := auth.GenerateJWT(userID, username, role)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	return tok
}

func perform(r *gin.Engine, method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	t.Run("missing header", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/protected", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/protected", "not-a-token")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/protected", token(t, 1, "alice", models.RoleUser))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/open", middleware.OptionalAuthMiddleware(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for _, bearer := range []string{"", "garbage", ""} {
		w := perform(r, http.MethodGet, "/open", bearer)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for bearer %q, got %d", bearer, w.Code)
		}
	}

	w := perform(r, http.MethodGet, "/open", token(t, 1, "alice", models.RoleUser))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequireRoles(t *testing.T) {
	r := gin.New()
	r.GET("/admin", middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		bearer string
		want   int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"regular user", token(t, 1, "alice", models.RoleUser), http.StatusForbidden},
		{"admin", token(t, 2, "root", models.RoleAdmin), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(r, http.MethodGet, "/admin", tt.bearer)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestRequireRolesOrSelf(t *testing.T) {
	r := gin.New()
	r.GET("/users/:user_id", middleware.AuthMiddleware(), middleware.RequireRolesOrSelf("user_id", models.RoleAdmin), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		bearer string
		path   string
		want   int
	}{
		{"self", token(t, 5, "alice", models.RoleUser), "/users/5", http.StatusOK},
		{"other user", token(t, 5, "alice", models.RoleUser), "/users/6", http.StatusForbidden},
		{"admin on other user", token(t, 1, "root", models.RoleAdmin), "/users/6", http.StatusOK},
		{"admin on self", token(t, 1, "root", models.RoleAdmin), "/users/1", http.StatusOK},
		{"no token", "", "/users/5", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(r, http.MethodGet, tt.path, tt.bearer)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}
