package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/darkhuo10/vgameshop/internal/auth"
)

const testSecret = "test-secret-for-jwt-tests"

func TestGenerateAndParseClaims(t *testing.T) {
	auth.SetJWTSecret(testSecret)

	token, err := auth.GenerateJWT(42, "alice", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := auth.ParseClaims(token)
	if err != nil {
		t.Fatalf("ParseClaims: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("expected user ID 42, got %d", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("expected username alice, got %q", claims.Username)
	}
	if claims.Role != "ADMIN" {
		t.Errorf("expected role ADMIN, got %q", claims.Role)
	}
}

func TestParseClaims_WrongSecret(t *testing.T) {
	auth.SetJWTSecret(testSecret)

	token, err := auth.GenerateJWT(1, "bob", "USER")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	auth.SetJWTSecret("a-different-secret")

	if _, err := auth.ParseClaims(token); err == nil {
		t.Fatal("expected verification to fail with a different secret")
	}
}

func TestParseClaims_Expired(t *testing.T) {
	auth.SetJWTSecret(testSecret)

	claims := jwt.MapClaims{
		"user_id":  float64(7),
		"username": "carol",
		"role":     "USER",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := auth.ParseClaims(token); err == nil {
		t.Fatal("expected an expired token to be rejected")
	}
}

func TestParseClaims_Garbage(t *testing.T) {
	auth.SetJWTSecret(testSecret)

	if _, err := auth.ParseClaims("not-a-token"); err == nil {
		t.Fatal("expected a malformed token to be rejected")
	}
}
