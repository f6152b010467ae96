package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret string

func InitJWTSecret() error {
	jwtSecret = os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	return nil
}

// SetJWTSecret overrides the signing secret. Intended for tests.
func SetJWTSecret(secret string) {
	jwtSecret = secret
}

// TokenClaims is the payload carried by a session token.
type TokenClaims struct {
	UserID   uint
	Username string
	Role     string
}

func GenerateJWT(userID uint, username string, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(time.Hour * 48).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func VerifyJWT(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	return token, nil
}

// ParseClaims verifies tokenString and extracts the session claims.
// Expiry is enforced here by the verifier, not by the callers.
func ParseClaims(tokenString string) (TokenClaims, error) {
	token, err := VerifyJWT(tokenString)
	if err != nil {
		return TokenClaims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, fmt.Errorf("invalid token claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return TokenClaims{}, fmt.Errorf("invalid user ID in token claims")
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return TokenClaims{
		UserID:   uint(userIDFloat),
		Username: username,
		Role:     role,
	}, nil
}
