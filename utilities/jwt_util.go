package utilities

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fornsaga-backend/internal/model"
)

// Secrets come from the environment. Loaded lazily so that the .env file
// read at startup is honored.
var (
	secretsOnce   sync.Once
	accessSecret  []byte
	refreshSecret []byte
)

func loadSecrets() {
	secretsOnce.Do(func() {
		accessSecret = []byte(os.Getenv("JWT_ACCESS_SECRET"))
		refreshSecret = []byte(os.Getenv("JWT_REFRESH_SECRET"))
	})
}

// Token expiration times
const (
	AccessTokenExpiry  = time.Minute * 15
	RefreshTokenExpiry = time.Hour * 24 * 7
)

// Claims struct
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateTokens creates both access and refresh tokens
func GenerateTokens(user *model.User) (string, string, error) {
	loadSecrets()
	accessToken, err := generateToken(user, accessSecret, AccessTokenExpiry)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := generateToken(user, refreshSecret, RefreshTokenExpiry)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func generateToken(user *model.User, secret []byte, expiry time.Duration) (string, error) {
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken verifies the token and extracts claims
func ValidateToken(tokenStr string, isRefresh bool) (*Claims, error) {
	loadSecrets()
	secret := accessSecret
	if isRefresh {
		secret = refreshSecret
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, errors.New("invalid or malformed token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
