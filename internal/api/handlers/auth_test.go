package handlers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundhatch/namesmith-api/internal/config"
	"github.com/soundhatch/namesmith-api/internal/models"
)

func TestGenerateAccessTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(nil, cfg)

	user := &models.User{Email: "test@example.com"}
	user.ID = 42

	tokenString, err := handler.generateAccessToken(user)
	require.NoError(t, err)

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, tokenIssuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(accessTokenDuration), claims.ExpiresAt.Time, time.Minute)
}

func TestRefreshTokenOutlivesAccessToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(nil, cfg)

	user := &models.User{Email: "test@example.com"}
	user.ID = 7

	refreshString, err := handler.generateRefreshToken(user)
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(refreshString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now().Add(refreshTokenDuration), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	handler := NewAuthHandler(nil, &config.Config{JWTSecret: "secret-a"})

	user := &models.User{Email: "test@example.com"}
	user.ID = 1

	tokenString, err := handler.generateAccessToken(user)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	assert.Error(t, err)
}
