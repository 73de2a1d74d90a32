package utils

import (
	"testing"
	"time"

	"campus-pulse/core/config"
	"campus-pulse/core/constants"
	"campus-pulse/core/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func signTestToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := tokenClaims{
		Email: "student@campus.edu",
		Role:  constants.RoleUser,
		Scope: constants.ScopeTokenAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateAndParseToken(t *testing.T) {
	cfg := loadTestConfig(t)

	t.Run("round trip", func(t *testing.T) {
		userID := uuid.New()
		signed, err := GenerateToken(userID, "student@campus.edu", constants.RoleUser, constants.ScopeTokenAccess)
		require.NoError(t, err)

		data, appErr := ValidateAndParseToken(signed)
		require.Nil(t, appErr)
		assert.Equal(t, userID, data.UserID)
		assert.Equal(t, "student@campus.edu", data.Email)
		assert.Equal(t, constants.ScopeTokenAccess, data.Scope)
	})

	t.Run("expired token reports TOKEN_EXPIRED", func(t *testing.T) {
		signed := signTestToken(t, cfg.JWT.Secret, time.Now().Add(-time.Hour))

		_, appErr := ValidateAndParseToken(signed)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrTokenExpired, appErr.Code)
	})

	t.Run("wrong secret reports invalid format", func(t *testing.T) {
		signed := signTestToken(t, "some-other-secret", time.Now().Add(time.Hour))

		_, appErr := ValidateAndParseToken(signed)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidTokenFormat, appErr.Code)
	})

	t.Run("garbage token reports invalid format", func(t *testing.T) {
		_, appErr := ValidateAndParseToken("not-a-token")
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidTokenFormat, appErr.Code)
	})
}
