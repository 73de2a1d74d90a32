package utils

import (
	stderrors "errors"
	"time"

	"campus-pulse/core/config"
	"campus-pulse/core/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenData is the verified content of an access token.
type TokenData struct {
	UserID uuid.UUID
	Email  string
	Role   string
	Scope  string
}

type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed JWT for the given user and scope.
func GenerateToken(userID uuid.UUID, email string, role string, scope string) (string, error) {
	cfg := config.Get()

	ttl := time.Duration(cfg.JWT.AccessTokenTTL) * time.Minute
	if scope == "refresh" {
		ttl = time.Duration(cfg.JWT.RefreshTokenTTL) * time.Minute
	}

	claims := tokenClaims{
		Email: email,
		Role:  role,
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ValidateAndParseToken verifies the signature and expiry, returning the
// token's content or an AppError suitable for the controller layer.
func ValidateAndParseToken(tokenString string) (*TokenData, *errors.AppError) {
	cfg := config.Get()

	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		// jwt/v5 wraps its sentinels, so compare with errors.Is.
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.NewAppError(errors.ErrTokenExpired, "token expired", err)
		}
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid token", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid token claims", nil)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid token subject", err)
	}

	return &TokenData{
		UserID: userID,
		Email:  claims.Email,
		Role:   claims.Role,
		Scope:  claims.Scope,
	}, nil
}
