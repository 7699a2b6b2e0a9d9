package utils

import (
	"errors"
	"time"

	"walletdesk/internal/config"
	"walletdesk/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenTypeAccess marks short-lived tokens accepted by the API.
	TokenTypeAccess = "access"
	// TokenTypeRefresh marks tokens accepted only by the refresh endpoint.
	TokenTypeRefresh = "refresh"
)

// GenerateTokens mints an access and a refresh token for the given identity.
// The JWT secret comes from the JWT_SECRET environment variable.
func GenerateTokens(identity models.Identity, subject string) (accessToken, refreshToken string, err error) {
	secret := config.GetEnv("JWT_SECRET", "")
	if secret == "" {
		return "", "", errors.New("JWT_SECRET not configured")
	}

	now := time.Now()
	accessTTL := config.GetDurationEnv("JWT_ACCESS_TTL", 15*time.Minute)
	refreshTTL := config.GetDurationEnv("JWT_REFRESH_TTL", 7*24*time.Hour)

	accessToken, err = signToken(identity, subject, TokenTypeAccess, now, accessTTL, secret)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = signToken(identity, subject, TokenTypeRefresh, now, refreshTTL, secret)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func signToken(identity models.Identity, subject, tokenType string, now time.Time, ttl time.Duration, secret string) (string, error) {
	claims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "walletdesk-api",
			Subject:   subject,
		},
		Kind:       identity.Kind,
		CustomerID: identity.CustomerID,
		EmployeeID: identity.EmployeeID,
		Role:       identity.Role,
		TokenType:  tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a token signature and expiry and returns its claims.
func ParseToken(tokenString string) (*models.UserClaims, error) {
	secret := config.GetEnv("JWT_SECRET", "")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
