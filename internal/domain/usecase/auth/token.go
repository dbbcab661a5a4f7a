package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
)

// TokenClaims are the JWT claims carried by an access token
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HMAC access tokens
type TokenManager struct {
	secret       []byte
	expiry       time.Duration
	timeProvider coreport.TimeProvider
}

// NewTokenManager creates a token manager with the given signing secret and lifetime
func NewTokenManager(secret string, expiry time.Duration, timeProvider coreport.TimeProvider) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		expiry:       expiry,
		timeProvider: timeProvider,
	}
}

// Expiry returns the configured token lifetime
func (m *TokenManager) Expiry() time.Duration {
	return m.expiry
}

// Generate signs a new access token for the user
func (m *TokenManager) Generate(userID uuid.UUID, email string) (string, error) {
	now := m.timeProvider.Now()
	claims := TokenClaims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses a signed token and returns the caller's user ID
func (m *TokenManager) Verify(tokenString string) (uuid.UUID, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.timeProvider.Now))

	if err != nil || !token.Valid {
		return uuid.Nil, errs.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, errs.ErrUnauthorized
	}
	return userID, nil
}
