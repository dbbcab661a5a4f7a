package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
)

// SignupRequest represents an incoming signup request
type SignupRequest struct {
	Name     string
	Email    string
	Password string
}

// LoginRequest represents an incoming login request
type LoginRequest struct {
	Email    string
	Password string
}

// AuthResponse carries the authenticated user and their bearer token
type AuthResponse struct {
	User      *entity.User
	Token     string
	ExpiresIn string
}

// AuthUseCase defines methods for authentication business operations
type AuthUseCase interface {
	// Signup registers a new user and returns a signed token
	Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error)

	// Login verifies credentials and returns a signed token
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)

	// GetProfile retrieves the authenticated user's profile
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// VerifyAccessToken validates a bearer token and returns the caller's user ID
	VerifyAccessToken(token string) (uuid.UUID, error)
}
