package auth

import (
	"context"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/persistence"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
)

// AuthUseCase implements signup, login and token verification
type AuthUseCase struct {
	userRepo     persistence.UserRepository
	tokens       *TokenManager
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAuthUseCase creates a new auth use case instance
func NewAuthUseCase(
	userRepo persistence.UserRepository,
	tokens *TokenManager,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Signup registers a new user and returns a signed token
func (u *AuthUseCase) Signup(ctx context.Context, req usecase.SignupRequest) (*usecase.AuthResponse, error) {
	if !isStrongPassword(req.Password) {
		return nil, errs.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(req.Name, req.Email, string(hash), u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"email": user.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	return u.issueToken(user)
}

// Login verifies credentials and returns a signed token
func (u *AuthUseCase) Login(ctx context.Context, req usecase.LoginRequest) (*usecase.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		u.logger.Warn("Login failed", map[string]any{
			"email": email,
		})
		return nil, errs.ErrInvalidCredentials
	}

	u.logger.Info("User logged in successfully", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	return u.issueToken(user)
}

// GetProfile retrieves the authenticated user's profile
func (u *AuthUseCase) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// VerifyAccessToken validates a bearer token and returns the caller's user ID
func (u *AuthUseCase) VerifyAccessToken(token string) (uuid.UUID, error) {
	return u.tokens.Verify(token)
}

func (u *AuthUseCase) issueToken(user *entity.User) (*usecase.AuthResponse, error) {
	token, err := u.tokens.Generate(user.ID, user.Email)
	if err != nil {
		u.logger.Error("Failed to sign token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	return &usecase.AuthResponse{
		User:      user,
		Token:     token,
		ExpiresIn: u.tokens.Expiry().String(),
	}, nil
}

// isStrongPassword requires at least 8 characters with an upper-case letter,
// a lower-case letter and a digit
func isStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}
