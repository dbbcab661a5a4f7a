package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
)

// UserRepository defines data access operations for users
type UserRepository interface {
	// Create persists a new user
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetByEmail retrieves a user by normalized email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
