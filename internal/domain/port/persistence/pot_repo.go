package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
)

// PotRepository defines data access operations for savings pots
type PotRepository interface {
	// Create persists a new pot
	Create(ctx context.Context, pot *entity.Pot) error

	// GetByID retrieves a pot owned by the user
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Pot, error)

	// List returns the user's pots ordered by creation time, newest first
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Pot, error)

	// Update persists changes to an existing pot
	Update(ctx context.Context, pot *entity.Pot) error

	// Delete removes a pot owned by the user
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
