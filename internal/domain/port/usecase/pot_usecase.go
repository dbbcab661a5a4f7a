package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
)

// CreatePotRequest represents an incoming pot creation request
type CreatePotRequest struct {
	Name   string
	Target string
	Theme  string
}

// UpdatePotRequest carries the optional fields of a pot update;
// nil fields are left unchanged
type UpdatePotRequest struct {
	Name   *string
	Target *string
	Theme  *string
}

// PotProgress is the saved-versus-target breakdown for one pot
type PotProgress struct {
	Pot       *entity.Pot
	Progress  decimal.Decimal
	Remaining decimal.Decimal
}

// PotUseCase defines methods for savings pot business operations
type PotUseCase interface {
	// CreatePot creates a pot with a zero total
	CreatePot(ctx context.Context, userID uuid.UUID, req CreatePotRequest) (*entity.Pot, error)

	// GetPot retrieves one pot owned by the user
	GetPot(ctx context.Context, userID, potID uuid.UUID) (*entity.Pot, error)

	// GetPots returns the user's pots, newest first
	GetPots(ctx context.Context, userID uuid.UUID) ([]*entity.Pot, error)

	// UpdatePot applies the non-nil fields of the request
	UpdatePot(ctx context.Context, userID, potID uuid.UUID, req UpdatePotRequest) (*entity.Pot, error)

	// DeletePot removes a pot and returns the total it held
	DeletePot(ctx context.Context, userID, potID uuid.UUID) (decimal.Decimal, error)

	// AddMoney increases the pot total by a positive amount
	AddMoney(ctx context.Context, userID, potID uuid.UUID, amount string) (*entity.Pot, error)

	// WithdrawMoney decreases the pot total; withdrawing more than the
	// total fails and leaves the pot unchanged
	WithdrawMoney(ctx context.Context, userID, potID uuid.UUID, amount string) (*entity.Pot, error)

	// GetPotProgress computes the saved percentage and remaining amount
	GetPotProgress(ctx context.Context, userID, potID uuid.UUID) (*PotProgress, error)
}
