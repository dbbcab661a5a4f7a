package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
)

// BudgetRepository defines data access operations for budgets
type BudgetRepository interface {
	// Create persists a new budget. A budget already existing for the
	// user's category surfaces as a duplicate error.
	Create(ctx context.Context, budget *entity.Budget) error

	// GetByID retrieves a budget owned by the user
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Budget, error)

	// GetByCategory retrieves the user's budget for a category, if any
	GetByCategory(ctx context.Context, userID uuid.UUID, category entity.Category) (*entity.Budget, error)

	// List returns the user's budgets ordered by creation time, newest first
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// ListByCategory returns the user's budgets ordered by category name
	ListByCategory(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// Update persists changes to an existing budget
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget owned by the user
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
