package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
)

// CreateBudgetRequest represents an incoming budget creation request
type CreateBudgetRequest struct {
	Category string
	Maximum  string
	Theme    string
}

// UpdateBudgetRequest carries the optional fields of a budget update;
// nil fields are left unchanged
type UpdateBudgetRequest struct {
	Category *string
	Maximum  *string
	Theme    *string
}

// BudgetSpending is the spending breakdown for a single budget: the expense
// sum in the budget's category for the current calendar month, the amount
// remaining under the maximum (negative when overspent), the utilization
// percentage, and the category's latest transactions regardless of month.
type BudgetSpending struct {
	Budget             *entity.Budget
	Spent              decimal.Decimal
	Remaining          decimal.Decimal
	Percentage         decimal.Decimal
	LatestTransactions []*entity.Transaction
}

// BudgetUseCase defines methods for budget business operations
type BudgetUseCase interface {
	// CreateBudget creates a budget; at most one per (user, category)
	CreateBudget(ctx context.Context, userID uuid.UUID, req CreateBudgetRequest) (*entity.Budget, error)

	// GetBudget retrieves one budget owned by the user
	GetBudget(ctx context.Context, userID, budgetID uuid.UUID) (*entity.Budget, error)

	// GetBudgets returns the user's budgets, newest first
	GetBudgets(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// GetBudgetWithSpending computes the current-month spending breakdown
	// for one budget
	GetBudgetWithSpending(ctx context.Context, userID, budgetID uuid.UUID) (*BudgetSpending, error)

	// UpdateBudget applies the non-nil fields of the request
	UpdateBudget(ctx context.Context, userID, budgetID uuid.UUID, req UpdateBudgetRequest) (*entity.Budget, error)

	// DeleteBudget removes a budget owned by the user
	DeleteBudget(ctx context.Context, userID, budgetID uuid.UUID) error
}
