package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/persistence"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
)

// LatestTransactionCount is how many recent category transactions accompany
// a spending breakdown
const LatestTransactionCount = 3

// BudgetUseCase implements budget business logic including the per-budget
// spending computation
type BudgetUseCase struct {
	budgetRepo      persistence.BudgetRepository
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewBudgetUseCase creates a new budget use case instance
func NewBudgetUseCase(
	budgetRepo persistence.BudgetRepository,
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.BudgetUseCase {
	return &BudgetUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// CreateBudget creates a budget; at most one per (user, category)
func (u *BudgetUseCase) CreateBudget(ctx context.Context, userID uuid.UUID, req usecase.CreateBudgetRequest) (*entity.Budget, error) {
	budget, err := entity.NewBudget(userID, req.Category, req.Maximum, req.Theme, u.timeProvider)
	if err != nil {
		return nil, err
	}

	existing, err := u.budgetRepo.GetByCategory(ctx, userID, budget.Category)
	if err != nil && !errs.IsNotFoundError(err) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrDuplicateBudget
	}

	if err := u.budgetRepo.Create(ctx, budget); err != nil {
		u.logger.Error("Failed to create budget", map[string]any{
			"user_id":  userID,
			"category": budget.Category,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Budget created", map[string]any{
		"user_id":   userID,
		"budget_id": budget.ID,
		"category":  budget.Category,
	})

	return budget, nil
}

// GetBudget retrieves one budget owned by the user
func (u *BudgetUseCase) GetBudget(ctx context.Context, userID, budgetID uuid.UUID) (*entity.Budget, error) {
	return u.budgetRepo.GetByID(ctx, userID, budgetID)
}

// GetBudgets returns the user's budgets, newest first
func (u *BudgetUseCase) GetBudgets(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	return u.budgetRepo.List(ctx, userID)
}

// GetBudgetWithSpending computes spent, remaining and percentage for one
// budget from the current calendar month's expense sum in its category,
// along with the category's latest transactions regardless of month.
func (u *BudgetUseCase) GetBudgetWithSpending(ctx context.Context, userID, budgetID uuid.UUID) (*usecase.BudgetSpending, error) {
	budget, err := u.budgetRepo.GetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	monthStart, monthEnd := entity.MonthBounds(u.timeProvider.Now())

	spent, err := u.transactionRepo.CategoryExpenseSum(ctx, userID, budget.Category, monthStart, monthEnd)
	if err != nil {
		u.logger.Error("Failed to sum category spending", map[string]any{
			"user_id":   userID,
			"budget_id": budgetID,
			"category":  budget.Category,
			"error":     err.Error(),
		})
		return nil, err
	}

	latest, err := u.transactionRepo.LatestByCategory(ctx, userID, budget.Category, LatestTransactionCount)
	if err != nil {
		return nil, err
	}

	remaining, percentage := budget.SpendingFor(spent)

	return &usecase.BudgetSpending{
		Budget:             budget,
		Spent:              spent,
		Remaining:          remaining,
		Percentage:         percentage,
		LatestTransactions: latest,
	}, nil
}

// UpdateBudget applies the non-nil fields of the request
func (u *BudgetUseCase) UpdateBudget(ctx context.Context, userID, budgetID uuid.UUID, req usecase.UpdateBudgetRequest) (*entity.Budget, error) {
	budget, err := u.budgetRepo.GetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	changed := false

	if req.Category != nil {
		if !entity.IsValidCategory(*req.Category) {
			return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCategory, *req.Category)
		}
		newCategory := entity.Category(*req.Category)
		if newCategory != budget.Category {
			existing, err := u.budgetRepo.GetByCategory(ctx, userID, newCategory)
			if err != nil && !errs.IsNotFoundError(err) {
				return nil, err
			}
			if existing != nil {
				return nil, errs.ErrDuplicateBudget
			}
			budget.Category = newCategory
			changed = true
		}
	}
	if req.Maximum != nil {
		maximum, err := entity.ParsePositiveAmount(*req.Maximum)
		if err != nil {
			return nil, err
		}
		budget.Maximum = maximum
		changed = true
	}
	if req.Theme != nil {
		budget.Theme = *req.Theme
		changed = true
	}

	if !changed {
		return budget, nil
	}

	budget.UpdatedAt = u.timeProvider.Now()

	if err := u.budgetRepo.Update(ctx, budget); err != nil {
		u.logger.Error("Failed to update budget", map[string]any{
			"user_id":   userID,
			"budget_id": budgetID,
			"error":     err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Budget updated", map[string]any{
		"user_id":   userID,
		"budget_id": budgetID,
	})

	return budget, nil
}

// DeleteBudget removes a budget owned by the user
func (u *BudgetUseCase) DeleteBudget(ctx context.Context, userID, budgetID uuid.UUID) error {
	if err := u.budgetRepo.Delete(ctx, userID, budgetID); err != nil {
		return err
	}

	u.logger.Info("Budget deleted", map[string]any{
		"user_id":   userID,
		"budget_id": budgetID,
	})
	return nil
}
