package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/model"
)

// BudgetRepository implements BudgetRepository interface using GORM
type BudgetRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBudgetRepository creates a new BudgetRepository instance
func NewBudgetRepository(db *gorm.DB, logger coreport.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a budget entity to a database model
func (r *BudgetRepository) entityToModel(budget *entity.Budget) model.Budget {
	return model.Budget{
		ID:        budget.ID,
		UserID:    budget.UserID,
		Category:  string(budget.Category),
		Maximum:   budget.Maximum,
		Theme:     budget.Theme,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}

// modelToEntity converts a database model to a budget entity
func (r *BudgetRepository) modelToEntity(budgetModel *model.Budget) *entity.Budget {
	return &entity.Budget{
		ID:        budgetModel.ID,
		UserID:    budgetModel.UserID,
		Category:  entity.Category(budgetModel.Category),
		Maximum:   budgetModel.Maximum,
		Theme:     budgetModel.Theme,
		CreatedAt: budgetModel.CreatedAt,
		UpdatedAt: budgetModel.UpdatedAt,
	}
}

// Create saves a new budget
func (r *BudgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	r.logger.Debug("Creating budget", map[string]any{
		"budget_id": budget.ID.String(),
		"user_id":   budget.UserID.String(),
		"category":  string(budget.Category),
	})

	budgetModel := r.entityToModel(budget)

	result := r.db.WithContext(ctx).Create(&budgetModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate budget category", map[string]any{
				"user_id":  budget.UserID.String(),
				"category": string(budget.Category),
			})
			return errs.ErrDuplicateBudget
		}

		r.logger.Error("Failed to create budget", map[string]any{
			"budget_id": budget.ID.String(),
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return nil
}

// GetByID retrieves a budget owned by the user
func (r *BudgetRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.Budget

	result := r.db.WithContext(ctx).
		First(&budgetModel, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrBudgetNotFound
		}
		r.logger.Error("Failed to get budget", map[string]any{
			"budget_id": id.String(),
			"error":     result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&budgetModel), nil
}

// GetByCategory retrieves the user's budget for a category, if any
func (r *BudgetRepository) GetByCategory(ctx context.Context, userID uuid.UUID, category entity.Category) (*entity.Budget, error) {
	var budgetModel model.Budget

	result := r.db.WithContext(ctx).
		First(&budgetModel, "user_id = ? AND category = ?", userID, string(category))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrBudgetNotFound
		}
		r.logger.Error("Failed to get budget by category", map[string]any{
			"user_id":  userID.String(),
			"category": string(category),
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&budgetModel), nil
}

// List returns the user's budgets ordered by creation time, newest first
func (r *BudgetRepository) List(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	return r.list(ctx, userID, "created_at DESC")
}

// ListByCategory returns the user's budgets ordered by category name
func (r *BudgetRepository) ListByCategory(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	return r.list(ctx, userID, "category ASC")
}

func (r *BudgetRepository) list(ctx context.Context, userID uuid.UUID, order string) ([]*entity.Budget, error) {
	var budgetModels []model.Budget

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(order).
		Find(&budgetModels)
	if result.Error != nil {
		r.logger.Error("Failed to list budgets", map[string]any{
			"user_id": userID.String(),
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	budgets := make([]*entity.Budget, 0, len(budgetModels))
	for i := range budgetModels {
		budgets = append(budgets, r.modelToEntity(&budgetModels[i]))
	}

	return budgets, nil
}

// Update persists changes to an existing budget
func (r *BudgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := r.entityToModel(budget)

	result := r.db.WithContext(ctx).Model(&model.Budget{}).
		Where("id = ? AND user_id = ?", budget.ID, budget.UserID).
		Updates(map[string]interface{}{
			"category":   budgetModel.Category,
			"maximum":    budgetModel.Maximum,
			"theme":      budgetModel.Theme,
			"updated_at": budgetModel.UpdatedAt,
		})
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicateBudget
		}
		r.logger.Error("Failed to update budget", map[string]any{
			"budget_id": budget.ID.String(),
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrBudgetNotFound
	}

	return nil
}

// Delete removes a budget owned by the user
func (r *BudgetRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Budget{})
	if result.Error != nil {
		r.logger.Error("Failed to delete budget", map[string]any{
			"budget_id": id.String(),
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrBudgetNotFound
	}

	return nil
}
