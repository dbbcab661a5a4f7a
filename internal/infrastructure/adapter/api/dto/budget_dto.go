package dto

import (
	"time"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
)

// CreateBudgetRequest represents the API request for creating a budget
type CreateBudgetRequest struct {
	Category string `json:"category" binding:"required"`
	Maximum  string `json:"maximum" binding:"required"`
	Theme    string `json:"theme" binding:"required,max=50"`
}

// UpdateBudgetRequest represents the API request for a partial budget update
type UpdateBudgetRequest struct {
	Category *string `json:"category"`
	Maximum  *string `json:"maximum"`
	Theme    *string `json:"theme" binding:"omitempty,max=50"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Maximum   string    `json:"maximum"`
	Theme     string    `json:"theme"`
	CreatedAt time.Time `json:"createdAt"`
}

// BudgetSpendingResponse is a budget's current-month spending breakdown
type BudgetSpendingResponse struct {
	Budget             BudgetResponse        `json:"budget"`
	Spent              string                `json:"spent"`
	Remaining          string                `json:"remaining"`
	Percentage         string                `json:"percentage"`
	LatestTransactions []TransactionResponse `json:"latestTransactions"`
}

// NewBudgetResponse maps a budget entity to its API representation
func NewBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID.String(),
		Category:  string(budget.Category),
		Maximum:   entity.FormatAmount(budget.Maximum),
		Theme:     budget.Theme,
		CreatedAt: budget.CreatedAt,
	}
}

// NewBudgetResponses maps a slice of budget entities
func NewBudgetResponses(budgets []*entity.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, 0, len(budgets))
	for _, budget := range budgets {
		responses = append(responses, NewBudgetResponse(budget))
	}
	return responses
}

// NewBudgetSpendingResponse maps a spending breakdown to its API representation
func NewBudgetSpendingResponse(spending *usecase.BudgetSpending) BudgetSpendingResponse {
	return BudgetSpendingResponse{
		Budget:             NewBudgetResponse(spending.Budget),
		Spent:              entity.FormatAmount(spending.Spent),
		Remaining:          entity.FormatAmount(spending.Remaining),
		Percentage:         spending.Percentage.String(),
		LatestTransactions: NewTransactionResponses(spending.LatestTransactions),
	}
}
