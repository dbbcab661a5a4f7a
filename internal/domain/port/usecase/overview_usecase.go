package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/persistence"
)

// PotsSummary aggregates the user's pots for the dashboard
type PotsSummary struct {
	TotalSaved decimal.Decimal
	Count      int
	Details    []*entity.Pot
}

// BudgetCategory is one budget annotated with its current-month spending
type BudgetCategory struct {
	Budget *entity.Budget
	Spent  decimal.Decimal
}

// BudgetsSummary aggregates every budget with its current-month spending
type BudgetsSummary struct {
	TotalBudget decimal.Decimal
	TotalSpent  decimal.Decimal
	Remaining   decimal.Decimal
	Categories  []*BudgetCategory
}

// RecurringBillsSummary aggregates the user's active bills for the dashboard
type RecurringBillsSummary struct {
	TotalBills     int
	PaidAmount     decimal.Decimal
	UpcomingAmount decimal.Decimal
	DueSoonAmount  decimal.Decimal
	DueSoon        []*persistence.DueSoonBill
}

// OverviewSnapshot is the aggregated dashboard snapshot
type OverviewSnapshot struct {
	CurrentBalance     decimal.Decimal
	Income             decimal.Decimal
	Expenses           decimal.Decimal
	Pots               PotsSummary
	Budgets            BudgetsSummary
	RecurringBills     RecurringBillsSummary
	RecentTransactions []*entity.Transaction
}

// MonthlyTrend holds one calendar month's income and expense totals
type MonthlyTrend struct {
	Month    time.Time
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// OverviewUseCase defines the dashboard aggregation operations
type OverviewUseCase interface {
	// GetOverviewData composes the full dashboard snapshot for a user
	GetOverviewData(ctx context.Context, userID uuid.UUID) (*OverviewSnapshot, error)

	// GetMonthlyTrends returns per-month income and expense totals over
	// the last months calendar months, most recent first; months with no
	// transactions are omitted
	GetMonthlyTrends(ctx context.Context, userID uuid.UUID, months int) ([]*MonthlyTrend, error)
}
