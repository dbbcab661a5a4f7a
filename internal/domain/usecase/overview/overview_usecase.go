package overview

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/persistence"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
)

// Aggregation constants
const (
	// RecentTransactionCount is how many transactions the snapshot carries
	RecentTransactionCount = 5
	// DueSoonLimit caps the snapshot's due-soon bill list
	DueSoonLimit = 2
	// DueSoonWindowDays is the size of the due-soon window in days
	DueSoonWindowDays = 5
	// DefaultTrendMonths is the trends window when the caller doesn't pick one
	DefaultTrendMonths = 6
	// MaxTrendMonths bounds the trends window
	MaxTrendMonths = 24
)

// OverviewUseCase composes the dashboard snapshot from independent read
// aggregates. Sub-queries run concurrently; any single failure aborts the
// whole snapshot.
type OverviewUseCase struct {
	transactionRepo persistence.TransactionRepository
	budgetRepo      persistence.BudgetRepository
	potRepo         persistence.PotRepository
	billRepo        persistence.RecurringBillRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewOverviewUseCase creates a new overview use case instance
func NewOverviewUseCase(
	transactionRepo persistence.TransactionRepository,
	budgetRepo persistence.BudgetRepository,
	potRepo persistence.PotRepository,
	billRepo persistence.RecurringBillRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.OverviewUseCase {
	return &OverviewUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		potRepo:         potRepo,
		billRepo:        billRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetOverviewData composes the full dashboard snapshot for a user
func (u *OverviewUseCase) GetOverviewData(ctx context.Context, userID uuid.UUID) (*usecase.OverviewSnapshot, error) {
	now := u.timeProvider.Now()
	monthStart, monthEnd := entity.MonthBounds(now)

	// The due-soon window's upper bound is anchored to the user's most
	// recent transaction date when one exists, falling back to wall-clock
	// now; the lower bound is always wall-clock today. The asymmetry
	// mirrors the product behavior and is pending clarification.
	latest, err := u.transactionRepo.LatestTransactionDate(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to resolve reference date", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	referenceDate := now
	if latest != nil {
		referenceDate = *latest
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	windowEnd := referenceDate.AddDate(0, 0, DueSoonWindowDays)

	var (
		balance          decimal.Decimal
		income, expenses decimal.Decimal
		pots             []*entity.Pot
		budgets          []*entity.Budget
		spentByCategory  map[entity.Category]decimal.Decimal
		recent           []*entity.Transaction
		billSummary      *persistence.BillSummary
		dueSoon          []*persistence.DueSoonBill
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		balance, err = u.transactionRepo.CurrentBalance(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		income, expenses, err = u.transactionRepo.MonthStats(gctx, userID, monthStart, monthEnd)
		return err
	})
	g.Go(func() error {
		var err error
		pots, err = u.potRepo.List(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = u.budgetRepo.ListByCategory(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		spentByCategory, err = u.transactionRepo.CategoryExpenseSums(gctx, userID, monthStart, monthEnd)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = u.transactionRepo.Recent(gctx, userID, RecentTransactionCount)
		return err
	})
	g.Go(func() error {
		var err error
		billSummary, err = u.billRepo.Summary(gctx, userID, monthStart, monthEnd, windowEnd)
		return err
	})
	g.Go(func() error {
		var err error
		dueSoon, err = u.billRepo.DueSoon(gctx, userID, today, windowEnd, DueSoonLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		u.logger.Error("Overview aggregation failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	snapshot := &usecase.OverviewSnapshot{
		CurrentBalance:     balance,
		Income:             income,
		Expenses:           expenses,
		Pots:               foldPots(pots),
		Budgets:            foldBudgets(budgets, spentByCategory),
		RecurringBills:     foldBills(billSummary, dueSoon),
		RecentTransactions: recent,
	}

	u.logger.Debug("Overview snapshot composed", map[string]any{
		"user_id":         userID,
		"current_balance": entity.FormatAmount(balance),
		"pot_count":       snapshot.Pots.Count,
		"budget_count":    len(snapshot.Budgets.Categories),
	})

	return snapshot, nil
}

// GetMonthlyTrends returns per-month income and expense totals over the last
// months calendar months, most recent first. Months with no transactions are
// omitted, not zero-filled.
func (u *OverviewUseCase) GetMonthlyTrends(ctx context.Context, userID uuid.UUID, months int) ([]*usecase.MonthlyTrend, error) {
	if months < 1 || months > MaxTrendMonths {
		return nil, errs.ErrValidation
	}

	since := u.timeProvider.Now().AddDate(0, -months, 0)

	totals, err := u.transactionRepo.MonthlyTotals(ctx, userID, since)
	if err != nil {
		u.logger.Error("Failed to aggregate monthly trends", map[string]any{
			"user_id": userID,
			"months":  months,
			"error":   err.Error(),
		})
		return nil, err
	}

	trends := make([]*usecase.MonthlyTrend, 0, len(totals))
	for _, t := range totals {
		trends = append(trends, &usecase.MonthlyTrend{
			Month:    t.Month,
			Income:   t.Income,
			Expenses: t.Expenses,
		})
	}
	return trends, nil
}

// foldPots derives the pots summary from the full pot list
func foldPots(pots []*entity.Pot) usecase.PotsSummary {
	totalSaved := decimal.Zero
	for _, p := range pots {
		totalSaved = totalSaved.Add(p.Total)
	}
	if pots == nil {
		pots = []*entity.Pot{}
	}
	return usecase.PotsSummary{
		TotalSaved: totalSaved,
		Count:      len(pots),
		Details:    pots,
	}
}

// foldBudgets annotates each budget with its current-month spending and
// accumulates the totals. Budgets arrive ordered by category name.
func foldBudgets(budgets []*entity.Budget, spentByCategory map[entity.Category]decimal.Decimal) usecase.BudgetsSummary {
	totalBudget := decimal.Zero
	totalSpent := decimal.Zero
	categories := make([]*usecase.BudgetCategory, 0, len(budgets))

	for _, b := range budgets {
		spent := spentByCategory[b.Category]
		totalBudget = totalBudget.Add(b.Maximum)
		totalSpent = totalSpent.Add(spent)
		categories = append(categories, &usecase.BudgetCategory{
			Budget: b,
			Spent:  spent,
		})
	}

	return usecase.BudgetsSummary{
		TotalBudget: totalBudget,
		TotalSpent:  totalSpent,
		Remaining:   totalBudget.Sub(totalSpent),
		Categories:  categories,
	}
}

// foldBills combines the bill summary aggregate with the due-soon list
func foldBills(summary *persistence.BillSummary, dueSoon []*persistence.DueSoonBill) usecase.RecurringBillsSummary {
	if dueSoon == nil {
		dueSoon = []*persistence.DueSoonBill{}
	}
	return usecase.RecurringBillsSummary{
		TotalBills:     summary.TotalBills,
		PaidAmount:     summary.PaidAmount,
		UpcomingAmount: summary.UpcomingAmount,
		DueSoonAmount:  summary.DueSoonAmount,
		DueSoon:        dueSoon,
	}
}
