package dto

import (
	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
)

// OverviewResponse is the aggregated dashboard snapshot
type OverviewResponse struct {
	CurrentBalance     string                        `json:"currentBalance"`
	Income             string                        `json:"income"`
	Expenses           string                        `json:"expenses"`
	Pots               PotsSummaryResponse           `json:"pots"`
	Budgets            BudgetsSummaryResponse        `json:"budgets"`
	RecurringBills     RecurringBillsSummaryResponse `json:"recurringBills"`
	RecentTransactions []TransactionResponse         `json:"recentTransactions"`
}

// PotsSummaryResponse aggregates the user's pots
type PotsSummaryResponse struct {
	TotalSaved string        `json:"totalSaved"`
	Count      int           `json:"count"`
	Details    []PotResponse `json:"details"`
}

// BudgetCategoryResponse is one budget annotated with its spending
type BudgetCategoryResponse struct {
	Budget BudgetResponse `json:"budget"`
	Spent  string         `json:"spent"`
}

// BudgetsSummaryResponse aggregates budgets with current-month spending
type BudgetsSummaryResponse struct {
	TotalBudget string                   `json:"totalBudget"`
	TotalSpent  string                   `json:"totalSpent"`
	Remaining   string                   `json:"remaining"`
	Categories  []BudgetCategoryResponse `json:"categories"`
}

// RecurringBillsSummaryResponse aggregates the user's active bills
type RecurringBillsSummaryResponse struct {
	TotalBills     int                   `json:"totalBills"`
	PaidAmount     string                `json:"paidAmount"`
	UpcomingAmount string                `json:"upcomingAmount"`
	DueSoonAmount  string                `json:"dueSoonAmount"`
	DueSoon        []DueSoonBillResponse `json:"dueSoon"`
}

// MonthlyTrendResponse holds one calendar month's totals
type MonthlyTrendResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

// NewOverviewResponse maps the dashboard snapshot to its API representation
func NewOverviewResponse(snapshot *usecase.OverviewSnapshot) OverviewResponse {
	categories := make([]BudgetCategoryResponse, 0, len(snapshot.Budgets.Categories))
	for _, category := range snapshot.Budgets.Categories {
		categories = append(categories, BudgetCategoryResponse{
			Budget: NewBudgetResponse(category.Budget),
			Spent:  entity.FormatAmount(category.Spent),
		})
	}

	return OverviewResponse{
		CurrentBalance: entity.FormatAmount(snapshot.CurrentBalance),
		Income:         entity.FormatAmount(snapshot.Income),
		Expenses:       entity.FormatAmount(snapshot.Expenses),
		Pots: PotsSummaryResponse{
			TotalSaved: entity.FormatAmount(snapshot.Pots.TotalSaved),
			Count:      snapshot.Pots.Count,
			Details:    NewPotResponses(snapshot.Pots.Details),
		},
		Budgets: BudgetsSummaryResponse{
			TotalBudget: entity.FormatAmount(snapshot.Budgets.TotalBudget),
			TotalSpent:  entity.FormatAmount(snapshot.Budgets.TotalSpent),
			Remaining:   entity.FormatAmount(snapshot.Budgets.Remaining),
			Categories:  categories,
		},
		RecurringBills: RecurringBillsSummaryResponse{
			TotalBills:     snapshot.RecurringBills.TotalBills,
			PaidAmount:     entity.FormatAmount(snapshot.RecurringBills.PaidAmount),
			UpcomingAmount: entity.FormatAmount(snapshot.RecurringBills.UpcomingAmount),
			DueSoonAmount:  entity.FormatAmount(snapshot.RecurringBills.DueSoonAmount),
			DueSoon:        NewDueSoonBillResponses(snapshot.RecurringBills.DueSoon),
		},
		RecentTransactions: NewTransactionResponses(snapshot.RecentTransactions),
	}
}

// NewMonthlyTrendResponses maps monthly trend rows, most recent first
func NewMonthlyTrendResponses(trends []*usecase.MonthlyTrend) []MonthlyTrendResponse {
	responses := make([]MonthlyTrendResponse, 0, len(trends))
	for _, trend := range trends {
		responses = append(responses, MonthlyTrendResponse{
			Month:    trend.Month.Format("2006-01"),
			Income:   entity.FormatAmount(trend.Income),
			Expenses: entity.FormatAmount(trend.Expenses),
		})
	}
	return responses
}
