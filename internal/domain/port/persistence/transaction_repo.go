package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
)

// TransactionFilter narrows and orders a transaction listing
type TransactionFilter struct {
	Search    string     // case-insensitive match on recipient/sender
	Category  string     // exact category match when set
	StartDate *time.Time // inclusive lower bound on transaction date
	EndDate   *time.Time // inclusive upper bound on transaction date
	SortBy    string     // date | amount | name
	SortOrder string     // asc | desc
	Page      int
	Limit     int
}

// MonthlyTotal holds the income and expense sums for one calendar month
type MonthlyTotal struct {
	Month    time.Time
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// TransactionRepository defines data access operations for transactions,
// including the read-only aggregates consumed by the overview, trends and
// budget-spending computations.
type TransactionRepository interface {
	// Create persists a new transaction
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction owned by the user
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Transaction, error)

	// List returns a page of the user's transactions and the unpaged total count
	List(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]*entity.Transaction, int64, error)

	// Update persists changes to an existing transaction
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction owned by the user
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// CurrentBalance returns income minus expenses across all of the user's
	// transactions, ever
	CurrentBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// MonthStats returns the income and expense sums for transactions dated
	// within [monthStart, monthEnd]
	MonthStats(ctx context.Context, userID uuid.UUID, monthStart, monthEnd time.Time) (income, expenses decimal.Decimal, err error)

	// CategoryExpenseSum returns the expense sum for one category within
	// [from, to]
	CategoryExpenseSum(ctx context.Context, userID uuid.UUID, category entity.Category, from, to time.Time) (decimal.Decimal, error)

	// CategoryExpenseSums returns the per-category expense sums within
	// [from, to]; categories without expenses are absent from the map
	CategoryExpenseSums(ctx context.Context, userID uuid.UUID, from, to time.Time) (map[entity.Category]decimal.Decimal, error)

	// Recent returns the user's most recent transactions ordered by
	// (transaction date desc, creation time desc)
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error)

	// LatestByCategory returns the most recent transactions in a category
	// regardless of month
	LatestByCategory(ctx context.Context, userID uuid.UUID, category entity.Category, limit int) ([]*entity.Transaction, error)

	// LatestTransactionDate returns the date of the user's most recent
	// transaction, or nil when the user has none
	LatestTransactionDate(ctx context.Context, userID uuid.UUID) (*time.Time, error)

	// MonthlyTotals groups income and expense sums by calendar month for
	// transactions dated on or after since, most recent first. Months with
	// no transactions are omitted.
	MonthlyTotals(ctx context.Context, userID uuid.UUID, since time.Time) ([]MonthlyTotal, error)
}
