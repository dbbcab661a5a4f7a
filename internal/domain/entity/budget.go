package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
)

// Budget caps spending for one category. At most one budget exists per
// (user, category) pair; the store enforces this with a unique index.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  Category
	Maximum   decimal.Decimal
	Theme     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new budget with a positive maximum
func NewBudget(userID uuid.UUID, category, maximum, theme string, timeProvider coreport.TimeProvider) (*Budget, error) {
	if !IsValidCategory(category) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCategory, category)
	}

	parsedMaximum, err := ParsePositiveAmount(maximum)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  Category(category),
		Maximum:   parsedMaximum,
		Theme:     theme,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SpendingFor derives the spending figures for this budget from the
// month-scoped expense sum. Remaining may be negative, signaling overspend.
// Percentage is zero when the maximum is zero.
func (b *Budget) SpendingFor(spent decimal.Decimal) (remaining, percentage decimal.Decimal) {
	remaining = b.Maximum.Sub(spent)
	percentage = Percentage(spent, b.Maximum)
	return remaining, percentage
}
