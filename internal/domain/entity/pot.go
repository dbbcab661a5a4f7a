package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
)

// Pot is a named savings goal with a target and accumulated total.
// The total is never forced negative by a withdrawal.
type Pot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Target    decimal.Decimal
	Total     decimal.Decimal
	Theme     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPot creates a new pot with a zero total
func NewPot(userID uuid.UUID, name, target, theme string, timeProvider coreport.TimeProvider) (*Pot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrValidation
	}

	parsedTarget, err := ParsePositiveAmount(target)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Pot{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Target:    parsedTarget,
		Total:     decimal.Zero,
		Theme:     theme,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// AddMoney increases the pot total by the given positive amount
func (p *Pot) AddMoney(amount decimal.Decimal, timeProvider coreport.TimeProvider) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return errs.ErrNegativeAmount
	}

	p.Total = p.Total.Add(amount)
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// Withdraw decreases the pot total by the given amount. Withdrawing more
// than the current total fails and leaves the total unchanged.
func (p *Pot) Withdraw(amount decimal.Decimal, timeProvider coreport.TimeProvider) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return errs.ErrNegativeAmount
	}
	if amount.GreaterThan(p.Total) {
		return errs.NewPotError(p.ID.String(), FormatAmount(amount), FormatAmount(p.Total), errs.ErrInsufficientFunds)
	}

	p.Total = p.Total.Sub(amount)
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// Progress returns the saved percentage toward the target (zero target gives zero)
// and the amount remaining, which may be negative when oversaved.
func (p *Pot) Progress() (progress, remaining decimal.Decimal) {
	progress = Percentage(p.Total, p.Target)
	remaining = p.Target.Sub(p.Total)
	return progress, remaining
}
