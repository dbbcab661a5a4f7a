package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	coreport "github.com/sohhamm/personal-finance-app/internal/domain/port/core"
)

// PaymentStatus defines possible status values for a bill payment
type PaymentStatus string

// PaymentStatus constants
const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// RecurringBill is a template describing a periodic obligation
type RecurringBill struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Amount    decimal.Decimal
	DueDay    int
	Category  Category
	Avatar    string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecurringBillPayment is one concrete instance of a bill's obligation for a
// specific due date. At most one payment exists per (bill, due date); the
// store enforces this with a unique index.
type RecurringBillPayment struct {
	ID              uuid.UUID
	RecurringBillID uuid.UUID
	TransactionID   *uuid.UUID
	DueDate         time.Time
	PaidDate        *time.Time
	Amount          decimal.Decimal
	Status          PaymentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewRecurringBill creates a new active recurring bill
func NewRecurringBill(
	userID uuid.UUID,
	name string,
	amount string,
	dueDay int,
	category string,
	avatar string,
	timeProvider coreport.TimeProvider,
) (*RecurringBill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", errs.ErrValidation)
	}
	if dueDay < 1 || dueDay > 31 {
		return nil, errs.ErrInvalidDueDay
	}
	if !IsValidCategory(category) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCategory, category)
	}

	parsedAmount, err := ParsePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &RecurringBill{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    parsedAmount,
		DueDay:    dueDay,
		Category:  Category(category),
		Avatar:    avatar,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// DueDateIn computes the due date for a target year and month. When the due
// day exceeds the number of days in that month it clamps to the last day, so
// a bill due on the 31st falls due on April 30th rather than rolling into May.
func DueDateIn(year int, month time.Month, dueDay int) time.Time {
	if last := daysInMonth(year, month); dueDay > last {
		dueDay = last
	}
	return time.Date(year, month, dueDay, 0, 0, 0, 0, time.UTC)
}

// MarkPaid sets the payment to paid, recording the paid time and the
// optional settling transaction
func (p *RecurringBillPayment) MarkPaid(transactionID *uuid.UUID, timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	p.Status = PaymentPaid
	p.PaidDate = &now
	p.TransactionID = transactionID
	p.UpdatedAt = now
}

// daysInMonth returns the number of days in the given month; the zeroth day
// of the following month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
