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

// TransactionType represents the direction of a monetary movement
type TransactionType string

// Transaction types
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single monetary movement for a user
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	RecipientSender string
	Category        Category
	TransactionDate time.Time
	Amount          decimal.Decimal
	TransactionType TransactionType
	Recurring       bool
	Avatar          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTransaction creates a new transaction with validation
func NewTransaction(
	userID uuid.UUID,
	recipientSender string,
	category string,
	transactionDate time.Time,
	amount string,
	transactionType string,
	recurring bool,
	avatar string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	recipientSender = strings.TrimSpace(recipientSender)
	if recipientSender == "" {
		return nil, fmt.Errorf("%w: recipient/sender is required", errs.ErrValidation)
	}
	if !IsValidCategory(category) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCategory, category)
	}
	if !isValidTransactionType(transactionType) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, transactionType)
	}

	parsedAmount, err := ParsePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	if transactionDate.After(now) {
		return nil, errs.ErrFutureTransactionDate
	}

	return &Transaction{
		ID:              uuid.New(),
		UserID:          userID,
		RecipientSender: recipientSender,
		Category:        Category(category),
		TransactionDate: transactionDate,
		Amount:          parsedAmount,
		TransactionType: TransactionType(transactionType),
		Recurring:       recurring,
		Avatar:          avatar,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// IsIncome returns true if this transaction increases the user's balance
func (t *Transaction) IsIncome() bool {
	return t.TransactionType == TypeIncome
}

// IsExpense returns true if this transaction decreases the user's balance
func (t *Transaction) IsExpense() bool {
	return t.TransactionType == TypeExpense
}

// SignedAmount returns the amount with income positive and expense negative
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

func isValidTransactionType(value string) bool {
	return value == string(TypeIncome) || value == string(TypeExpense)
}
