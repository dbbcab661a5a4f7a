package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	mockCore "github.com/sohhamm/personal-finance-app/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("Creates a valid expense", func(t *testing.T) {
		// Arrange
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		transactionDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

		// Act
		transaction, err := NewTransaction(
			userID, "Urban Services Hub", "Bills", transactionDate,
			"45.99", "expense", false, "", mockTimeProvider,
		)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, userID, transaction.UserID)
		assert.Equal(t, "Urban Services Hub", transaction.RecipientSender)
		assert.Equal(t, CategoryBills, transaction.Category)
		assert.True(t, transaction.Amount.Equal(decimal.RequireFromString("45.99")))
		assert.Equal(t, TypeExpense, transaction.TransactionType)
		assert.False(t, transaction.Recurring)
		assert.Equal(t, fixedTime, transaction.CreatedAt)
		mockTimeProvider.AssertExpectations(t)
	})

	t.Run("Validation failures", func(t *testing.T) {
		transactionDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

		testCases := []struct {
			name            string
			recipientSender string
			category        string
			date            time.Time
			amount          string
			transactionType string
			errorType       error
		}{
			{
				name:            "Empty recipient",
				recipientSender: "   ",
				category:        "Bills",
				date:            transactionDate,
				amount:          "45.99",
				transactionType: "expense",
				errorType:       errs.ErrValidation,
			},
			{
				name:            "Unknown category",
				recipientSender: "Urban Services Hub",
				category:        "Utilities",
				date:            transactionDate,
				amount:          "45.99",
				transactionType: "expense",
				errorType:       errs.ErrInvalidCategory,
			},
			{
				name:            "Unknown transaction type",
				recipientSender: "Urban Services Hub",
				category:        "Bills",
				date:            transactionDate,
				amount:          "45.99",
				transactionType: "transfer",
				errorType:       errs.ErrInvalidTransactionType,
			},
			{
				name:            "Non-positive amount",
				recipientSender: "Urban Services Hub",
				category:        "Bills",
				date:            transactionDate,
				amount:          "0.00",
				transactionType: "expense",
				errorType:       errs.ErrNegativeAmount,
			},
			{
				name:            "Too many decimal places",
				recipientSender: "Urban Services Hub",
				category:        "Bills",
				date:            transactionDate,
				amount:          "45.999",
				transactionType: "expense",
				errorType:       errs.ErrInvalidAmount,
			},
			{
				name:            "Future transaction date",
				recipientSender: "Urban Services Hub",
				category:        "Bills",
				date:            fixedTime.Add(24 * time.Hour),
				amount:          "45.99",
				transactionType: "expense",
				errorType:       errs.ErrFutureTransactionDate,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				mockTimeProvider := new(mockCore.MockTimeProvider)
				mockTimeProvider.On("Now").Return(fixedTime).Maybe()

				_, err := NewTransaction(
					userID, tc.recipientSender, tc.category, tc.date,
					tc.amount, tc.transactionType, false, "", mockTimeProvider,
				)

				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestTransactionSignedAmount(t *testing.T) {
	t.Run("Income stays positive", func(t *testing.T) {
		transaction := &Transaction{
			Amount:          decimal.RequireFromString("120.00"),
			TransactionType: TypeIncome,
		}

		assert.True(t, transaction.IsIncome())
		assert.Equal(t, "120", transaction.SignedAmount().String())
	})

	t.Run("Expense is negated", func(t *testing.T) {
		transaction := &Transaction{
			Amount:          decimal.RequireFromString("45.99"),
			TransactionType: TypeExpense,
		}

		assert.True(t, transaction.IsExpense())
		assert.Equal(t, "-45.99", transaction.SignedAmount().String())
	})
}
