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

func TestNewBudget(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("Creates budget for a valid category", func(t *testing.T) {
		// Arrange
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		// Act
		budget, err := NewBudget(userID, "Groceries", "500.00", "#277C78", mockTimeProvider)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, userID, budget.UserID)
		assert.Equal(t, CategoryGroceries, budget.Category)
		assert.True(t, budget.Maximum.Equal(decimal.RequireFromString("500")))
		assert.Equal(t, "#277C78", budget.Theme)
		assert.Equal(t, fixedTime, budget.CreatedAt)
		mockTimeProvider.AssertExpectations(t)
	})

	t.Run("Rejects unknown category", func(t *testing.T) {
		mockTimeProvider := new(mockCore.MockTimeProvider)

		_, err := NewBudget(userID, "Rent", "500.00", "#277C78", mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrInvalidCategory)
	})

	t.Run("Rejects non-positive maximum", func(t *testing.T) {
		mockTimeProvider := new(mockCore.MockTimeProvider)

		_, err := NewBudget(userID, "Groceries", "0", "#277C78", mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Rejects malformed maximum", func(t *testing.T) {
		mockTimeProvider := new(mockCore.MockTimeProvider)

		_, err := NewBudget(userID, "Groceries", "5.001", "#277C78", mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestBudgetSpendingFor(t *testing.T) {
	t.Run("Spending within the maximum", func(t *testing.T) {
		budget := &Budget{Maximum: decimal.RequireFromString("1000.00")}

		remaining, percentage := budget.SpendingFor(decimal.RequireFromString("200.00"))

		assert.Equal(t, "800", remaining.String())
		assert.Equal(t, "20", percentage.String())
	})

	t.Run("Overspend yields negative remaining and over one hundred percent", func(t *testing.T) {
		budget := &Budget{Maximum: decimal.RequireFromString("300.00")}

		remaining, percentage := budget.SpendingFor(decimal.RequireFromString("350.00"))

		assert.Equal(t, "-50", remaining.String())
		assert.Equal(t, "116.67", percentage.String())
	})

	t.Run("No spending", func(t *testing.T) {
		budget := &Budget{Maximum: decimal.RequireFromString("300.00")}

		remaining, percentage := budget.SpendingFor(decimal.Zero)

		assert.Equal(t, "300", remaining.String())
		assert.True(t, percentage.IsZero())
	})

	t.Run("Zero maximum gives zero percentage", func(t *testing.T) {
		budget := &Budget{Maximum: decimal.Zero}

		remaining, percentage := budget.SpendingFor(decimal.RequireFromString("50.00"))

		assert.Equal(t, "-50", remaining.String())
		assert.True(t, percentage.IsZero())
	})
}
