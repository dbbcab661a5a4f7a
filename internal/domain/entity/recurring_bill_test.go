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

func TestNewRecurringBill(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("Creates an active bill", func(t *testing.T) {
		// Arrange
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		// Act
		bill, err := NewRecurringBill(userID, "Electricity", "85.00", 14, "Bills", "", mockTimeProvider)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, userID, bill.UserID)
		assert.Equal(t, "Electricity", bill.Name)
		assert.True(t, bill.Amount.Equal(decimal.RequireFromString("85")))
		assert.Equal(t, 14, bill.DueDay)
		assert.Equal(t, CategoryBills, bill.Category)
		assert.True(t, bill.IsActive)
		assert.Equal(t, fixedTime, bill.CreatedAt)
		mockTimeProvider.AssertExpectations(t)
	})

	t.Run("Invalid due days", func(t *testing.T) {
		for _, dueDay := range []int{0, -3, 32, 100} {
			mockTimeProvider := new(mockCore.MockTimeProvider)

			_, err := NewRecurringBill(userID, "Electricity", "85.00", dueDay, "Bills", "", mockTimeProvider)

			assert.ErrorIs(t, err, errs.ErrInvalidDueDay)
		}
	})

	t.Run("Rejects empty name", func(t *testing.T) {
		mockTimeProvider := new(mockCore.MockTimeProvider)

		_, err := NewRecurringBill(userID, "  ", "85.00", 14, "Bills", "", mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Rejects unknown category", func(t *testing.T) {
		mockTimeProvider := new(mockCore.MockTimeProvider)

		_, err := NewRecurringBill(userID, "Electricity", "85.00", 14, "Utilities", "", mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrInvalidCategory)
	})

	t.Run("Rejects non-positive amount", func(t *testing.T) {
		mockTimeProvider := new(mockCore.MockTimeProvider)

		_, err := NewRecurringBill(userID, "Electricity", "-85.00", 14, "Bills", "", mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestDueDateIn(t *testing.T) {
	testCases := []struct {
		name     string
		year     int
		month    time.Month
		dueDay   int
		expected time.Time
	}{
		{
			name:     "Day within month",
			year:     2025,
			month:    time.June,
			dueDay:   14,
			expected: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Day 31 clamps in a 30 day month",
			year:     2025,
			month:    time.April,
			dueDay:   31,
			expected: time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Day 30 clamps in February",
			year:     2025,
			month:    time.February,
			dueDay:   30,
			expected: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Leap year February keeps day 29",
			year:     2024,
			month:    time.February,
			dueDay:   29,
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Last day of a 31 day month",
			year:     2025,
			month:    time.July,
			dueDay:   31,
			expected: time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DueDateIn(tc.year, tc.month, tc.dueDay))
		})
	}
}

func TestMarkPaid(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Records paid time and settling transaction", func(t *testing.T) {
		// Arrange
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		transactionID := uuid.New()
		payment := &RecurringBillPayment{Status: PaymentPending}

		// Act
		payment.MarkPaid(&transactionID, mockTimeProvider)

		// Assert
		assert.Equal(t, PaymentPaid, payment.Status)
		assert.NotNil(t, payment.PaidDate)
		assert.Equal(t, fixedTime, *payment.PaidDate)
		assert.Equal(t, &transactionID, payment.TransactionID)
		assert.Equal(t, fixedTime, payment.UpdatedAt)
	})

	t.Run("Transaction reference is optional", func(t *testing.T) {
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		payment := &RecurringBillPayment{Status: PaymentPending}

		payment.MarkPaid(nil, mockTimeProvider)

		assert.Equal(t, PaymentPaid, payment.Status)
		assert.Nil(t, payment.TransactionID)
	})
}
