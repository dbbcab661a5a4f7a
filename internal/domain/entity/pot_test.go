package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	mockCore "github.com/sohhamm/personal-finance-app/mocks/port/core"
)

func TestNewPot(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("Creates pot with zero total", func(t *testing.T) {
		// Arrange
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		// Act
		pot, err := NewPot(userID, "Holiday", "1500.00", "#277C78", mockTimeProvider)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, userID, pot.UserID)
		assert.Equal(t, "Holiday", pot.Name)
		assert.True(t, pot.Target.Equal(decimal.RequireFromString("1500")))
		assert.True(t, pot.Total.IsZero())
		assert.Equal(t, fixedTime, pot.CreatedAt)
		mockTimeProvider.AssertExpectations(t)
	})

	t.Run("Trims the name", func(t *testing.T) {
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)

		pot, err := NewPot(userID, "  New Car  ", "5000", "#626070", mockTimeProvider)

		assert.NoError(t, err)
		assert.Equal(t, "New Car", pot.Name)
	})

	t.Run("Rejects empty name", func(t *testing.T) {
		mockTimeProvider := new(mockCore.MockTimeProvider)

		_, err := NewPot(userID, "   ", "1500.00", "#277C78", mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Rejects non-positive target", func(t *testing.T) {
		mockTimeProvider := new(mockCore.MockTimeProvider)

		_, err := NewPot(userID, "Holiday", "0", "#277C78", mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestPotAddMoney(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Increases the total", func(t *testing.T) {
		// Arrange
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		pot := &Pot{Total: decimal.RequireFromString("100.00")}

		// Act
		err := pot.AddMoney(decimal.RequireFromString("50.50"), mockTimeProvider)

		// Assert
		assert.NoError(t, err)
		assert.True(t, pot.Total.Equal(decimal.RequireFromString("150.50")))
		assert.Equal(t, fixedTime, pot.UpdatedAt)
	})

	t.Run("Rejects non-positive amounts", func(t *testing.T) {
		mockTimeProvider := new(mockCore.MockTimeProvider)
		pot := &Pot{Total: decimal.RequireFromString("100.00")}

		err := pot.AddMoney(decimal.Zero, mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
		assert.True(t, pot.Total.Equal(decimal.RequireFromString("100")))
	})
}

func TestPotWithdraw(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Decreases the total", func(t *testing.T) {
		// Arrange
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		pot := &Pot{ID: uuid.New(), Total: decimal.RequireFromString("200.00")}

		// Act
		err := pot.Withdraw(decimal.RequireFromString("75.00"), mockTimeProvider)

		// Assert
		assert.NoError(t, err)
		assert.True(t, pot.Total.Equal(decimal.RequireFromString("125")))
	})

	t.Run("Allows withdrawing the exact total", func(t *testing.T) {
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		pot := &Pot{ID: uuid.New(), Total: decimal.RequireFromString("200.00")}

		err := pot.Withdraw(decimal.RequireFromString("200.00"), mockTimeProvider)

		assert.NoError(t, err)
		assert.True(t, pot.Total.IsZero())
	})

	t.Run("Insufficient funds leaves the total unchanged", func(t *testing.T) {
		// Arrange
		mockTimeProvider := new(mockCore.MockTimeProvider)
		pot := &Pot{ID: uuid.New(), Total: decimal.RequireFromString("50.00")}

		// Act
		err := pot.Withdraw(decimal.RequireFromString("50.01"), mockTimeProvider)

		// Assert
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		var potErr *errs.PotError
		assert.True(t, errors.As(err, &potErr))
		assert.True(t, pot.Total.Equal(decimal.RequireFromString("50")))
	})

	t.Run("Rejects non-positive amounts", func(t *testing.T) {
		mockTimeProvider := new(mockCore.MockTimeProvider)
		pot := &Pot{ID: uuid.New(), Total: decimal.RequireFromString("50.00")}

		err := pot.Withdraw(decimal.RequireFromString("-5.00"), mockTimeProvider)

		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestPotProgress(t *testing.T) {
	t.Run("Partial progress", func(t *testing.T) {
		pot := &Pot{
			Target: decimal.RequireFromString("2000.00"),
			Total:  decimal.RequireFromString("500.00"),
		}

		progress, remaining := pot.Progress()

		assert.Equal(t, "25", progress.String())
		assert.Equal(t, "1500", remaining.String())
	})

	t.Run("Oversaved pot reports over one hundred percent and negative remaining", func(t *testing.T) {
		pot := &Pot{
			Target: decimal.RequireFromString("100.00"),
			Total:  decimal.RequireFromString("150.00"),
		}

		progress, remaining := pot.Progress()

		assert.Equal(t, "150", progress.String())
		assert.Equal(t, "-50", remaining.String())
	})

	t.Run("Zero target gives zero progress", func(t *testing.T) {
		pot := &Pot{Target: decimal.Zero, Total: decimal.RequireFromString("10.00")}

		progress, _ := pot.Progress()

		assert.True(t, progress.IsZero())
	})
}
