package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"negative amount", ErrNegativeAmount, CodeInvalidAmount},
		{"invalid category", ErrInvalidCategory, CodeInvalidCategory},
		{"insufficient funds", ErrInsufficientFunds, CodeInsufficientFunds},
		{"invalid credentials", ErrInvalidCredentials, CodeInvalidCredentials},
		{"unauthorized", ErrUnauthorized, CodeUnauthorized},
		{"duplicate budget", ErrDuplicateBudget, CodeDuplicateBudget},
		{"duplicate email", ErrDuplicateEmail, CodeDuplicateEmail},
		{"duplicate payment", ErrDuplicatePayment, CodeDuplicatePayment},
		{"user not found", ErrUserNotFound, CodeNotFound},
		{"budget not found", ErrBudgetNotFound, CodeNotFound},
		{"validation", ErrValidation, CodeValidation},
		{"invalid due day", ErrInvalidDueDay, CodeValidation},
		{"unknown error", errors.New("something unexpected"), CodeInternalServer},
		{"database error", ErrDatabaseConnection, CodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorCode(tt.err))
		})
	}
}

func TestErrorCode_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: pot 42", ErrInsufficientFunds)
	assert.Equal(t, CodeInsufficientFunds, ErrorCode(wrapped))

	doubleWrapped := fmt.Errorf("handling request: %w", wrapped)
	assert.Equal(t, CodeInsufficientFunds, ErrorCode(doubleWrapped))
}

func TestPotError(t *testing.T) {
	err := NewPotError("pot-1", "50.00", "20.00", ErrInsufficientFunds)

	var potErr *PotError
	assert.True(t, errors.As(err, &potErr))
	assert.Equal(t, "pot-1", potErr.PotID)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "pot-1")
	assert.Contains(t, err.Error(), "50.00")

	fields := potErr.LogFields()
	assert.Equal(t, "pot_error", fields["error_type"])
	assert.Equal(t, CodeInsufficientFunds, fields["error_code"])
}

func TestErrorClassifiers(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrPotNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrRecurringBillNotFound)))
	assert.False(t, IsNotFoundError(ErrValidation))

	assert.True(t, IsValidationError(ErrFutureTransactionDate))
	assert.True(t, IsValidationError(ErrInvalidDueDay))
	assert.False(t, IsValidationError(ErrNotFound))

	assert.True(t, IsConflictError(ErrDuplicateBudget))
	assert.False(t, IsConflictError(ErrBudgetNotFound))

	assert.True(t, IsUnauthorizedError(ErrInvalidCredentials))
	assert.False(t, IsUnauthorizedError(ErrNotFound))
}
