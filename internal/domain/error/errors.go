package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidCategory     = 4003
	CodeInsufficientFunds   = 4004
	CodeInvalidCredentials  = 4010
	CodeUnauthorized        = 4011
	CodeNotFound            = 4040
	CodeDuplicateBudget     = 4090
	CodeDuplicateEmail      = 4091
	CodeDuplicatePayment    = 4092
	CodeConstraintViolation = 4095

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrValidation is returned when request input is malformed or out of range
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when a monetary amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is zero or negative
	ErrNegativeAmount = errors.New("amount must be greater than zero")

	// ErrInvalidCategory is returned when a category is not one of the allowed values
	ErrInvalidCategory = errors.New("invalid transaction category")

	// ErrInvalidTransactionType is returned when the type is neither income nor expense
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrFutureTransactionDate is returned when a transaction is dated in the future
	ErrFutureTransactionDate = errors.New("transaction date cannot be in the future")

	// ErrInvalidDueDay is returned when a recurring bill due day is outside 1-31
	ErrInvalidDueDay = errors.New("due day must be between 1 and 31")

	// ErrInsufficientFunds is returned when a pot withdrawal exceeds the pot total
	ErrInsufficientFunds = errors.New("insufficient funds in pot")

	// ErrNotFound is returned when a resource is absent or not owned by the caller
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrBudgetNotFound is returned when the requested budget doesn't exist
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrPotNotFound is returned when the requested pot doesn't exist
	ErrPotNotFound = errors.New("pot not found")

	// ErrRecurringBillNotFound is returned when the requested recurring bill doesn't exist
	ErrRecurringBillNotFound = errors.New("recurring bill not found")

	// ErrPaymentNotFound is returned when the requested payment record doesn't exist
	ErrPaymentNotFound = errors.New("payment record not found")

	// ErrDuplicateBudget is returned when a budget already exists for the category
	ErrDuplicateBudget = errors.New("budget already exists for this category")

	// ErrDuplicateEmail is returned when a user already exists with the email
	ErrDuplicateEmail = errors.New("user already exists with this email")

	// ErrDuplicatePayment is returned when a payment row exists for the bill and due date
	ErrDuplicatePayment = errors.New("payment record already exists for this due date")

	// ErrInvalidCredentials is returned when login credentials don't match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when the caller identity is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrWeakPassword is returned when a signup password fails the strength policy
	ErrWeakPassword = errors.New("password does not meet strength requirements")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidCategory):
		return CodeInvalidCategory
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrWeakPassword):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrDuplicateBudget):
		return CodeDuplicateBudget
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrDuplicatePayment):
		return CodeDuplicatePayment
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case IsNotFoundError(err):
		return CodeNotFound
	case IsValidationError(err):
		return CodeValidation
	default:
		return CodeInternalServer
	}
}

// PotError represents an error related to pot money operations
type PotError struct {
	PotID  string
	Amount string
	Total  string
	Err    error
}

// Error implements the error interface for PotError
func (e *PotError) Error() string {
	return fmt.Sprintf("pot operation failed for pot %s (total: %s, amount: %s): %v",
		e.PotID, e.Total, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *PotError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PotError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "pot_error",
		"pot_id":     e.PotID,
		"amount":     e.Amount,
		"total":      e.Total,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewPotError creates a detailed pot operation error
func NewPotError(potID, amount, total string, err error) error {
	return &PotError{
		PotID:  potID,
		Amount: amount,
		Total:  total,
		Err:    err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrBudgetNotFound) ||
		errors.Is(err, ErrPotNotFound) ||
		errors.Is(err, ErrRecurringBillNotFound) ||
		errors.Is(err, ErrPaymentNotFound)
}

// IsValidationError checks if the error is a validation type of error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrFutureTransactionDate) ||
		errors.Is(err, ErrInvalidDueDay) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrWeakPassword)
}

// IsConflictError checks if the error is a uniqueness conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateBudget) ||
		errors.Is(err, ErrDuplicateEmail) ||
		errors.Is(err, ErrDuplicatePayment)
}

// IsUnauthorizedError checks if the error relates to caller identity
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInvalidCredentials)
}
