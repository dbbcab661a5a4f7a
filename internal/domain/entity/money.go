package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
)

// Monetary values are decimal.Decimal end to end; DECIMAL(10,2) columns in the
// store and string transport preserve exact precision, never binary floats.

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount validates and parses a string amount into a decimal.
// The amount must be a well-formed decimal number with at most two
// fractional digits. Sign is not checked here; use ParsePositiveAmount
// for amounts that must be strictly positive.
func ParseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, amount)
	}
	if d.Exponent() < -MaxDecimalPlaces {
		return decimal.Zero, fmt.Errorf("%w: at most %d decimal places", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	return d, nil
}

// ParsePositiveAmount parses an amount that must be strictly greater than zero
func ParsePositiveAmount(amount string) (decimal.Decimal, error) {
	d, err := ParseAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}
	if d.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errs.ErrNegativeAmount
	}
	return d, nil
}

// FormatAmount renders a decimal with exactly two decimal places for transport
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(MaxDecimalPlaces)
}

// Percentage computes part/whole*100 rounded to two decimal places.
// Returns zero when whole is zero, avoiding division by zero.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).Round(MaxDecimalPlaces)
}
