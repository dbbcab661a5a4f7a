package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"100.00", "100"},
			{"0.01", "0.01"},
			{"0.10", "0.1"},
			{"1", "1"},
			{"1.5", "1.5"},
			{"1234567.89", "1234567.89"},
			{"-42.50", "-42.5"},
			{"0", "0"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				d, err := ParseAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, d.String())
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			description string
		}{
			{"", "Empty string"},
			{"abc", "Non-numeric"},
			{"1.234", "Too many decimal places"},
			{"1,000.00", "Comma as thousands separator"},
			{"1.00.00", "Multiple decimal points"},
			{"$100", "Currency symbol"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})
}

func TestParsePositiveAmount(t *testing.T) {
	t.Run("Accepts strictly positive amounts", func(t *testing.T) {
		d, err := ParsePositiveAmount("25.99")
		assert.NoError(t, err)
		assert.True(t, d.Equal(decimal.RequireFromString("25.99")))
	})

	t.Run("Rejects zero", func(t *testing.T) {
		_, err := ParsePositiveAmount("0.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Rejects negative amounts", func(t *testing.T) {
		_, err := ParsePositiveAmount("-10.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Rejects malformed amounts", func(t *testing.T) {
		_, err := ParsePositiveAmount("ten")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"100", "100.00"},
		{"0.1", "0.10"},
		{"1234.5", "1234.50"},
		{"-42.5", "-42.50"},
		{"0", "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			d := decimal.RequireFromString(tc.input)
			assert.Equal(t, tc.expected, FormatAmount(d))
		})
	}
}

func TestPercentage(t *testing.T) {
	t.Run("Computes fraction of the whole", func(t *testing.T) {
		part := decimal.RequireFromString("200")
		whole := decimal.RequireFromString("1000")

		result := Percentage(part, whole)

		assert.Equal(t, "20", result.String())
	})

	t.Run("Rounds to two decimal places", func(t *testing.T) {
		part := decimal.RequireFromString("1")
		whole := decimal.RequireFromString("3")

		result := Percentage(part, whole)

		assert.Equal(t, "33.33", result.String())
	})

	t.Run("Can exceed one hundred", func(t *testing.T) {
		part := decimal.RequireFromString("350")
		whole := decimal.RequireFromString("300")

		result := Percentage(part, whole)

		assert.Equal(t, "116.67", result.String())
	})

	t.Run("Zero whole yields zero instead of dividing by zero", func(t *testing.T) {
		part := decimal.RequireFromString("50")

		result := Percentage(part, decimal.Zero)

		assert.True(t, result.IsZero())
	})
}
