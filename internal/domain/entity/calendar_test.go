package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthBounds(t *testing.T) {
	testCases := []struct {
		name          string
		input         time.Time
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "Mid-month",
			input:         time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC),
			expectedStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "February in a leap year",
			input:         time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "December keeps the year",
			input:         time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
			expectedStart: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := MonthBounds(tc.input)
			assert.Equal(t, tc.expectedStart, start)
			assert.Equal(t, tc.expectedEnd, end)
		})
	}
}

func TestTruncateToMonth(t *testing.T) {
	input := time.Date(2025, 6, 15, 18, 30, 45, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), TruncateToMonth(input))
}
