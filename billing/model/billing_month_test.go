package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextMonth(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expected      string
		expectedError string
	}{
		{name: "mid_year", input: "2024-05", expected: "2024-06"},
		{name: "december_rolls_over", input: "2024-12", expected: "2025-01"},
		{name: "january", input: "2025-01", expected: "2025-02"},
		{name: "november", input: "2023-11", expected: "2023-12"},
		{name: "surrounding_whitespace", input: " 2024-09 ", expected: "2024-10"},
		{name: "empty", input: "", expectedError: "invalid billing month"},
		{name: "month_out_of_range", input: "2024-13", expectedError: "invalid billing month"},
		{name: "month_zero", input: "2024-00", expectedError: "invalid billing month"},
		{name: "not_padded", input: "2024-5", expectedError: "invalid billing month"},
		{name: "full_date", input: "2024-05-01", expectedError: "invalid billing month"},
		{name: "letters", input: "abcd-ef", expectedError: "invalid billing month"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := NextMonth(tc.input)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Empty(t, next)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, next)
			}
		})
	}
}

func TestCurrentMonth(t *testing.T) {
	assert.Equal(t, "2024-03", CurrentMonth(time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2025-12", CurrentMonth(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestValidBillingMonth(t *testing.T) {
	assert.True(t, ValidBillingMonth("2024-01"))
	assert.False(t, ValidBillingMonth("2024-1"))
	assert.False(t, ValidBillingMonth("24-01"))
}
