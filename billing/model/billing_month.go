package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const billingMonthLayout = "2006-01"

// ParseBillingMonth splits a "YYYY-MM" value into its year and 1-based month.
func ParseBillingMonth(month string) (int, time.Month, error) {
	parts := strings.Split(strings.TrimSpace(month), "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid billing month %q", month)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year <= 0 {
		return 0, 0, fmt.Errorf("invalid billing month year %q", month)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("invalid billing month %q", month)
	}

	return year, time.Month(m), nil
}

// NextMonth returns the billing month following month, rolling December
// over into January of the next year.
func NextMonth(month string) (string, error) {
	year, m, err := ParseBillingMonth(month)
	if err != nil {
		return "", err
	}

	if m == time.December {
		year++
		m = time.January
	} else {
		m++
	}

	return fmt.Sprintf("%04d-%02d", year, int(m)), nil
}

// CurrentMonth formats t as a billing month.
func CurrentMonth(t time.Time) string {
	return t.Format(billingMonthLayout)
}

// ValidBillingMonth reports whether month is a well formed "YYYY-MM" value.
func ValidBillingMonth(month string) bool {
	_, _, err := ParseBillingMonth(month)
	return err == nil
}
