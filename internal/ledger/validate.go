package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateFormat  = "2006-01-02"
	monthFormat = "2006-01"
)

var (
	ErrInvalidDate      = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidMonth     = errors.New("invalid month, use YYYY-MM")
	ErrInvalidAmount    = errors.New("invalid amount, must be a number > 0")
	ErrInvalidCategory  = errors.New("category must not be empty")
	ErrInvalidIndex     = errors.New("invalid index, must be >= 1")
	ErrIndexOutOfRange  = errors.New("index out of range for the given filters")
	ErrInvalidDateRange = errors.New("invalid range, use YYYY-MM-DD YYYY-MM-DD with start <= end")
	ErrUnresolvable     = errors.New("could not resolve index to a stored expense")
)

// ValidateDate checks that s is a real calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	if _, err := time.Parse(dateFormat, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}

// ValidateMonth checks that s is a YYYY-MM month with a two-digit month.
func ValidateMonth(s string) error {
	if _, err := time.Parse(monthFormat, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return nil
}

// ValidateRange checks both endpoints and that from <= to.
func ValidateRange(from, to string) error {
	if ValidateDate(from) != nil || ValidateDate(to) != nil || from > to {
		return fmt.Errorf("%w: %q..%q", ErrInvalidDateRange, from, to)
	}
	return nil
}

// ParseAmount parses a positive decimal amount and rounds it to cents.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	// Positive after rounding: 0.004 would be stored as 0.00.
	d = d.Round(2)
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// NormalizeCategory trims the category and rejects empty values.
func NormalizeCategory(s string) (string, error) {
	c := strings.TrimSpace(s)
	if c == "" {
		return "", ErrInvalidCategory
	}
	return c, nil
}
