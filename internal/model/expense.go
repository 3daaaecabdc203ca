package model

import (
	"github.com/shopspring/decimal"
)

// amountTolerance is the slack allowed when two amounts are compared for equality.
var amountTolerance = decimal.New(1, -9)

// Expense is a single row in the expenses file.
type Expense struct {
	Date     string          // "YYYY-MM-DD"
	Category string          // case-preserving as stored
	Amount   decimal.Decimal // zero only when the stored value did not parse
	Note     string
}

// Month returns the "YYYY-MM" prefix of the expense date.
// "2025-08-14" -> "2025-08"
func (e Expense) Month() string {
	if len(e.Date) < 7 {
		return e.Date
	}
	return e.Date[:7]
}

// SameAs reports whether e and other carry the same field values.
// Amounts are compared within a tolerance of 1e-9.
func (e Expense) SameAs(other Expense) bool {
	return e.Date == other.Date &&
		e.Category == other.Category &&
		e.Note == other.Note &&
		e.Amount.Sub(other.Amount).Abs().LessThan(amountTolerance)
}
