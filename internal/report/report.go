// Package report folds expenses into totals.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budget/internal/model"
)

// Total is an amount aggregated under a grouping key (a category or a "YYYY-MM" month).
type Total struct {
	Key    string
	Amount decimal.Decimal
}

// Sum returns the sum of all amounts.
func Sum(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// ByCategory totals expenses per category, largest first.
//
// Categories are grouped exactly as stored, so "Food" and "food" are separate
// groups even though filtering treats them as one. Equal totals keep the order
// in which their category first appeared.
func ByCategory(expenses []model.Expense) []Total {
	totals := group(expenses, func(e model.Expense) string { return e.Category })
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})
	return totals
}

// ByMonth totals expenses per "YYYY-MM" month in chronological order.
func ByMonth(expenses []model.Expense) []Total {
	totals := group(expenses, model.Expense.Month)
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Key < totals[j].Key
	})
	return totals
}

// group sums amounts per key, returning groups in first-seen order.
func group(expenses []model.Expense, key func(model.Expense) string) []Total {
	idx := make(map[string]int)
	var totals []Total
	for _, e := range expenses {
		k := key(e)
		i, seen := idx[k]
		if !seen {
			i = len(totals)
			idx[k] = i
			totals = append(totals, Total{Key: k, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(e.Amount)
	}
	return totals
}
