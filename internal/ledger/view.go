package ledger

import (
	"strings"

	"github.com/cleared-dev/budget/internal/model"
)

// Entry is an expense together with its position in the store.
type Entry struct {
	Pos     int // 0-based position in the loaded collection
	Expense model.Expense
}

// View is an ordered subsequence of the store. Entry i is shown to users as index i+1.
type View []Entry

// NewView returns a view over every expense.
func NewView(expenses []model.Expense) View {
	v := make(View, len(expenses))
	for i, e := range expenses {
		v[i] = Entry{Pos: i, Expense: e}
	}
	return v
}

// Expenses returns the expenses of the view in order.
func (v View) Expenses() []model.Expense {
	out := make([]model.Expense, len(v))
	for i, entry := range v {
		out[i] = entry.Expense
	}
	return out
}

// Limit returns at most n entries; n <= 0 means no limit.
func (v View) Limit(n int) View {
	if n <= 0 || n >= len(v) {
		return v
	}
	return v[:n]
}

func (v View) keep(pred func(model.Expense) bool) View {
	var out View
	for _, entry := range v {
		if pred(entry.Expense) {
			out = append(out, entry)
		}
	}
	return out
}

// FilterMonth keeps entries dated in month ("YYYY-MM").
func FilterMonth(v View, month string) View {
	return v.keep(func(e model.Expense) bool {
		return strings.HasPrefix(e.Date, month)
	})
}

// FilterCategory keeps entries whose trimmed category equals name, ignoring case.
func FilterCategory(v View, name string) View {
	name = strings.TrimSpace(name)
	return v.keep(func(e model.Expense) bool {
		return strings.EqualFold(strings.TrimSpace(e.Category), name)
	})
}

// FilterRange keeps entries with from <= date <= to. Dates are fixed-width
// ISO strings, so string order is date order.
func FilterRange(v View, from, to string) View {
	return v.keep(func(e model.Expense) bool {
		return from <= e.Date && e.Date <= to
	})
}

// Filter selects the view that list, edit and delete operate on. Empty
// fields do not filter.
type Filter struct {
	Month    string // "YYYY-MM"
	Category string
}

// Apply validates the filter and builds the view, month first then category.
func (f Filter) Apply(expenses []model.Expense) (View, error) {
	v := NewView(expenses)
	if f.Month != "" {
		if err := ValidateMonth(f.Month); err != nil {
			return nil, err
		}
		v = FilterMonth(v, f.Month)
	}
	if f.Category != "" {
		v = FilterCategory(v, f.Category)
	}
	return v, nil
}
