package ledger

import (
	"fmt"

	"github.com/cleared-dev/budget/internal/model"
)

// Resolve maps a 1-based index into the filtered view back to a position in
// expenses.
//
// The chosen position is the first expense, in store order, whose fields
// match the view entry. Identical duplicates therefore always resolve to the
// earliest copy.
func Resolve(expenses []model.Expense, f Filter, index int) (int, error) {
	if index <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidIndex, index)
	}

	view, err := f.Apply(expenses)
	if err != nil {
		return 0, err
	}
	if index > len(view) {
		return 0, fmt.Errorf("%w: index %d, %d matching expenses", ErrIndexOutOfRange, index, len(view))
	}

	target := view[index-1]
	for pos := 0; pos <= target.Pos && pos < len(expenses); pos++ {
		if expenses[pos].SameAs(target.Expense) {
			return pos, nil
		}
	}
	return 0, fmt.Errorf("%w: index %d", ErrUnresolvable, index)
}
