package commands

import (
	"fmt"
	"strconv"

	"github.com/cleared-dev/budget/internal/ledger"
)

// parseIndex reads the positional index argument of edit and delete.
func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ledger.ErrInvalidIndex, arg)
	}
	return index, nil
}
