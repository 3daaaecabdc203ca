package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budget/internal/model"
	"github.com/cleared-dev/budget/internal/report"
)

// Service provides the expense operations on top of a Store.
type Service struct {
	store *Store
	log   zerolog.Logger
}

// NewService creates a Service.
func NewService(store *Store, logger zerolog.Logger) *Service {
	return &Service{store: store, log: logger}
}

// Store returns the underlying store.
func (s *Service) Store() *Store {
	return s.store
}

// AddParams holds the raw values of a new expense.
type AddParams struct {
	Date     string
	Category string
	Amount   string
	Note     string
}

// Add validates and appends a new expense. Nothing is written on error.
func (s *Service) Add(params AddParams) (model.Expense, error) {
	if err := ValidateDate(params.Date); err != nil {
		return model.Expense{}, err
	}
	amount, err := ParseAmount(params.Amount)
	if err != nil {
		return model.Expense{}, err
	}
	category, err := NormalizeCategory(params.Category)
	if err != nil {
		return model.Expense{}, err
	}

	e := model.Expense{
		Date:     params.Date,
		Category: category,
		Amount:   amount,
		Note:     strings.TrimSpace(params.Note),
	}
	if err := s.store.Append(e); err != nil {
		return model.Expense{}, err
	}
	return e, nil
}

// EditParams holds replacement values. Nil fields are left unchanged.
type EditParams struct {
	Date     *string
	Category *string
	Amount   *string
	Note     *string
}

// Edit replaces fields of the expense at index within the filtered view.
// Every supplied value is validated before any is applied.
func (s *Service) Edit(index int, f Filter, params EditParams) (model.Expense, error) {
	if index <= 0 {
		return model.Expense{}, fmt.Errorf("%w: got %d", ErrInvalidIndex, index)
	}

	expenses, err := s.store.Load()
	if err != nil {
		return model.Expense{}, err
	}
	pos, err := Resolve(expenses, f, index)
	if err != nil {
		return model.Expense{}, err
	}

	updated := expenses[pos]
	if params.Date != nil {
		if err := ValidateDate(*params.Date); err != nil {
			return model.Expense{}, err
		}
		updated.Date = *params.Date
	}
	if params.Amount != nil {
		amount, err := ParseAmount(*params.Amount)
		if err != nil {
			return model.Expense{}, err
		}
		updated.Amount = amount
	}
	if params.Category != nil {
		category, err := NormalizeCategory(*params.Category)
		if err != nil {
			return model.Expense{}, err
		}
		updated.Category = category
	}
	if params.Note != nil {
		updated.Note = strings.TrimSpace(*params.Note)
	}

	expenses[pos] = updated
	if err := s.store.Save(expenses); err != nil {
		return model.Expense{}, err
	}
	s.log.Debug().Int("index", index).Int("pos", pos).Msg("edited expense")
	return updated, nil
}

// Delete removes the expense at index within the filtered view.
func (s *Service) Delete(index int, f Filter) (model.Expense, error) {
	if index <= 0 {
		return model.Expense{}, fmt.Errorf("%w: got %d", ErrInvalidIndex, index)
	}

	expenses, err := s.store.Load()
	if err != nil {
		return model.Expense{}, err
	}
	pos, err := Resolve(expenses, f, index)
	if err != nil {
		return model.Expense{}, err
	}

	removed := expenses[pos]
	remaining := append(expenses[:pos:pos], expenses[pos+1:]...)
	if err := s.store.Save(remaining); err != nil {
		return model.Expense{}, err
	}
	s.log.Debug().Int("index", index).Int("pos", pos).Msg("deleted expense")
	return removed, nil
}

// Listing is a view together with the total of its amounts.
type Listing struct {
	Entries View
	Total   decimal.Decimal
}

func newListing(v View) Listing {
	return Listing{Entries: v, Total: report.Sum(v.Expenses())}
}

// List returns the filtered view, truncated to limit rows when limit > 0.
// The total covers the returned rows only.
func (s *Service) List(f Filter, limit int) (Listing, error) {
	expenses, err := s.store.Load()
	if err != nil {
		return Listing{}, err
	}
	view, err := f.Apply(expenses)
	if err != nil {
		return Listing{}, err
	}
	return newListing(view.Limit(limit)), nil
}

// MonthReport returns every expense in month ("YYYY-MM") and their total.
func (s *Service) MonthReport(month string) (Listing, error) {
	if err := ValidateMonth(month); err != nil {
		return Listing{}, err
	}
	expenses, err := s.store.Load()
	if err != nil {
		return Listing{}, err
	}
	return newListing(FilterMonth(NewView(expenses), month)), nil
}

// RangeReport returns every expense dated from..to inclusive and their total.
func (s *Service) RangeReport(from, to string) (Listing, error) {
	if err := ValidateRange(from, to); err != nil {
		return Listing{}, err
	}
	expenses, err := s.store.Load()
	if err != nil {
		return Listing{}, err
	}
	return newListing(FilterRange(NewView(expenses), from, to)), nil
}

// CategoryReport returns all-time totals per category, largest first.
func (s *Service) CategoryReport() ([]report.Total, error) {
	expenses, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return report.ByCategory(expenses), nil
}

// Overview returns all-time totals per month, oldest first.
func (s *Service) Overview() ([]report.Total, error) {
	expenses, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return report.ByMonth(expenses), nil
}

// Export writes expenses to path in the same format as the store.
func (s *Service) Export(path string, expenses []model.Expense) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export %s: %w", path, err)
	}

	if err := WriteExpenses(f, expenses); err != nil {
		f.Close()
		return fmt.Errorf("writing export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export %s: %w", path, err)
	}
	s.log.Debug().Str("path", path).Int("count", len(expenses)).Msg("exported expenses")
	return nil
}
