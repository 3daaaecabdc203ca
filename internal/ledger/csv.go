package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/budget/internal/model"
)

// Header is the CSV header of the expenses file.
const Header = "date,category,amount,note"

const (
	numFields   = 4
	colDate     = 0
	colCategory = 1
	colAmount   = 2
	colNote     = 3
)

// ReadExpenses reads all expenses from an expenses CSV reader.
//
// Rows whose amount does not parse are kept with a zero amount; their
// 1-based line numbers are returned in normalized.
func ReadExpenses(r io.Reader) (expenses []model.Expense, normalized []int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading expenses CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil, nil
	}

	// Skip header row.
	for i, rec := range records[1:] {
		e, ok := UnmarshalExpense(rec)
		if !ok {
			normalized = append(normalized, i+2)
		}
		expenses = append(expenses, e)
	}
	return expenses, normalized, nil
}

// WriteExpenses writes expenses to w, header first.
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendExpenses writes expense rows to w without a header.
func AppendExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalExpense converts an Expense to a CSV row.
func MarshalExpense(e model.Expense) []string {
	row := make([]string, numFields)
	row[colDate] = e.Date
	row[colCategory] = e.Category
	row[colAmount] = e.Amount.StringFixed(2)
	row[colNote] = e.Note
	return row
}

// UnmarshalExpense converts a CSV row to an Expense. Missing trailing fields
// read as empty. ok is false when the amount did not parse and was set to zero.
func UnmarshalExpense(record []string) (e model.Expense, ok bool) {
	field := func(col int) string {
		if col < len(record) {
			return record[col]
		}
		return ""
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(field(colAmount)))
	if err != nil {
		amount = decimal.Zero
	}

	return model.Expense{
		Date:     field(colDate),
		Category: field(colCategory),
		Amount:   amount,
		Note:     field(colNote),
	}, err == nil
}
