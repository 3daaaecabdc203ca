package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/cleared-dev/budget/internal/ledger"
	"github.com/cleared-dev/budget/internal/report"
)

var (
	headerColor = color.New(color.Bold)
	totalColor  = color.New(color.FgGreen, color.Bold)
	noticeColor = color.New(color.FgYellow)
	okColor     = color.New(color.FgGreen)
)

// renderIndexed prints a view with the 1-based indices used by edit and delete.
func renderIndexed(w io.Writer, listing ledger.Listing) {
	headerColor.Fprintln(w, "Idx  Date        Category                Amount  Note")
	fmt.Fprintln(w, "---- ----------  ------------------ -----------  ----")
	for i, entry := range listing.Entries {
		e := entry.Expense
		fmt.Fprintf(w, "%4d %s  %-18s %11s  %s\n", i+1, e.Date, e.Category, e.Amount.StringFixed(2), e.Note)
	}
	fmt.Fprintln(w)
	totalColor.Fprintf(w, "Total shown: %s\n", listing.Total.StringFixed(2))
}

// renderReport prints a report listing followed by its labelled total.
func renderReport(w io.Writer, title, label string, listing ledger.Listing) {
	headerColor.Fprintf(w, "%s\n\n", title)
	for _, entry := range listing.Entries {
		e := entry.Expense
		fmt.Fprintf(w, "%s  %-15s %10s  %s\n", e.Date, e.Category, e.Amount.StringFixed(2), e.Note)
	}
	fmt.Fprintln(w)
	totalColor.Fprintf(w, "TOTAL %s: %s\n", label, listing.Total.StringFixed(2))
}

// renderTotals prints one "key  amount" line per group.
func renderTotals(w io.Writer, title string, totals []report.Total) {
	headerColor.Fprintf(w, "%s\n\n", title)
	if len(totals) == 0 {
		noticeColor.Fprintln(w, "No expenses recorded.")
		return
	}
	for _, t := range totals {
		fmt.Fprintf(w, "%-20s %12s\n", t.Key, t.Amount.StringFixed(2))
	}
}
