package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/budget/internal/activity"
	"github.com/cleared-dev/budget/internal/ledger"
)

func newEditCommand(a *app) *cobra.Command {
	var filter ledger.Filter
	var date, category, amount, note string

	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Edit an expense by its index in the filtered list",
		Long: "Edit one expense. Only the fields given as flags change. The index " +
			"refers to the list shown with the same --month and --category-filter.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			var params ledger.EditParams
			flags := cmd.Flags()
			if flags.Changed("date") {
				params.Date = &date
			}
			if flags.Changed("category") {
				params.Category = &category
			}
			if flags.Changed("amount") {
				params.Amount = &amount
			}
			if flags.Changed("note") {
				params.Note = &note
			}

			updated, err := a.svc.Edit(index, filter, params)
			if err != nil {
				return err
			}
			a.recordChange(activity.ActionEdit, index, updated)

			okColor.Fprintf(cmd.OutOrStdout(), "Edited index %d: %s\n", index, describe(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&amount, "amount", "", "new amount (> 0)")
	cmd.Flags().StringVar(&note, "note", "", "new note")
	cmd.Flags().StringVar(&filter.Month, "month", "", "filter by month (YYYY-MM)")
	cmd.Flags().StringVar(&filter.Category, "category-filter", "", "filter by category")

	return cmd
}
