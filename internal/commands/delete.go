package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/budget/internal/activity"
	"github.com/cleared-dev/budget/internal/ledger"
)

func newDeleteCommand(a *app) *cobra.Command {
	var filter ledger.Filter

	cmd := &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete an expense by its index in the filtered list",
		Long: "Delete one expense. The index refers to the list shown by " +
			"`budget list` with the same --month and --category filters.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			removed, err := a.svc.Delete(index, filter)
			if err != nil {
				return err
			}
			a.recordChange(activity.ActionDelete, index, removed)

			okColor.Fprintf(cmd.OutOrStdout(), "Deleted index %d: %s\n", index, describe(removed))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Month, "month", "", "filter by month (YYYY-MM)")
	cmd.Flags().StringVar(&filter.Category, "category", "", "filter by category")

	return cmd
}
