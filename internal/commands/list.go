package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/budget/internal/ledger"
)

func newListCommand(a *app) *cobra.Command {
	var filter ledger.Filter
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses with their index and total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := a.svc.List(filter, limit)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(listing.Entries) == 0 {
				noticeColor.Fprintln(w, "No expenses match the given filters.")
				return nil
			}
			renderIndexed(w, listing)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "show at most N expenses")
	cmd.Flags().StringVar(&filter.Month, "month", "", "only expenses in month (YYYY-MM)")
	cmd.Flags().StringVar(&filter.Category, "category", "", "only expenses in category (case-insensitive)")

	return cmd
}
