package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/budget/internal/activity"
	"github.com/cleared-dev/budget/internal/ledger"
)

func newAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <date> <category> <amount> [note]",
		Short: "Record an expense",
		Long:  "Record an expense. The date is YYYY-MM-DD and the amount a number greater than zero.",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := ledger.AddParams{Date: args[0], Category: args[1], Amount: args[2]}
			if len(args) == 4 {
				params.Note = args[3]
			}

			e, err := a.svc.Add(params)
			if err != nil {
				return err
			}
			a.recordChange(activity.ActionAdd, 0, e)

			okColor.Fprintf(cmd.OutOrStdout(), "Added: %s\n", describe(e))
			return nil
		},
	}
}
