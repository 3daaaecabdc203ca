package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCommand(a *app) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Summaries by month, category or date range",
	}
	reportCmd.AddCommand(
		newReportMonthCommand(a),
		newReportCategoryCommand(a),
		newReportOverviewCommand(a),
		newReportRangeCommand(a),
	)
	return reportCmd
}

func newReportMonthCommand(a *app) *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:   "month <YYYY-MM>",
		Short: "List a month's expenses and their total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month := args[0]
			listing, err := a.svc.MonthReport(month)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			renderReport(w, "Report for "+month, month, listing)

			if export != "" {
				if err := a.svc.Export(export, listing.Entries.Expenses()); err != nil {
					return err
				}
				okColor.Fprintf(w, "Exported to %s\n", export)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&export, "export", "", "also write the month's expenses to this CSV file")

	return cmd
}

func newReportCategoryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "category",
		Short: "All-time totals per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			totals, err := a.svc.CategoryReport()
			if err != nil {
				return err
			}
			renderTotals(cmd.OutOrStdout(), "Totals by category", totals)
			return nil
		},
	}
}

func newReportOverviewCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "All-time totals per month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			totals, err := a.svc.Overview()
			if err != nil {
				return err
			}
			renderTotals(cmd.OutOrStdout(), "Totals by month", totals)
			return nil
		},
	}
}

func newReportRangeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "range <from> <to>",
		Short: "List expenses between two dates (inclusive) and their total",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := args[0], args[1]
			listing, err := a.svc.RangeReport(from, to)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("Report for %s to %s", from, to)
			renderReport(cmd.OutOrStdout(), title, from+".."+to, listing)
			return nil
		},
	}
}
