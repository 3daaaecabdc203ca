package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/budget/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "budget",
		Short:   "Track personal expenses in a CSV file",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $BUDGET_CONFIG or ./budget.yaml)")
	flags.StringVar(&a.dataFile, "file", "", "expenses CSV file, overrides the config")
	flags.BoolVar(&a.verbose, "verbose", false, "log debug details to stderr")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(a),
		newListCommand(a),
		newEditCommand(a),
		newDeleteCommand(a),
		newReportCommand(a),
	)

	return rootCmd
}
