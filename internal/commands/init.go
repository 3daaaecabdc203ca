package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/budget/internal/config"
	"github.com/cleared-dev/budget/internal/gitops"
	"github.com/cleared-dev/budget/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var dataFile string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a budget.yaml and an empty expenses file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, dataFile, useGit)
		},
	}

	cmd.Flags().StringVar(&dataFile, "data-file", "expenses.csv", "expenses file name, relative to the directory")
	cmd.Flags().BoolVar(&useGit, "git", false, "initialize a git repository and commit every change")

	return cmd
}

func runInit(out io.Writer, dir, dataFile string, useGit bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.DefaultPath)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	// Write budget.yaml.
	cfg := config.Default()
	cfg.DataFile = dataFile
	cfg.Git.AutoCommit = useGit
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Create the expenses file with its header.
	dataPath := dataFile
	if !filepath.IsAbs(dataPath) {
		dataPath = filepath.Join(dir, dataPath)
	}
	if _, err := ledger.NewStore(dataPath, zerolog.Nop()).Load(); err != nil {
		return fmt.Errorf("creating expenses file: %w", err)
	}

	if !useGit {
		fmt.Fprintf(out, "Initialized budget at %s\n", dir)
		return nil
	}

	// Initialize git and create initial commit.
	if !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
	}

	paths := []string{config.DefaultPath}
	if rel, err := filepath.Rel(dir, dataPath); err == nil && !strings.HasPrefix(rel, "..") {
		paths = append(paths, rel)
	}
	hash, err := gitops.Commit(dir, "init: start budget", cfg.Git.AuthorName, cfg.Git.AuthorEmail, paths...)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Fprintf(out, "Initialized budget at %s (%s)\n", dir, hash)
	return nil
}
