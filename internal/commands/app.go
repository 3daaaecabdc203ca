package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/budget/internal/activity"
	"github.com/cleared-dev/budget/internal/config"
	"github.com/cleared-dev/budget/internal/gitops"
	"github.com/cleared-dev/budget/internal/ledger"
	"github.com/cleared-dev/budget/internal/logging"
	"github.com/cleared-dev/budget/internal/model"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	dataFile   string
	verbose    bool

	cfg *config.Config
	log zerolog.Logger
	svc *ledger.Service
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}
	if a.dataFile != "" {
		cfg.DataFile = a.dataFile
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, color.NoColor)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger
	a.svc = ledger.NewService(ledger.NewStore(cfg.DataFile, logger), logger)
	return nil
}

// recordChange writes the activity log and the optional git commit after a
// successful mutation. Failures are logged but do not fail the command: the
// expenses file has already been written.
func (a *app) recordChange(action string, index int, e model.Expense) {
	details := describe(e)
	if index > 0 {
		details = fmt.Sprintf("#%d %s", index, details)
	}

	if a.cfg.ActivityLog != "" {
		entry := activity.Entry{Timestamp: time.Now(), Action: action, Details: details}
		if err := activity.Append(a.cfg.ActivityLog, entry); err != nil {
			a.log.Warn().Err(err).Msg("writing activity log")
		}
	}

	if !a.cfg.Git.AutoCommit {
		return
	}

	dataPath, err := filepath.Abs(a.cfg.DataFile)
	if err != nil {
		a.log.Warn().Err(err).Msg("resolving data file path")
		return
	}
	dir := filepath.Dir(dataPath)
	if !gitops.IsRepo(dir) {
		a.log.Debug().Str("dir", dir).Msg("not a git repository, skipping commit")
		return
	}

	paths := []string{filepath.Base(dataPath)}
	if a.cfg.ActivityLog != "" {
		if logPath, err := filepath.Abs(a.cfg.ActivityLog); err == nil {
			if rel, err := filepath.Rel(dir, logPath); err == nil && !strings.HasPrefix(rel, "..") {
				paths = append(paths, rel)
			}
		}
	}

	hash, err := gitops.Commit(dir, action+": "+details, a.cfg.Git.AuthorName, a.cfg.Git.AuthorEmail, paths...)
	if err != nil {
		a.log.Warn().Err(err).Msg("committing change")
		return
	}
	a.log.Debug().Str("commit", hash).Msg("committed change")
}

func describe(e model.Expense) string {
	parts := []string{e.Date, e.Category, e.Amount.StringFixed(2)}
	if e.Note != "" {
		parts = append(parts, e.Note)
	}
	return strings.Join(parts, " | ")
}
