package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/budget/internal/model"
)

// Store persists the ordered expense collection in a single CSV file.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore creates a Store backed by the CSV file at path.
func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{path: path, log: logger.With().Str("file", path).Logger()}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every expense in file order, creating the file with only the
// header when it does not exist yet.
func (s *Store) Load() ([]model.Expense, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening expenses %s: %w", s.path, err)
	}
	defer f.Close()

	expenses, normalized, err := ReadExpenses(f)
	if err != nil {
		return nil, fmt.Errorf("reading expenses %s: %w", s.path, err)
	}
	for _, line := range normalized {
		s.log.Warn().Int("line", line).Msg("unparsable amount read as 0.00")
	}

	s.log.Debug().Int("count", len(expenses)).Msg("loaded expenses")
	return expenses, nil
}

// Save rewrites the whole file from expenses. The new content is written to a
// temporary file that then replaces the original.
func (s *Store) Save(expenses []model.Expense) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating expenses dir: %w", err)
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmp, err)
	}

	if err := WriteExpenses(f, expenses); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing expenses: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}

	s.log.Debug().Int("count", len(expenses)).Msg("saved expenses")
	return nil
}

// Append adds one expense at the end of the file without rewriting it.
func (s *Store) Append(e model.Expense) error {
	if err := s.ensure(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening expenses: %w", err)
	}
	defer f.Close()

	if err := AppendExpenses(f, []model.Expense{e}); err != nil {
		return fmt.Errorf("appending expense: %w", err)
	}

	s.log.Debug().Str("date", e.Date).Str("category", e.Category).Msg("appended expense")
	return nil
}

// ensure creates the file with a header if it is missing or empty.
func (s *Store) ensure() error {
	info, err := os.Stat(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return fmt.Errorf("checking expenses %s: %w", s.path, err)
	case info.Size() > 0:
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating expenses dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(Header+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}
