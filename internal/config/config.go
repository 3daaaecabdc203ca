package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "budget.yaml"

// Environment variables that override the config file.
const (
	EnvConfig   = "BUDGET_CONFIG"
	EnvFile     = "BUDGET_FILE"
	EnvLogLevel = "BUDGET_LOG_LEVEL"
	EnvNoColor  = "BUDGET_NO_COLOR"
)

// Config represents budget.yaml.
type Config struct {
	DataFile    string    `yaml:"data_file"`
	LogLevel    string    `yaml:"log_level"`
	NoColor     bool      `yaml:"no_color"`
	ActivityLog string    `yaml:"activity_log,omitempty"` // empty disables the activity log
	Git         GitConfig `yaml:"git"`
}

// GitConfig controls committing the data file after each change.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DataFile: "expenses.csv",
		LogLevel: "warn",
		Git: GitConfig{
			AuthorName:  "budget",
			AuthorEmail: "budget@localhost",
		},
	}
}

// Load reads a budget.yaml file from disk. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Resolve builds the effective configuration: defaults, then the config
// file, then environment variables. A .env file in the working directory is
// loaded first.
//
// An empty path means $BUDGET_CONFIG, falling back to budget.yaml in the
// working directory; only that last fallback may be missing. Relative paths
// inside the file are taken relative to the file's directory.
func Resolve(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()
	loaded, err := Load(path)
	switch {
	case err == nil:
		cfg = loaded
		base := filepath.Dir(path)
		cfg.DataFile = relativeTo(base, cfg.DataFile)
		cfg.ActivityLog = relativeTo(base, cfg.ActivityLog)
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, err
	}

	if v := os.Getenv(EnvFile); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvNoColor); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", EnvNoColor, err)
		}
		cfg.NoColor = noColor
	}

	return cfg, nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.DataFile) == "" {
		problems = append(problems, "data_file must not be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log_level %q", c.LogLevel))
	}
	if c.Git.AutoCommit && (c.Git.AuthorName == "" || c.Git.AuthorEmail == "") {
		problems = append(problems, "git.author_name and git.author_email are required with git.auto_commit")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func relativeTo(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
