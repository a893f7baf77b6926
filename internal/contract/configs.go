package contract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cbuntingde/gitpulse/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit       = 20
	MaxResultLimit           = 1000
	DefaultCollaboratorLimit = 10
	DefaultAdjacencyRadius   = 5
	DefaultSince             = "30 days ago"
)

// Config holds the runtime configuration for one analysis. Everything an
// entry point needs is carried here explicitly; nothing reads ambient
// process state, so multiple analyses can run concurrently in one process.
type Config struct {
	RepoPath  string
	StartTime time.Time
	EndTime   time.Time

	// Now is the injected clock used for report metadata and relative time
	// parsing. Fixed inputs plus a fixed Now yield byte-identical artifacts.
	Now time.Time

	ResultLimit       int
	CollaboratorLimit int
	AdjacencyRadius   int
	Weekly            bool
	Target            string
	Excludes          []string

	Output     schema.OutputMode
	OutputFile string
	UseColors  bool
	Width      int // Terminal width override (0 = auto-detect)

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string
	// Target is the author name or file path argument, also positional
	Target string

	Since            string `mapstructure:"since"`
	Until            string `mapstructure:"until"`
	Limit            int    `mapstructure:"limit"`
	Collaborators    int    `mapstructure:"collaborators"`
	Radius           int    `mapstructure:"radius"`
	Weekly           bool   `mapstructure:"weekly"`
	Exclude          string `mapstructure:"exclude"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Color            string `mapstructure:"color"`
	Width            int    `mapstructure:"width"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Excludes != nil {
		clone.Excludes = make([]string, len(c.Excludes))
		copy(clone.Excludes, c.Excludes)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct. A path outside any Git repository
// is a fatal error surfaced here, before any analysis starts.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTimeRange(cfg, input); err != nil {
		return err
	}
	if err := resolveGitPath(ctx, cfg, client, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-time related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Target = strings.TrimSpace(input.Target)
	cfg.OutputFile = input.OutputFile
	cfg.Weekly = input.Weekly
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- Collaborators Validation ---
	if input.Collaborators <= 0 {
		return fmt.Errorf("collaborators must be greater than 0 (received %d)", input.Collaborators)
	}
	cfg.CollaboratorLimit = input.Collaborators

	if input.Radius <= 0 {
		return fmt.Errorf("radius must be greater than 0 (received %d)", input.Radius)
	}
	cfg.AdjacencyRadius = input.Radius

	// --- Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	// --- Backend Validation ---
	backend := schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return err
	}

	// --- Excludes Processing ---
	cfg.Excludes = nil
	if input.Exclude != "" {
		for p := range strings.SplitSeq(input.Exclude, ",") {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" {
				cfg.Excludes = append(cfg.Excludes, trimmed)
			}
		}
	}

	return nil
}

// processTimeRange handles the time window expressions.
func processTimeRange(cfg *Config, input *ConfigRawInput) error {
	since := input.Since
	if since == "" {
		since = DefaultSince
	}
	start, err := ParseTimeExpression(since, cfg.Now)
	if err != nil {
		return fmt.Errorf("invalid --since value: %w", err)
	}
	cfg.StartTime = start

	cfg.EndTime = cfg.Now
	if input.Until != "" {
		end, err := ParseTimeExpression(input.Until, cfg.Now)
		if err != nil {
			return fmt.Errorf("invalid --until value: %w", err)
		}
		cfg.EndTime = end
	}

	if cfg.StartTime.After(cfg.EndTime) {
		return fmt.Errorf("start time (%s) cannot be after end time (%s)",
			cfg.StartTime.Format(DateTimeFormat), cfg.EndTime.Format(DateTimeFormat))
	}
	return nil
}

// resolveGitPath resolves the repository root for the requested path.
func resolveGitPath(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	searchPath := input.RepoPathStr
	if searchPath == "" {
		searchPath = "."
	}
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}

	gitRoot, err := client.RepoRoot(ctx, filepath.Clean(absSearchPath))
	if err != nil {
		return err
	}
	cfg.RepoPath = gitRoot
	return nil
}
