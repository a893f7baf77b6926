// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/cbuntingde/gitpulse/schema"
)

// GitClient is the narrow log-source boundary. Every analysis component
// depends on this interface, never on process-invocation details, so the
// whole pipeline can be unit tested with a fake implementation.
type GitClient interface {
	// --- Generic / Low-Level ---

	// Run executes a git command and returns its output. Its use should be
	// minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// --- Environment ---

	// RepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path. A non-repository path is an error.
	RepoRoot(ctx context.Context, contextPath string) (string, error)

	// --- Commit / Churn Logs ---

	// CommitLog returns delimiter-joined commit records for the window,
	// newest first: hash, author name, author email, ISO-8601 timestamp
	// with offset, subject line.
	CommitLog(ctx context.Context, repoPath string, startTime, endTime time.Time) ([]byte, error)

	// ChangedPaths returns the flat stream of file paths touched per commit
	// in the window. Duplicates are expected and meaningful.
	ChangedPaths(ctx context.Context, repoPath string, startTime, endTime time.Time) ([]string, error)

	// --- Attribution ---

	// BlameAuthors returns one author name per attributed source line of the
	// given file.
	BlameAuthors(ctx context.Context, repoPath, path string) ([]string, error)

	// AdjacentAuthors returns the authors of the commits in the adjacent
	// range around the given hash. Input for the collaboration heuristic.
	AdjacentAuthors(ctx context.Context, repoPath, hash string, radius int) ([]string, error)

	// --- Branches ---

	// BranchCounts returns the total and merged branch counts.
	BranchCounts(ctx context.Context, repoPath string) (schema.BranchCounts, error)
}

// HistoryManager defines the interface for accessing the run-history store.
// This allows the persistence layer to be mocked for testing.
type HistoryManager interface {
	GetRunStore() RunStore
}

// RunStore defines the interface for run-history storage.
type RunStore interface {
	// BeginRun creates a new run row and returns its unique ID.
	BeginRun(startTime time.Time, repository string) (int64, error)

	// EndRun updates the run with completion data and the serialized report.
	EndRun(runID int64, endTime time.Time, commitCount int, reportJSON string) error

	// GetStatus returns status information about the history store.
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns retrieves every stored run, oldest first.
	GetAllRuns() ([]schema.RunRecord, error)

	// Close closes the underlying connection.
	Close() error
}
