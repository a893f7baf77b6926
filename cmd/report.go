package cmd

import (
	"github.com/cbuntingde/gitpulse/core"
	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd runs the full analysis pipeline.
var reportCmd = &cobra.Command{
	Use:   "report [repo-path]",
	Short: "Produce the full commit-log analysis report.",
	Long: `Digest the commit log into a single report covering:
- Author ranking with commit counts and percentage share
- Commit message category mix (fix, feat, refactor, docs, test, chore, other)
- Time-of-day distribution (morning, afternoon, evening, night)
- File churn ranking
- Frequent keywords and repeated commit messages
- Branch counts

When a history backend is configured, each report run is recorded so
results can be compared over time.

Examples:
  # Report on the current repository for the last 30 days
  gitpulse report

  # Report on a specific window
  gitpulse report --since "90 days ago" --until 2026-06-01

  # Machine-readable artifact
  gitpulse report --output json --output-file report.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, gitClient, historyManager); err != nil {
			contract.LogFatal("Cannot run report analysis", err)
		}
	},
}

// authorsCmd prints the ranked author list.
var authorsCmd = &cobra.Command{
	Use:   "authors [repo-path]",
	Short: "Rank commit authors by activity.",
	Long: `Rank authors descending by commit count for the selected window.
Ties keep the order in which authors first appear in the log.

Examples:
  gitpulse authors
  gitpulse authors --limit 5 --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAuthors(rootCtx, cfg, gitClient); err != nil {
			contract.LogFatal("Cannot run author analysis", err)
		}
	},
}

// filesCmd prints the file churn ranking.
var filesCmd = &cobra.Command{
	Use:   "files [repo-path]",
	Short: "Rank files by change frequency.",
	Long: `Count how often each file was touched in the selected window and rank
the most frequently changed ones. Use --exclude to filter generated or
vendored paths.

Examples:
  gitpulse files
  gitpulse files --exclude "vendor/,go.sum" --limit 10`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFiles(rootCtx, cfg, gitClient); err != nil {
			contract.LogFatal("Cannot run file churn analysis", err)
		}
	},
}
