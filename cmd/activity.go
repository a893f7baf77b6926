package cmd

import (
	"github.com/cbuntingde/gitpulse/core"
	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/spf13/cobra"
)

// activityCmd runs the temporal analysis.
var activityCmd = &cobra.Command{
	Use:   "activity [repo-path]",
	Short: "Show commit activity over time with a velocity estimate.",
	Long: `Bucket commits by calendar day (or ISO week with --weekly) and estimate
the commit velocity trend by comparing the first and second half of the
window. Each bucket carries the commit count, the number of distinct
authors and up to five sample subjects.

Examples:
  # Daily activity for the last 30 days
  gitpulse activity

  # Weekly rhythm over a quarter
  gitpulse activity --weekly --since "90 days ago"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteActivity(rootCtx, cfg, gitClient); err != nil {
			contract.LogFatal("Cannot run activity analysis", err)
		}
	},
}

// keywordsCmd mines commit subjects.
var keywordsCmd = &cobra.Command{
	Use:   "keywords [repo-path]",
	Short: "Mine commit subjects for frequent keywords and repeated messages.",
	Long: `Tokenize commit subjects and rank the most frequent meaningful words,
plus whole messages that recur verbatim. Useful for spotting recurring
themes ("revert", "hotfix") and copy-pasted commit habits.

Examples:
  gitpulse keywords
  gitpulse keywords --since "1 year ago" --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteKeywords(rootCtx, cfg, gitClient); err != nil {
			contract.LogFatal("Cannot run keyword mining", err)
		}
	},
}
