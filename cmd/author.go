package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/cbuntingde/gitpulse/core"
	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/spf13/cobra"
)

// authorCmd builds the per-author view.
var authorCmd = &cobra.Command{
	Use:   "author <name> [repo-path]",
	Short: "Show one author's activity profile.",
	Long: `Build the per-author view: commit count and share, first and last
activity, hour and weekday histograms, category mix, and the authors
most often committing in the same stretch of history (a temporal
heuristic for likely collaborators).

The name must match the author's display name exactly. A name with no
commits in the window is an error listing the known authors.

Examples:
  gitpulse author "Grace Hopper"
  gitpulse author "Grace Hopper" ../other-repo --collaborators 5`,
	Args:    cobra.RangeArgs(1, 2),
	PreRunE: targetSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAuthorProfile(rootCtx, cfg, gitClient, cfg.Target); err != nil {
			var unknown *core.UnknownAuthorError
			if errors.As(err, &unknown) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", unknown)
				os.Exit(1)
			}
			contract.LogFatal("Cannot run author analysis", err)
		}
	},
}

// fileCmd builds the per-file attribution view.
var fileCmd = &cobra.Command{
	Use:   "file <path> [repo-path]",
	Short: "Show line-level authorship for one file.",
	Long: `Attribute each line of the given file to its last author and rank
authors by attributed line count with their percentage share. The path
is relative to the repository root.

Examples:
  gitpulse file internal/server/server.go
  gitpulse file README.md --output json`,
	Args:    cobra.RangeArgs(1, 2),
	PreRunE: targetSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFileProfile(rootCtx, cfg, gitClient, cfg.Target); err != nil {
			contract.LogFatal("Cannot run file attribution", err)
		}
	},
}
