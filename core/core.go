// Package core implements the analysis pipeline: log parsing, aggregation,
// ranking, mining, attribution and temporal bucketing.
package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/cbuntingde/gitpulse/schema"
)

// UnknownAuthorError is returned when a requested author name matches no
// author observed in the analysis window. Known carries the observed names
// descending by commit count so the caller can suggest alternatives.
type UnknownAuthorError struct {
	Name  string
	Known []string
}

func (e *UnknownAuthorError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown author %q: no commits found in the selected window", e.Name)
	}
	return fmt.Sprintf("unknown author %q: known authors are %s", e.Name, strings.Join(e.Known, ", "))
}

// LoadRecords runs the commit log query for the configured window and
// parses the result into records. A failed query degrades to an empty
// window with a warning; the not-a-repository case is rejected earlier,
// during config validation.
func LoadRecords(ctx context.Context, cfg *contract.Config, client contract.GitClient) []schema.CommitRecord {
	raw, err := client.CommitLog(ctx, cfg.RepoPath, cfg.StartTime, cfg.EndTime)
	if err != nil {
		contract.LogWarn("commit log query failed, continuing with an empty window", err)
		return nil
	}
	return ParseLog(raw)
}
