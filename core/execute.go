package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/cbuntingde/gitpulse/internal/outwriter"
)

// ExecuteReport runs the full analysis and prints the report. When a history
// manager is supplied, the run is recorded with the serialized report so
// later invocations can compare against it.
func ExecuteReport(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.HistoryManager) error {
	var runID int64
	if mgr != nil {
		if store := mgr.GetRunStore(); store != nil {
			id, err := store.BeginRun(cfg.Now, cfg.RepoPath)
			if err != nil {
				contract.LogWarn("failed to record run start", err)
			} else {
				runID = id
			}
		}
	}

	report, err := BuildReport(ctx, cfg, client)
	if err != nil {
		return err
	}

	if mgr != nil && runID > 0 {
		if store := mgr.GetRunStore(); store != nil {
			reportJSON, merr := json.Marshal(report)
			if merr != nil {
				contract.LogWarn("failed to serialize report for history", merr)
			} else if err := store.EndRun(runID, time.Now(), report.Meta.Commits, string(reportJSON)); err != nil {
				contract.LogWarn("failed to record run completion", err)
			}
		}
	}

	return outwriter.NewOutWriter().WriteReport(report, cfg)
}

// ExecuteAuthors runs the analysis and prints only the author ranking.
func ExecuteAuthors(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	report, err := BuildReport(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteAuthors(report, cfg)
}

// ExecuteFiles runs the analysis and prints only the file churn ranking.
func ExecuteFiles(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	report, err := BuildReport(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteFiles(report, cfg)
}

// ExecuteActivity runs the temporal analysis and prints the result.
func ExecuteActivity(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	activity, err := BuildActivity(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteActivity(activity, cfg)
}

// ExecuteAuthorProfile runs the per-author analysis and prints the result.
func ExecuteAuthorProfile(ctx context.Context, cfg *contract.Config, client contract.GitClient, name string) error {
	profile, err := BuildAuthorProfile(ctx, cfg, client, name)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteAuthorProfile(profile, cfg)
}

// ExecuteFileProfile runs the per-file attribution and prints the result.
func ExecuteFileProfile(ctx context.Context, cfg *contract.Config, client contract.GitClient, path string) error {
	profile := BuildFileProfile(ctx, cfg, client, path)
	return outwriter.NewOutWriter().WriteFileProfile(&profile, cfg)
}

// ExecuteKeywords runs subject mining and prints the result.
func ExecuteKeywords(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	mined, err := BuildKeywords(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteKeywords(mined, cfg)
}
