package core

import (
	"context"

	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/cbuntingde/gitpulse/schema"
)

// BuildReport runs the full pipeline for one window and assembles the
// serialized artifact. Subprocess query failures (log, churn, branches)
// degrade to empty sections with a warning; an empty window still yields
// a valid report.
func BuildReport(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.Report, error) {
	records := LoadRecords(ctx, cfg, client)
	agg := Aggregate(records)

	churn := []schema.FileChangeCount{}
	paths, err := client.ChangedPaths(ctx, cfg.RepoPath, cfg.StartTime, cfg.EndTime)
	if err != nil {
		contract.LogWarn("changed-path query failed, omitting file churn", err)
	} else {
		churn = RankChurn(paths, cfg.Excludes, cfg.ResultLimit)
	}

	branches, err := client.BranchCounts(ctx, cfg.RepoPath)
	if err != nil {
		contract.LogWarn("branch query failed, omitting branch counts", err)
		branches = schema.BranchCounts{}
	}

	subjects := make([]string, 0, len(records))
	for _, rec := range records {
		subjects = append(subjects, rec.Subject)
	}
	mined := MineSubjects(subjects)

	return &schema.Report{
		Meta: schema.ReportMeta{
			Repository:  cfg.RepoPath,
			GeneratedAt: cfg.Now,
			Commits:     agg.Total,
			Since:       cfg.StartTime.Format(contract.DateTimeFormat),
			Until:       cfg.EndTime.Format(contract.DateTimeFormat),
		},
		Authors:    RankAuthors(agg, cfg.ResultLimit),
		Categories: agg.CategoryHistogram,
		TimeOfDay:  agg.TimeOfDayHistogram,
		FileChurn:  churn,
		Keywords:   mined.Words,
		Phrases:    mined.Phrases,
		Branches:   branches,
	}, nil
}

// BuildAuthorProfile resolves one author by exact display-name match. An
// unmatched name is a validation error carrying the observed author list,
// never an empty profile.
func BuildAuthorProfile(ctx context.Context, cfg *contract.Config, client contract.GitClient, name string) (*schema.AuthorProfile, error) {
	records := LoadRecords(ctx, cfg, client)
	agg := Aggregate(records)

	target, ok := agg.Authors[name]
	if !ok {
		return nil, &UnknownAuthorError{Name: name, Known: KnownAuthors(agg)}
	}

	return &schema.AuthorProfile{
		Aggregate:     *target,
		Percent:       FormatPercent(target.Commits, agg.Total),
		Collaborators: InferCollaborators(ctx, cfg, client, name, records),
	}, nil
}

// BuildActivity loads the window and derives its temporal view.
func BuildActivity(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.ActivityReport, error) {
	records := LoadRecords(ctx, cfg, client)
	activity := BuildActivityReport(records)
	return &activity, nil
}

// BuildKeywords loads the window and mines its subjects.
func BuildKeywords(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.MiningResult, error) {
	records := LoadRecords(ctx, cfg, client)
	subjects := make([]string, 0, len(records))
	for _, rec := range records {
		subjects = append(subjects, rec.Subject)
	}
	mined := MineSubjects(subjects)
	return &mined, nil
}
