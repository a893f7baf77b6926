// Package schema has the data model, enums and report shapes for all parts of gitpulse.
package schema

import "time"

// CommitRecord is one parsed commit from the log source. It is immutable
// once parsed; aggregators only ever read it.
type CommitRecord struct {
	Hash      string    `json:"hash"`
	Author    string    `json:"author"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
	Subject   string    `json:"subject"`
}

// AuthorAggregate accumulates per-author statistics across one ingestion run.
// One aggregate exists per distinct author display name; two records with the
// same name but different emails fold into the same aggregate.
type AuthorAggregate struct {
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Commits            int              `json:"commits"`
	FirstSeen          time.Time        `json:"first_seen"`
	LastSeen           time.Time        `json:"last_seen"`
	HourHistogram      [24]int          `json:"hour_histogram"`
	WeekdayHistogram   [7]int           `json:"weekday_histogram"`
	CategoryCounts     map[Category]int `json:"category_counts"`
	TotalSubjectLength int              `json:"total_subject_length"`
}

// AverageSubjectLength is derived on read, never stored.
func (a *AuthorAggregate) AverageSubjectLength() float64 {
	if a.Commits == 0 {
		return 0
	}
	return float64(a.TotalSubjectLength) / float64(a.Commits)
}

// AggregateResult is the output of the single-pass aggregation engine.
// AuthorOrder preserves first-seen order so that equal-count ties render
// deterministically.
type AggregateResult struct {
	Total              int
	Authors            map[string]*AuthorAggregate
	AuthorOrder        []string
	CategoryHistogram  map[Category]int
	TimeOfDayHistogram map[TimePeriod]int
}

// FileChangeCount is one entry of the file churn ranking.
type FileChangeCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// ActivityBucket is one calendar day or ISO week of commit activity.
// Buckets only exist for keys with at least one commit.
type ActivityBucket struct {
	Key             string   `json:"key"`
	Commits         int      `json:"commits"`
	DistinctAuthors int      `json:"distinct_authors"`
	SampleSubjects  []string `json:"sample_subjects"`
}

// VelocitySample is the split-half trend over an ordered day bucket list.
// It is recomputed per query window and never persisted on its own.
type VelocitySample struct {
	AverageDailyCommits float64 `json:"average_daily_commits"`
	Trend               Trend   `json:"trend"`
	PercentChange       float64 `json:"percent_change"`
}

// CollaboratorEdge is an undirected co-occurrence relation between two
// authors, inferred from temporally adjacent commits.
type CollaboratorEdge struct {
	AuthorA       string `json:"author_a"`
	AuthorB       string `json:"author_b"`
	SharedCommits int    `json:"shared_commits"`
}

// LineAttribution is one author's share of a single file's lines.
type LineAttribution struct {
	Author  string  `json:"author"`
	Lines   int     `json:"lines"`
	Percent float64 `json:"percent"`
}

// KeywordCount is one ranked word or phrase mined from commit subjects.
type KeywordCount struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// MiningResult holds the ranked words and phrases from subject mining.
type MiningResult struct {
	Words   []KeywordCount `json:"words"`
	Phrases []KeywordCount `json:"phrases"`
}

// BranchCounts holds the repository branch totals reported by the log source.
type BranchCounts struct {
	Total  int `json:"total"`
	Merged int `json:"merged"`
}
