package schema

import "time"

// RunRecord is one stored analysis run in the history store.
type RunRecord struct {
	RunID         int64      `json:"run_id"`
	Repository    string     `json:"repository"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	RunDurationMs *int64     `json:"run_duration_ms,omitempty"`
	CommitCount   int        `json:"commit_count"`
	ReportJSON    *string    `json:"report_json,omitempty"`
}

// HistoryStatus summarizes the state of the history store.
type HistoryStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int64            `json:"total_runs"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}
