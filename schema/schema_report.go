package schema

import "time"

// ReportMeta describes one analysis run.
type ReportMeta struct {
	Repository  string    `json:"repository"`
	GeneratedAt time.Time `json:"generated_at"`
	Commits     int       `json:"commits"`
	Since       string    `json:"since,omitempty"`
	Until       string    `json:"until,omitempty"`
}

// AuthorRank is one row of the ranked author list.
type AuthorRank struct {
	Rank    int    `json:"rank"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Commits int    `json:"commits"`
	Percent string `json:"percent"`
}

// Report is the single serialized artifact produced by a full analysis.
// Field names and nesting are stable across runs for the same inputs;
// serializing and re-parsing a report yields an equal value.
type Report struct {
	Meta       ReportMeta         `json:"meta"`
	Authors    []AuthorRank       `json:"authors"`
	Categories map[Category]int   `json:"categories"`
	TimeOfDay  map[TimePeriod]int `json:"time_of_day"`
	FileChurn  []FileChangeCount  `json:"file_churn"`
	Keywords   []KeywordCount     `json:"keywords"`
	Phrases    []KeywordCount     `json:"phrases"`
	Branches   BranchCounts       `json:"branches"`
}

// ActivityReport holds the temporal view of a commit window.
type ActivityReport struct {
	Days     []ActivityBucket `json:"days"`
	Weeks    []ActivityBucket `json:"weeks"`
	Velocity VelocitySample   `json:"velocity"`
	Hours    [24]int          `json:"hours"`
	Weekdays [7]int           `json:"weekdays"`
	Hotspots []ActivityBucket `json:"hotspots"`
}

// AuthorProfile is the per-author analysis view.
type AuthorProfile struct {
	Aggregate     AuthorAggregate    `json:"aggregate"`
	Percent       string             `json:"percent"`
	Collaborators []CollaboratorEdge `json:"collaborators"`
}

// FileProfile is the per-file attribution view.
type FileProfile struct {
	Path        string            `json:"path"`
	TotalLines  int               `json:"total_lines"`
	Attribution []LineAttribution `json:"attribution"`
}
