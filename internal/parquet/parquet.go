// Package parquet exports run history to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/cbuntingde/gitpulse/schema"
	"github.com/parquet-go/parquet-go"
)

// Run is one analysis run row in the exported Parquet file.
// This struct maps to the gitpulse_runs database table.
type Run struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// Repository is the absolute path of the analyzed repository root
	Repository string `parquet:"repository,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int64 `parquet:"run_duration_ms,optional,snappy"`

	// CommitCount is the number of commits analyzed in this run
	CommitCount int32 `parquet:"commit_count,snappy"`

	// ReportJSON carries the serialized report artifact (nullable)
	ReportJSON *string `parquet:"report_json,optional,snappy"`
}

// ConvertRunRecords maps stored run records into their Parquet row form.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	runs := make([]Run, len(records))
	for i, rec := range records {
		runs[i] = Run{
			RunID:         rec.RunID,
			Repository:    rec.Repository,
			StartTime:     rec.StartTime,
			EndTime:       rec.EndTime,
			RunDurationMs: rec.RunDurationMs,
			CommitCount:   int32(rec.CommitCount),
			ReportJSON:    rec.ReportJSON,
		}
	}
	return runs
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the Run struct tags
	writer := parquet.NewGenericWriter[Run](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
