package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbuntingde/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertRunRecords(t *testing.T) {
	start := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Second)
	durationMs := int64(2000)
	reportJSON := `{"meta":{}}`

	records := []schema.RunRecord{
		{
			RunID:         1,
			Repository:    "/repo",
			StartTime:     start,
			EndTime:       &end,
			RunDurationMs: &durationMs,
			CommitCount:   42,
			ReportJSON:    &reportJSON,
		},
		{
			RunID:      2,
			Repository: "/other",
			StartTime:  start,
		},
	}

	runs := ConvertRunRecords(records)

	require.Len(t, runs, 2)
	assert.Equal(t, int64(1), runs[0].RunID)
	assert.Equal(t, "/repo", runs[0].Repository)
	assert.Equal(t, int32(42), runs[0].CommitCount)
	require.NotNil(t, runs[0].EndTime)
	assert.True(t, runs[0].EndTime.Equal(end))
	require.NotNil(t, runs[0].ReportJSON)
	assert.Equal(t, reportJSON, *runs[0].ReportJSON)

	// An unfinished run keeps its nullable columns empty.
	assert.Nil(t, runs[1].EndTime)
	assert.Nil(t, runs[1].RunDurationMs)
	assert.Nil(t, runs[1].ReportJSON)
}

func TestConvertRunRecordsEmpty(t *testing.T) {
	assert.Empty(t, ConvertRunRecords(nil))
}

func TestWriteRunsParquet(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "runs.parquet")

	runs := []Run{
		{RunID: 1, Repository: "/repo", StartTime: time.Now(), CommitCount: 3},
	}
	require.NoError(t, WriteRunsParquet(runs, outPath))

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteRunsParquetBadPath(t *testing.T) {
	err := WriteRunsParquet(nil, "/nonexistent/dir/runs.parquet")
	assert.Error(t, err)
}
