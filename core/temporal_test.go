package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/cbuntingde/gitpulse/schema"
	"github.com/stretchr/testify/assert"
)

func TestBucketByDay(t *testing.T) {
	records := []schema.CommitRecord{
		mkRecord("Alice", "a@x.io", "2026-03-12T10:00:00Z", "later"),
		mkRecord("Bob", "b@x.io", "2026-03-10T09:00:00Z", "first"),
		mkRecord("Alice", "a@x.io", "2026-03-10T17:00:00Z", "second"),
	}
	days := BucketByDay(records)

	assert.Len(t, days, 2)
	assert.Equal(t, "2026-03-10", days[0].Key)
	assert.Equal(t, 2, days[0].Commits)
	assert.Equal(t, 2, days[0].DistinctAuthors)
	assert.Equal(t, []string{"first", "second"}, days[0].SampleSubjects)
	assert.Equal(t, "2026-03-12", days[1].Key)
	assert.Equal(t, 1, days[1].DistinctAuthors)
}

func TestBucketByDaySkipsZeroTimestamps(t *testing.T) {
	records := []schema.CommitRecord{
		{Author: "Alice", Subject: "no clock"},
		mkRecord("Bob", "b@x.io", "2026-03-10T09:00:00Z", "ok"),
	}
	days := BucketByDay(records)

	assert.Len(t, days, 1)
	assert.Equal(t, 1, days[0].Commits)
}

func TestBucketByDaySampleCap(t *testing.T) {
	var records []schema.CommitRecord
	for i := 0; i < 8; i++ {
		records = append(records, mkRecord("Alice", "a@x.io",
			fmt.Sprintf("2026-03-10T%02d:00:00Z", i), fmt.Sprintf("subject %d", i)))
	}
	days := BucketByDay(records)

	assert.Len(t, days, 1)
	assert.Equal(t, 8, days[0].Commits)
	assert.Len(t, days[0].SampleSubjects, 5)
}

func TestBucketByWeek(t *testing.T) {
	records := []schema.CommitRecord{
		// 2026-01-01 falls in ISO week 2026-W01.
		mkRecord("Alice", "a@x.io", "2026-01-01T10:00:00Z", "new year"),
		mkRecord("Alice", "a@x.io", "2026-01-08T10:00:00Z", "next week"),
		// 2024-12-30 belongs to ISO week 2025-W01, not 2024.
		mkRecord("Bob", "b@x.io", "2024-12-30T10:00:00Z", "year boundary"),
	}
	weeks := BucketByWeek(records)

	keys := []string{weeks[0].Key, weeks[1].Key, weeks[2].Key}
	assert.Equal(t, []string{"2025-W01", "2026-W01", "2026-W02"}, keys)
}

func TestEstimateVelocity(t *testing.T) {
	day := func(key string, commits int) schema.ActivityBucket {
		return schema.ActivityBucket{Key: key, Commits: commits}
	}

	t.Run("no buckets is stable at zero", func(t *testing.T) {
		v := EstimateVelocity(nil)
		assert.Equal(t, schema.TrendStable, v.Trend)
		assert.Zero(t, v.PercentChange)
		assert.Zero(t, v.AverageDailyCommits)
	})

	t.Run("single bucket is stable", func(t *testing.T) {
		v := EstimateVelocity([]schema.ActivityBucket{day("2026-03-10", 4)})
		assert.Equal(t, schema.TrendStable, v.Trend)
		assert.Zero(t, v.PercentChange)
		assert.InDelta(t, 4.0, v.AverageDailyCommits, 0.0001)
	})

	t.Run("increasing beyond threshold", func(t *testing.T) {
		v := EstimateVelocity([]schema.ActivityBucket{
			day("2026-03-10", 2), day("2026-03-11", 5),
		})
		assert.Equal(t, schema.TrendIncreasing, v.Trend)
		assert.InDelta(t, 150.0, v.PercentChange, 0.0001)
	})

	t.Run("decreasing beyond threshold", func(t *testing.T) {
		v := EstimateVelocity([]schema.ActivityBucket{
			day("2026-03-10", 10), day("2026-03-11", 2),
		})
		assert.Equal(t, schema.TrendDecreasing, v.Trend)
		assert.InDelta(t, -80.0, v.PercentChange, 0.0001)
	})

	t.Run("exactly twenty percent is stable", func(t *testing.T) {
		v := EstimateVelocity([]schema.ActivityBucket{
			day("2026-03-10", 5), day("2026-03-11", 6),
		})
		assert.Equal(t, schema.TrendStable, v.Trend)
		assert.InDelta(t, 20.0, v.PercentChange, 0.0001)
	})

	t.Run("odd bucket count splits with smaller first half", func(t *testing.T) {
		v := EstimateVelocity([]schema.ActivityBucket{
			day("2026-03-10", 2), day("2026-03-11", 2), day("2026-03-12", 2),
		})
		// First half is one day (2), second half two days (4).
		assert.Equal(t, schema.TrendIncreasing, v.Trend)
		assert.InDelta(t, 100.0, v.PercentChange, 0.0001)
	})

	t.Run("average divides by active days", func(t *testing.T) {
		v := EstimateVelocity([]schema.ActivityBucket{
			day("2026-03-10", 3), day("2026-03-20", 1),
		})
		assert.InDelta(t, 2.0, v.AverageDailyCommits, 0.0001)
	})
}

func TestHotspots(t *testing.T) {
	var days []schema.ActivityBucket
	for i := 0; i < 12; i++ {
		days = append(days, schema.ActivityBucket{
			Key:     fmt.Sprintf("2026-03-%02d", i+1),
			Commits: i,
		})
	}
	hot := Hotspots(days)

	assert.Len(t, hot, 10)
	assert.Equal(t, 11, hot[0].Commits)
	// Input order is untouched.
	assert.Equal(t, 0, days[0].Commits)
}

func TestHotspotsTieKeepsChronologicalOrder(t *testing.T) {
	days := []schema.ActivityBucket{
		{Key: "2026-03-10", Commits: 2},
		{Key: "2026-03-11", Commits: 2},
	}
	hot := Hotspots(days)
	assert.Equal(t, "2026-03-10", hot[0].Key)
}

func TestBuildActivityReport(t *testing.T) {
	records := []schema.CommitRecord{
		mkRecord("Alice", "a@x.io", "2026-03-09T09:00:00Z", "one"), // Monday
		mkRecord("Alice", "a@x.io", "2026-03-09T21:00:00Z", "two"),
		mkRecord("Bob", "b@x.io", "2026-03-10T09:00:00Z", "three"),
	}
	report := BuildActivityReport(records)

	assert.Len(t, report.Days, 2)
	assert.Len(t, report.Weeks, 1)
	assert.Equal(t, 2, report.Hours[9])
	assert.Equal(t, 1, report.Hours[21])
	assert.Equal(t, 2, report.Weekdays[int(time.Monday)])
	assert.Equal(t, 1, report.Weekdays[int(time.Tuesday)])
	assert.Len(t, report.Hotspots, 2)
	assert.Equal(t, "2026-03-09", report.Hotspots[0].Key)
}
