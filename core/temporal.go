package core

import (
	"fmt"
	"sort"

	"github.com/cbuntingde/gitpulse/schema"
)

// Temporal analysis constants.
const (
	maxSampleSubjects = 5
	hotspotLimit      = 10

	// Split-half percent change beyond which the trend is no longer stable.
	trendThreshold = 20.0
)

// BucketByDay buckets commits into calendar days (YYYY-MM-DD in the
// commit's recorded zone), sorted ascending by key. Buckets are never
// created for days with zero commits; records without a usable timestamp
// contribute nothing here.
func BucketByDay(records []schema.CommitRecord) []schema.ActivityBucket {
	return bucketBy(records, func(rec schema.CommitRecord) string {
		return rec.Timestamp.Format("2006-01-02")
	})
}

// BucketByWeek buckets commits into ISO weeks (YYYY-Www).
func BucketByWeek(records []schema.CommitRecord) []schema.ActivityBucket {
	return bucketBy(records, func(rec schema.CommitRecord) string {
		year, week := rec.Timestamp.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	})
}

// bucketBy accumulates count, distinct-author set size and up to five
// sample subjects per key.
func bucketBy(records []schema.CommitRecord, keyFn func(schema.CommitRecord) string) []schema.ActivityBucket {
	buckets := make(map[string]*schema.ActivityBucket)
	authors := make(map[string]map[string]struct{})

	for _, rec := range records {
		// A zero timestamp has no calendar position; bucketing it would
		// fabricate a 0001-01-01 entry. It still counts toward window
		// totals and the night histogram elsewhere.
		if rec.Timestamp.IsZero() {
			continue
		}
		key := keyFn(rec)
		b, ok := buckets[key]
		if !ok {
			b = &schema.ActivityBucket{Key: key}
			buckets[key] = b
			authors[key] = make(map[string]struct{})
		}
		b.Commits++
		if len(b.SampleSubjects) < maxSampleSubjects {
			b.SampleSubjects = append(b.SampleSubjects, rec.Subject)
		}
		authors[key][rec.Author] = struct{}{}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ordered := make([]schema.ActivityBucket, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		b.DistinctAuthors = len(authors[k])
		ordered = append(ordered, *b)
	}
	return ordered
}

// EstimateVelocity computes the split-half trend over an ordered day bucket
// list. Zero or one buckets yield a stable trend with a zero percent change;
// there is no division by zero. The daily average divides by the number of
// active days observed, not calendar days.
func EstimateVelocity(days []schema.ActivityBucket) schema.VelocitySample {
	sample := schema.VelocitySample{Trend: schema.TrendStable}
	if len(days) == 0 {
		return sample
	}

	total := 0
	for _, d := range days {
		total += d.Commits
	}
	sample.AverageDailyCommits = float64(total) / float64(len(days))

	if len(days) < 2 {
		return sample
	}

	mid := len(days) / 2
	previousSum, currentSum := 0, 0
	for _, d := range days[:mid] {
		previousSum += d.Commits
	}
	for _, d := range days[mid:] {
		currentSum += d.Commits
	}

	if previousSum > 0 {
		sample.PercentChange = float64(currentSum-previousSum) / float64(previousSum) * 100
	}

	switch {
	case sample.PercentChange > trendThreshold:
		sample.Trend = schema.TrendIncreasing
	case sample.PercentChange < -trendThreshold:
		sample.Trend = schema.TrendDecreasing
	default:
		sample.Trend = schema.TrendStable
	}
	return sample
}

// Hotspots returns the busiest day buckets descending by commit count,
// chronological tie-break, capped at the hotspot limit.
func Hotspots(days []schema.ActivityBucket) []schema.ActivityBucket {
	busiest := make([]schema.ActivityBucket, len(days))
	copy(busiest, days)
	sort.SliceStable(busiest, func(i, j int) bool {
		return busiest[i].Commits > busiest[j].Commits
	})
	if len(busiest) > hotspotLimit {
		busiest = busiest[:hotspotLimit]
	}
	return busiest
}

// WindowHistograms computes the flat hour-of-day and day-of-week
// distributions for the whole window, independent of bucketing.
func WindowHistograms(records []schema.CommitRecord) (hours [24]int, weekdays [7]int) {
	for _, rec := range records {
		hours[rec.Timestamp.Hour()]++
		weekdays[int(rec.Timestamp.Weekday())]++
	}
	return hours, weekdays
}

// BuildActivityReport assembles the full temporal view of a record stream.
func BuildActivityReport(records []schema.CommitRecord) schema.ActivityReport {
	days := BucketByDay(records)
	hours, weekdays := WindowHistograms(records)
	return schema.ActivityReport{
		Days:     days,
		Weeks:    BucketByWeek(records),
		Velocity: EstimateVelocity(days),
		Hours:    hours,
		Weekdays: weekdays,
		Hotspots: Hotspots(days),
	}
}
