package core

import (
	"testing"
	"time"

	"github.com/cbuntingde/gitpulse/schema"
	"github.com/stretchr/testify/assert"
)

func mkRecord(author, email, ts, subject string) schema.CommitRecord {
	parsed, _ := time.Parse(time.RFC3339, ts)
	return schema.CommitRecord{
		Hash:      "h-" + author + "-" + ts,
		Author:    author,
		Email:     email,
		Timestamp: parsed,
		Subject:   subject,
	}
}

func TestAggregateEmpty(t *testing.T) {
	res := Aggregate(nil)

	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.Authors)

	// Closed-set histograms carry every slot even with no input.
	assert.Len(t, res.CategoryHistogram, len(schema.AllCategories))
	assert.Len(t, res.TimeOfDayHistogram, len(schema.AllPeriods))
	for _, c := range schema.AllCategories {
		assert.Equal(t, 0, res.CategoryHistogram[c])
	}
}

func TestAggregateCounts(t *testing.T) {
	records := []schema.CommitRecord{
		mkRecord("Alice", "alice@x.io", "2026-03-10T09:00:00Z", "feat: add parser"),
		mkRecord("Bob", "bob@x.io", "2026-03-10T13:00:00Z", "fix: crash"),
		mkRecord("Alice", "alice@x.io", "2026-03-12T18:00:00Z", "docs: readme"),
		mkRecord("Alice", "alice@x.io", "2026-03-11T02:00:00Z", "tweak output"),
	}
	res := Aggregate(records)

	assert.Equal(t, 4, res.Total)
	assert.Len(t, res.Authors, 2)
	assert.Equal(t, []string{"Alice", "Bob"}, res.AuthorOrder)

	alice := res.Authors["Alice"]
	assert.Equal(t, 3, alice.Commits)
	assert.Equal(t, "alice@x.io", alice.Email)
	assert.Equal(t, 1, alice.CategoryCounts[schema.CategoryFeat])
	assert.Equal(t, 1, alice.CategoryCounts[schema.CategoryDocs])
	assert.Equal(t, 1, alice.CategoryCounts[schema.CategoryOther])

	assert.Equal(t, 1, res.CategoryHistogram[schema.CategoryFix])
	assert.Equal(t, 1, res.TimeOfDayHistogram[schema.PeriodMorning])
	assert.Equal(t, 1, res.TimeOfDayHistogram[schema.PeriodAfternoon])
	assert.Equal(t, 1, res.TimeOfDayHistogram[schema.PeriodEvening])
	assert.Equal(t, 1, res.TimeOfDayHistogram[schema.PeriodNight])
}

func TestAggregateHistogramInvariants(t *testing.T) {
	records := []schema.CommitRecord{
		mkRecord("Alice", "a@x.io", "2026-03-10T09:15:00Z", "feat: one"),
		mkRecord("Bob", "b@x.io", "2026-03-10T23:45:00Z", "fix: two"),
		mkRecord("Cara", "c@x.io", "2026-03-11T12:00:00Z", "three"),
		mkRecord("Alice", "a@x.io", "2026-03-12T06:00:00Z", "chore: four"),
	}
	res := Aggregate(records)

	catSum, todSum := 0, 0
	for _, n := range res.CategoryHistogram {
		catSum += n
	}
	for _, n := range res.TimeOfDayHistogram {
		todSum += n
	}
	assert.Equal(t, res.Total, catSum)
	assert.Equal(t, res.Total, todSum)

	authorSum := 0
	for _, agg := range res.Authors {
		authorSum += agg.Commits

		hourSum, weekdaySum := 0, 0
		for _, n := range agg.HourHistogram {
			hourSum += n
		}
		for _, n := range agg.WeekdayHistogram {
			weekdaySum += n
		}
		assert.Equal(t, agg.Commits, hourSum)
		assert.Equal(t, agg.Commits, weekdaySum)
	}
	assert.Equal(t, res.Total, authorSum)
}

func TestAggregateFirstLastSeenIndependentOfOrder(t *testing.T) {
	// Stream arrives newest first, as the log source produces it.
	records := []schema.CommitRecord{
		mkRecord("Alice", "a@x.io", "2026-03-12T10:00:00Z", "latest"),
		mkRecord("Alice", "a@x.io", "2026-03-10T10:00:00Z", "earliest"),
		mkRecord("Alice", "a@x.io", "2026-03-11T10:00:00Z", "middle"),
	}
	res := Aggregate(records)

	alice := res.Authors["Alice"]
	assert.Equal(t, 10, alice.FirstSeen.Day())
	assert.Equal(t, 12, alice.LastSeen.Day())
}

func TestAggregateUnparseableTimestampStillCounted(t *testing.T) {
	records := []schema.CommitRecord{
		{Hash: "x", Author: "Alice", Subject: "fix: broken clock"},
	}
	res := Aggregate(records)

	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, res.Authors["Alice"].Commits)
	// The zero time maps to hour 0, so the commit lands in night.
	assert.Equal(t, 1, res.TimeOfDayHistogram[schema.PeriodNight])
	assert.True(t, res.Authors["Alice"].FirstSeen.IsZero())
}

func TestRankAuthors(t *testing.T) {
	records := []schema.CommitRecord{
		mkRecord("Bob", "b@x.io", "2026-03-10T10:00:00Z", "one"),
		mkRecord("Alice", "a@x.io", "2026-03-10T11:00:00Z", "two"),
		mkRecord("Alice", "a@x.io", "2026-03-10T12:00:00Z", "three"),
		mkRecord("Cara", "c@x.io", "2026-03-10T13:00:00Z", "four"),
	}
	res := Aggregate(records)
	ranks := RankAuthors(res, 0)

	assert.Len(t, ranks, 3)
	assert.Equal(t, "Alice", ranks[0].Name)
	assert.Equal(t, 1, ranks[0].Rank)
	assert.Equal(t, "50.0%", ranks[0].Percent)
	// Bob and Cara tie at one commit; first-seen order breaks the tie.
	assert.Equal(t, "Bob", ranks[1].Name)
	assert.Equal(t, "Cara", ranks[2].Name)
}

func TestRankAuthorsTieStabilityUnderReversedInput(t *testing.T) {
	forward := []schema.CommitRecord{
		mkRecord("Bob", "b@x.io", "2026-03-10T10:00:00Z", "one"),
		mkRecord("Cara", "c@x.io", "2026-03-10T11:00:00Z", "two"),
	}
	reversed := []schema.CommitRecord{forward[1], forward[0]}

	forwardRanks := RankAuthors(Aggregate(forward), 0)
	reversedRanks := RankAuthors(Aggregate(reversed), 0)

	// Equal counts keep each input's own first-seen order.
	assert.Equal(t, "Bob", forwardRanks[0].Name)
	assert.Equal(t, "Cara", reversedRanks[0].Name)
}

func TestRankAuthorsLimit(t *testing.T) {
	records := []schema.CommitRecord{
		mkRecord("Alice", "a@x.io", "2026-03-10T10:00:00Z", "one"),
		mkRecord("Bob", "b@x.io", "2026-03-10T11:00:00Z", "two"),
		mkRecord("Cara", "c@x.io", "2026-03-10T12:00:00Z", "three"),
	}
	res := Aggregate(records)

	assert.Len(t, RankAuthors(res, 2), 2)
	assert.Len(t, RankAuthors(res, 10), 3)
}

func TestKnownAuthorsDescending(t *testing.T) {
	records := []schema.CommitRecord{
		mkRecord("Bob", "b@x.io", "2026-03-10T10:00:00Z", "one"),
		mkRecord("Alice", "a@x.io", "2026-03-10T11:00:00Z", "two"),
		mkRecord("Alice", "a@x.io", "2026-03-10T12:00:00Z", "three"),
	}
	known := KnownAuthors(Aggregate(records))
	assert.Equal(t, []string{"Alice", "Bob"}, known)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0.0%", FormatPercent(5, 0))
	assert.Equal(t, "50.0%", FormatPercent(1, 2))
	assert.Equal(t, "33.3%", FormatPercent(1, 3))
	assert.Equal(t, "100.0%", FormatPercent(7, 7))
}

func TestAverageSubjectLength(t *testing.T) {
	records := []schema.CommitRecord{
		mkRecord("Alice", "a@x.io", "2026-03-10T10:00:00Z", "abcd"),
		mkRecord("Alice", "a@x.io", "2026-03-10T11:00:00Z", "ab"),
	}
	res := Aggregate(records)
	assert.InDelta(t, 3.0, res.Authors["Alice"].AverageSubjectLength(), 0.0001)
}
