package core

import (
	"fmt"
	"sort"

	"github.com/cbuntingde/gitpulse/schema"
)

// Aggregate performs a single left-to-right fold over the record stream.
// Each record updates exactly one AuthorAggregate, keyed by author display
// name. O(n) in commit count, O(1) additional memory per distinct author.
// The fold is a commutative accumulator over counts, so parallel partial
// aggregates could be merged by summation without changing results.
func Aggregate(records []schema.CommitRecord) *schema.AggregateResult {
	res := &schema.AggregateResult{
		Authors:            make(map[string]*schema.AuthorAggregate),
		CategoryHistogram:  make(map[schema.Category]int, len(schema.AllCategories)),
		TimeOfDayHistogram: make(map[schema.TimePeriod]int, len(schema.AllPeriods)),
	}
	// Histograms always carry the full closed set, zero-valued slots included.
	for _, c := range schema.AllCategories {
		res.CategoryHistogram[c] = 0
	}
	for _, p := range schema.AllPeriods {
		res.TimeOfDayHistogram[p] = 0
	}

	for _, rec := range records {
		res.Total++

		agg, ok := res.Authors[rec.Author]
		if !ok {
			agg = &schema.AuthorAggregate{
				Name:           rec.Author,
				Email:          rec.Email,
				FirstSeen:      rec.Timestamp,
				LastSeen:       rec.Timestamp,
				CategoryCounts: make(map[schema.Category]int),
			}
			res.Authors[rec.Author] = agg
			res.AuthorOrder = append(res.AuthorOrder, rec.Author)
		}
		agg.Commits++
		agg.TotalSubjectLength += len(rec.Subject)

		// The stream arrives newest first, but first/last seen are derived
		// by comparison rather than position: no ordering assumption beyond
		// what the log source supplies.
		if !rec.Timestamp.IsZero() {
			if agg.FirstSeen.IsZero() || rec.Timestamp.Before(agg.FirstSeen) {
				agg.FirstSeen = rec.Timestamp
			}
			if rec.Timestamp.After(agg.LastSeen) {
				agg.LastSeen = rec.Timestamp
			}
		}

		// The zero time maps to hour 0, which PeriodForHour already places
		// in night: an unparseable timestamp is counted, never dropped.
		hour := rec.Timestamp.Hour()
		agg.HourHistogram[hour]++
		agg.WeekdayHistogram[int(rec.Timestamp.Weekday())]++
		res.TimeOfDayHistogram[schema.PeriodForHour(hour)]++

		cat := schema.Classify(rec.Subject)
		agg.CategoryCounts[cat]++
		res.CategoryHistogram[cat]++
	}

	return res
}

// RankAuthors orders aggregates descending by commit count, insertion-order
// ties, and renders the percentage share per author.
func RankAuthors(res *schema.AggregateResult, limit int) []schema.AuthorRank {
	names := make([]string, len(res.AuthorOrder))
	copy(names, res.AuthorOrder)
	sort.SliceStable(names, func(i, j int) bool {
		return res.Authors[names[i]].Commits > res.Authors[names[j]].Commits
	})
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	ranks := make([]schema.AuthorRank, 0, len(names))
	for i, name := range names {
		agg := res.Authors[name]
		ranks = append(ranks, schema.AuthorRank{
			Rank:    i + 1,
			Name:    agg.Name,
			Email:   agg.Email,
			Commits: agg.Commits,
			Percent: FormatPercent(agg.Commits, res.Total),
		})
	}
	return ranks
}

// KnownAuthors returns all author names descending by commit count. Used to
// build the candidate list for unknown-author validation errors.
func KnownAuthors(res *schema.AggregateResult) []string {
	names := make([]string, len(res.AuthorOrder))
	copy(names, res.AuthorOrder)
	sort.SliceStable(names, func(i, j int) bool {
		return res.Authors[names[i]].Commits > res.Authors[names[j]].Commits
	})
	return names
}

// FormatPercent renders count/total as a percentage string with one decimal
// place. Independently rounded percentages are permitted to not sum to 100.
func FormatPercent(count, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(count)/float64(total)*100)
}
