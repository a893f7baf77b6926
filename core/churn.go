package core

import (
	"sort"

	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/cbuntingde/gitpulse/schema"
)

// RankChurn counts path occurrences across the flat changed-path stream and
// ranks them descending by count, first-seen tie-break. Truncation to the
// limit never changes relative order among kept entries. Empty input yields
// an empty sequence, not an error.
func RankChurn(paths []string, excludes []string, limit int) []schema.FileChangeCount {
	counts := make(map[string]int)
	var order []string

	for _, p := range paths {
		if p == "" || contract.ShouldIgnore(p, excludes) {
			continue
		}
		if _, seen := counts[p]; !seen {
			order = append(order, p)
		}
		counts[p]++
	}

	ranked := make([]schema.FileChangeCount, 0, len(order))
	for _, p := range order {
		ranked = append(ranked, schema.FileChangeCount{Path: p, Count: counts[p]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
