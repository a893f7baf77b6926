package core

import (
	"sort"
	"strings"

	"github.com/cbuntingde/gitpulse/schema"
)

// Mining limits and thresholds.
const (
	WordLimit       = 20
	PhraseLimit     = 15
	minWordLength   = 4 // tokens shorter than this are noise
	minPhraseLength = 6
)

// stopWords are common tokens excluded from word mining.
var stopWords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "from": {},
	"when": {}, "were": {}, "been": {},
}

// MineSubjects tokenizes commit subjects into ranked word and phrase
// frequencies. A "phrase" is the whole normalized subject, not an n-gram:
// cheap to compute, and it surfaces literally repeated commit messages
// (e.g. "fix typo" recurring) without combinatorial cost.
func MineSubjects(subjects []string) schema.MiningResult {
	wordCounts := make(map[string]int)
	var wordOrder []string
	phraseCounts := make(map[string]int)
	var phraseOrder []string

	for _, subject := range subjects {
		for _, token := range strings.Fields(strings.ToLower(subject)) {
			if len(token) < minWordLength {
				continue
			}
			if _, stop := stopWords[token]; stop {
				continue
			}
			if _, seen := wordCounts[token]; !seen {
				wordOrder = append(wordOrder, token)
			}
			wordCounts[token]++
		}

		phrase := strings.Join(strings.Fields(subject), " ")
		if len(phrase) < minPhraseLength {
			continue
		}
		if _, seen := phraseCounts[phrase]; !seen {
			phraseOrder = append(phraseOrder, phrase)
		}
		phraseCounts[phrase]++
	}

	// Only phrases occurring more than once carry signal.
	var repeated []string
	for _, p := range phraseOrder {
		if phraseCounts[p] > 1 {
			repeated = append(repeated, p)
		}
	}

	return schema.MiningResult{
		Words:   rankCounts(wordCounts, wordOrder, WordLimit),
		Phrases: rankCounts(phraseCounts, repeated, PhraseLimit),
	}
}

// rankCounts orders keys descending by count with first-seen tie-break and
// truncates to the limit.
func rankCounts(counts map[string]int, order []string, limit int) []schema.KeywordCount {
	ranked := make([]schema.KeywordCount, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, schema.KeywordCount{Text: key, Count: counts[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
