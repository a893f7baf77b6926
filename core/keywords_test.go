package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMineSubjectsWords(t *testing.T) {
	subjects := []string{
		"update parser logic",
		"update parser tests",
		"fix it",
	}
	mined := MineSubjects(subjects)

	counts := map[string]int{}
	for _, w := range mined.Words {
		counts[w.Text] = w.Count
	}
	assert.Equal(t, 2, counts["update"])
	assert.Equal(t, 2, counts["parser"])
	assert.Equal(t, 1, counts["logic"])
	// Short tokens carry no signal.
	assert.NotContains(t, counts, "fix")
	assert.NotContains(t, counts, "it")
}

func TestMineSubjectsStopWords(t *testing.T) {
	mined := MineSubjects([]string{"this fixes that issue with tests from before"})

	for _, w := range mined.Words {
		assert.NotContains(t, []string{"this", "that", "with", "from", "when", "were", "been"}, w.Text)
	}
}

func TestMineSubjectsLowercasesTokens(t *testing.T) {
	mined := MineSubjects([]string{"Update Parser", "update parser"})

	counts := map[string]int{}
	for _, w := range mined.Words {
		counts[w.Text] = w.Count
	}
	assert.Equal(t, 2, counts["update"])
	assert.Equal(t, 2, counts["parser"])
}

func TestMineSubjectsPhrases(t *testing.T) {
	subjects := []string{
		"fix typo",
		"fix  typo", // whitespace normalizes to the same phrase
		"add feature gate",
		"wip", // too short for a phrase
		"wip",
	}
	mined := MineSubjects(subjects)

	assert.Len(t, mined.Phrases, 1)
	assert.Equal(t, "fix typo", mined.Phrases[0].Text)
	assert.Equal(t, 2, mined.Phrases[0].Count)
}

func TestMineSubjectsPhraseRequiresRepetition(t *testing.T) {
	mined := MineSubjects([]string{"a unique commit message"})
	assert.Empty(t, mined.Phrases)
}

func TestMineSubjectsLimits(t *testing.T) {
	var subjects []string
	for i := 0; i < 30; i++ {
		// 30 distinct long words, each once
		subjects = append(subjects, string(rune('a'+i%26))+"word"+string(rune('a'+i/26)))
	}
	mined := MineSubjects(subjects)
	assert.LessOrEqual(t, len(mined.Words), WordLimit)
}

func TestMineSubjectsTieOrderIsFirstSeen(t *testing.T) {
	mined := MineSubjects([]string{"zebra apple", "zebra apple"})

	assert.Equal(t, "zebra", mined.Words[0].Text)
	assert.Equal(t, "apple", mined.Words[1].Text)
}

func TestMineSubjectsEmpty(t *testing.T) {
	mined := MineSubjects(nil)
	assert.Empty(t, mined.Words)
	assert.Empty(t, mined.Phrases)
}
