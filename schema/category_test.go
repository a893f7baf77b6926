package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		expected Category
	}{
		{"fix prefix", "fix: resolve crash on startup", CategoryFix},
		{"feat prefix", "feat: add retry budget", CategoryFeat},
		{"refactor prefix", "refactor: split parser", CategoryRefactor},
		{"docs prefix", "docs: update readme", CategoryDocs},
		{"test prefix", "test: cover edge cases", CategoryTest},
		{"chore prefix", "chore: bump deps", CategoryChore},
		{"uppercase prefix", "FIX: resolve crash", CategoryFix},
		{"mixed case prefix", "Feat: new flag", CategoryFeat},
		{"no colon", "fix resolve crash", CategoryOther},
		{"prefix not at start", "hotfix: patch", CategoryOther},
		{"longer token", "fixes: patch", CategoryOther},
		{"keyword mid subject", "improve fix: handling", CategoryOther},
		{"empty subject", "", CategoryOther},
		{"plain subject", "update dependencies", CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.subject))
		})
	}
}

func TestPeriodForHour(t *testing.T) {
	tests := []struct {
		hour     int
		expected TimePeriod
	}{
		{0, PeriodNight},
		{5, PeriodNight},
		{6, PeriodMorning},
		{11, PeriodMorning},
		{12, PeriodAfternoon},
		{16, PeriodAfternoon},
		{17, PeriodEvening},
		{20, PeriodEvening},
		{21, PeriodNight},
		{23, PeriodNight},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, PeriodForHour(tt.hour), "hour %d", tt.hour)
	}
}

func TestPeriodForHourCoversEveryHour(t *testing.T) {
	seen := make(map[TimePeriod]int)
	for h := 0; h < 24; h++ {
		seen[PeriodForHour(h)]++
	}
	assert.Equal(t, 6, seen[PeriodMorning])
	assert.Equal(t, 5, seen[PeriodAfternoon])
	assert.Equal(t, 4, seen[PeriodEvening])
	assert.Equal(t, 9, seen[PeriodNight])
}
