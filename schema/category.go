package schema

import "strings"

// categoryRule pairs a subject prefix with the category it assigns.
type categoryRule struct {
	prefix   string
	category Category
}

// categoryRules is evaluated top to bottom; first match wins. The prefix
// must be followed by a colon, matched case-insensitively.
var categoryRules = []categoryRule{
	{"fix", CategoryFix},
	{"feat", CategoryFeat},
	{"refactor", CategoryRefactor},
	{"docs", CategoryDocs},
	{"test", CategoryTest},
	{"chore", CategoryChore},
}

// Classify assigns exactly one category to a commit subject. It is a pure
// function: case-insensitive prefix match against "<token>:", first match
// wins, no match falls through to CategoryOther.
func Classify(subject string) Category {
	lower := strings.ToLower(subject)
	for _, rule := range categoryRules {
		if strings.HasPrefix(lower, rule.prefix+":") {
			return rule.category
		}
	}
	return CategoryOther
}

// PeriodForHour maps a local commit hour (0-23) to its named period.
// Out-of-range hours from unparseable timestamps land in night.
func PeriodForHour(hour int) TimePeriod {
	switch {
	case hour >= 6 && hour < 12:
		return PeriodMorning
	case hour >= 12 && hour < 17:
		return PeriodAfternoon
	case hour >= 17 && hour < 21:
		return PeriodEvening
	default:
		return PeriodNight
	}
}
