package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestParseRelativeTime(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"30 days ago", fixedNow.Add(-30 * 24 * time.Hour)},
		{"1 day ago", fixedNow.Add(-24 * time.Hour)},
		{"2 weeks ago", fixedNow.Add(-2 * 7 * 24 * time.Hour)},
		{"6 months ago", fixedNow.AddDate(0, -6, 0)},
		{"1 year ago", fixedNow.AddDate(-1, 0, 0)},
		{"3 hours ago", fixedNow.Add(-3 * time.Hour)},
		{"45 minutes ago", fixedNow.Add(-45 * time.Minute)},
		{"  2 Days Ago  ", fixedNow.Add(-2 * 24 * time.Hour)},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseRelativeTime(tc.input, fixedNow)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRelativeTimeInvalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "days ago", "3 fortnights ago", "-1 days ago"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseRelativeTime(input, fixedNow)
			assert.Error(t, err)
		})
	}
}

func TestParseTimeExpression(t *testing.T) {
	t.Run("absolute RFC3339", func(t *testing.T) {
		got, err := ParseTimeExpression("2026-01-02T15:04:05Z", fixedNow)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC), got)
	})

	t.Run("absolute date only", func(t *testing.T) {
		got, err := ParseTimeExpression("2026-01-02", fixedNow)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("relative phrase", func(t *testing.T) {
		got, err := ParseTimeExpression("7 days ago", fixedNow)
		assert.NoError(t, err)
		assert.Equal(t, fixedNow.Add(-7*24*time.Hour), got)
	})

	t.Run("garbage is rejected with both forms named", func(t *testing.T) {
		_, err := ParseTimeExpression("soonish", fixedNow)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ISO8601")
	})
}
