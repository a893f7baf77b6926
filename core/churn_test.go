package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankChurn(t *testing.T) {
	paths := []string{
		"pkg/a.go",
		"pkg/b.go",
		"pkg/a.go",
		"",
		"pkg/c.go",
		"pkg/a.go",
		"pkg/b.go",
	}
	ranked := RankChurn(paths, nil, 0)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "pkg/a.go", ranked[0].Path)
	assert.Equal(t, 3, ranked[0].Count)
	assert.Equal(t, "pkg/b.go", ranked[1].Path)
	assert.Equal(t, "pkg/c.go", ranked[2].Path)
}

func TestRankChurnTieKeepsFirstSeenOrder(t *testing.T) {
	ranked := RankChurn([]string{"z.go", "a.go"}, nil, 0)

	assert.Equal(t, "z.go", ranked[0].Path)
	assert.Equal(t, "a.go", ranked[1].Path)
}

func TestRankChurnExcludes(t *testing.T) {
	paths := []string{"vendor/dep.go", "main.go", "vendor/other.go", "schema.sql"}

	ranked := RankChurn(paths, []string{"vendor/", ".sql"}, 0)

	assert.Len(t, ranked, 1)
	assert.Equal(t, "main.go", ranked[0].Path)
}

func TestRankChurnLimit(t *testing.T) {
	paths := []string{"a", "a", "b", "c"}

	ranked := RankChurn(paths, nil, 2)

	assert.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Path)
}

func TestRankChurnEmpty(t *testing.T) {
	assert.Empty(t, RankChurn(nil, nil, 10))
}
