package core

import (
	"context"
	"errors"
	"testing"

	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/cbuntingde/gitpulse/schema"
	"github.com/stretchr/testify/assert"
)

func TestAttributeLines(t *testing.T) {
	authors := []string{"Alice", "Bob", "Alice", "Alice", "Cara", ""}

	ranked := AttributeLines(authors)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "Alice", ranked[0].Author)
	assert.Equal(t, 3, ranked[0].Lines)
	assert.InDelta(t, 60.0, ranked[0].Percent, 0.0001)
	// Bob and Cara tie at one line; first-seen order breaks the tie.
	assert.Equal(t, "Bob", ranked[1].Author)
	assert.Equal(t, "Cara", ranked[2].Author)
}

func TestAttributeLinesEmpty(t *testing.T) {
	assert.Empty(t, AttributeLines(nil))
}

func TestBuildFileProfile(t *testing.T) {
	ctx := context.Background()
	cfg := &contract.Config{RepoPath: "/repo"}

	t.Run("attributes lines", func(t *testing.T) {
		client := &contract.MockGitClient{}
		client.On("BlameAuthors", ctx, "/repo", "main.go").Return([]string{"Alice", "Alice", "Bob"}, nil)

		profile := BuildFileProfile(ctx, cfg, client, "main.go")

		assert.Equal(t, "main.go", profile.Path)
		assert.Equal(t, 3, profile.TotalLines)
		assert.Equal(t, "Alice", profile.Attribution[0].Author)
		client.AssertExpectations(t)
	})

	t.Run("blame failure degrades to empty profile", func(t *testing.T) {
		client := &contract.MockGitClient{}
		client.On("BlameAuthors", ctx, "/repo", "missing.go").Return(nil, errors.New("no such path"))

		profile := BuildFileProfile(ctx, cfg, client, "missing.go")

		assert.Equal(t, "missing.go", profile.Path)
		assert.Zero(t, profile.TotalLines)
		assert.Empty(t, profile.Attribution)
		client.AssertExpectations(t)
	})
}

func TestInferCollaborators(t *testing.T) {
	ctx := context.Background()
	cfg := &contract.Config{RepoPath: "/repo", AdjacencyRadius: 3, CollaboratorLimit: 10}

	records := []schema.CommitRecord{
		{Hash: "c1", Author: "Alice"},
		{Hash: "c2", Author: "Bob"},
		{Hash: "c3", Author: "Alice"},
	}

	client := &contract.MockGitClient{}
	client.On("AdjacentAuthors", ctx, "/repo", "c1", 3).Return([]string{"Alice", "Bob", "Cara"}, nil)
	client.On("AdjacentAuthors", ctx, "/repo", "c3", 3).Return([]string{"Alice", "Bob"}, nil)

	edges := InferCollaborators(ctx, cfg, client, "Alice", records)

	assert.Len(t, edges, 2)
	assert.Equal(t, "Bob", edges[0].AuthorB)
	assert.Equal(t, 2, edges[0].SharedCommits)
	assert.Equal(t, "Cara", edges[1].AuthorB)
	assert.Equal(t, 1, edges[1].SharedCommits)
	for _, e := range edges {
		assert.Equal(t, "Alice", e.AuthorA)
		assert.NotEqual(t, "Alice", e.AuthorB)
	}
	client.AssertExpectations(t)
}

func TestInferCollaboratorsLimit(t *testing.T) {
	ctx := context.Background()
	cfg := &contract.Config{RepoPath: "/repo", AdjacencyRadius: 2, CollaboratorLimit: 1}

	records := []schema.CommitRecord{{Hash: "c1", Author: "Alice"}}

	client := &contract.MockGitClient{}
	client.On("AdjacentAuthors", ctx, "/repo", "c1", 2).Return([]string{"Bob", "Bob", "Cara"}, nil)

	edges := InferCollaborators(ctx, cfg, client, "Alice", records)

	assert.Len(t, edges, 1)
	assert.Equal(t, "Bob", edges[0].AuthorB)
	client.AssertExpectations(t)
}

func TestInferCollaboratorsCountsAuthorOncePerRange(t *testing.T) {
	ctx := context.Background()
	cfg := &contract.Config{RepoPath: "/repo", AdjacencyRadius: 4, CollaboratorLimit: 10}

	records := []schema.CommitRecord{
		{Hash: "c1", Author: "Alice"},
		{Hash: "c2", Author: "Alice"},
	}

	client := &contract.MockGitClient{}
	// Bob appears twice inside the first range but scores once for it.
	client.On("AdjacentAuthors", ctx, "/repo", "c1", 4).Return([]string{"Bob", "Bob", "Cara"}, nil)
	client.On("AdjacentAuthors", ctx, "/repo", "c2", 4).Return([]string{"Bob"}, nil)

	edges := InferCollaborators(ctx, cfg, client, "Alice", records)

	assert.Len(t, edges, 2)
	assert.Equal(t, "Bob", edges[0].AuthorB)
	assert.Equal(t, 2, edges[0].SharedCommits)
	assert.Equal(t, "Cara", edges[1].AuthorB)
	assert.Equal(t, 1, edges[1].SharedCommits)
	client.AssertExpectations(t)
}

func TestInferCollaboratorsQueryFailureSkipsCommit(t *testing.T) {
	ctx := context.Background()
	cfg := &contract.Config{RepoPath: "/repo", AdjacencyRadius: 2, CollaboratorLimit: 10}

	records := []schema.CommitRecord{
		{Hash: "bad", Author: "Alice"},
		{Hash: "good", Author: "Alice"},
	}

	client := &contract.MockGitClient{}
	client.On("AdjacentAuthors", ctx, "/repo", "bad", 2).Return(nil, errors.New("boom"))
	client.On("AdjacentAuthors", ctx, "/repo", "good", 2).Return([]string{"Bob"}, nil)

	edges := InferCollaborators(ctx, cfg, client, "Alice", records)

	assert.Len(t, edges, 1)
	assert.Equal(t, "Bob", edges[0].AuthorB)
	client.AssertExpectations(t)
}
