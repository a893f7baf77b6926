package core

import (
	"context"
	"sort"

	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/cbuntingde/gitpulse/schema"
)

// AttributeLines turns a line-level authorship stream (one author name per
// attributed source line) into a ranking descending by line count with
// first-seen tie-break. Percent is each author's share of all attributed
// lines.
func AttributeLines(authors []string) []schema.LineAttribution {
	counts := make(map[string]int)
	var order []string
	for _, a := range authors {
		if a == "" {
			continue
		}
		if _, seen := counts[a]; !seen {
			order = append(order, a)
		}
		counts[a]++
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	ranked := make([]schema.LineAttribution, 0, len(order))
	for _, a := range order {
		percent := 0.0
		if total > 0 {
			percent = float64(counts[a]) / float64(total) * 100
		}
		ranked = append(ranked, schema.LineAttribution{Author: a, Lines: counts[a], Percent: percent})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Lines > ranked[j].Lines
	})
	return ranked
}

// BuildFileProfile runs the blame-style query for one file and attributes
// its lines. A failed or missing-file query degrades to an empty profile
// with a warning; it never aborts the run.
func BuildFileProfile(ctx context.Context, cfg *contract.Config, client contract.GitClient, path string) schema.FileProfile {
	authors, err := client.BlameAuthors(ctx, cfg.RepoPath, path)
	if err != nil {
		contract.LogWarn("blame query failed for "+path, err)
		return schema.FileProfile{Path: path}
	}
	return schema.FileProfile{
		Path:        path,
		TotalLines:  len(authors),
		Attribution: AttributeLines(authors),
	}
}

// InferCollaborators accumulates co-occurrence counts for the focal author:
// for each of their commits, the distinct authors appearing in the adjacent
// commit range each score one, excluding the focal author themselves. Temporal
// adjacency is a heuristic proxy for collaboration, not a guarantee; the
// signal source sits behind GitClient so a more precise one can be swapped
// in without changing the report schema.
func InferCollaborators(ctx context.Context, cfg *contract.Config, client contract.GitClient, focal string, records []schema.CommitRecord) []schema.CollaboratorEdge {
	counts := make(map[string]int)
	var order []string

	for _, rec := range records {
		if rec.Author != focal {
			continue
		}
		adjacent, err := client.AdjacentAuthors(ctx, cfg.RepoPath, rec.Hash, cfg.AdjacencyRadius)
		if err != nil {
			contract.LogWarn("adjacent range query failed for "+rec.Hash, err)
			continue
		}
		// An author with several commits inside one range still scores a
		// single co-occurrence for this focal commit.
		inRange := make(map[string]struct{}, len(adjacent))
		for _, other := range adjacent {
			if other == "" || other == focal {
				continue
			}
			if _, dup := inRange[other]; dup {
				continue
			}
			inRange[other] = struct{}{}
			if _, seen := counts[other]; !seen {
				order = append(order, other)
			}
			counts[other]++
		}
	}

	edges := make([]schema.CollaboratorEdge, 0, len(order))
	for _, other := range order {
		edges = append(edges, schema.CollaboratorEdge{
			AuthorA:       focal,
			AuthorB:       other,
			SharedCommits: counts[other],
		})
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].SharedCommits > edges[j].SharedCommits
	})

	if cfg.CollaboratorLimit > 0 && len(edges) > cfg.CollaboratorLimit {
		edges = edges[:cfg.CollaboratorLimit]
	}
	return edges
}
