package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/cbuntingde/gitpulse/schema"
)

// PrintAuthorProfile outputs the per-author view.
func PrintAuthorProfile(profile *schema.AuthorProfile, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, profile)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"collaborator", "shared_commits"}, func(cw *csv.Writer) error {
				for _, edge := range profile.Collaborators {
					if err := cw.Write([]string{edge.AuthorB, strconv.Itoa(edge.SharedCommits)}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAuthorProfileText(w, profile)
		}, "Wrote table")
	}
}

func writeAuthorProfileText(w io.Writer, profile *schema.AuthorProfile) error {
	agg := profile.Aggregate
	if _, err := fmt.Fprintf(w, "Author: %s <%s>\nCommits: %d (%s of window)\nActive: %s .. %s\nAverage subject length: %.1f\n",
		agg.Name, agg.Email, agg.Commits, profile.Percent,
		agg.FirstSeen.Format(contract.DateTimeFormat), agg.LastSeen.Format(contract.DateTimeFormat),
		agg.AverageSubjectLength()); err != nil {
		return err
	}

	var catRows [][]string
	for _, c := range schema.AllCategories {
		catRows = append(catRows, []string{string(c), strconv.Itoa(agg.CategoryCounts[c])})
	}
	if _, err := fmt.Fprintln(w, "\nCategories:"); err != nil {
		return err
	}
	if err := renderTable(w, []string{"Category", "Commits"}, catRows); err != nil {
		return err
	}

	if len(profile.Collaborators) > 0 {
		if _, err := fmt.Fprintln(w, "\nLikely collaborators:"); err != nil {
			return err
		}
		var rows [][]string
		for i, edge := range profile.Collaborators {
			rows = append(rows, []string{strconv.Itoa(i + 1), edge.AuthorB, strconv.Itoa(edge.SharedCommits)})
		}
		return renderTable(w, []string{"Rank", "Collaborator", "Shared"}, rows)
	}
	return nil
}

// PrintFileProfile outputs the per-file attribution view.
func PrintFileProfile(profile *schema.FileProfile, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, profile)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"author", "lines", "percent"}, func(cw *csv.Writer) error {
				for _, attr := range profile.Attribution {
					rec := []string{attr.Author, strconv.Itoa(attr.Lines), fmt.Sprintf("%.1f", attr.Percent)}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "File: %s\nAttributed lines: %d\n\n", profile.Path, profile.TotalLines); err != nil {
				return err
			}
			var rows [][]string
			for i, attr := range profile.Attribution {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					attr.Author,
					strconv.Itoa(attr.Lines),
					fmt.Sprintf("%.1f%%", attr.Percent),
				})
			}
			return renderTable(w, []string{"Rank", "Author", "Lines", "Share"}, rows)
		}, "Wrote table")
	}
}
