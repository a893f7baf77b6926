package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/cbuntingde/gitpulse/schema"
)

// PrintReport outputs the full report, dispatching on the configured format.
func PrintReport(report *schema.Report, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, report)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(w, report, cfg)
		}, "Wrote table")
	}
}

// PrintAuthors outputs just the ranked author section of a report.
func PrintAuthors(report *schema.Report, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report.Authors)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"rank", "author", "email", "commits", "percent"}, func(cw *csv.Writer) error {
				for _, a := range report.Authors {
					rec := []string{strconv.Itoa(a.Rank), a.Name, a.Email, strconv.Itoa(a.Commits), a.Percent}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAuthorTable(w, report)
		}, "Wrote table")
	}
}

// PrintFileChurn outputs just the file churn ranking of a report.
func PrintFileChurn(report *schema.Report, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report.FileChurn)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"rank", "path", "changes"}, func(cw *csv.Writer) error {
				for i, f := range report.FileChurn {
					rec := []string{strconv.Itoa(i + 1), f.Path, strconv.Itoa(f.Count)}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChurnTable(w, report.FileChurn, cfg)
		}, "Wrote table")
	}
}

// writeReportText renders every section of the report as tables with a
// summary header and footer.
func writeReportText(w io.Writer, report *schema.Report, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "Repository: %s\nWindow: %s .. %s\nCommits: %d\n\n",
		report.Meta.Repository, report.Meta.Since, report.Meta.Until, report.Meta.Commits); err != nil {
		return err
	}

	if err := writeAuthorTable(w, report); err != nil {
		return err
	}

	// Closed-set histograms print in declaration order, zero slots included,
	// so the layout is identical across runs.
	var catRows [][]string
	for _, c := range schema.AllCategories {
		catRows = append(catRows, []string{string(c), strconv.Itoa(report.Categories[c])})
	}
	if _, err := fmt.Fprintln(w, "\nCategories:"); err != nil {
		return err
	}
	if err := renderTable(w, []string{"Category", "Commits"}, catRows); err != nil {
		return err
	}

	var todRows [][]string
	for _, p := range schema.AllPeriods {
		todRows = append(todRows, []string{string(p), strconv.Itoa(report.TimeOfDay[p])})
	}
	if _, err := fmt.Fprintln(w, "\nTime of day:"); err != nil {
		return err
	}
	if err := renderTable(w, []string{"Period", "Commits"}, todRows); err != nil {
		return err
	}

	if len(report.FileChurn) > 0 {
		if _, err := fmt.Fprintln(w, "\nFile churn:"); err != nil {
			return err
		}
		if err := writeChurnTable(w, report.FileChurn, cfg); err != nil {
			return err
		}
	}

	if len(report.Keywords) > 0 {
		if _, err := fmt.Fprintln(w, "\nTop keywords:"); err != nil {
			return err
		}
		var rows [][]string
		for i, k := range report.Keywords {
			rows = append(rows, []string{strconv.Itoa(i + 1), k.Text, strconv.Itoa(k.Count)})
		}
		if err := renderTable(w, []string{"Rank", "Keyword", "Count"}, rows); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nBranches: %d total, %d merged\n", report.Branches.Total, report.Branches.Merged)
	return err
}

func writeAuthorTable(w io.Writer, report *schema.Report) error {
	var rows [][]string
	for _, a := range report.Authors {
		rows = append(rows, []string{
			strconv.Itoa(a.Rank),
			a.Name,
			a.Email,
			strconv.Itoa(a.Commits),
			a.Percent,
		})
	}
	return renderTable(w, []string{"Rank", "Author", "Email", "Commits", "Percent"}, rows)
}

func writeChurnTable(w io.Writer, churn []schema.FileChangeCount, cfg *contract.Config) error {
	maxPath := GetMaxTablePathWidth(cfg)
	var rows [][]string
	for i, f := range churn {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(f.Path, maxPath),
			strconv.Itoa(f.Count),
		})
	}
	return renderTable(w, []string{"Rank", "Path", "Changes"}, rows)
}

// writeReportCSV flattens the report into section-tagged rows so a single
// CSV stream carries every section.
func writeReportCSV(w io.Writer, report *schema.Report) error {
	return writeCSVWithHeader(w, []string{"section", "key", "detail", "value"}, func(cw *csv.Writer) error {
		for _, a := range report.Authors {
			if err := cw.Write([]string{"author", a.Name, a.Email, strconv.Itoa(a.Commits)}); err != nil {
				return err
			}
		}
		for _, c := range schema.AllCategories {
			if err := cw.Write([]string{"category", string(c), "", strconv.Itoa(report.Categories[c])}); err != nil {
				return err
			}
		}
		for _, p := range schema.AllPeriods {
			if err := cw.Write([]string{"time_of_day", string(p), "", strconv.Itoa(report.TimeOfDay[p])}); err != nil {
				return err
			}
		}
		for _, f := range report.FileChurn {
			if err := cw.Write([]string{"file_churn", f.Path, "", strconv.Itoa(f.Count)}); err != nil {
				return err
			}
		}
		for _, k := range report.Keywords {
			if err := cw.Write([]string{"keyword", k.Text, "", strconv.Itoa(k.Count)}); err != nil {
				return err
			}
		}
		for _, p := range report.Phrases {
			if err := cw.Write([]string{"phrase", p.Text, "", strconv.Itoa(p.Count)}); err != nil {
				return err
			}
		}
		if err := cw.Write([]string{"branches", "total", "", strconv.Itoa(report.Branches.Total)}); err != nil {
			return err
		}
		return cw.Write([]string{"branches", "merged", "", strconv.Itoa(report.Branches.Merged)})
	})
}
