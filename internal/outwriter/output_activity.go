package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/cbuntingde/gitpulse/schema"
)

// PrintActivity outputs the temporal view, dispatching on the configured
// format. The Weekly flag selects which bucket granularity the table shows;
// JSON always carries both.
func PrintActivity(activity *schema.ActivityReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, activity)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeActivityCSV(w, activity, cfg)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeActivityText(w, activity, cfg)
		}, "Wrote table")
	}
}

func selectedBuckets(activity *schema.ActivityReport, cfg *contract.Config) ([]schema.ActivityBucket, string) {
	if cfg.Weekly {
		return activity.Weeks, "Week"
	}
	return activity.Days, "Day"
}

func writeActivityText(w io.Writer, activity *schema.ActivityReport, cfg *contract.Config) error {
	buckets, label := selectedBuckets(activity, cfg)

	var rows [][]string
	for _, b := range buckets {
		rows = append(rows, []string{
			b.Key,
			strconv.Itoa(b.Commits),
			strconv.Itoa(b.DistinctAuthors),
			strings.Join(b.SampleSubjects, "; "),
		})
	}
	if err := renderTable(w, []string{label, "Commits", "Authors", "Samples"}, rows); err != nil {
		return err
	}

	trend := contract.GetTrendLabel(activity.Velocity.Trend)
	if cfg.UseColors {
		trend = contract.GetColorTrendLabel(activity.Velocity.Trend)
	}
	if _, err := fmt.Fprintf(w, "\nVelocity: %s (%.1f%% change), %.2f commits per active day\n",
		trend, activity.Velocity.PercentChange, activity.Velocity.AverageDailyCommits); err != nil {
		return err
	}

	if len(activity.Hotspots) > 0 {
		if _, err := fmt.Fprintln(w, "\nBusiest days:"); err != nil {
			return err
		}
		var hot [][]string
		for i, b := range activity.Hotspots {
			hot = append(hot, []string{strconv.Itoa(i + 1), b.Key, strconv.Itoa(b.Commits)})
		}
		if err := renderTable(w, []string{"Rank", "Day", "Commits"}, hot); err != nil {
			return err
		}
	}
	return nil
}

func writeActivityCSV(w io.Writer, activity *schema.ActivityReport, cfg *contract.Config) error {
	buckets, label := selectedBuckets(activity, cfg)
	header := []string{strings.ToLower(label), "commits", "distinct_authors", "samples"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, b := range buckets {
			rec := []string{b.Key, strconv.Itoa(b.Commits), strconv.Itoa(b.DistinctAuthors), strings.Join(b.SampleSubjects, "|")}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
