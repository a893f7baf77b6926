package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/cbuntingde/gitpulse/schema"
)

// PrintKeywords outputs the mined word and phrase rankings.
func PrintKeywords(mined *schema.MiningResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, mined)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"kind", "text", "count"}, func(cw *csv.Writer) error {
				for _, k := range mined.Words {
					if err := cw.Write([]string{"word", k.Text, strconv.Itoa(k.Count)}); err != nil {
						return err
					}
				}
				for _, p := range mined.Phrases {
					if err := cw.Write([]string{"phrase", p.Text, strconv.Itoa(p.Count)}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeKeywordsText(w, mined)
		}, "Wrote table")
	}
}

func writeKeywordsText(w io.Writer, mined *schema.MiningResult) error {
	if _, err := fmt.Fprintln(w, "Top keywords:"); err != nil {
		return err
	}
	var words [][]string
	for i, k := range mined.Words {
		words = append(words, []string{strconv.Itoa(i + 1), k.Text, strconv.Itoa(k.Count)})
	}
	if err := renderTable(w, []string{"Rank", "Word", "Count"}, words); err != nil {
		return err
	}

	if len(mined.Phrases) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\nRepeated messages:"); err != nil {
		return err
	}
	var phrases [][]string
	for i, p := range mined.Phrases {
		phrases = append(phrases, []string{strconv.Itoa(i + 1), p.Text, strconv.Itoa(p.Count)})
	}
	return renderTable(w, []string{"Rank", "Message", "Count"}, phrases)
}
