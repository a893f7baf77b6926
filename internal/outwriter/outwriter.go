// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/cbuntingde/gitpulse/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints the full analysis report using the configured format.
func (ow *OutWriter) WriteReport(report *schema.Report, cfg *contract.Config) error {
	return PrintReport(report, cfg)
}

// WriteAuthors prints just the ranked author list of a report.
func (ow *OutWriter) WriteAuthors(report *schema.Report, cfg *contract.Config) error {
	return PrintAuthors(report, cfg)
}

// WriteFiles prints just the file churn ranking of a report.
func (ow *OutWriter) WriteFiles(report *schema.Report, cfg *contract.Config) error {
	return PrintFileChurn(report, cfg)
}

// WriteActivity prints the temporal view using the configured format.
func (ow *OutWriter) WriteActivity(activity *schema.ActivityReport, cfg *contract.Config) error {
	return PrintActivity(activity, cfg)
}

// WriteAuthorProfile prints the per-author view.
func (ow *OutWriter) WriteAuthorProfile(profile *schema.AuthorProfile, cfg *contract.Config) error {
	return PrintAuthorProfile(profile, cfg)
}

// WriteFileProfile prints the per-file attribution view.
func (ow *OutWriter) WriteFileProfile(profile *schema.FileProfile, cfg *contract.Config) error {
	return PrintFileProfile(profile, cfg)
}

// WriteKeywords prints the mined word and phrase rankings.
func (ow *OutWriter) WriteKeywords(mined *schema.MiningResult, cfg *contract.Config) error {
	return PrintKeywords(mined, cfg)
}

// GetMaxTablePathWidth calculates the maximum width for file paths in table
// output based on terminal width.
func GetMaxTablePathWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the rank and count columns plus borders and padding
	baseWidth := 30

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable path width
		return 15
	}
	if available > 70 {
		// Maximum path width to prevent overly long paths
		return 70
	}
	return available
}
