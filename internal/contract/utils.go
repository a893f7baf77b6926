package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cbuntingde/gitpulse/schema"
	"github.com/fatih/color"
)

// Color variables for console output.
var (
	IncreasingColor = color.New(color.FgGreen, color.Bold) // velocity trending up
	DecreasingColor = color.New(color.FgRed, color.Bold)   // velocity trending down
	StableColor     = color.New(color.FgCyan)              // no meaningful change
)

// GetTrendLabel returns a plain text label for a velocity trend. This is the
// core logic used for CSV, JSON, and table printing.
func GetTrendLabel(trend schema.Trend) string {
	switch trend {
	case schema.TrendIncreasing:
		return "Increasing"
	case schema.TrendDecreasing:
		return "Decreasing"
	default:
		return "Stable"
	}
}

// GetColorTrendLabel returns a colored trend label for console output.
func GetColorTrendLabel(trend schema.Trend) string {
	text := GetTrendLabel(trend)
	switch trend {
	case schema.TrendIncreasing:
		return IncreasingColor.Sprint(text)
	case schema.TrendDecreasing:
		return DecreasingColor.Sprint(text)
	default:
		return StableColor.Sprint(text)
	}
}

// SanitizeArg removes the shell metacharacters capable of command injection
// from a user-supplied value before it is interpolated into a log-source
// invocation. This is a hard requirement, not a performance optimization.
func SanitizeArg(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '`', '$', '\\':
			return -1
		}
		return r
	}, s)
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ShouldIgnore returns true if the given path matches any of the exclude
// patterns. Patterns ending with '/' are treated as prefixes, patterns
// starting with '.' as suffix (extension) matches, glob characters via
// filepath.Match, anything else as a substring.
func ShouldIgnore(path string, excludes []string) bool {
	for _, ex := range excludes {
		ex = strings.TrimSpace(ex)
		if ex == "" {
			continue
		}

		if strings.ContainsAny(ex, "*?[") {
			if ok, err := filepath.Match(ex, path); err == nil && ok {
				return true
			}
			if ok, err := filepath.Match(ex, filepath.Base(path)); err == nil && ok {
				return true
			}
			continue
		}

		switch {
		case strings.HasSuffix(ex, "/"):
			if strings.HasPrefix(path, ex) {
				return true
			}
		case strings.HasPrefix(ex, "."):
			if strings.HasSuffix(path, ex) {
				return true
			}
		case strings.Contains(path, ex):
			return true
		}
	}
	return false
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitpulse_history.db"
	}
	return filepath.Join(homeDir, ".gitpulse_history.db")
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 so there is room for the "..." prefix and at least
// one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
