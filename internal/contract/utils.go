package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Ownership share label constants.
const (
	DominantValue = "Dominant" // One person carries most of the work
	MajorValue    = "Major"
	RegularValue  = "Regular"
	MinorValue    = "Minor"
)

// Color variables for console output.
var (
	DominantColor = color.New(color.FgRed, color.Bold)
	MajorColor    = color.New(color.FgMagenta, color.Bold)
	RegularColor  = color.New(color.FgYellow)
	MinorColor    = color.New(color.FgCyan)
)

// GetPlainShareLabel returns a plain text label for a contributor's
// share of total changes. This is the core logic used for CSV, JSON,
// and table printing.
func GetPlainShareLabel(share float64) string {
	switch {
	case share >= 0.50:
		return DominantValue
	case share >= 0.25:
		return MajorValue
	case share >= 0.10:
		return RegularValue
	default:
		return MinorValue
	}
}

// GetColorShareLabel returns a colored text label for console output.
// It uses GetPlainShareLabel to determine the string, and then applies
// the appropriate color.
func GetColorShareLabel(share float64) string {
	text := GetPlainShareLabel(share)

	switch text {
	case DominantValue:
		return DominantColor.Sprint(text)
	case MajorValue:
		return MajorColor.Sprint(text)
	case RegularValue:
		return RegularColor.Sprint(text)
	default: // "Minor"
		return MinorColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output,
// based on the provided file path. It falls back to os.Stdout when no
// path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncatePath shortens long paths for table display, keeping the tail
// which carries the filename.
func TruncatePath(path string, maxLen int) string {
	if maxLen <= 3 || len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
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

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitcredit_cache.db"
	}
	return filepath.Join(homeDir, ".gitcredit_cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitcredit_history.db"
	}
	return filepath.Join(homeDir, ".gitcredit_history.db")
}
