package outwriter

import (
	"os"

	"github.com/huangsam/gitcredit/internal/contract"
	"golang.org/x/term"
)

// getMaxNameWidth calculates the maximum width for contributor names in
// table output based on terminal width.
func getMaxNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the numeric columns, label, borders and padding
	baseWidth := 58

	maxWidth := termWidth - baseWidth
	if maxWidth < 12 {
		maxWidth = 12
	}
	return maxWidth
}
