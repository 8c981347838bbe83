package cmd

import (
	"github.com/huangsam/gitcredit/core"
	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/spf13/cobra"
)

// frequencyCmd shows monthly and weekly commit buckets.
var frequencyCmd = &cobra.Command{
	Use:   "frequency [repo-path]",
	Short: "Show commit counts bucketed by month and ISO week.",
	Long: `Bucket commits by calendar month (YYYY-MM) and ISO-8601 week
(YYYY-Www) to show how activity rises and falls over time.

Commits without a parseable timestamp are excluded from the buckets.

Examples:
  # Show the full commit frequency breakdown
  gitcredit frequency

  # Export the buckets as CSV
  gitcredit frequency --output csv --output-file frequency.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFrequency(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run frequency analysis", err)
		}
	},
}
