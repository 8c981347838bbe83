package cmd

import (
	"github.com/huangsam/gitcredit/core"
	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd emits the complete analysis as JSON.
var reportCmd = &cobra.Command{
	Use:   "report [repo-path]",
	Short: "Emit the complete analysis result as JSON.",
	Long: `Run the full analysis and print every view in one JSON document:
ranked contributors, per-metric leaders, commit frequency buckets, the
activity heatmap, and the single-owner file list.

This is the machine-readable surface for scripts and dashboards; the
other subcommands render slices of the same result.

Examples:
  # Print the full report to stdout
  gitcredit report

  # Write the report to a file
  gitcredit report --output-file report.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}
