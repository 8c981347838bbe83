package cmd

import (
	"github.com/huangsam/gitcredit/core"
	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/spf13/cobra"
)

// heatmapCmd shows the weekday-by-hour activity matrix.
var heatmapCmd = &cobra.Command{
	Use:   "heatmap [repo-path]",
	Short: "Show commit activity by weekday and hour of day.",
	Long: `Build a 7x24 matrix of commit counts by weekday and hour.

Useful for spotting when a team actually works: late-night commit
clusters, weekend activity, or timezone spread across contributors.
Commits without a parseable timestamp are excluded.

Examples:
  # Show the activity heatmap for the whole history
  gitcredit heatmap

  # Restrict to a time window
  gitcredit heatmap --start 2026-01-01 --end 2026-06-30`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHeatmap(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run heatmap analysis", err)
		}
	},
}
