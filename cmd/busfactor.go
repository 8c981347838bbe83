package cmd

import (
	"github.com/huangsam/gitcredit/core"
	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/spf13/cobra"
)

// busfactorCmd lists files with a single owner.
var busfactorCmd = &cobra.Command{
	Use:   "busfactor [repo-path]",
	Short: "Show files that only one person has ever touched.",
	Long: `Find files where every change came from a single contributor.

These files represent concentration-of-knowledge risk: if that one
person leaves, nobody else has hands-on experience with the code.
Ownership is computed after identity resolution, so one person
committing under two emails still counts as one owner.

Examples:
  # List single-owner files, most-changed first
  gitcredit busfactor

  # Limit the list and export as JSON
  gitcredit busfactor --limit 50 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBusFactor(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run bus factor analysis", err)
		}
	},
}
