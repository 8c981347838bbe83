package cmd

import (
	"github.com/huangsam/gitcredit/core"
	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/spf13/cobra"
)

// contributorsCmd ranks contributors by activity.
var contributorsCmd = &cobra.Command{
	Use:   "contributors [repo-path]",
	Short: "Show the top contributors ranked by activity.",
	Long: `Parse Git history and rank contributors by their activity.

Commits from the same person under different names or emails are merged
into one canonical identity using alias groups and fuzzy name matching,
so "John Doe <jd@corp.com>" and "john doe <john@gmail.com>" count as one
person.

For each contributor you get commit counts, lines added and deleted, net
and total change volume, and the files they touched the most.

Examples:
  # Rank by total change volume (default)
  gitcredit contributors

  # Rank by commit count, top 10 only
  gitcredit contributors --sort commits --limit 10

  # Group identities by normalized name instead of email
  gitcredit contributors --group-by name

  # Merge known identities explicitly
  gitcredit contributors --aliases team-aliases.json

  # Export findings to CSV for tracking
  gitcredit contributors --output csv --output-file contributors.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteContributors(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run contributors analysis", err)
		}
	},
}
