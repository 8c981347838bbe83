// Package algo has the sorting and ranking primitives for contributor
// analytics.
package algo

import (
	"sort"

	"github.com/huangsam/gitcredit/schema"
)

// MetricOf extracts the ranking metric from a contributor.
func MetricOf(c *schema.RankedContributor, mode schema.SortMode) int {
	switch mode {
	case schema.SortByCommits:
		return c.Commits
	case schema.SortByAdditions:
		return c.Added
	case schema.SortByDeletions:
		return c.Deleted
	default:
		return c.Changes
	}
}

// RankContributors sorts contributors by the selected metric in
// descending order and returns the top 'limit' entries. The sort is
// stable so that ties keep their first-seen registration order, which
// keeps rankings deterministic for identical input.
func RankContributors(contributors []schema.RankedContributor, mode schema.SortMode, limit int) []schema.RankedContributor {
	sort.SliceStable(contributors, func(i, j int) bool {
		return MetricOf(&contributors[i], mode) > MetricOf(&contributors[j], mode)
	})
	if limit > 0 && len(contributors) > limit {
		return contributors[:limit]
	}
	return contributors
}

// TopFilesOf returns a contributor's files ranked by changes in
// descending order, ties broken by filename, truncated to limit.
func TopFilesOf(files map[string]*schema.FileStat, limit int) []schema.FileOwnership {
	owned := make([]schema.FileOwnership, 0, len(files))
	for name, stat := range files {
		owned = append(owned, schema.FileOwnership{
			Filename: name,
			Added:    stat.Added,
			Deleted:  stat.Deleted,
			Changes:  stat.Changes,
		})
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].Changes != owned[j].Changes {
			return owned[i].Changes > owned[j].Changes
		}
		return owned[i].Filename < owned[j].Filename
	})
	if limit > 0 && len(owned) > limit {
		return owned[:limit]
	}
	return owned
}
