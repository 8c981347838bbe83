// Package core has the analysis pipeline that turns parsed commits into
// contributor analytics.
package core

import (
	"fmt"
	"sort"

	"github.com/huangsam/gitcredit/core/agg"
	"github.com/huangsam/gitcredit/core/algo"
	"github.com/huangsam/gitcredit/core/identity"
	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/huangsam/gitcredit/schema"
)

// Analyze runs the full pipeline over an ordered commit list: resolve
// identities, aggregate totals, and derive the final analytics. A fresh
// resolver is constructed per call so repeated runs stay isolated and
// deterministic for identical input and configuration.
func Analyze(commits []schema.CommitRecord, cfg *contract.Config) *schema.AnalysisResult {
	resolver := identity.NewResolver(cfg.Aliases, cfg.SimilarityThreshold)
	accumulators := agg.Aggregate(commits, cfg.GroupBy, resolver)

	contributors := buildContributors(accumulators, resolver)
	ranked := buildRanked(accumulators, resolver, cfg.TopFilesLimit)

	result := &schema.AnalysisResult{
		TotalCommits:    len(commits),
		Contributors:    contributors,
		TopStats:        buildTopStats(ranked),
		CommitFrequency: buildCommitFrequency(commits),
		Heatmap:         buildHeatmap(commits),
		BusFactor:       buildBusFactor(accumulators),
	}
	result.TopContributors = algo.RankContributors(ranked, cfg.SortBy, cfg.ResultLimit)
	return result
}

// buildContributors converts accumulators into the exposed contributor
// map, attaching the resolver's best-known display details.
func buildContributors(accumulators map[string]*schema.ContributorAccumulator, resolver *identity.Resolver) map[string]*schema.Contributor {
	contributors := make(map[string]*schema.Contributor, len(accumulators))
	for id, acc := range accumulators {
		details := resolver.Details(id)
		contributors[id] = &schema.Contributor{
			Name:    details.Name,
			Email:   details.Email,
			Commits: acc.Commits,
			Added:   acc.Additions,
			Deleted: acc.Deletions,
			Files:   acc.Files,
		}
	}
	return contributors
}

// buildRanked produces the enriched contributor list in first-seen
// registration order, which later serves as the stable tie-break base
// for every ranking.
func buildRanked(accumulators map[string]*schema.ContributorAccumulator, resolver *identity.Resolver, topFiles int) []schema.RankedContributor {
	ranked := make([]schema.RankedContributor, 0, len(accumulators))
	for _, id := range resolver.Identities() {
		acc, ok := accumulators[id]
		if !ok {
			continue
		}
		details := resolver.Details(id)
		ranked = append(ranked, schema.RankedContributor{
			Identity: id,
			Net:      acc.Additions - acc.Deletions,
			Changes:  acc.Additions + acc.Deletions,
			TopFiles: algo.TopFilesOf(acc.Files, topFiles),
			Contributor: schema.Contributor{
				Name:    details.Name,
				Email:   details.Email,
				Commits: acc.Commits,
				Added:   acc.Additions,
				Deleted: acc.Deletions,
				Files:   acc.Files,
			},
		})
	}
	return ranked
}

// buildTopStats computes the five independent "best" entries. Each may
// point at a different contributor; strict comparisons keep ties with
// the earliest-registered identity. All entries are nil for empty input.
func buildTopStats(ranked []schema.RankedContributor) schema.TopStats {
	var stats schema.TopStats
	if len(ranked) == 0 {
		return stats
	}

	byCommits, byAdditions, byDeletions, byNet, byChanges := 0, 0, 0, 0, 0
	for i := 1; i < len(ranked); i++ {
		c := &ranked[i]
		if c.Commits > ranked[byCommits].Commits {
			byCommits = i
		}
		if c.Added > ranked[byAdditions].Added {
			byAdditions = i
		}
		if c.Deleted > ranked[byDeletions].Deleted {
			byDeletions = i
		}
		if c.Net > ranked[byNet].Net {
			byNet = i
		}
		if c.Changes > ranked[byChanges].Changes {
			byChanges = i
		}
	}

	// Copy the winners: the ranked slice is sorted in place afterwards,
	// so the stats must not alias its elements.
	clone := func(i int) *schema.RankedContributor {
		c := ranked[i]
		return &c
	}
	stats.ByCommits = clone(byCommits)
	stats.ByAdditions = clone(byAdditions)
	stats.ByDeletions = clone(byDeletions)
	stats.ByNet = clone(byNet)
	stats.ByChanges = clone(byChanges)
	return stats
}

// buildCommitFrequency buckets commits by calendar month and ISO-8601
// week. Commits without a parseable timestamp are excluded from both.
func buildCommitFrequency(commits []schema.CommitRecord) schema.CommitFrequency {
	freq := schema.CommitFrequency{
		Monthly: make(map[string]int),
		Weekly:  make(map[string]int),
	}
	for i := range commits {
		c := &commits[i]
		if !c.HasTimestamp() {
			continue
		}
		freq.Monthly[c.Timestamp.Format("2006-01")]++
		year, week := c.Timestamp.ISOWeek()
		freq.Weekly[fmt.Sprintf("%04d-W%02d", year, week)]++
	}
	return freq
}

// buildHeatmap counts commits per weekday and hour of day in the
// commit's own timezone. Timestamp-less commits are excluded.
func buildHeatmap(commits []schema.CommitRecord) schema.Heatmap {
	var heatmap schema.Heatmap
	for i := range commits {
		c := &commits[i]
		if !c.HasTimestamp() {
			continue
		}
		heatmap[int(c.Timestamp.Weekday())][c.Timestamp.Hour()]++
	}
	return heatmap
}

// buildBusFactor lists every file with exactly one canonical owner
// across the whole input, along with that owner's total changes for the
// file. Entries are ordered by changes descending, then filename, for
// byte-stable output.
func buildBusFactor(accumulators map[string]*schema.ContributorAccumulator) schema.BusFactor {
	type ownership struct {
		owner   string
		changes int
		owners  int
	}
	files := make(map[string]*ownership)
	for id, acc := range accumulators {
		for name, stat := range acc.Files {
			o, ok := files[name]
			if !ok {
				o = &ownership{}
				files[name] = o
			}
			o.owners++
			o.owner = id
			o.changes = stat.Changes
		}
	}

	single := []schema.BusFactorEntry{}
	for name, o := range files {
		if o.owners != 1 {
			continue
		}
		single = append(single, schema.BusFactorEntry{
			File:    name,
			Owner:   o.owner,
			Changes: o.changes,
		})
	}
	sort.Slice(single, func(i, j int) bool {
		if single[i].Changes != single[j].Changes {
			return single[i].Changes > single[j].Changes
		}
		return single[i].File < single[j].File
	})
	return schema.BusFactor{FilesSingleOwner: single}
}
