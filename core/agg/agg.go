// Package agg folds parsed commits into per-contributor accumulators.
package agg

import (
	"github.com/huangsam/gitcredit/core/identity"
	"github.com/huangsam/gitcredit/schema"
)

// Aggregate consumes the full ordered commit list and produces the map
// of canonical contributor accumulators. Commits are processed in input
// order through a single sequential pass; the resolver is mutated in
// first-seen order, so callers must not share it across concurrent
// passes.
func Aggregate(commits []schema.CommitRecord, groupBy schema.GroupByMode, resolver *identity.Resolver) map[string]*schema.ContributorAccumulator {
	accumulators := make(map[string]*schema.ContributorAccumulator)

	for _, commit := range commits {
		raw := rawIdentity(&commit, groupBy)
		canonical := resolver.Resolve(raw, commit.AuthorName, commit.AuthorEmail)

		acc, ok := accumulators[canonical]
		if !ok {
			acc = schema.NewContributorAccumulator()
			accumulators[canonical] = acc
		}

		acc.Commits++
		acc.Additions += commit.Additions
		acc.Deletions += commit.Deletions
		for _, delta := range commit.Files {
			acc.AddFileDelta(delta)
		}
	}

	return accumulators
}

// rawIdentity derives the unresolved grouping key from a commit. When
// the configured field is empty the other one is used, so commits with
// partial author information still attribute somewhere stable.
func rawIdentity(commit *schema.CommitRecord, groupBy schema.GroupByMode) string {
	switch groupBy {
	case schema.GroupByName:
		if commit.AuthorName != "" {
			return commit.AuthorName
		}
		return commit.AuthorEmail
	default:
		if commit.AuthorEmail != "" {
			return commit.AuthorEmail
		}
		return commit.AuthorName
	}
}
