// Package schema has configs, models and shared constants for all parts of gitcredit.
package schema

import "time"

// FileDelta represents the numstat triple for a single file in a single commit.
type FileDelta struct {
	Filename string `json:"filename"`
	Added    int    `json:"added"`
	Deleted  int    `json:"deleted"`
}

// CommitRecord represents one parsed commit from the git log stream.
// It is created by the log parser and never mutated afterward.
type CommitRecord struct {
	Hash        string      `json:"hash"`
	AuthorName  string      `json:"author_name"`
	AuthorEmail string      `json:"author_email"`
	Timestamp   time.Time   `json:"timestamp"` // Zero when the log date was absent or unparseable
	Additions   int         `json:"additions"`
	Deletions   int         `json:"deletions"`
	Files       []FileDelta `json:"files"`
}

// HasTimestamp reports whether the commit carried a parseable author date.
func (c *CommitRecord) HasTimestamp() bool {
	return !c.Timestamp.IsZero()
}

// AliasConfig is the optional identity-merging configuration.
// Groups list raw identities (emails or names) that belong to the same
// person; Canonical provides explicit display details per identity.
type AliasConfig struct {
	Groups    [][]string                  `json:"groups"`
	Canonical map[string]CanonicalDetails `json:"canonical"`
}

// CanonicalDetails holds the best-known display information for a
// resolved contributor. Fields are improved monotonically as more
// commits are observed.
type CanonicalDetails struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// FileStat accumulates per-file activity for one contributor.
type FileStat struct {
	Added   int `json:"added"`
	Deleted int `json:"deleted"`
	Changes int `json:"changes"`
}

// ContributorAccumulator collects raw totals for one canonical
// contributor during the aggregation pass. It is owned and mutated by
// exactly one sequential pass and read-only afterward.
type ContributorAccumulator struct {
	Commits   int
	Additions int
	Deletions int
	Files     map[string]*FileStat
}

// NewContributorAccumulator returns an empty accumulator.
func NewContributorAccumulator() *ContributorAccumulator {
	return &ContributorAccumulator{Files: make(map[string]*FileStat)}
}

// AddFileDelta folds one numstat triple into the per-file sub-map.
func (a *ContributorAccumulator) AddFileDelta(d FileDelta) {
	stat, ok := a.Files[d.Filename]
	if !ok {
		stat = &FileStat{}
		a.Files[d.Filename] = stat
	}
	stat.Added += d.Added
	stat.Deleted += d.Deleted
	stat.Changes += d.Added + d.Deleted
}
