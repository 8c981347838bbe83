package schema

import "time"

// HeatmapRows and HeatmapCols fix the shape of the activity heatmap:
// weekday (0=Sunday .. 6=Saturday) by hour of day.
const (
	HeatmapRows = 7
	HeatmapCols = 24
)

// Heatmap counts commits per weekday and hour of day.
type Heatmap [HeatmapRows][HeatmapCols]int

// Total returns the sum over all cells, which equals the count of
// commits with a parseable timestamp.
func (h *Heatmap) Total() int {
	total := 0
	for _, row := range h {
		for _, n := range row {
			total += n
		}
	}
	return total
}

// Contributor is the resolved, aggregated view of one canonical
// contributor as exposed in AnalysisResult.Contributors.
type Contributor struct {
	Name    string               `json:"name,omitempty"`
	Email   string               `json:"email,omitempty"`
	Commits int                  `json:"commits"`
	Added   int                  `json:"added"`
	Deleted int                  `json:"deleted"`
	Files   map[string]*FileStat `json:"files"`
}

// FileOwnership is one entry of a contributor's top-files list.
type FileOwnership struct {
	Filename string `json:"filename"`
	Added    int    `json:"added"`
	Deleted  int    `json:"deleted"`
	Changes  int    `json:"changes"`
}

// RankedContributor adds derived metrics and ranking data on top of the
// base Contributor shape.
type RankedContributor struct {
	Identity string          `json:"identity"`
	Net      int             `json:"net"`
	Changes  int             `json:"changes"`
	TopFiles []FileOwnership `json:"top_files"`
	Contributor
}

// TopStats points at the best contributor per independent metric. Any
// entry is nil when the contributor set is empty.
type TopStats struct {
	ByCommits   *RankedContributor `json:"by_commits"`
	ByAdditions *RankedContributor `json:"by_additions"`
	ByDeletions *RankedContributor `json:"by_deletions"`
	ByNet       *RankedContributor `json:"by_net"`
	ByChanges   *RankedContributor `json:"by_changes"`
}

// CommitFrequency buckets commit counts by calendar month (YYYY-MM) and
// ISO-8601 week (YYYY-Www). Commits without a timestamp are excluded.
type CommitFrequency struct {
	Monthly map[string]int `json:"monthly"`
	Weekly  map[string]int `json:"weekly"`
}

// BusFactorEntry marks a file with exactly one canonical contributor
// across the whole input.
type BusFactorEntry struct {
	File    string `json:"file"`
	Owner   string `json:"owner"`
	Changes int    `json:"changes"`
}

// BusFactor is the concentration-of-knowledge risk indicator.
type BusFactor struct {
	FilesSingleOwner []BusFactorEntry `json:"files_single_owner"`
}

// AnalysisResult is the complete output of one analysis run. Created
// once per run and never mutated after construction.
type AnalysisResult struct {
	TotalCommits    int                     `json:"total_commits"`
	Contributors    map[string]*Contributor `json:"contributors"`
	TopContributors []RankedContributor     `json:"top_contributors"`
	TopStats        TopStats                `json:"top_stats"`
	CommitFrequency CommitFrequency         `json:"commit_frequency"`
	Heatmap         Heatmap                 `json:"heatmap"`
	BusFactor       BusFactor               `json:"bus_factor"`
}

// CacheStatus holds status information about the activity cache store.
type CacheStatus struct {
	Backend         string
	Connected       bool
	TotalEntries    int
	LastEntryTime   time.Time
	OldestEntryTime time.Time
	TableSizeBytes  int64
}

// HistoryStatus holds status information about the run-history store.
type HistoryStatus struct {
	Backend       string
	Connected     bool
	TotalRuns     int
	LastRunID     int64
	LastRunTime   time.Time
	OldestRunTime time.Time
}

// HistoryRunRecord is one persisted analysis run.
type HistoryRunRecord struct {
	RunID           int64
	RepoPath        string
	RunTime         time.Time
	DurationMs      int64
	TotalCommits    int
	Contributors    int
	TopContributor  string
	GroupBy         string
	SimilarityScore float64
}
