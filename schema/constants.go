package schema

// Custom string types for type safety.
type (
	// GroupByMode selects which commit field forms the raw identity.
	GroupByMode string

	// SortMode selects the ranking metric for top contributors.
	SortMode string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for persistence.
	DatabaseBackend string
)

// All grouping modes supported.
const (
	GroupByEmail GroupByMode = "email" // default
	GroupByName  GroupByMode = "name"
)

// All sort modes supported.
const (
	SortByChanges   SortMode = "changes" // default
	SortByCommits   SortMode = "commits"
	SortByAdditions SortMode = "additions"
	SortByDeletions SortMode = "deletions"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All persistence backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// DefaultSimilarityThreshold is the minimum similarity score required to
// merge two identities absent an explicit alias group.
const DefaultSimilarityThreshold = 0.85

// ValidGroupByModes lists all valid grouping modes.
var ValidGroupByModes = map[GroupByMode]struct{}{
	GroupByEmail: {},
	GroupByName:  {},
}

// ValidSortModes lists all valid sort modes.
var ValidSortModes = map[SortMode]struct{}{
	SortByChanges:   {},
	SortByCommits:   {},
	SortByAdditions: {},
	SortByDeletions: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid persistence backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
