// Package parquet provides data structures and functions for exporting
// contributor analytics data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/gitcredit/schema"
	"github.com/parquet-go/parquet-go"
)

// HistoryRun represents a single analysis run with metadata.
// This struct maps to the gitcredit_history_runs database table.
type HistoryRun struct {
	// RunID is the unique identifier for this analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// RepoPath is the repository the run was executed against
	RepoPath string `parquet:"repo_path,snappy"`

	// RunTime is when the analysis completed (stored as TIMESTAMP with nanosecond precision)
	RunTime time.Time `parquet:"run_time,snappy"`

	// DurationMs is the wall-clock duration of the run in milliseconds
	DurationMs int64 `parquet:"duration_ms,snappy"`

	// TotalCommits is the number of commits analyzed in this run
	TotalCommits int32 `parquet:"total_commits,snappy"`

	// Contributors is the number of canonical contributors found
	Contributors int32 `parquet:"contributors,snappy"`

	// TopContributor is the identity with the most changes (nullable)
	TopContributor *string `parquet:"top_contributor,optional,snappy"`

	// GroupBy records the identity grouping mode used for the run
	GroupBy string `parquet:"group_by,snappy"`

	// SimilarityScore is the fuzzy-match threshold used for the run
	SimilarityScore float64 `parquet:"similarity_score,snappy"`
}

// ContributorRow represents one ranked contributor from an analysis.
type ContributorRow struct {
	// Rank is the 1-based position in the changes ordering
	Rank int32 `parquet:"rank,snappy"`

	// Identity is the canonical identity key for the contributor
	Identity string `parquet:"identity,snappy"`

	// Name is the display name, if one was observed (nullable)
	Name *string `parquet:"name,optional,snappy"`

	// Email is the contributor email, if one was observed (nullable)
	Email *string `parquet:"email,optional,snappy"`

	// Commits is the number of commits attributed to the contributor
	Commits int32 `parquet:"commits,snappy"`

	// Added is the total lines added
	Added int32 `parquet:"added,snappy"`

	// Deleted is the total lines deleted
	Deleted int32 `parquet:"deleted,snappy"`

	// Net is Added minus Deleted
	Net int32 `parquet:"net,snappy"`

	// Changes is Added plus Deleted
	Changes int32 `parquet:"changes,snappy"`

	// Files is the number of distinct files the contributor touched
	Files int32 `parquet:"files,snappy"`
}

// WriteHistoryRunsParquet writes a slice of HistoryRun structs to a Parquet file.
func WriteHistoryRunsParquet(data []HistoryRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the HistoryRun struct tags
	writer := parquet.NewGenericWriter[HistoryRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteContributorsParquet writes a slice of ContributorRow structs to a Parquet file.
func WriteContributorsParquet(data []ContributorRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ContributorRow struct tags
	writer := parquet.NewGenericWriter[ContributorRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchHistoryRuns generates sample HistoryRun data for demonstration.
func MockFetchHistoryRuns() []HistoryRun {
	now := time.Now()
	topContributor1 := "alice@example.com"
	topContributor2 := "bob"

	return []HistoryRun{
		{
			RunID:           1,
			RepoPath:        "/repos/payments-service",
			RunTime:         now.Add(-24 * time.Hour),
			DurationMs:      1843,
			TotalCommits:    5230,
			Contributors:    41,
			TopContributor:  &topContributor1,
			GroupBy:         "email",
			SimilarityScore: 0.85,
		},
		{
			RunID:           2,
			RepoPath:        "/repos/payments-service",
			RunTime:         now.Add(-1 * time.Hour),
			DurationMs:      212,
			TotalCommits:    5241,
			Contributors:    41,
			TopContributor:  &topContributor2,
			GroupBy:         "name",
			SimilarityScore: 0.90,
		},
		{
			RunID:           3,
			RepoPath:        "/repos/empty-repo",
			RunTime:         now.Add(-10 * time.Minute),
			DurationMs:      8,
			TotalCommits:    0,
			Contributors:    0,
			TopContributor:  nil, // No commits, no leader - nullable field
			GroupBy:         "email",
			SimilarityScore: 0.85,
		},
	}
}

// MockFetchContributorRows generates sample ContributorRow data for demonstration.
func MockFetchContributorRows() []ContributorRow {
	name1 := "Alice Chen"
	email1 := "alice@example.com"
	name2 := "Bob"

	return []ContributorRow{
		{
			Rank:     1,
			Identity: "alice@example.com",
			Name:     &name1,
			Email:    &email1,
			Commits:  812,
			Added:    42100,
			Deleted:  18700,
			Net:      23400,
			Changes:  60800,
			Files:    290,
		},
		{
			Rank:     2,
			Identity: "bob",
			Name:     &name2,
			Email:    nil, // Committed without a configured email - nullable field
			Commits:  304,
			Added:    9100,
			Deleted:  4400,
			Net:      4700,
			Changes:  13500,
			Files:    88,
		},
	}
}

// ConvertHistoryRunRecords converts schema.HistoryRunRecord to HistoryRun for Parquet export.
func ConvertHistoryRunRecords(records []schema.HistoryRunRecord) []HistoryRun {
	result := make([]HistoryRun, len(records))
	for i, record := range records {
		run := HistoryRun{
			RunID:           record.RunID,
			RepoPath:        record.RepoPath,
			RunTime:         record.RunTime,
			DurationMs:      record.DurationMs,
			TotalCommits:    int32(record.TotalCommits),
			Contributors:    int32(record.Contributors),
			GroupBy:         record.GroupBy,
			SimilarityScore: record.SimilarityScore,
		}
		if record.TopContributor != "" {
			top := record.TopContributor
			run.TopContributor = &top
		}
		result[i] = run
	}
	return result
}

// ConvertRankedContributors converts schema.RankedContributor to ContributorRow for Parquet export.
func ConvertRankedContributors(ranked []schema.RankedContributor) []ContributorRow {
	result := make([]ContributorRow, len(ranked))
	for i, rc := range ranked {
		row := ContributorRow{
			Rank:     int32(i + 1),
			Identity: rc.Identity,
			Commits:  int32(rc.Commits),
			Added:    int32(rc.Added),
			Deleted:  int32(rc.Deleted),
			Net:      int32(rc.Net),
			Changes:  int32(rc.Changes),
			Files:    int32(len(rc.Files)),
		}
		if rc.Name != "" {
			name := rc.Name
			row.Name = &name
		}
		if rc.Email != "" {
			email := rc.Email
			row.Email = &email
		}
		result[i] = row
	}
	return result
}
