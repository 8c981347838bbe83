package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/huangsam/gitcredit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *schema.AnalysisResult {
	alice := schema.Contributor{
		Name:    "Alice Developer",
		Email:   "alice@x.com",
		Commits: 8,
		Added:   800,
		Deleted: 200,
		Files: map[string]*schema.FileStat{
			"core/engine.go": {Added: 800, Deleted: 200, Changes: 1000},
		},
	}
	bob := schema.Contributor{
		Name:    "Bob",
		Email:   "bob@y.com",
		Commits: 2,
		Added:   50,
		Deleted: 10,
		Files: map[string]*schema.FileStat{
			"docs/readme.md": {Added: 50, Deleted: 10, Changes: 60},
		},
	}

	return &schema.AnalysisResult{
		TotalCommits: 10,
		Contributors: map[string]*schema.Contributor{
			"alice@x.com": &alice,
			"bob@y.com":   &bob,
		},
		TopContributors: []schema.RankedContributor{
			{
				Identity:    "alice@x.com",
				Net:         600,
				Changes:     1000,
				TopFiles:    []schema.FileOwnership{{Filename: "core/engine.go", Added: 800, Deleted: 200, Changes: 1000}},
				Contributor: alice,
			},
			{
				Identity:    "bob@y.com",
				Net:         40,
				Changes:     60,
				TopFiles:    []schema.FileOwnership{{Filename: "docs/readme.md", Added: 50, Deleted: 10, Changes: 60}},
				Contributor: bob,
			},
		},
	}
}

func TestWriteContributorTable(t *testing.T) {
	cfg := &contract.Config{
		Output:       schema.TextOut,
		UseColors:    false,
		Width:        120,
		CacheBackend: schema.SQLiteBackend,
	}

	var buf bytes.Buffer
	err := writeContributorTable(&buf, sampleResult(), cfg, 100*time.Millisecond)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Alice Developer")
	assert.Contains(t, output, "Bob")
	assert.Contains(t, output, "1000")
	assert.Contains(t, output, "Dominant", "Alice holds over half the changes")
	assert.Contains(t, output, "core/engine.go")
	assert.Contains(t, output, "Showing top 2 of 2 contributors (total commits: 10)")
	assert.Contains(t, output, "Analysis completed in 100ms")
	assert.Contains(t, output, "Cache backend: sqlite")
}

func TestWriteContributorCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeContributorCSV(&buf, sampleResult())
	require.NoError(t, err)

	reader := csv.NewReader(&buf)
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per contributor")

	assert.Equal(t, []string{"rank", "identity", "name", "email", "commits", "added", "deleted", "net", "changes", "label"}, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "alice@x.com", records[1][1])
	assert.Equal(t, "Dominant", records[1][9])
	assert.Equal(t, "bob@y.com", records[2][1])
	assert.Equal(t, "Minor", records[2][9])
}

func TestWriteContributorResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, enrichRanked(sampleResult()))
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)

	assert.Equal(t, float64(1), rows[0]["rank"])
	assert.Equal(t, "alice@x.com", rows[0]["identity"])
	assert.Equal(t, "Dominant", rows[0]["label"])
	assert.Equal(t, float64(1000), rows[0]["changes"])
	assert.Equal(t, float64(2), rows[1]["rank"])
}

func TestEnrichRankedEmptyResult(t *testing.T) {
	result := &schema.AnalysisResult{Contributors: map[string]*schema.Contributor{}}
	rows := enrichRanked(result)
	assert.Empty(t, rows)
}

func TestTotalChangesOf(t *testing.T) {
	assert.Equal(t, 1060, totalChangesOf(sampleResult()))
	assert.Zero(t, totalChangesOf(&schema.AnalysisResult{Contributors: map[string]*schema.Contributor{}}))
}

func TestShareOf(t *testing.T) {
	assert.InDelta(t, 0.25, shareOf(25, 100), 1e-9)
	assert.Zero(t, shareOf(10, 0), "an empty repository yields a zero share")
	assert.Zero(t, shareOf(10, -5))
}

func TestWriteContributorResultsToFile(t *testing.T) {
	dir := t.TempDir()
	outFile := dir + "/contributors.csv"

	cfg := &contract.Config{
		Output:     schema.CSVOut,
		OutputFile: outFile,
	}

	err := WriteContributorResults(sampleResult(), cfg, 10*time.Millisecond)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "rank,identity"))
}
