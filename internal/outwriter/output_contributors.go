package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/huangsam/gitcredit/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// rankedRow adds presentation data to a RankedContributor for JSON output.
type rankedRow struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	schema.RankedContributor
}

// WriteContributorResults outputs the ranked contributor view,
// dispatching based on the output format configured.
func WriteContributorResults(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, enrichRanked(result))
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeContributorCSV(w, result)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeContributorTable(w, result, cfg, duration)
		}, "Wrote table")
	}
}

// enrichRanked attaches rank and plain share labels for structured output.
func enrichRanked(result *schema.AnalysisResult) []rankedRow {
	totalChanges := totalChangesOf(result)
	rows := make([]rankedRow, len(result.TopContributors))
	for i, c := range result.TopContributors {
		rows[i] = rankedRow{
			Rank:              i + 1,
			Label:             contract.GetPlainShareLabel(shareOf(c.Changes, totalChanges)),
			RankedContributor: c,
		}
	}
	return rows
}

// writeContributorCSV emits one row per ranked contributor.
func writeContributorCSV(w io.Writer, result *schema.AnalysisResult) error {
	header := []string{"rank", "identity", "name", "email", "commits", "added", "deleted", "net", "changes", "label"}
	totalChanges := totalChangesOf(result)
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, c := range result.TopContributors {
			row := []string{
				strconv.Itoa(i + 1),
				c.Identity,
				c.Name,
				c.Email,
				strconv.Itoa(c.Commits),
				strconv.Itoa(c.Added),
				strconv.Itoa(c.Deleted),
				strconv.Itoa(c.Net),
				strconv.Itoa(c.Changes),
				contract.GetPlainShareLabel(shareOf(c.Changes, totalChanges)),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeContributorTable generates and writes the human-readable table.
func writeContributorTable(w io.Writer, result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Contributor", "Commits", "Added", "Deleted", "Net", "Changes", "Share", "Top File"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	totalChanges := totalChangesOf(result)
	maxName := getMaxNameWidth(cfg)

	var data [][]string
	for i, c := range result.TopContributors {
		topFile := ""
		if len(c.TopFiles) > 0 {
			topFile = contract.TruncatePath(c.TopFiles[0].Filename, maxName)
		}
		display := schema.DisplayName(c.Identity, schema.CanonicalDetails{Name: c.Name, Email: c.Email})
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(display, maxName),
			strconv.Itoa(c.Commits),
			strconv.Itoa(c.Added),
			strconv.Itoa(c.Deleted),
			strconv.Itoa(c.Net),
			strconv.Itoa(c.Changes),
			shareLabel(shareOf(c.Changes, totalChanges), cfg.UseColors),
			topFile,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing top %d of %d contributors (total commits: %d)\n",
		len(result.TopContributors), len(result.Contributors), result.TotalCommits); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// totalChangesOf sums changes across all contributors, used for share
// labels.
func totalChangesOf(result *schema.AnalysisResult) int {
	total := 0
	for _, c := range result.Contributors {
		total += c.Added + c.Deleted
	}
	return total
}
