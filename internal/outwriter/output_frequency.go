package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/huangsam/gitcredit/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteFrequencyResults outputs the monthly and weekly commit buckets,
// dispatching based on the output format configured.
func WriteFrequencyResults(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result.CommitFrequency)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFrequencyCSV(w, result)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFrequencyTable(w, result, duration)
		}, "Wrote table")
	}
}

// sortedBuckets returns bucket keys in lexical order, which is also
// chronological for the YYYY-MM and YYYY-Www key formats.
func sortedBuckets(buckets map[string]int) []string {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writeFrequencyCSV(w io.Writer, result *schema.AnalysisResult) error {
	header := []string{"granularity", "bucket", "commits"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, key := range sortedBuckets(result.CommitFrequency.Monthly) {
			if err := cw.Write([]string{"monthly", key, strconv.Itoa(result.CommitFrequency.Monthly[key])}); err != nil {
				return err
			}
		}
		for _, key := range sortedBuckets(result.CommitFrequency.Weekly) {
			if err := cw.Write([]string{"weekly", key, strconv.Itoa(result.CommitFrequency.Weekly[key])}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeFrequencyTable(w io.Writer, result *schema.AnalysisResult, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Granularity", "Bucket", "Commits"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, key := range sortedBuckets(result.CommitFrequency.Monthly) {
		data = append(data, []string{"monthly", key, strconv.Itoa(result.CommitFrequency.Monthly[key])})
	}
	for _, key := range sortedBuckets(result.CommitFrequency.Weekly) {
		data = append(data, []string{"weekly", key, strconv.Itoa(result.CommitFrequency.Weekly[key])})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Analysis completed in %v\n", duration)
	return err
}
