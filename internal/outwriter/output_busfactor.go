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

// WriteBusFactorResults outputs the single-owner file list, dispatching
// based on the output format configured.
func WriteBusFactorResults(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result.BusFactor)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBusFactorCSV(w, result)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBusFactorTable(w, result, cfg, duration)
		}, "Wrote table")
	}
}

func writeBusFactorCSV(w io.Writer, result *schema.AnalysisResult) error {
	header := []string{"file", "owner", "changes"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, e := range result.BusFactor.FilesSingleOwner {
			if err := cw.Write([]string{e.File, e.Owner, strconv.Itoa(e.Changes)}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeBusFactorTable(w io.Writer, result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"File", "Owner", "Changes"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	maxName := getMaxNameWidth(cfg)
	entries := result.BusFactor.FilesSingleOwner
	limit := cfg.ResultLimit
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	var data [][]string
	for _, e := range entries {
		owner := e.Owner
		if c, ok := result.Contributors[e.Owner]; ok {
			owner = schema.DisplayName(e.Owner, schema.CanonicalDetails{Name: c.Name, Email: c.Email})
		}
		data = append(data, []string{
			contract.TruncatePath(e.File, maxName),
			contract.TruncatePath(owner, maxName),
			strconv.Itoa(e.Changes),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing %d of %d single-owner files\n",
		len(entries), len(result.BusFactor.FilesSingleOwner)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Analysis completed in %v\n", duration)
	return err
}
