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

// weekdayNames indexes rows of the heatmap, 0=Sunday per time.Weekday.
var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WriteHeatmapResults outputs the weekday-by-hour activity matrix,
// dispatching based on the output format configured.
func WriteHeatmapResults(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result.Heatmap)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHeatmapCSV(w, result)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHeatmapTable(w, result, duration)
		}, "Wrote table")
	}
}

func writeHeatmapCSV(w io.Writer, result *schema.AnalysisResult) error {
	header := make([]string, 0, schema.HeatmapCols+1)
	header = append(header, "weekday")
	for hour := range schema.HeatmapCols {
		header = append(header, fmt.Sprintf("h%02d", hour))
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for day, row := range result.Heatmap {
			record := make([]string, 0, schema.HeatmapCols+1)
			record = append(record, weekdayNames[day])
			for _, n := range row {
				record = append(record, strconv.Itoa(n))
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeHeatmapTable(w io.Writer, result *schema.AnalysisResult, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	header := make([]string, 0, schema.HeatmapCols+1)
	header = append(header, "Day")
	for hour := range schema.HeatmapCols {
		header = append(header, fmt.Sprintf("%02d", hour))
	}
	table.Header(header)
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for day, row := range result.Heatmap {
		record := make([]string, 0, schema.HeatmapCols+1)
		record = append(record, weekdayNames[day])
		for _, n := range row {
			cell := "."
			if n > 0 {
				cell = strconv.Itoa(n)
			}
			record = append(record, cell)
		}
		data = append(data, record)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Total timestamped commits: %d of %d\n",
		result.Heatmap.Total(), result.TotalCommits); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Analysis completed in %v\n", duration)
	return err
}
