// Package outwriter has output and writer logic.
package outwriter

import (
	"io"
	"time"

	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/huangsam/gitcredit/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API
// for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteContributors prints the ranked contributor view using the
// configured output format.
func (ow *OutWriter) WriteContributors(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	return WriteContributorResults(result, cfg, duration)
}

// WriteBusFactor prints the single-owner file view using the configured
// output format.
func (ow *OutWriter) WriteBusFactor(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	return WriteBusFactorResults(result, cfg, duration)
}

// WriteHeatmap prints the weekday-by-hour activity matrix.
func (ow *OutWriter) WriteHeatmap(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	return WriteHeatmapResults(result, cfg, duration)
}

// WriteFrequency prints the monthly and weekly commit buckets.
func (ow *OutWriter) WriteFrequency(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	return WriteFrequencyResults(result, cfg, duration)
}

// WriteReport emits the complete analysis result as indented JSON.
func (ow *OutWriter) WriteReport(result *schema.AnalysisResult, cfg *contract.Config, _ time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote report")
}
