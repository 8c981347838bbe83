package core

import (
	"context"
	"time"

	"github.com/huangsam/gitcredit/core/gitlog"
	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/huangsam/gitcredit/internal/outwriter"
	"github.com/huangsam/gitcredit/schema"
)

// ExecutorFunc defines the function signature for executing different
// analysis views.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// ExecuteContributors runs the analysis and prints the ranked
// contributor table. It serves as the main entry point for the
// 'contributors' command.
func ExecuteContributors(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, duration, err := runAnalysis(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteContributors(result, cfg, duration)
}

// ExecuteBusFactor runs the analysis and prints the single-owner file
// list.
func ExecuteBusFactor(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, duration, err := runAnalysis(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteBusFactor(result, cfg, duration)
}

// ExecuteHeatmap runs the analysis and prints the weekday-by-hour
// activity matrix.
func ExecuteHeatmap(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, duration, err := runAnalysis(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteHeatmap(result, cfg, duration)
}

// ExecuteFrequency runs the analysis and prints the monthly and weekly
// commit buckets.
func ExecuteFrequency(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, duration, err := runAnalysis(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteFrequency(result, cfg, duration)
}

// ExecuteReport runs the analysis and emits the complete result as JSON
// regardless of the configured output mode.
func ExecuteReport(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	result, duration, err := runAnalysis(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteReport(result, cfg, duration)
}

// GetAnalysisResults runs the full pipeline and returns the result
// instead of writing it. This is the entry point for programmatic
// callers like the MCP tool handlers.
func GetAnalysisResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (*schema.AnalysisResult, time.Duration, error) {
	return runAnalysis(ctx, cfg, mgr)
}

// runAnalysis is the shared execution path: collect the commit log
// (through the cache when available), parse it, analyze it, and record
// the run in the history store.
func runAnalysis(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (*schema.AnalysisResult, time.Duration, error) {
	start := time.Now()
	client := contract.NewLocalGitClient()

	commits, err := cachedCommitLog(ctx, cfg, client, mgr)
	if err != nil {
		return nil, 0, err
	}

	result := Analyze(commits, cfg)
	duration := time.Since(start)

	recordRun(cfg, mgr, result, duration)
	return result, duration, nil
}

// recordRun persists a summary row of this analysis. History failures
// are warnings, never analysis failures.
func recordRun(cfg *contract.Config, mgr contract.CacheManager, result *schema.AnalysisResult, duration time.Duration) {
	if mgr == nil {
		return
	}
	history := mgr.GetHistoryStore()
	if history == nil {
		return
	}

	top := ""
	if result.TopStats.ByChanges != nil {
		top = result.TopStats.ByChanges.Identity
	}
	record := schema.HistoryRunRecord{
		RepoPath:        cfg.RepoPath,
		RunTime:         time.Now(),
		DurationMs:      duration.Milliseconds(),
		TotalCommits:    result.TotalCommits,
		Contributors:    len(result.Contributors),
		TopContributor:  top,
		GroupBy:         string(cfg.GroupBy),
		SimilarityScore: cfg.SimilarityThreshold,
	}
	if _, err := history.RecordRun(record); err != nil {
		contract.LogWarn("could not record run history", err)
	}
}

// ParseCommitLog exposes the parser at the core boundary so callers
// outside the pipeline (MCP handlers, tests) do not need to import the
// parser package directly.
func ParseCommitLog(out []byte) []schema.CommitRecord {
	return gitlog.Parse(out)
}
