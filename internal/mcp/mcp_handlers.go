package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/gitcredit/core"
	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/huangsam/gitcredit/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

func (h *toolHandler) handleGetTopContributors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if g := request.GetString("group_by", ""); g != "" {
		mode := schema.GroupByMode(g)
		if _, ok := schema.ValidGroupByModes[mode]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid group_by mode: %s", g)), nil
		}
		cfg.GroupBy = mode
	}
	if s := request.GetString("sort", ""); s != "" {
		mode := schema.SortMode(s)
		if _, ok := schema.ValidSortModes[mode]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid sort mode: %s", s)), nil
		}
		cfg.SortBy = mode
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	result, _, err := core.GetAnalysisResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	payload := struct {
		TotalCommits    int                        `json:"total_commits"`
		TopContributors []schema.RankedContributor `json:"top_contributors"`
		TopStats        schema.TopStats            `json:"top_stats"`
	}{
		TotalCommits:    result.TotalCommits,
		TopContributors: result.TopContributors,
		TopStats:        result.TopStats,
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetBusFactor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if g := request.GetString("group_by", ""); g != "" {
		mode := schema.GroupByMode(g)
		if _, ok := schema.ValidGroupByModes[mode]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid group_by mode: %s", g)), nil
		}
		cfg.GroupBy = mode
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	result, _, err := core.GetAnalysisResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	entries := result.BusFactor.FilesSingleOwner
	if cfg.ResultLimit > 0 && len(entries) > cfg.ResultLimit {
		entries = entries[:cfg.ResultLimit]
	}
	jsonData, _ := json.MarshalIndent(entries, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCommitHeatmap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if s := request.GetString("start", ""); s != "" {
		t, err := contract.ParseTimeInput(s)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid start date: %v", err)), nil
		}
		cfg.StartTime = t
	}
	if e := request.GetString("end", ""); e != "" {
		t, err := contract.ParseTimeInput(e)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid end date: %v", err)), nil
		}
		cfg.EndTime = t
	}
	if !cfg.StartTime.IsZero() && !cfg.EndTime.IsZero() && cfg.EndTime.Before(cfg.StartTime) {
		return mcp.NewToolResultError("end date is before start date"), nil
	}

	result, _, err := core.GetAnalysisResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	payload := struct {
		TotalCommits    int                    `json:"total_commits"`
		Heatmap         schema.Heatmap         `json:"heatmap"`
		CommitFrequency schema.CommitFrequency `json:"commit_frequency"`
	}{
		TotalCommits:    result.TotalCommits,
		Heatmap:         result.Heatmap,
		CommitFrequency: result.CommitFrequency,
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}
