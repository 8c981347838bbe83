// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gitcredit/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the gitcredit MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Gitcredit Contributor Analytics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_top_contributors ---
	s.AddTool(mcp.NewTool("get_top_contributors",
		mcp.WithDescription("Analyze git history to rank contributors by commits, additions, deletions, or total changes. Identities are resolved across name and email variations."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to current directory if not specified).")),
		mcp.WithString("group_by", mcp.Description("Identity grouping mode (email, name). Defaults to 'email'."), mcp.Enum("email", "name")),
		mcp.WithString("sort", mcp.Description("Ranking metric (changes, commits, additions, deletions)."), mcp.Enum("changes", "commits", "additions", "deletions")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetTopContributors)

	// --- 2. Tool: get_bus_factor ---
	s.AddTool(mcp.NewTool("get_bus_factor",
		mcp.WithDescription("Find files with exactly one contributor, indicating concentration-of-knowledge risk."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("group_by", mcp.Description("Identity grouping mode (email, name)."), mcp.Enum("email", "name")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results.")),
	), h.handleGetBusFactor)

	// --- 3. Tool: get_commit_heatmap ---
	s.AddTool(mcp.NewTool("get_commit_heatmap",
		mcp.WithDescription("Build a weekday-by-hour commit activity matrix plus monthly and weekly commit frequency buckets."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("start", mcp.Description("Start of the analysis window (RFC3339 or YYYY-MM-DD).")),
		mcp.WithString("end", mcp.Description("End of the analysis window (RFC3339 or YYYY-MM-DD).")),
	), h.handleGetCommitHeatmap)

	return s
}

// StartMCPServer starts the gitcredit MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
