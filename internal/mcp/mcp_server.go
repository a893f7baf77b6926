// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the GitPulse MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"GitPulse Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: get_commit_report ---
	s.AddTool(mcp.NewTool("get_commit_report",
		mcp.WithDescription("Analyze commit history and return author rankings, message categories, time-of-day distribution, file churn, keywords and branch counts."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to current directory if not specified).")),
		mcp.WithString("since", mcp.Description("Start of the analysis window (e.g., '30 days ago', '2024-01-01').")),
		mcp.WithString("until", mcp.Description("End of the analysis window.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of ranked results returned.")),
	), h.handleGetCommitReport)

	// --- 2. Tool: get_activity ---
	s.AddTool(mcp.NewTool("get_activity",
		mcp.WithDescription("Bucket commits by day and ISO week and estimate commit velocity for the window."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("since", mcp.Description("Start of the analysis window.")),
		mcp.WithString("until", mcp.Description("End of the analysis window.")),
	), h.handleGetActivity)

	// --- 3. Tool: get_author_profile ---
	s.AddTool(mcp.NewTool("get_author_profile",
		mcp.WithDescription("Build the per-author view: commit counts, category mix, activity histograms and likely collaborators."),
		mcp.WithString("author", mcp.Description("Exact author display name to analyze."), mcp.Required()),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("since", mcp.Description("Start of the analysis window.")),
	), h.handleGetAuthorProfile)

	// --- 4. Tool: get_keywords ---
	s.AddTool(mcp.NewTool("get_keywords",
		mcp.WithDescription("Mine commit subjects for frequent keywords and repeated messages."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("since", mcp.Description("Start of the analysis window.")),
	), h.handleGetKeywords)

	return s
}

// StartMCPServer starts the GitPulse MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
