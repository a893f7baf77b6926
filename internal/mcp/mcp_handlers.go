package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cbuntingde/gitpulse/core"
	"github.com/cbuntingde/gitpulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

// applyWindow overrides the base window from optional request parameters.
func (h *toolHandler) applyWindow(ctx context.Context, request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()

	if p := request.GetString("repo_path", ""); p != "" {
		root, err := h.client.RepoRoot(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("not a git repository: %s", p)
		}
		cfg.RepoPath = root
	}
	if s := request.GetString("since", ""); s != "" {
		start, err := contract.ParseTimeExpression(s, cfg.Now)
		if err != nil {
			return nil, fmt.Errorf("invalid since value: %w", err)
		}
		cfg.StartTime = start
	}
	if u := request.GetString("until", ""); u != "" {
		end, err := contract.ParseTimeExpression(u, cfg.Now)
		if err != nil {
			return nil, fmt.Errorf("invalid until value: %w", err)
		}
		cfg.EndTime = end
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	return cfg, nil
}

func (h *toolHandler) handleGetCommitReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyWindow(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, err := core.BuildReport(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetActivity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyWindow(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	activity, err := core.BuildActivity(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("activity analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(activity, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetAuthorProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyWindow(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	name := request.GetString("author", "")
	if name == "" {
		return mcp.NewToolResultError("author is required"), nil
	}

	profile, err := core.BuildAuthorProfile(ctx, cfg, h.client, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("author analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(profile, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetKeywords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyWindow(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	mined, err := core.BuildKeywords(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("keyword mining failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(mined, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
