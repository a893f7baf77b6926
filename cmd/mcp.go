package cmd

import (
	"github.com/cbuntingde/gitpulse/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the GitPulse MCP server",
	Long:  `Launch an MCP server that allows AI agents to run commit-log analysis via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Stdout carries the protocol, so setup must not print to it.
		return sharedSetup(rootCtx, cmd, args, false)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, gitClient)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
