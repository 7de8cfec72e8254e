// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server over the lifeos core.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/lifeos/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.
The server communicates via stdin/stdout; no network listener is opened.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "lifeos": {
        "command": "lifeos",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  capture          Run a quick-capture command
  log_execution    Log what actually happened on a date
  day_score        Plan-adherence score for a date
  player_stats     Level, XP, and attributes
  insights         Behavioral correlation findings
  monthly_summary  Income, expense, savings for a month
  budget_status    Budget vs actual per category`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repos)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
