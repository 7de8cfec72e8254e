// ABOUTME: MCP server setup for the lifeos core.
// ABOUTME: Wires repositories and engines into stdio-transport tools.
package mcp

import (
	"context"

	"github.com/harperreed/lifeos/internal/command"
	"github.com/harperreed/lifeos/internal/finance"
	"github.com/harperreed/lifeos/internal/gamify"
	"github.com/harperreed/lifeos/internal/insights"
	"github.com/harperreed/lifeos/internal/repo"
	"github.com/harperreed/lifeos/internal/scoring"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with the lifeos core.
type Server struct {
	mcpServer *mcp.Server
	repos     *repo.Repos
	capture   *command.Parser
	scores    *scoring.Engine
	stats     *gamify.Engine
	insights  *insights.Engine
	money     *finance.Aggregator
}

// NewServer creates an MCP server over the repository set.
func NewServer(repos *repo.Repos) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "lifeos",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repos:     repos,
		capture:   command.NewParser(repos),
		scores:    scoring.NewEngine(repos.Plans, repos.Executions),
		stats:     gamify.NewEngine(repos.Executions, repos.Gym, repos.Notes),
		insights:  insights.NewEngine(repos.Executions),
		money:     finance.NewAggregator(repos.Transactions, repos.Budgets),
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
