// Package server wires the MCP server and the tool catalog.
//
// This is the composition root: it creates the server instance and
// registers every tool against a service implementation. No business
// logic lives here.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/teren-papercutlabs/clickup-mcp/internal/service"
	"github.com/teren-papercutlabs/clickup-mcp/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

const instructions = `ClickUp task management tools. Call get_workspace_hierarchy once to
discover team, space, folder, and list ids, and cache the result
yourself — the server holds no state between calls. Task timestamps are
epoch milliseconds. Results are single pages; pass page to fetch more.`

// New creates the MCP server with the full tool catalog registered.
func New(svc service.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"clickup-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)
	tools.RegisterAll(s, svc)
	return s
}
