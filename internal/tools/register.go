package tools

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/teren-papercutlabs/clickup-mcp/internal/service"
)

// RegisterAll registers the full tool catalog on the server. The set is
// closed and known at build time; listing the catalog is handled by the
// MCP library from these definitions.
func RegisterAll(srv *server.MCPServer, svc service.Service) {
	registerWorkspaceTools(srv, svc)
	registerTaskTools(srv, svc)
	registerCommentTools(srv, svc)
	registerDependencyTools(srv, svc)
}
