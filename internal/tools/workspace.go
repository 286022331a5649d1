package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/teren-papercutlabs/clickup-mcp/internal/service"
)

func registerWorkspaceTools(srv *server.MCPServer, svc service.Service) {
	srv.AddTool(
		mcp.NewTool(
			"get_workspace_hierarchy",
			mcp.WithDescription("Fetch the full workspace tree: teams, their spaces, folders with their lists, and folderless lists. Call this first to discover the ids other tools need, and reuse the result rather than calling it per task — the tree rarely changes."),
		),
		workspaceHierarchyHandler(svc),
	)
}

func workspaceHierarchyHandler(svc service.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		workspace, err := svc.WorkspaceStructure(ctx)
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult("get_workspace_hierarchy", workspace)
	}
}
