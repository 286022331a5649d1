package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/teren-papercutlabs/clickup-mcp/internal/service"
)

func registerCommentTools(srv *server.MCPServer, svc service.Service) {
	srv.AddTool(
		mcp.NewTool(
			"create_comment",
			mcp.WithDescription("Add a comment to a task. Optionally assign the comment to a user and notify all task assignees."),
			mcp.WithString("task_id", mcp.Required(), mcp.Description("Task id")),
			mcp.WithString("comment_text", mcp.Required(), mcp.Description("Comment body text")),
			mcp.WithNumber("assignee", mcp.Description("User id to assign the comment to")),
			mcp.WithBoolean("notify_all", mcp.Description("Notify all task assignees")),
		),
		createCommentHandler(svc),
	)

	srv.AddTool(
		mcp.NewTool(
			"get_comments",
			mcp.WithDescription("Fetch all comments on a task, newest first as returned by the backend."),
			mcp.WithString("task_id", mcp.Required(), mcp.Description("Task id")),
		),
		getCommentsHandler(svc),
	)
}

func createCommentHandler(svc service.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			TaskID      string `json:"task_id"`
			CommentText string `json:"comment_text"`
			Assignee    *int   `json:"assignee"`
			NotifyAll   *bool  `json:"notify_all"`
		}
		if err := req.BindArguments(&args); err != nil {
			return invalidArguments(err), nil
		}
		if strings.TrimSpace(args.TaskID) == "" {
			return missingArgument("task_id"), nil
		}
		if strings.TrimSpace(args.CommentText) == "" {
			return missingArgument("comment_text"), nil
		}

		comment, err := svc.CreateComment(ctx, args.TaskID, service.CreateCommentRequest{
			CommentText: args.CommentText,
			Assignee:    args.Assignee,
			NotifyAll:   args.NotifyAll,
		})
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult("create_comment", comment)
	}
}

func getCommentsHandler(svc service.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskID, err := req.RequireString("task_id")
		if err != nil {
			return invalidArguments(err), nil
		}
		comments, err := svc.GetComments(ctx, taskID)
		if err != nil {
			return errorResult(err), nil
		}
		if comments == nil {
			comments = []service.Comment{}
		}
		return jsonResult("get_comments", map[string]any{"comments": comments})
	}
}
