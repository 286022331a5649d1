package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/teren-papercutlabs/clickup-mcp/internal/service"
)

func registerDependencyTools(srv *server.MCPServer, svc service.Service) {
	srv.AddTool(
		mcp.NewTool(
			"add_dependency",
			mcp.WithDescription("Link two tasks. Pass exactly one of depends_on (this task waits on the other) or dependency_of (this task blocks the other)."),
			mcp.WithString("task_id", mcp.Required(), mcp.Description("Task id")),
			mcp.WithString("depends_on", mcp.Description("Id of the task this task is waiting on")),
			mcp.WithString("dependency_of", mcp.Description("Id of the task this task blocks")),
		),
		addDependencyHandler(svc),
	)

	srv.AddTool(
		mcp.NewTool(
			"delete_dependency",
			mcp.WithDescription("Remove a dependency link. Pass the same direction field used when the link was added: depends_on or dependency_of."),
			mcp.WithString("task_id", mcp.Required(), mcp.Description("Task id")),
			mcp.WithString("depends_on", mcp.Description("Id of the task this task is waiting on")),
			mcp.WithString("dependency_of", mcp.Description("Id of the task this task blocks")),
		),
		deleteDependencyHandler(svc),
	)

	srv.AddTool(
		mcp.NewTool(
			"list_dependencies",
			mcp.WithDescription("List a task's dependencies and linked tasks. Returns the task id, name, dependency entries, and linked-task entries."),
			mcp.WithString("task_id", mcp.Required(), mcp.Description("Task id")),
		),
		listDependenciesHandler(svc),
	)
}

// dependencyArgs is the shared argument bag for add/delete.
type dependencyArgs struct {
	TaskID       string `json:"task_id"`
	DependsOn    string `json:"depends_on"`
	DependencyOf string `json:"dependency_of"`
}

// link converts the two optional direction fields into the internal
// tagged variant. Exactly one must be set; both or neither is an
// argument error, reported before any network call.
func (a dependencyArgs) link() (service.DependencyLink, error) {
	dependsOn := strings.TrimSpace(a.DependsOn)
	dependencyOf := strings.TrimSpace(a.DependencyOf)
	switch {
	case dependsOn != "" && dependencyOf != "":
		return service.DependencyLink{}, fmt.Errorf("pass only one of depends_on and dependency_of")
	case dependsOn != "":
		return service.WaitingOn(dependsOn), nil
	case dependencyOf != "":
		return service.Blocking(dependencyOf), nil
	default:
		return service.DependencyLink{}, fmt.Errorf("one of depends_on or dependency_of is required")
	}
}

func addDependencyHandler(svc service.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args dependencyArgs
		if err := req.BindArguments(&args); err != nil {
			return invalidArguments(err), nil
		}
		if strings.TrimSpace(args.TaskID) == "" {
			return missingArgument("task_id"), nil
		}
		link, err := args.link()
		if err != nil {
			return errorResult(err), nil
		}
		if err := svc.AddDependency(ctx, args.TaskID, link); err != nil {
			return errorResult(err), nil
		}
		return jsonResult("add_dependency", map[string]any{"added": true, "task_id": args.TaskID})
	}
}

func deleteDependencyHandler(svc service.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args dependencyArgs
		if err := req.BindArguments(&args); err != nil {
			return invalidArguments(err), nil
		}
		if strings.TrimSpace(args.TaskID) == "" {
			return missingArgument("task_id"), nil
		}
		link, err := args.link()
		if err != nil {
			return errorResult(err), nil
		}
		if err := svc.DeleteDependency(ctx, args.TaskID, link); err != nil {
			return errorResult(err), nil
		}
		return jsonResult("delete_dependency", map[string]any{"deleted": true, "task_id": args.TaskID})
	}
}

// dependencySummary is the reduced view returned by list_dependencies.
type dependencySummary struct {
	TaskID       string                   `json:"task_id"`
	TaskName     string                   `json:"task_name"`
	Dependencies []service.TaskDependency `json:"dependencies"`
	LinkedTasks  []service.LinkedTask     `json:"linked_tasks"`
}

func listDependenciesHandler(svc service.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskID, err := req.RequireString("task_id")
		if err != nil {
			return invalidArguments(err), nil
		}
		task, err := svc.GetTask(ctx, taskID)
		if err != nil {
			return errorResult(err), nil
		}

		summary := dependencySummary{
			TaskID:       task.ID,
			TaskName:     task.Name,
			Dependencies: task.Dependencies,
			LinkedTasks:  task.LinkedTasks,
		}
		if summary.Dependencies == nil {
			summary.Dependencies = []service.TaskDependency{}
		}
		if summary.LinkedTasks == nil {
			summary.LinkedTasks = []service.LinkedTask{}
		}
		return jsonResult("list_dependencies", summary)
	}
}
