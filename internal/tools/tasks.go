package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/teren-papercutlabs/clickup-mcp/internal/service"
)

// numberItems is the item schema for arrays of numeric user ids.
var numberItems = mcp.Items(map[string]any{"type": "number"})

// registerTaskTools registers create/get/update/delete/list/search.
func registerTaskTools(srv *server.MCPServer, svc service.Service) {
	srv.AddTool(
		mcp.NewTool(
			"create_task",
			mcp.WithDescription("Create a task in a ClickUp list. Use get_workspace_hierarchy to find list ids. Dates are epoch milliseconds; set due_date_time/start_date_time to true when the timestamp carries a time of day. Priority is 1 (urgent) through 4 (low)."),
			mcp.WithString("list_id", mcp.Required(), mcp.Description("Id of the list to create the task in")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Task name")),
			mcp.WithString("description", mcp.Description("Plain-text task description")),
			mcp.WithString("markdown_description", mcp.Description("Markdown task description; takes precedence over description")),
			mcp.WithString("status", mcp.Description("Status name; must exist on the list")),
			mcp.WithNumber("priority", mcp.Description("Priority ordinal, 1 (urgent) to 4 (low)")),
			mcp.WithArray("assignees", mcp.Description("User ids to assign"), numberItems),
			mcp.WithArray("tags", mcp.Description("Tag names to apply"), mcp.WithStringItems()),
			mcp.WithNumber("due_date", mcp.Description("Due date, epoch milliseconds")),
			mcp.WithBoolean("due_date_time", mcp.Description("Whether due_date includes a time of day")),
			mcp.WithNumber("start_date", mcp.Description("Start date, epoch milliseconds")),
			mcp.WithBoolean("start_date_time", mcp.Description("Whether start_date includes a time of day")),
			mcp.WithString("parent", mcp.Description("Parent task id, to create this task as a subtask")),
			mcp.WithBoolean("notify_all", mcp.Description("Notify all assignees")),
		),
		createTaskHandler(svc),
	)

	srv.AddTool(
		mcp.NewTool(
			"get_task",
			mcp.WithDescription("Fetch a single task by id, including status, assignees, tags, dates, dependencies, and its containing list/folder/space."),
			mcp.WithString("task_id", mcp.Required(), mcp.Description("Task id")),
		),
		getTaskHandler(svc),
	)

	srv.AddTool(
		mcp.NewTool(
			"update_task",
			mcp.WithDescription("Partially update a task. Only the fields you pass are changed; everything else is left untouched. Use assignees_add/assignees_rem and tags_add/tags_rem to change membership without replacing the whole set."),
			mcp.WithString("task_id", mcp.Required(), mcp.Description("Task id")),
			mcp.WithString("name", mcp.Description("New task name")),
			mcp.WithString("description", mcp.Description("New plain-text description")),
			mcp.WithString("markdown_description", mcp.Description("New markdown description")),
			mcp.WithString("status", mcp.Description("New status name")),
			mcp.WithNumber("priority", mcp.Description("New priority ordinal, 1 to 4")),
			mcp.WithNumber("due_date", mcp.Description("New due date, epoch milliseconds")),
			mcp.WithBoolean("due_date_time", mcp.Description("Whether due_date includes a time of day")),
			mcp.WithNumber("start_date", mcp.Description("New start date, epoch milliseconds")),
			mcp.WithBoolean("start_date_time", mcp.Description("Whether start_date includes a time of day")),
			mcp.WithString("parent", mcp.Description("New parent task id")),
			mcp.WithArray("assignees_add", mcp.Description("User ids to add as assignees"), numberItems),
			mcp.WithArray("assignees_rem", mcp.Description("User ids to remove from assignees"), numberItems),
			mcp.WithArray("tags_add", mcp.Description("Tag names to add"), mcp.WithStringItems()),
			mcp.WithArray("tags_rem", mcp.Description("Tag names to remove"), mcp.WithStringItems()),
		),
		updateTaskHandler(svc),
	)

	srv.AddTool(
		mcp.NewTool(
			"delete_task",
			mcp.WithDescription("Permanently delete a task. This cannot be undone."),
			mcp.WithString("task_id", mcp.Required(), mcp.Description("Task id")),
		),
		deleteTaskHandler(svc),
	)

	listOpts := append([]mcp.ToolOption{
		mcp.WithDescription("List one page of tasks in a list. Defaults: archived=false, page=0, include_closed=false. Pages are not looped automatically; pass page to fetch more."),
		mcp.WithString("list_id", mcp.Required(), mcp.Description("List id")),
	}, taskFilterOptions()...)
	srv.AddTool(mcp.NewTool("list_tasks", listOpts...), listTasksHandler(svc))

	searchOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Search one page of tasks across a team, optionally narrowed to a space, folder, or list. Pick a scope and pass the matching id: scope=space needs space_id, scope=folder needs folder_id, scope=list needs list_id; scope=workspace searches the whole team. Defaults: archived=false, page=0, include_closed=false."),
		mcp.WithString("team_id", mcp.Required(), mcp.Description("Team (workspace) id")),
		mcp.WithString("scope", mcp.Required(), mcp.Description("Search scope"), mcp.Enum("workspace", "space", "folder", "list")),
		mcp.WithString("space_id", mcp.Description("Space id, required when scope is space")),
		mcp.WithString("folder_id", mcp.Description("Folder id, required when scope is folder")),
		mcp.WithString("list_id", mcp.Description("List id, required when scope is list")),
	}, taskFilterOptions()...)
	srv.AddTool(mcp.NewTool("search_tasks", searchOpts...), searchTasksHandler(svc))
}

// taskFilterOptions is the shared filter schema for list_tasks and
// search_tasks.
func taskFilterOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithBoolean("archived", mcp.Description("Include archived tasks (default false)")),
		mcp.WithNumber("page", mcp.Description("Page to fetch, starting at 0 (default 0)")),
		mcp.WithString("order_by", mcp.Description("Sort field: id, created, updated, or due_date")),
		mcp.WithBoolean("reverse", mcp.Description("Reverse the sort order")),
		mcp.WithBoolean("subtasks", mcp.Description("Include subtasks")),
		mcp.WithArray("statuses", mcp.Description("Only tasks in these statuses"), mcp.WithStringItems()),
		mcp.WithBoolean("include_closed", mcp.Description("Include closed tasks (default false)")),
		mcp.WithArray("assignees", mcp.Description("Only tasks assigned to these user ids"), mcp.WithStringItems()),
		mcp.WithNumber("due_date_gt", mcp.Description("Due after, epoch milliseconds")),
		mcp.WithNumber("due_date_lt", mcp.Description("Due before, epoch milliseconds")),
		mcp.WithNumber("date_created_gt", mcp.Description("Created after, epoch milliseconds")),
		mcp.WithNumber("date_created_lt", mcp.Description("Created before, epoch milliseconds")),
		mcp.WithNumber("date_updated_gt", mcp.Description("Updated after, epoch milliseconds")),
		mcp.WithNumber("date_updated_lt", mcp.Description("Updated before, epoch milliseconds")),
	}
}

// taskFilterArgs is the shared filter argument bag.
type taskFilterArgs struct {
	Archived      *bool    `json:"archived"`
	Page          *int     `json:"page"`
	OrderBy       *string  `json:"order_by"`
	Reverse       *bool    `json:"reverse"`
	Subtasks      *bool    `json:"subtasks"`
	Statuses      []string `json:"statuses"`
	IncludeClosed *bool    `json:"include_closed"`
	Assignees     []string `json:"assignees"`
	DueDateGt     *int64   `json:"due_date_gt"`
	DueDateLt     *int64   `json:"due_date_lt"`
	DateCreatedGt *int64   `json:"date_created_gt"`
	DateCreatedLt *int64   `json:"date_created_lt"`
	DateUpdatedGt *int64   `json:"date_updated_gt"`
	DateUpdatedLt *int64   `json:"date_updated_lt"`
}

func (a taskFilterArgs) filter() service.TaskFilter {
	return service.TaskFilter{
		Archived:      a.Archived,
		Page:          a.Page,
		OrderBy:       a.OrderBy,
		Reverse:       a.Reverse,
		Subtasks:      a.Subtasks,
		Statuses:      a.Statuses,
		IncludeClosed: a.IncludeClosed,
		Assignees:     a.Assignees,
		DueDateGt:     a.DueDateGt,
		DueDateLt:     a.DueDateLt,
		DateCreatedGt: a.DateCreatedGt,
		DateCreatedLt: a.DateCreatedLt,
		DateUpdatedGt: a.DateUpdatedGt,
		DateUpdatedLt: a.DateUpdatedLt,
	}
}

func createTaskHandler(svc service.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ListID              string   `json:"list_id"`
			Name                string   `json:"name"`
			Description         *string  `json:"description"`
			MarkdownDescription *string  `json:"markdown_description"`
			Status              *string  `json:"status"`
			Priority            *int     `json:"priority"`
			Assignees           []int    `json:"assignees"`
			Tags                []string `json:"tags"`
			DueDate             *int64   `json:"due_date"`
			DueDateTime         *bool    `json:"due_date_time"`
			StartDate           *int64   `json:"start_date"`
			StartDateTime       *bool    `json:"start_date_time"`
			Parent              *string  `json:"parent"`
			NotifyAll           *bool    `json:"notify_all"`
		}
		if err := req.BindArguments(&args); err != nil {
			return invalidArguments(err), nil
		}
		if strings.TrimSpace(args.ListID) == "" {
			return missingArgument("list_id"), nil
		}
		if strings.TrimSpace(args.Name) == "" {
			return missingArgument("name"), nil
		}

		task, err := svc.CreateTask(ctx, args.ListID, service.CreateTaskRequest{
			Name:                args.Name,
			Description:         args.Description,
			MarkdownDescription: args.MarkdownDescription,
			Status:              args.Status,
			Priority:            args.Priority,
			Assignees:           args.Assignees,
			Tags:                args.Tags,
			DueDate:             args.DueDate,
			DueDateTime:         args.DueDateTime,
			StartDate:           args.StartDate,
			StartDateTime:       args.StartDateTime,
			Parent:              args.Parent,
			NotifyAll:           args.NotifyAll,
		})
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult("create_task", task)
	}
}

func getTaskHandler(svc service.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskID, err := req.RequireString("task_id")
		if err != nil {
			return invalidArguments(err), nil
		}
		task, err := svc.GetTask(ctx, taskID)
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult("get_task", task)
	}
}

func updateTaskHandler(svc service.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			TaskID              string   `json:"task_id"`
			Name                *string  `json:"name"`
			Description         *string  `json:"description"`
			MarkdownDescription *string  `json:"markdown_description"`
			Status              *string  `json:"status"`
			Priority            *int     `json:"priority"`
			DueDate             *int64   `json:"due_date"`
			DueDateTime         *bool    `json:"due_date_time"`
			StartDate           *int64   `json:"start_date"`
			StartDateTime       *bool    `json:"start_date_time"`
			Parent              *string  `json:"parent"`
			AssigneesAdd        []int    `json:"assignees_add"`
			AssigneesRem        []int    `json:"assignees_rem"`
			TagsAdd             []string `json:"tags_add"`
			TagsRem             []string `json:"tags_rem"`
		}
		if err := req.BindArguments(&args); err != nil {
			return invalidArguments(err), nil
		}
		if strings.TrimSpace(args.TaskID) == "" {
			return missingArgument("task_id"), nil
		}

		update := service.UpdateTaskRequest{
			Name:                args.Name,
			Description:         args.Description,
			MarkdownDescription: args.MarkdownDescription,
			Status:              args.Status,
			Priority:            args.Priority,
			DueDate:             args.DueDate,
			DueDateTime:         args.DueDateTime,
			StartDate:           args.StartDate,
			StartDateTime:       args.StartDateTime,
			Parent:              args.Parent,
		}
		// The add/rem pairs collapse into one patch object, present only
		// when at least one side was passed.
		if len(args.AssigneesAdd) > 0 || len(args.AssigneesRem) > 0 {
			update.Assignees = &service.MemberPatch{Add: args.AssigneesAdd, Rem: args.AssigneesRem}
		}
		if len(args.TagsAdd) > 0 || len(args.TagsRem) > 0 {
			update.Tags = &service.TagPatch{Add: args.TagsAdd, Rem: args.TagsRem}
		}

		task, err := svc.UpdateTask(ctx, args.TaskID, update)
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult("update_task", task)
	}
}

func deleteTaskHandler(svc service.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskID, err := req.RequireString("task_id")
		if err != nil {
			return invalidArguments(err), nil
		}
		if err := svc.DeleteTask(ctx, taskID); err != nil {
			return errorResult(err), nil
		}
		return jsonResult("delete_task", map[string]any{"deleted": true, "task_id": taskID})
	}
}

func listTasksHandler(svc service.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ListID string `json:"list_id"`
			taskFilterArgs
		}
		if err := req.BindArguments(&args); err != nil {
			return invalidArguments(err), nil
		}
		if strings.TrimSpace(args.ListID) == "" {
			return missingArgument("list_id"), nil
		}
		page, err := svc.ListTasks(ctx, args.ListID, args.filter())
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult("list_tasks", page)
	}
}

func searchTasksHandler(svc service.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			TeamID   string `json:"team_id"`
			Scope    string `json:"scope"`
			SpaceID  string `json:"space_id"`
			FolderID string `json:"folder_id"`
			ListID   string `json:"list_id"`
			taskFilterArgs
		}
		if err := req.BindArguments(&args); err != nil {
			return invalidArguments(err), nil
		}
		if strings.TrimSpace(args.TeamID) == "" {
			return missingArgument("team_id"), nil
		}

		// The scope decides which identifier is mandatory. Validation
		// happens here, before any network call.
		filter := service.SearchFilter{TaskFilter: args.filter()}
		switch args.Scope {
		case "workspace":
			// team_id alone narrows the search.
		case "space":
			if strings.TrimSpace(args.SpaceID) == "" {
				return errorResult(fmt.Errorf(`scope "space" requires space_id`)), nil
			}
			filter.SpaceIDs = []string{args.SpaceID}
		case "folder":
			if strings.TrimSpace(args.FolderID) == "" {
				return errorResult(fmt.Errorf(`scope "folder" requires folder_id`)), nil
			}
			filter.FolderIDs = []string{args.FolderID}
		case "list":
			if strings.TrimSpace(args.ListID) == "" {
				return errorResult(fmt.Errorf(`scope "list" requires list_id`)), nil
			}
			filter.ListIDs = []string{args.ListID}
		default:
			return errorResult(fmt.Errorf("unknown scope %q: must be workspace, space, folder, or list", args.Scope)), nil
		}

		page, err := svc.SearchTasks(ctx, args.TeamID, filter)
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult("search_tasks", page)
	}
}
