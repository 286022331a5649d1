// Package service defines the backend-agnostic interface for ClickUp operations.
package service

import "context"

// Service defines the interface for ClickUp backend operations.
// All ClickUp API calls go through this interface.
// Tool handlers never import the HTTP backend directly.
type Service interface {
	// CreateTask creates a task in the given list. Unset request fields
	// are omitted from the call so the backend applies its defaults.
	CreateTask(ctx context.Context, listID string, req CreateTaskRequest) (Task, error)

	// GetTask fetches a single task by id.
	GetTask(ctx context.Context, taskID string) (Task, error)

	// UpdateTask applies a partial update. Fields absent from req are
	// not sent and remain untouched on the backend.
	UpdateTask(ctx context.Context, taskID string, req UpdateTaskRequest) (Task, error)

	// DeleteTask permanently deletes a task.
	DeleteTask(ctx context.Context, taskID string) error

	// ListTasks returns one page of tasks from a list.
	// Defaults when unset: archived=false, page=0, include_closed=false.
	ListTasks(ctx context.Context, listID string, filter TaskFilter) (TaskPage, error)

	// SearchTasks returns one page of tasks across a team, optionally
	// narrowed by the filter's space/folder/list id slices.
	SearchTasks(ctx context.Context, teamID string, filter SearchFilter) (TaskPage, error)

	// CreateComment adds a comment to a task.
	CreateComment(ctx context.Context, taskID string, req CreateCommentRequest) (Comment, error)

	// GetComments returns all comments on a task.
	GetComments(ctx context.Context, taskID string) ([]Comment, error)

	// AddDependency links a task to another task in the direction the
	// link carries.
	AddDependency(ctx context.Context, taskID string, link DependencyLink) error

	// DeleteDependency removes a dependency link.
	DeleteDependency(ctx context.Context, taskID string, link DependencyLink) error

	// WorkspaceStructure assembles the Team → Space → {Folder → List,
	// List} tree. Spaces whose folder fetch fails contribute an empty
	// folder slice; any other failure aborts the assembly.
	WorkspaceStructure(ctx context.Context) (Workspace, error)
}
