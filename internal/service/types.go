// Package service defines the backend-agnostic interface for ClickUp operations.
package service

import "encoding/json"

// User is a ClickUp user reference as it appears on tasks and comments.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Color    string `json:"color,omitempty"`
	Initials string `json:"initials,omitempty"`
}

// Status is a task status with its display metadata.
type Status struct {
	Status     string `json:"status"`
	Type       string `json:"type,omitempty"`
	Color      string `json:"color,omitempty"`
	Orderindex int    `json:"orderindex,omitempty"`
}

// Priority is a task priority. The backend encodes the ordinal (1=urgent
// through 4=low) as a string id.
type Priority struct {
	ID       string `json:"id"`
	Priority string `json:"priority,omitempty"`
	Color    string `json:"color,omitempty"`
}

// Tag is a task tag.
type Tag struct {
	Name  string `json:"name"`
	TagFg string `json:"tag_fg,omitempty"`
	TagBg string `json:"tag_bg,omitempty"`
}

// Ref is a named reference to a containing list, folder, or space.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// TaskDependency is one entry of a task's dependency list.
type TaskDependency struct {
	TaskID      string `json:"task_id"`
	DependsOn   string `json:"depends_on"`
	Type        int    `json:"type,omitempty"`
	DateCreated string `json:"date_created,omitempty"`
	Userid      string `json:"userid,omitempty"`
}

// LinkedTask is one entry of a task's linked-task list.
type LinkedTask struct {
	TaskID      string `json:"task_id"`
	LinkID      string `json:"link_id"`
	DateCreated string `json:"date_created,omitempty"`
	Userid      string `json:"userid,omitempty"`
}

// Task is the adapter's partial view of a ClickUp task. Timestamps are
// epoch milliseconds encoded as strings by the backend.
type Task struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	TextContent  string           `json:"text_content,omitempty"`
	Status       Status           `json:"status"`
	Priority     *Priority        `json:"priority,omitempty"`
	Assignees    []User           `json:"assignees,omitempty"`
	Tags         []Tag            `json:"tags,omitempty"`
	DueDate      string           `json:"due_date,omitempty"`
	StartDate    string           `json:"start_date,omitempty"`
	DateCreated  string           `json:"date_created,omitempty"`
	DateUpdated  string           `json:"date_updated,omitempty"`
	Parent       string           `json:"parent,omitempty"`
	Dependencies []TaskDependency `json:"dependencies,omitempty"`
	LinkedTasks  []LinkedTask     `json:"linked_tasks,omitempty"`
	TeamID       string           `json:"team_id,omitempty"`
	URL          string           `json:"url,omitempty"`
	List         *Ref             `json:"list,omitempty"`
	Folder       *Ref             `json:"folder,omitempty"`
	Space        *Ref             `json:"space,omitempty"`
}

// TaskPage is one page of task results. The adapter never loops pages;
// callers page manually via the page filter.
type TaskPage struct {
	Tasks    []Task `json:"tasks"`
	LastPage bool   `json:"last_page,omitempty"`
}

// Comment is the adapter's view of a task comment. The backend returns
// the body both as structured blocks and as flat text; the adapter keeps
// the flat text and passes the blocks through untouched.
type Comment struct {
	ID          string          `json:"id"`
	Comment     json.RawMessage `json:"comment,omitempty"`
	CommentText string          `json:"comment_text"`
	User        User            `json:"user"`
	Assignee    *User           `json:"assignee,omitempty"`
	Resolved    bool            `json:"resolved,omitempty"`
	Date        string          `json:"date,omitempty"`
}

// Team is a ClickUp team, the workspace root.
type Team struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Space is a ClickUp space within a team.
type Space struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Private bool   `json:"private,omitempty"`
}

// List is a ClickUp list, either inside a folder or directly in a space.
type List struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TaskCount int    `json:"task_count,omitempty"`
	Archived  bool   `json:"archived,omitempty"`
}

// Folder is a ClickUp folder. The backend embeds the folder's lists in
// the folder response.
type Folder struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Lists []List `json:"lists"`
}

// SpaceNode is a space with its folders and folderless lists.
type SpaceNode struct {
	Space   Space    `json:"space"`
	Folders []Folder `json:"folders"`
	Lists   []List   `json:"lists"`
}

// TeamNode is a team with its spaces.
type TeamNode struct {
	Team   Team        `json:"team"`
	Spaces []SpaceNode `json:"spaces"`
}

// Workspace is the assembled Team → Space → {Folder → List, List} tree.
// It is built on demand and never cached by the adapter.
type Workspace struct {
	Teams []TeamNode `json:"teams"`
}

// CreateTaskRequest is the payload for task creation. Pointer and slice
// fields left unset are omitted from the serialized body so the backend
// applies its own defaults.
type CreateTaskRequest struct {
	Name                string   `json:"name"`
	Description         *string  `json:"description,omitempty"`
	MarkdownDescription *string  `json:"markdown_description,omitempty"`
	Status              *string  `json:"status,omitempty"`
	Priority            *int     `json:"priority,omitempty"`
	Assignees           []int    `json:"assignees,omitempty"`
	Tags                []string `json:"tags,omitempty"`
	DueDate             *int64   `json:"due_date,omitempty"`
	DueDateTime         *bool    `json:"due_date_time,omitempty"`
	StartDate           *int64   `json:"start_date,omitempty"`
	StartDateTime       *bool    `json:"start_date_time,omitempty"`
	Parent              *string  `json:"parent,omitempty"`
	NotifyAll           *bool    `json:"notify_all,omitempty"`
}

// MemberPatch adds and removes user ids on a task without replacing the
// full assignee set.
type MemberPatch struct {
	Add []int `json:"add,omitempty"`
	Rem []int `json:"rem,omitempty"`
}

// TagPatch adds and removes tag names on a task.
type TagPatch struct {
	Add []string `json:"add,omitempty"`
	Rem []string `json:"rem,omitempty"`
}

// UpdateTaskRequest is a partial task update. A nil field is absent from
// the serialized body, never null, so the backend leaves it untouched.
type UpdateTaskRequest struct {
	Name                *string      `json:"name,omitempty"`
	Description         *string      `json:"description,omitempty"`
	MarkdownDescription *string      `json:"markdown_description,omitempty"`
	Status              *string      `json:"status,omitempty"`
	Priority            *int         `json:"priority,omitempty"`
	DueDate             *int64       `json:"due_date,omitempty"`
	DueDateTime         *bool        `json:"due_date_time,omitempty"`
	StartDate           *int64       `json:"start_date,omitempty"`
	StartDateTime       *bool        `json:"start_date_time,omitempty"`
	Parent              *string      `json:"parent,omitempty"`
	Assignees           *MemberPatch `json:"assignees,omitempty"`
	Tags                *TagPatch    `json:"tags,omitempty"`
}

// TaskFilter narrows list/search results. Unset fields fall back to the
// adapter defaults: archived=false, page=0, include_closed=false.
type TaskFilter struct {
	Archived      *bool
	Page          *int
	OrderBy       *string
	Reverse       *bool
	Subtasks      *bool
	Statuses      []string
	IncludeClosed *bool
	Assignees     []string
	DueDateGt     *int64
	DueDateLt     *int64
	DateCreatedGt *int64
	DateCreatedLt *int64
	DateUpdatedGt *int64
	DateUpdatedLt *int64
}

// SearchFilter is a TaskFilter narrowed to a slice of the workspace.
// The scope id slices are singletons in practice; the backend accepts
// repeated values.
type SearchFilter struct {
	TaskFilter
	SpaceIDs  []string
	FolderIDs []string
	ListIDs   []string
}

// CreateCommentRequest is the payload for comment creation.
type CreateCommentRequest struct {
	CommentText string `json:"comment_text"`
	Assignee    *int   `json:"assignee,omitempty"`
	NotifyAll   *bool  `json:"notify_all,omitempty"`
}
