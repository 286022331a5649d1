// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/teren-papercutlabs/clickup-mcp/internal/service"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// DependencyCall records one add/delete dependency invocation.
type DependencyCall struct {
	TaskID string
	Link   service.DependencyLink
}

// FakeService is an in-memory implementation of service.Service for
// testing. Mutating calls are recorded so tests can assert on the exact
// arguments handlers produced.
type FakeService struct {
	mu       sync.Mutex
	tasks    map[string]service.Task
	comments map[string][]service.Comment
	nextID   int

	// Workspace is returned verbatim by WorkspaceStructure.
	Workspace service.Workspace

	// Recorded calls.
	LastCreateListID   string
	LastCreateRequest  service.CreateTaskRequest
	LastUpdateTaskID   string
	LastUpdateRequest  service.UpdateTaskRequest
	LastListListID     string
	LastListFilter     service.TaskFilter
	LastSearchTeamID   string
	LastSearchFilter   service.SearchFilter
	SearchCalls        int
	DependencyAdds     []DependencyCall
	DependencyDeletes  []DependencyCall
	LastCommentTaskID  string
	LastCommentRequest service.CreateCommentRequest

	// Error injection for testing.
	CreateTaskErr       error
	GetTaskErr          error
	UpdateTaskErr       error
	DeleteTaskErr       error
	ListTasksErr        error
	SearchTasksErr      error
	CreateCommentErr    error
	GetCommentsErr      error
	AddDependencyErr    error
	DeleteDependencyErr error
	WorkspaceErr        error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		tasks:    make(map[string]service.Task),
		comments: make(map[string][]service.Comment),
	}
}

// AddTask seeds a task.
func (f *FakeService) AddTask(task service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[task.ID] = task
}

// AddComment seeds a comment on a task.
func (f *FakeService) AddComment(taskID string, comment service.Comment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments[taskID] = append(f.comments[taskID], comment)
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, listID string, req service.CreateTaskRequest) (service.Task, error) {
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.LastCreateListID = listID
	f.LastCreateRequest = req

	f.nextID++
	task := service.Task{
		ID:   fmt.Sprintf("task-%d", f.nextID),
		Name: req.Name,
		List: &service.Ref{ID: listID},
	}
	f.tasks[task.ID] = task
	return task, nil
}

// GetTask implements service.Service.
func (f *FakeService) GetTask(ctx context.Context, taskID string) (service.Task, error) {
	if f.GetTaskErr != nil {
		return service.Task{}, f.GetTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	task, ok := f.tasks[taskID]
	if !ok {
		return service.Task{}, ErrNotFound
	}
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, taskID string, req service.UpdateTaskRequest) (service.Task, error) {
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.LastUpdateTaskID = taskID
	f.LastUpdateRequest = req

	task, ok := f.tasks[taskID]
	if !ok {
		return service.Task{}, ErrNotFound
	}
	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = service.Status{Status: *req.Status}
	}
	f.tasks[taskID] = task
	return task, nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, taskID string) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.tasks[taskID]; !ok {
		return ErrNotFound
	}
	delete(f.tasks, taskID)
	return nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, listID string, filter service.TaskFilter) (service.TaskPage, error) {
	if f.ListTasksErr != nil {
		return service.TaskPage{}, f.ListTasksErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.LastListListID = listID
	f.LastListFilter = filter

	page := service.TaskPage{Tasks: []service.Task{}, LastPage: true}
	for _, task := range f.tasks {
		if task.List != nil && task.List.ID == listID {
			page.Tasks = append(page.Tasks, task)
		}
	}
	return page, nil
}

// SearchTasks implements service.Service.
func (f *FakeService) SearchTasks(ctx context.Context, teamID string, filter service.SearchFilter) (service.TaskPage, error) {
	f.mu.Lock()
	f.SearchCalls++
	f.LastSearchTeamID = teamID
	f.LastSearchFilter = filter
	f.mu.Unlock()

	if f.SearchTasksErr != nil {
		return service.TaskPage{}, f.SearchTasksErr
	}
	return service.TaskPage{Tasks: []service.Task{}, LastPage: true}, nil
}

// CreateComment implements service.Service.
func (f *FakeService) CreateComment(ctx context.Context, taskID string, req service.CreateCommentRequest) (service.Comment, error) {
	if f.CreateCommentErr != nil {
		return service.Comment{}, f.CreateCommentErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.LastCommentTaskID = taskID
	f.LastCommentRequest = req

	f.nextID++
	comment := service.Comment{
		ID:          fmt.Sprintf("comment-%d", f.nextID),
		CommentText: req.CommentText,
	}
	f.comments[taskID] = append(f.comments[taskID], comment)
	return comment, nil
}

// GetComments implements service.Service.
func (f *FakeService) GetComments(ctx context.Context, taskID string) ([]service.Comment, error) {
	if f.GetCommentsErr != nil {
		return nil, f.GetCommentsErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]service.Comment, len(f.comments[taskID]))
	copy(result, f.comments[taskID])
	return result, nil
}

// AddDependency implements service.Service.
func (f *FakeService) AddDependency(ctx context.Context, taskID string, link service.DependencyLink) error {
	if f.AddDependencyErr != nil {
		return f.AddDependencyErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.DependencyAdds = append(f.DependencyAdds, DependencyCall{TaskID: taskID, Link: link})
	return nil
}

// DeleteDependency implements service.Service.
func (f *FakeService) DeleteDependency(ctx context.Context, taskID string, link service.DependencyLink) error {
	if f.DeleteDependencyErr != nil {
		return f.DeleteDependencyErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.DependencyDeletes = append(f.DependencyDeletes, DependencyCall{TaskID: taskID, Link: link})
	return nil
}

// WorkspaceStructure implements service.Service.
func (f *FakeService) WorkspaceStructure(ctx context.Context) (service.Workspace, error) {
	if f.WorkspaceErr != nil {
		return service.Workspace{}, f.WorkspaceErr
	}
	return f.Workspace, nil
}
