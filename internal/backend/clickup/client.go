// Package clickup implements the service.Service interface against the
// ClickUp REST API.
package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/teren-papercutlabs/clickup-mcp/internal/config"
	"github.com/teren-papercutlabs/clickup-mcp/internal/service"
)

// Client implements service.Service using the ClickUp API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a new ClickUp client from config.
// Fails fast if the API token is empty.
func New(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIToken == "" {
		return nil, fmt.Errorf("clickup: api token is empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.APIToken,
		httpClient: http.DefaultClient,
		logger:     logger,
	}, nil
}

// NewWithHTTPClient creates a client against a custom base URL and HTTP
// client (for testing).
func NewWithHTTPClient(baseURL, token string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: httpClient,
		logger:     slog.Default(),
	}
}

// do sends one request and decodes the JSON response into out (unless
// out is nil). A non-2xx status returns *APIError with the verbatim
// body; transport failures return the wrapped transport error. Single
// attempt, no retry: cancellation belongs to the caller's context.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	c.logger.Debug("clickup request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       data,
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s %s: unmarshal response: %w", method, path, err)
		}
	}
	return nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, listID string, req service.CreateTaskRequest) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, http.MethodPost, "/list/"+listID+"/task", nil, req, &task)
	if err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// GetTask implements service.Service.
func (c *Client) GetTask(ctx context.Context, taskID string) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, http.MethodGet, "/task/"+taskID, nil, nil, &task)
	if err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// UpdateTask implements service.Service.
func (c *Client) UpdateTask(ctx context.Context, taskID string, req service.UpdateTaskRequest) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, http.MethodPut, "/task/"+taskID, nil, req, &task)
	if err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.do(ctx, http.MethodDelete, "/task/"+taskID, nil, nil, nil)
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context, listID string, filter service.TaskFilter) (service.TaskPage, error) {
	var page service.TaskPage
	err := c.do(ctx, http.MethodGet, "/list/"+listID+"/task", taskFilterValues(filter), nil, &page)
	if err != nil {
		return service.TaskPage{}, err
	}
	return page, nil
}

// SearchTasks implements service.Service.
func (c *Client) SearchTasks(ctx context.Context, teamID string, filter service.SearchFilter) (service.TaskPage, error) {
	var page service.TaskPage
	err := c.do(ctx, http.MethodGet, "/team/"+teamID+"/task", searchFilterValues(filter), nil, &page)
	if err != nil {
		return service.TaskPage{}, err
	}
	return page, nil
}

// CreateComment implements service.Service.
func (c *Client) CreateComment(ctx context.Context, taskID string, req service.CreateCommentRequest) (service.Comment, error) {
	var comment service.Comment
	err := c.do(ctx, http.MethodPost, "/task/"+taskID+"/comment", nil, req, &comment)
	if err != nil {
		return service.Comment{}, err
	}
	return comment, nil
}

// GetComments implements service.Service.
func (c *Client) GetComments(ctx context.Context, taskID string) ([]service.Comment, error) {
	var resp struct {
		Comments []service.Comment `json:"comments"`
	}
	err := c.do(ctx, http.MethodGet, "/task/"+taskID+"/comment", nil, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

// dependencyBody is the request body for dependency creation. Exactly
// one field is set, chosen by the link's direction.
type dependencyBody struct {
	DependsOn    string `json:"depends_on,omitempty"`
	DependencyOf string `json:"dependency_of,omitempty"`
}

func dependencyFields(link service.DependencyLink) (dependencyBody, error) {
	if err := link.Validate(); err != nil {
		return dependencyBody{}, err
	}
	switch link.Direction {
	case service.DirectionWaitingOn:
		return dependencyBody{DependsOn: link.TaskID}, nil
	default:
		return dependencyBody{DependencyOf: link.TaskID}, nil
	}
}

// AddDependency implements service.Service.
func (c *Client) AddDependency(ctx context.Context, taskID string, link service.DependencyLink) error {
	body, err := dependencyFields(link)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/task/"+taskID+"/dependency", nil, body, nil)
}

// DeleteDependency implements service.Service.
// The direction travels as query parameters, not a body.
func (c *Client) DeleteDependency(ctx context.Context, taskID string, link service.DependencyLink) error {
	fields, err := dependencyFields(link)
	if err != nil {
		return err
	}
	query := url.Values{}
	if fields.DependsOn != "" {
		query.Add("depends_on", fields.DependsOn)
	}
	if fields.DependencyOf != "" {
		query.Add("dependency_of", fields.DependencyOf)
	}
	return c.do(ctx, http.MethodDelete, "/task/"+taskID+"/dependency", query, nil, nil)
}
