package clickup

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/teren-papercutlabs/clickup-mcp/internal/config"
	"github.com/teren-papercutlabs/clickup-mcp/internal/service"
)

// capture records the last request the test server received.
type capture struct {
	method string
	path   string
	query  map[string][]string
	header http.Header
	body   []byte
}

// newTestClient starts a test server that replies with respBody and
// returns a client pointed at it plus the capture of the last request.
func newTestClient(t *testing.T, status int, respBody string) (*Client, *capture) {
	t.Helper()
	rec := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.header = r.Header.Clone()
		rec.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return NewWithHTTPClient(srv.URL, "pk_12345_TESTTOKEN", srv.Client()), rec
}

func TestRequestHeaders(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"id":"abc","name":"t"}`)

	if _, err := client.GetTask(context.Background(), "abc"); err != nil {
		t.Fatalf("GetTask: %v", err)
	}

	// The token travels verbatim, no Bearer prefix.
	if got := rec.header.Get("Authorization"); got != "pk_12345_TESTTOKEN" {
		t.Errorf("Authorization = %q, want raw token", got)
	}
	if got := rec.header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
	if rec.method != http.MethodGet || rec.path != "/task/abc" {
		t.Errorf("request = %s %s, want GET /task/abc", rec.method, rec.path)
	}
}

func TestAPIErrorCarriesStatusAndBody(t *testing.T) {
	client, _ := newTestClient(t, http.StatusNotFound, `{"err":"Task not found"}`)

	_, err := client.GetTask(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for 404")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %T is not *APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if string(apiErr.Body) != `{"err":"Task not found"}` {
		t.Errorf("Body = %q, want verbatim error body", apiErr.Body)
	}
	msg := err.Error()
	if !strings.Contains(msg, "404") {
		t.Errorf("message %q does not embed the status code", msg)
	}
	if !strings.Contains(msg, `{"err":"Task not found"}`) {
		t.Errorf("message %q does not embed the body verbatim", msg)
	}
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewWithHTTPClient(url, "pk_token", http.DefaultClient)
	_, err := client.GetTask(context.Background(), "abc")
	if err == nil {
		t.Fatal("expected transport error against a closed server")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure classified as *APIError: %v", err)
	}
}

func TestListTasksDefaults(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"tasks":[]}`)

	if _, err := client.ListTasks(context.Background(), "900100", service.TaskFilter{}); err != nil {
		t.Fatalf("ListTasks: %v", err)
	}

	if rec.path != "/list/900100/task" {
		t.Errorf("path = %q, want /list/900100/task", rec.path)
	}
	for key, want := range map[string]string{
		"archived":       "false",
		"page":           "0",
		"include_closed": "false",
	} {
		if got := rec.query[key]; len(got) != 1 || got[0] != want {
			t.Errorf("query[%s] = %v, want [%s]", key, got, want)
		}
	}
}

func TestSearchTasksListScope(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"tasks":[]}`)

	filter := service.SearchFilter{ListIDs: []string{"901234567"}}
	if _, err := client.SearchTasks(context.Background(), "9001", filter); err != nil {
		t.Fatalf("SearchTasks: %v", err)
	}

	if rec.path != "/team/9001/task" {
		t.Errorf("path = %q, want /team/9001/task", rec.path)
	}
	if got := rec.query["list_ids"]; len(got) != 1 || got[0] != "901234567" {
		t.Errorf("query[list_ids] = %v, want [901234567]", got)
	}
}

func TestUpdateTaskOmitsUnsetFields(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"id":"abc","name":"renamed"}`)

	name := "renamed"
	_, err := client.UpdateTask(context.Background(), "abc", service.UpdateTaskRequest{Name: &name})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	if rec.method != http.MethodPut {
		t.Errorf("method = %s, want PUT", rec.method)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.body, &body); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	if len(body) != 1 {
		t.Errorf("body has keys %v, want only name", keys(body))
	}
	if _, ok := body["name"]; !ok {
		t.Error("body missing name")
	}
	// Absent fields must be absent, not null.
	for _, key := range []string{"description", "status", "priority", "assignees", "tags", "due_date"} {
		if _, ok := body[key]; ok {
			t.Errorf("unset field %q serialized into body", key)
		}
	}
}

func TestUpdateTaskAssigneePatch(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"id":"abc","name":"t"}`)

	_, err := client.UpdateTask(context.Background(), "abc", service.UpdateTaskRequest{
		Assignees: &service.MemberPatch{Add: []int{123}, Rem: []int{456}},
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	var body struct {
		Assignees struct {
			Add []int `json:"add"`
			Rem []int `json:"rem"`
		} `json:"assignees"`
	}
	if err := json.Unmarshal(rec.body, &body); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	if len(body.Assignees.Add) != 1 || body.Assignees.Add[0] != 123 {
		t.Errorf("assignees.add = %v, want [123]", body.Assignees.Add)
	}
	if len(body.Assignees.Rem) != 1 || body.Assignees.Rem[0] != 456 {
		t.Errorf("assignees.rem = %v, want [456]", body.Assignees.Rem)
	}
}

func TestAddDependencyDirectionFields(t *testing.T) {
	tests := []struct {
		name    string
		link    service.DependencyLink
		want    map[string]string
		exclude string
	}{
		{
			name:    "waiting on",
			link:    service.WaitingOn("other1"),
			want:    map[string]string{"depends_on": "other1"},
			exclude: "dependency_of",
		},
		{
			name:    "blocking",
			link:    service.Blocking("other2"),
			want:    map[string]string{"dependency_of": "other2"},
			exclude: "depends_on",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, http.StatusOK, `{}`)

			if err := client.AddDependency(context.Background(), "abc", tt.link); err != nil {
				t.Fatalf("AddDependency: %v", err)
			}
			if rec.method != http.MethodPost || rec.path != "/task/abc/dependency" {
				t.Errorf("request = %s %s, want POST /task/abc/dependency", rec.method, rec.path)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.body, &body); err != nil {
				t.Fatalf("unmarshal request body: %v", err)
			}
			for key, want := range tt.want {
				if body[key] != want {
					t.Errorf("body[%s] = %q, want %q", key, body[key], want)
				}
			}
			if _, ok := body[tt.exclude]; ok {
				t.Errorf("body contains %q, directions are mutually exclusive", tt.exclude)
			}
		})
	}
}

func TestDeleteDependencyUsesQueryParams(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`)

	if err := client.DeleteDependency(context.Background(), "abc", service.WaitingOn("other1")); err != nil {
		t.Fatalf("DeleteDependency: %v", err)
	}

	if rec.method != http.MethodDelete || rec.path != "/task/abc/dependency" {
		t.Errorf("request = %s %s, want DELETE /task/abc/dependency", rec.method, rec.path)
	}
	if got := rec.query["depends_on"]; len(got) != 1 || got[0] != "other1" {
		t.Errorf("query[depends_on] = %v, want [other1]", got)
	}
	if len(rec.body) != 0 {
		t.Errorf("delete dependency sent a body: %s", rec.body)
	}
}

func TestAddDependencyRejectsInvalidLink(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`)

	err := client.AddDependency(context.Background(), "abc", service.DependencyLink{})
	if err == nil {
		t.Fatal("expected error for zero-value link")
	}
	if rec.method != "" {
		t.Errorf("invalid link reached the network: %s %s", rec.method, rec.path)
	}
}

func TestCreateTaskBodyPassthrough(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"id":"new1","name":"Write docs"}`)

	priority := 2
	task, err := client.CreateTask(context.Background(), "900100", service.CreateTaskRequest{
		Name:      "Write docs",
		Priority:  &priority,
		Assignees: []int{123, 456},
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.ID != "new1" {
		t.Errorf("task.ID = %q, want new1", task.ID)
	}
	if rec.method != http.MethodPost || rec.path != "/list/900100/task" {
		t.Errorf("request = %s %s, want POST /list/900100/task", rec.method, rec.path)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.body, &body); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	if len(body) != 3 {
		t.Errorf("body has keys %v, want name, priority, assignees", keys(body))
	}
}

func TestGetCommentsUnwrapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK,
		`{"comments":[{"id":"c1","comment_text":"hello","user":{"id":123}}]}`)

	comments, err := client.GetComments(context.Background(), "abc")
	if err != nil {
		t.Fatalf("GetComments: %v", err)
	}
	if len(comments) != 1 || comments[0].CommentText != "hello" {
		t.Errorf("comments = %+v, want one comment with text hello", comments)
	}
}

func TestNewRequiresToken(t *testing.T) {
	_, err := New(&config.Config{BaseURL: config.DefaultBaseURL}, nil)
	if err == nil {
		t.Fatal("expected error for empty token")
	}
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
