package clickup

import (
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/teren-papercutlabs/clickup-mcp/internal/service"
)

func TestTaskFilterDefaults(t *testing.T) {
	v := taskFilterValues(service.TaskFilter{})

	want := url.Values{
		"archived":       {"false"},
		"page":           {"0"},
		"include_closed": {"false"},
	}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("defaults mismatch\nwant %v\ngot  %v", want, v)
	}
}

func TestTaskFilterOverridesDefaults(t *testing.T) {
	archived := true
	page := 3
	includeClosed := true
	v := taskFilterValues(service.TaskFilter{
		Archived:      &archived,
		Page:          &page,
		IncludeClosed: &includeClosed,
	})

	if got := v.Get("archived"); got != "true" {
		t.Errorf("archived = %q, want true", got)
	}
	if got := v.Get("page"); got != "3" {
		t.Errorf("page = %q, want 3", got)
	}
	if got := v.Get("include_closed"); got != "true" {
		t.Errorf("include_closed = %q, want true", got)
	}
}

func TestArrayParamsRepeatKey(t *testing.T) {
	v := taskFilterValues(service.TaskFilter{
		Assignees: []string{"123", "456"},
		Statuses:  []string{"in progress", "review"},
	})

	if got := v["assignees"]; !reflect.DeepEqual(got, []string{"123", "456"}) {
		t.Errorf("assignees = %v, want [123 456]", got)
	}
	if got := v["statuses"]; !reflect.DeepEqual(got, []string{"in progress", "review"}) {
		t.Errorf("statuses = %v, want [in progress review]", got)
	}

	encoded := v.Encode()
	if !strings.Contains(encoded, "assignees=123&assignees=456") {
		t.Errorf("encoded query %q missing repeated assignees pairs", encoded)
	}
	if strings.Contains(encoded, "%5B") || strings.Contains(encoded, "[") {
		t.Errorf("encoded query %q contains bracket suffix", encoded)
	}
	if strings.Contains(encoded, "assignees=123%2C456") {
		t.Errorf("encoded query %q comma-joins array values", encoded)
	}
}

func TestUnsetScalarsOmitted(t *testing.T) {
	v := taskFilterValues(service.TaskFilter{})

	for _, key := range []string{"order_by", "reverse", "subtasks", "due_date_gt", "due_date_lt"} {
		if _, ok := v[key]; ok {
			t.Errorf("unset filter field %q present in query", key)
		}
	}
}

func TestSearchFilterScopeArrays(t *testing.T) {
	v := searchFilterValues(service.SearchFilter{
		ListIDs: []string{"901234567"},
	})

	if got := v["list_ids"]; !reflect.DeepEqual(got, []string{"901234567"}) {
		t.Errorf("list_ids = %v, want [901234567]", got)
	}
	if _, ok := v["space_ids"]; ok {
		t.Error("space_ids present without a space scope")
	}
	if _, ok := v["folder_ids"]; ok {
		t.Error("folder_ids present without a folder scope")
	}
}
