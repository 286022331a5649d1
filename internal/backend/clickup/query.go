package clickup

import (
	"net/url"
	"strconv"

	"github.com/teren-papercutlabs/clickup-mcp/internal/service"
)

// Query building. Array-valued parameters serialize as one key=element
// pair per element in order, with no bracket suffix. Unset scalars are
// omitted entirely.

func addString(v url.Values, key string, p *string) {
	if p != nil {
		v.Add(key, *p)
	}
}

func addBool(v url.Values, key string, p *bool) {
	if p != nil {
		v.Add(key, strconv.FormatBool(*p))
	}
}

func addInt(v url.Values, key string, p *int) {
	if p != nil {
		v.Add(key, strconv.Itoa(*p))
	}
}

func addInt64(v url.Values, key string, p *int64) {
	if p != nil {
		v.Add(key, strconv.FormatInt(*p, 10))
	}
}

func addStrings(v url.Values, key string, vals []string) {
	for _, s := range vals {
		v.Add(key, s)
	}
}

// taskFilterValues serializes a TaskFilter, applying the adapter
// defaults archived=false, page=0, include_closed=false when unset.
func taskFilterValues(f service.TaskFilter) url.Values {
	v := url.Values{}

	if f.Archived != nil {
		addBool(v, "archived", f.Archived)
	} else {
		v.Add("archived", "false")
	}
	if f.Page != nil {
		addInt(v, "page", f.Page)
	} else {
		v.Add("page", "0")
	}
	if f.IncludeClosed != nil {
		addBool(v, "include_closed", f.IncludeClosed)
	} else {
		v.Add("include_closed", "false")
	}

	addString(v, "order_by", f.OrderBy)
	addBool(v, "reverse", f.Reverse)
	addBool(v, "subtasks", f.Subtasks)
	addStrings(v, "statuses", f.Statuses)
	addStrings(v, "assignees", f.Assignees)
	addInt64(v, "due_date_gt", f.DueDateGt)
	addInt64(v, "due_date_lt", f.DueDateLt)
	addInt64(v, "date_created_gt", f.DateCreatedGt)
	addInt64(v, "date_created_lt", f.DateCreatedLt)
	addInt64(v, "date_updated_gt", f.DateUpdatedGt)
	addInt64(v, "date_updated_lt", f.DateUpdatedLt)

	return v
}

// searchFilterValues serializes a SearchFilter: the base task filter
// plus the scope-narrowing id arrays.
func searchFilterValues(f service.SearchFilter) url.Values {
	v := taskFilterValues(f.TaskFilter)
	addStrings(v, "space_ids", f.SpaceIDs)
	addStrings(v, "folder_ids", f.FolderIDs)
	addStrings(v, "list_ids", f.ListIDs)
	return v
}
