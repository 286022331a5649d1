package clickup

import "fmt"

// APIError is a non-2xx response from the ClickUp API. The raw response
// body is kept verbatim so backend diagnostics reach the caller intact.
type APIError struct {
	// StatusCode is the numeric HTTP status.
	StatusCode int

	// Status is the full status line, e.g. "404 Not Found".
	Status string

	// Body is the raw response body.
	Body []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("clickup: %s: %s", e.Status, e.Body)
}
