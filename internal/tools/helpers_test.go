package tools

import (
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// callRequest builds a tool invocation with the given argument bag.
func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
}

// resultText extracts the text of the first content block.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want mcp.TextContent", res.Content[0])
	}
	return text.Text
}

// decodeResult unmarshals a JSON tool result into out.
func decodeResult(t *testing.T, res *mcp.CallToolResult, out any) {
	t.Helper()
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
}
