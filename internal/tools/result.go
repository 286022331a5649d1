// Package tools defines the MCP tool catalog and its handlers.
//
// Handlers validate and reshape arguments, call the service, and render
// results. Every failure becomes an error-bearing tool result, never a
// protocol fault, so the serve loop survives individual tool failures.
package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult renders v as a JSON tool result. An encoding failure is a
// programming error and surfaces as a handler error.
func jsonResult(name string, v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s result: %w", name, err)
	}
	return result, nil
}

// errorResult renders err as an IsError tool result.
func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}

// invalidArguments renders an argument-binding failure.
func invalidArguments(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError("invalid arguments: " + err.Error())
}

// missingArgument renders a required-argument failure.
func missingArgument(name string) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("required argument %q not found", name))
}
