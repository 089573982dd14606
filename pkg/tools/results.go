package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// TextResult renders v as indented JSON inside a text content result.
// Every successful gateway tool call goes through here so clients see
// one consistent result shape.
func TextResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// ArgumentError reports a tool call whose arguments were rejected
// before any request left the gateway. The prefix distinguishes
// caller mistakes from upstream failures.
func ArgumentError(format string, v ...interface{}) *mcp.CallToolResult {
	return mcp.NewToolResultError("invalid arguments: " + fmt.Sprintf(format, v...))
}

// UpstreamError converts a client error into an error result. The
// client's typed errors already render with their kind up front
// (rejected, unreachable, or malformed response), so the text passes
// through unchanged.
func UpstreamError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}
