// Package tools defines the gateway's tool abstraction: each Joplin
// operation the server exposes is a Tool with an MCP declaration and a
// handler, collected in a Registry and filtered by a Policy before
// being installed on the server.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool represents one operation the gateway exposes to MCP clients.
type Tool interface {
	// Definition returns the MCP declaration for this tool: name,
	// description, input schema, and behaviour annotations.
	Definition() mcp.Tool

	// Handle executes the tool against the upstream Joplin API.
	// Argument problems and upstream failures come back inside the
	// result with IsError set; a non-nil Go error is reserved for
	// protocol-level failures.
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

	// ReadOnly reports whether the tool only reads from Joplin.
	// Tools that create, change, or delete data return false and are
	// withheld when the gateway runs in read-only mode.
	ReadOnly() bool
}
