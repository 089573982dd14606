package tools

import (
	"math"

	"github.com/Paladiamors/joplin-api/pkg/joplin"
	"github.com/mark3labs/mcp-go/mcp"
)

// PaginationArgs reads the optional page and limit arguments shared by
// every listing tool. Missing values fall back to the upstream
// defaults; non-integer and out-of-range values are rejected here,
// before any request leaves the gateway.
func PaginationArgs(req mcp.CallToolRequest) (page, limit int, errResult *mcp.CallToolResult) {
	args := req.GetArguments()

	page, errResult = intArg(args, "page", 1)
	if errResult != nil {
		return 0, 0, errResult
	}

	limit, errResult = intArg(args, "limit", joplin.DefaultPageSize)
	if errResult != nil {
		return 0, 0, errResult
	}

	if page < 1 {
		return 0, 0, ArgumentError("page must be 1 or greater, got %d", page)
	}
	if limit < 1 || limit > joplin.MaxPageSize {
		return 0, 0, ArgumentError("limit must be between 1 and %d, got %d", joplin.MaxPageSize, limit)
	}

	return page, limit, nil
}

// intArg reads an optional integer argument from the raw argument map.
// JSON numbers arrive as float64, so integral floats are accepted;
// anything else is an argument error, never a silent coercion.
func intArg(args map[string]interface{}, name string, defaultValue int) (int, *mcp.CallToolResult) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return defaultValue, nil
	}

	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, ArgumentError("%s must be a whole number, got %v", name, v)
		}
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, ArgumentError("%s must be a number, got %T", name, raw)
	}
}
