package notes

import (
	"context"

	"github.com/Paladiamors/joplin-api/pkg/joplin"
	"github.com/Paladiamors/joplin-api/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// SearchNotesTool searches notes by query.
type SearchNotesTool struct {
	client *joplin.Client
}

// NewSearchNotesTool creates a new SearchNotesTool.
func NewSearchNotesTool(client *joplin.Client) *SearchNotesTool {
	return &SearchNotesTool{
		client: client,
	}
}

// Definition returns the MCP declaration for search_notes.
func (t *SearchNotesTool) Definition() mcp.Tool {
	return mcp.NewTool("search_notes",
		mcp.WithDescription("Search notes using Joplin's search syntax (plain words, \"quoted phrases\", title:..., tag:..., notebook:...). Returns note summaries without bodies."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query."),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number, starting at 1."),
			mcp.DefaultNumber(1),
			mcp.Min(1),
		),
		mcp.WithNumber("limit",
			mcp.Description("Results per page, between 1 and 100."),
			mcp.DefaultNumber(10),
			mcp.Min(1),
			mcp.Max(100),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handle runs the search.
func (t *SearchNotesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return tools.ArgumentError("query is required"), nil
	}
	if query == "" {
		return tools.ArgumentError("query must not be empty"), nil
	}

	page, limit, errResult := tools.PaginationArgs(req)
	if errResult != nil {
		return errResult, nil
	}

	result, err := t.client.SearchNotes(ctx, query, page, limit)
	if err != nil {
		return tools.UpstreamError(err), nil
	}

	return tools.TextResult(result)
}

// ReadOnly returns true; searching changes nothing.
func (t *SearchNotesTool) ReadOnly() bool {
	return true
}
