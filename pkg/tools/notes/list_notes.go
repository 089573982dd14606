package notes

import (
	"context"

	"github.com/Paladiamors/joplin-api/pkg/joplin"
	"github.com/Paladiamors/joplin-api/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListNotesTool lists note summaries across all notebooks.
type ListNotesTool struct {
	client *joplin.Client
}

// NewListNotesTool creates a new ListNotesTool.
func NewListNotesTool(client *joplin.Client) *ListNotesTool {
	return &ListNotesTool{
		client: client,
	}
}

// Definition returns the MCP declaration for list_notes.
func (t *ListNotesTool) Definition() mcp.Tool {
	return mcp.NewTool("list_notes",
		mcp.WithDescription("List notes across all notebooks, most recently updated first. Returns note summaries without bodies; use get_note to read a full note. Paginated: when has_more is true in the result, request the next page."),
		mcp.WithNumber("page",
			mcp.Description("Page number, starting at 1."),
			mcp.DefaultNumber(1),
			mcp.Min(1),
		),
		mcp.WithNumber("limit",
			mcp.Description("Notes per page, between 1 and 100."),
			mcp.DefaultNumber(10),
			mcp.Min(1),
			mcp.Max(100),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handle fetches one page of note summaries.
func (t *ListNotesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, limit, errResult := tools.PaginationArgs(req)
	if errResult != nil {
		return errResult, nil
	}

	result, err := t.client.ListNotes(ctx, page, limit)
	if err != nil {
		return tools.UpstreamError(err), nil
	}

	return tools.TextResult(result)
}

// ReadOnly returns true; listing notes changes nothing.
func (t *ListNotesTool) ReadOnly() bool {
	return true
}
