package folders

import (
	"context"

	"github.com/Paladiamors/joplin-api/pkg/joplin"
	"github.com/Paladiamors/joplin-api/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListFoldersTool lists notebooks.
type ListFoldersTool struct {
	client *joplin.Client
}

// NewListFoldersTool creates a new ListFoldersTool.
func NewListFoldersTool(client *joplin.Client) *ListFoldersTool {
	return &ListFoldersTool{
		client: client,
	}
}

// Definition returns the MCP declaration for list_folders.
func (t *ListFoldersTool) Definition() mcp.Tool {
	return mcp.NewTool("list_folders",
		mcp.WithDescription("List notebooks. Nesting is expressed through parent_id: top-level notebooks have an empty parent_id. Paginated: when has_more is true in the result, request the next page."),
		mcp.WithNumber("page",
			mcp.Description("Page number, starting at 1."),
			mcp.DefaultNumber(1),
			mcp.Min(1),
		),
		mcp.WithNumber("limit",
			mcp.Description("Notebooks per page, between 1 and 100."),
			mcp.DefaultNumber(10),
			mcp.Min(1),
			mcp.Max(100),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handle fetches one page of notebooks.
func (t *ListFoldersTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, limit, errResult := tools.PaginationArgs(req)
	if errResult != nil {
		return errResult, nil
	}

	result, err := t.client.ListFolders(ctx, page, limit)
	if err != nil {
		return tools.UpstreamError(err), nil
	}

	return tools.TextResult(result)
}

// ReadOnly returns true; listing notebooks changes nothing.
func (t *ListFoldersTool) ReadOnly() bool {
	return true
}
