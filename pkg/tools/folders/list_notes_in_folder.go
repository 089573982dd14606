package folders

import (
	"context"

	"github.com/Paladiamors/joplin-api/pkg/joplin"
	"github.com/Paladiamors/joplin-api/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListNotesInFolderTool lists the notes of a single notebook.
type ListNotesInFolderTool struct {
	client *joplin.Client
}

// NewListNotesInFolderTool creates a new ListNotesInFolderTool.
func NewListNotesInFolderTool(client *joplin.Client) *ListNotesInFolderTool {
	return &ListNotesInFolderTool{
		client: client,
	}
}

// Definition returns the MCP declaration for list_notes_in_folder.
func (t *ListNotesInFolderTool) Definition() mcp.Tool {
	return mcp.NewTool("list_notes_in_folder",
		mcp.WithDescription("List note summaries from one notebook. Use list_folders to discover notebook ids. Paginated: when has_more is true in the result, request the next page."),
		mcp.WithString("folder_id",
			mcp.Required(),
			mcp.Description("Id of the notebook to list."),
		),
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

// Handle fetches one page of the notebook's notes.
func (t *ListNotesInFolderTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folderID, err := req.RequireString("folder_id")
	if err != nil {
		return tools.ArgumentError("folder_id is required"), nil
	}
	if folderID == "" {
		return tools.ArgumentError("folder_id must not be empty"), nil
	}

	page, limit, errResult := tools.PaginationArgs(req)
	if errResult != nil {
		return errResult, nil
	}

	result, err := t.client.ListFolderNotes(ctx, folderID, page, limit)
	if err != nil {
		return tools.UpstreamError(err), nil
	}

	return tools.TextResult(result)
}

// ReadOnly returns true; listing notes changes nothing.
func (t *ListNotesInFolderTool) ReadOnly() bool {
	return true
}
