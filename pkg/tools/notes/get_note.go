package notes

import (
	"context"

	"github.com/Paladiamors/joplin-api/pkg/joplin"
	"github.com/Paladiamors/joplin-api/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetNoteTool fetches a single note including its body.
type GetNoteTool struct {
	client *joplin.Client
}

// NewGetNoteTool creates a new GetNoteTool.
func NewGetNoteTool(client *joplin.Client) *GetNoteTool {
	return &GetNoteTool{
		client: client,
	}
}

// Definition returns the MCP declaration for get_note.
func (t *GetNoteTool) Definition() mcp.Tool {
	return mcp.NewTool("get_note",
		mcp.WithDescription("Fetch a single note by id, including its full Markdown body."),
		mcp.WithString("note_id",
			mcp.Required(),
			mcp.Description("Id of the note to fetch."),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// Handle fetches the note.
func (t *GetNoteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	noteID, err := req.RequireString("note_id")
	if err != nil {
		return tools.ArgumentError("note_id is required"), nil
	}
	if noteID == "" {
		return tools.ArgumentError("note_id must not be empty"), nil
	}

	note, err := t.client.GetNote(ctx, noteID)
	if err != nil {
		return tools.UpstreamError(err), nil
	}

	return tools.TextResult(note)
}

// ReadOnly returns true; fetching a note changes nothing.
func (t *GetNoteTool) ReadOnly() bool {
	return true
}
