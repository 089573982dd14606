package notes

import (
	"context"

	"github.com/Paladiamors/joplin-api/pkg/joplin"
	"github.com/Paladiamors/joplin-api/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// DeleteNoteTool deletes notes.
type DeleteNoteTool struct {
	client *joplin.Client
}

// NewDeleteNoteTool creates a new DeleteNoteTool.
func NewDeleteNoteTool(client *joplin.Client) *DeleteNoteTool {
	return &DeleteNoteTool{
		client: client,
	}
}

// Definition returns the MCP declaration for delete_note.
func (t *DeleteNoteTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_note",
		mcp.WithDescription("Delete a note. By default the note moves to Joplin's trash; set permanent to destroy it outright."),
		mcp.WithString("note_id",
			mcp.Required(),
			mcp.Description("Id of the note to delete."),
		),
		mcp.WithBoolean("permanent",
			mcp.Description("Skip the trash and delete the note permanently."),
			mcp.DefaultBool(false),
		),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handle deletes the note and reports what happened, since the
// upstream returns an empty body on success.
func (t *DeleteNoteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	noteID, err := req.RequireString("note_id")
	if err != nil {
		return tools.ArgumentError("note_id is required"), nil
	}
	if noteID == "" {
		return tools.ArgumentError("note_id must not be empty"), nil
	}

	permanent := req.GetBool("permanent", false)

	if err := t.client.DeleteNote(ctx, noteID, permanent); err != nil {
		return tools.UpstreamError(err), nil
	}

	ack := struct {
		ID        string `json:"id"`
		Status    string `json:"status"`
		Permanent bool   `json:"permanent"`
	}{noteID, "deleted", permanent}

	return tools.TextResult(ack)
}

// ReadOnly returns false; this tool writes to Joplin.
func (t *DeleteNoteTool) ReadOnly() bool {
	return false
}
