package notes

import (
	"context"
	"time"

	"github.com/Paladiamors/joplin-api/pkg/joplin"
	"github.com/Paladiamors/joplin-api/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// UpdateNoteTool applies partial updates to existing notes.
type UpdateNoteTool struct {
	client *joplin.Client
}

// NewUpdateNoteTool creates a new UpdateNoteTool.
func NewUpdateNoteTool(client *joplin.Client) *UpdateNoteTool {
	return &UpdateNoteTool{
		client: client,
	}
}

// Definition returns the MCP declaration for update_note.
func (t *UpdateNoteTool) Definition() mcp.Tool {
	return mcp.NewTool("update_note",
		mcp.WithDescription("Update fields of an existing note. Only the provided fields change; at least one of title, body, is_todo, or todo_completed is required."),
		mcp.WithString("note_id",
			mcp.Required(),
			mcp.Description("Id of the note to update."),
		),
		mcp.WithString("title",
			mcp.Description("New note title."),
		),
		mcp.WithString("body",
			mcp.Description("New note body in Markdown, replacing the old body."),
		),
		mcp.WithBoolean("is_todo",
			mcp.Description("Turn the note into a todo (true) or back into a plain note (false)."),
		),
		mcp.WithBoolean("todo_completed",
			mcp.Description("Mark the todo completed now (true) or not completed (false)."),
		),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// Handle builds a patch from the provided arguments and applies it.
func (t *UpdateNoteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	noteID, err := req.RequireString("note_id")
	if err != nil {
		return tools.ArgumentError("note_id is required"), nil
	}
	if noteID == "" {
		return tools.ArgumentError("note_id must not be empty"), nil
	}

	// Absent and empty are different things here: an empty title is a
	// legitimate update, so the patch is built from argument presence.
	args := req.GetArguments()
	var patch joplin.NotePatch

	if raw, ok := args["title"]; ok {
		title, ok := raw.(string)
		if !ok {
			return tools.ArgumentError("title must be a string"), nil
		}
		patch.Title = &title
	}

	if raw, ok := args["body"]; ok {
		body, ok := raw.(string)
		if !ok {
			return tools.ArgumentError("body must be a string"), nil
		}
		patch.Body = &body
	}

	if raw, ok := args["is_todo"]; ok {
		isTodo, ok := raw.(bool)
		if !ok {
			return tools.ArgumentError("is_todo must be a boolean"), nil
		}
		encoded := 0
		if isTodo {
			encoded = 1
		}
		patch.IsTodo = &encoded
	}

	if raw, ok := args["todo_completed"]; ok {
		completed, ok := raw.(bool)
		if !ok {
			return tools.ArgumentError("todo_completed must be a boolean"), nil
		}
		// Joplin stores completion as a timestamp, so true means "now".
		var millis int64
		if completed {
			millis = time.Now().UnixMilli()
		}
		patch.TodoCompleted = &millis
	}

	if patch.Empty() {
		return tools.ArgumentError("at least one of title, body, is_todo, or todo_completed must be provided"), nil
	}

	note, err := t.client.UpdateNote(ctx, noteID, patch)
	if err != nil {
		return tools.UpstreamError(err), nil
	}

	return tools.TextResult(note)
}

// ReadOnly returns false; this tool writes to Joplin.
func (t *UpdateNoteTool) ReadOnly() bool {
	return false
}
