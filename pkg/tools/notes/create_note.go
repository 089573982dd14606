package notes

import (
	"context"

	"github.com/Paladiamors/joplin-api/pkg/joplin"
	"github.com/Paladiamors/joplin-api/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
)

// CreateNoteTool creates notes.
type CreateNoteTool struct {
	client *joplin.Client
}

// NewCreateNoteTool creates a new CreateNoteTool.
func NewCreateNoteTool(client *joplin.Client) *CreateNoteTool {
	return &CreateNoteTool{
		client: client,
	}
}

// Definition returns the MCP declaration for create_note.
func (t *CreateNoteTool) Definition() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create a new note. Returns the note as stored, including its assigned id."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Note title."),
		),
		mcp.WithString("body",
			mcp.Description("Note body in Markdown. Defaults to empty."),
		),
		mcp.WithString("parent_id",
			mcp.Description("Id of the notebook to file the note in. Defaults to Joplin's default notebook."),
		),
		mcp.WithBoolean("is_todo",
			mcp.Description("Create the note as a todo."),
			mcp.DefaultBool(false),
		),
		mcp.WithDestructiveHintAnnotation(false),
	)
}

// Handle creates the note.
func (t *CreateNoteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return tools.ArgumentError("title is required"), nil
	}
	if title == "" {
		return tools.ArgumentError("title must not be empty"), nil
	}

	newNote := joplin.NewNote{
		Title:    title,
		Body:     req.GetString("body", ""),
		ParentID: req.GetString("parent_id", ""),
	}
	if req.GetBool("is_todo", false) {
		newNote.IsTodo = 1
	}

	note, err := t.client.CreateNote(ctx, newNote)
	if err != nil {
		return tools.UpstreamError(err), nil
	}

	return tools.TextResult(note)
}

// ReadOnly returns false; this tool writes to Joplin.
func (t *CreateNoteTool) ReadOnly() bool {
	return false
}
