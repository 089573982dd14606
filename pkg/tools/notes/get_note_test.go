package notes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Paladiamors/joplin-api/pkg/joplin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNote(t *testing.T) {
	client, calls := newFakeUpstream(t, http.StatusOK, `{
		"id": "abc123",
		"parent_id": "f9",
		"title": "meeting notes",
		"body": "# Agenda\n\n- item one",
		"is_todo": 0,
		"todo_completed": 0,
		"created_time": 1700000000000,
		"updated_time": 1700000005000
	}`)
	tool := NewGetNoteTool(client)

	result := callTool(t, tool, map[string]interface{}{"note_id": "abc123"})
	require.False(t, result.IsError)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodGet, call.method)
	assert.Equal(t, "/notes/abc123", call.path)
	assert.Contains(t, call.query.Get("fields"), "body")

	var note joplin.Note
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &note))
	assert.Equal(t, "abc123", note.ID)
	assert.Equal(t, "meeting notes", note.Title)
	assert.Equal(t, "# Agenda\n\n- item one", note.Body)
}

func TestGetNoteRequiresID(t *testing.T) {
	client, calls := newFakeUpstream(t, http.StatusOK, `{}`)
	tool := NewGetNoteTool(client)

	result := callTool(t, tool, map[string]interface{}{})

	require.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "invalid arguments: note_id is required")
	assert.Empty(t, *calls)
}

func TestGetNoteRejectsEmptyID(t *testing.T) {
	client, calls := newFakeUpstream(t, http.StatusOK, `{}`)
	tool := NewGetNoteTool(client)

	result := callTool(t, tool, map[string]interface{}{"note_id": ""})

	require.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "note_id must not be empty")
	assert.Empty(t, *calls)
}

func TestGetNoteNotFound(t *testing.T) {
	client, _ := newFakeUpstream(t, http.StatusNotFound, `{"error": "Not Found"}`)
	tool := NewGetNoteTool(client)

	result := callTool(t, tool, map[string]interface{}{"note_id": "missing"})

	require.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "joplin api error (status 404)")
}

func TestGetNoteDefinition(t *testing.T) {
	tool := NewGetNoteTool(nil)
	def := tool.Definition()

	assert.Equal(t, "get_note", def.Name)
	assert.Contains(t, def.InputSchema.Required, "note_id")
	require.NotNil(t, def.Annotations.ReadOnlyHint)
	assert.True(t, *def.Annotations.ReadOnlyHint)
	assert.True(t, tool.ReadOnly())
}
