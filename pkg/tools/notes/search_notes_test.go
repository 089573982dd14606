package notes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Paladiamors/joplin-api/pkg/joplin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchNotes(t *testing.T) {
	client, calls := newFakeUpstream(t, http.StatusOK, `{
		"items": [{"id": "m1", "title": "apple pie recipe"}],
		"has_more": false
	}`)
	tool := NewSearchNotesTool(client)

	result := callTool(t, tool, map[string]interface{}{"query": "apple pie"})
	require.False(t, result.IsError)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/search", call.path)
	assert.Equal(t, "apple pie", call.query.Get("query"))
	assert.Equal(t, "1", call.query.Get("page"))
	assert.Equal(t, "10", call.query.Get("limit"))

	var page joplin.NotePage
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "apple pie recipe", page.Items[0].Title)
}

func TestSearchNotesPassesPaginationThrough(t *testing.T) {
	client, calls := newFakeUpstream(t, http.StatusOK, `{"items": [], "has_more": false}`)
	tool := NewSearchNotesTool(client)

	result := callTool(t, tool, map[string]interface{}{
		"query": "tag:work",
		"page":  float64(2),
		"limit": float64(5),
	})
	require.False(t, result.IsError)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "2", call.query.Get("page"))
	assert.Equal(t, "5", call.query.Get("limit"))
}

func TestSearchNotesRequiresQuery(t *testing.T) {
	client, calls := newFakeUpstream(t, http.StatusOK, `{}`)
	tool := NewSearchNotesTool(client)

	result := callTool(t, tool, map[string]interface{}{})

	require.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "query is required")
	assert.Empty(t, *calls)
}

func TestSearchNotesRejectsEmptyQuery(t *testing.T) {
	client, calls := newFakeUpstream(t, http.StatusOK, `{}`)
	tool := NewSearchNotesTool(client)

	result := callTool(t, tool, map[string]interface{}{"query": ""})

	require.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "query must not be empty")
	assert.Empty(t, *calls)
}

func TestSearchNotesRejectsBadLimit(t *testing.T) {
	client, calls := newFakeUpstream(t, http.StatusOK, `{}`)
	tool := NewSearchNotesTool(client)

	result := callTool(t, tool, map[string]interface{}{
		"query": "anything",
		"limit": float64(101),
	})

	require.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "limit must be between 1 and 100")
	assert.Empty(t, *calls)
}

func TestSearchNotesDefinition(t *testing.T) {
	tool := NewSearchNotesTool(nil)
	def := tool.Definition()

	assert.Equal(t, "search_notes", def.Name)
	assert.Contains(t, def.InputSchema.Required, "query")
	require.NotNil(t, def.Annotations.ReadOnlyHint)
	assert.True(t, *def.Annotations.ReadOnlyHint)
	assert.True(t, tool.ReadOnly())
}
