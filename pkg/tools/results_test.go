package tools

import (
	"errors"
	"testing"

	"github.com/Paladiamors/joplin-api/pkg/joplin"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestTextResult(t *testing.T) {
	result, err := TextResult(map[string]interface{}{
		"id":    "abc123",
		"title": "groceries",
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	assert.JSONEq(t, `{"id": "abc123", "title": "groceries"}`, resultText(t, result))
}

func TestTextResultIndents(t *testing.T) {
	result, err := TextResult(map[string]interface{}{"key": "value"})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"key\": \"value\"\n}", resultText(t, result))
}

func TestArgumentError(t *testing.T) {
	result := ArgumentError("limit must be between 1 and %d, got %d", 100, 500)

	require.True(t, result.IsError)
	assert.Equal(t, "invalid arguments: limit must be between 1 and 100, got 500", resultText(t, result))
}

func TestUpstreamErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "api rejection",
			err:  &joplin.APIError{StatusCode: 404, Message: "Not Found"},
			want: "joplin api error (status 404): Not Found",
		},
		{
			name: "unreachable",
			err:  &joplin.UnreachableError{Endpoint: "/notes", Err: errors.New("connection refused")},
			want: "joplin unreachable (/notes): connection refused",
		},
		{
			name: "shape mismatch",
			err:  &joplin.DecodeError{Endpoint: "/notes", Err: errors.New("invalid character 'h'")},
			want: "unexpected response from joplin (/notes): invalid character 'h'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := UpstreamError(tt.err)

			require.True(t, result.IsError)
			assert.Equal(t, tt.want, resultText(t, result))
		})
	}
}
