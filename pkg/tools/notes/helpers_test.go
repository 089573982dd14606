package notes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Paladiamors/joplin-api/pkg/joplin"
	"github.com/Paladiamors/joplin-api/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
)

type upstreamCall struct {
	method string
	path   string
	query  url.Values
	body   []byte
}

// newFakeUpstream starts a stand-in Joplin that answers every request
// with the given status and body, and returns a client pointed at it
// plus the calls it received.
func newFakeUpstream(t *testing.T, status int, response string) (*joplin.Client, *[]upstreamCall) {
	t.Helper()

	calls := &[]upstreamCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*calls = append(*calls, upstreamCall{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			body:   body,
		})
		w.WriteHeader(status)
		fmt.Fprint(w, response)
	}))
	t.Cleanup(srv.Close)

	client, err := joplin.NewClient("test-token", joplin.WithBaseURL(srv.URL))
	require.NoError(t, err)

	return client, calls
}

// unreachableClient returns a client pointed at an address nothing
// listens on.
func unreachableClient(t *testing.T) *joplin.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := joplin.NewClient("test-token", joplin.WithBaseURL(srv.URL))
	require.NoError(t, err)
	return client
}

func callTool(t *testing.T, tool tools.Tool, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Name = tool.Definition().Name
	req.Params.Arguments = args

	result, err := tool.Handle(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}
