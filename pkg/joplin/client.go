// Package joplin provides a typed client for the Joplin Data API, the
// local HTTP interface exposed by the Joplin desktop application's Web
// Clipper service.
//
// Example usage:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "os"
//
//	    "github.com/Paladiamors/joplin-api/pkg/joplin"
//	)
//
//	func main() {
//	    client, err := joplin.NewClient(os.Getenv("JOPLIN_TOKEN"))
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    page, err := client.ListNotes(context.Background(), 1, 10)
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    for _, note := range page.Items {
//	        fmt.Println(note.ID, note.Title)
//	    }
//	}
//
// Every method issues exactly one HTTP request. The client never
// retries, never caches, and keeps no state beyond its configuration,
// so errors always reflect a single upstream exchange.
package joplin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Paladiamors/joplin-api/pkg/logging"
)

const (
	// DefaultBaseURL is where the Joplin desktop app serves the Data
	// API when the Web Clipper service is enabled.
	DefaultBaseURL = "http://localhost:41184"

	// DefaultTimeout bounds each request to the upstream. The API is
	// local, so anything slower than this means the service is wedged.
	DefaultTimeout = 30 * time.Second

	// DefaultPageSize and MaxPageSize mirror the upstream's paging
	// limits. Joplin caps limit= at 100 and defaults it to 10.
	DefaultPageSize = 10
	MaxPageSize     = 100

	// pingBody is the body Joplin returns from GET /ping. Anything else
	// on that port is not a Joplin Data API.
	pingBody = "JoplinClipperServer"
)

// Client talks to a Joplin Data API instance. It is safe for
// concurrent use; all fields are set at construction and never mutated.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *logging.Logger
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a non-default Data API address,
// such as a Joplin instance on another port or host.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout bounds each request. It replaces the client's default
// timeout and is ignored when WithHTTPClient is also given.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient substitutes the underlying HTTP client entirely,
// including any timeout configured on it.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger attaches a logger for request-level debug lines. Requests
// are logged as method and path only; the token never appears.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the Data API. The token is the API
// authorisation token from Joplin's Web Clipper options screen and is
// required; there is no anonymous access to the API.
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("joplin API token is required")
	}

	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		token:      token,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GetBaseURL returns the Data API address the client targets.
func (c *Client) GetBaseURL() string {
	return c.baseURL
}

// Ping checks that something answering like a Joplin Data API is
// listening at the configured address. It is the only call that does
// not send the token.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newUnreachableError("/ping", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newUnreachableError("/ping", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	if got := strings.TrimSpace(string(body)); got != pingBody {
		return &DecodeError{Endpoint: "/ping", Err: fmt.Errorf("expected %q, got %q", pingBody, got)}
	}

	return nil
}

// ListNotes fetches one page of note summaries across all notebooks,
// ordered by the upstream's default (most recently updated first).
func (c *Client) ListNotes(ctx context.Context, page, limit int) (*NotePage, error) {
	params := pageParams(page, limit)
	params.Set("fields", NoteSummaryFields)

	var result NotePage
	if err := c.do(ctx, http.MethodGet, "/notes", params, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListFolderNotes fetches one page of note summaries from a single
// notebook.
func (c *Client) ListFolderNotes(ctx context.Context, folderID string, page, limit int) (*NotePage, error) {
	if folderID == "" {
		return nil, fmt.Errorf("folder id is required")
	}

	params := pageParams(page, limit)
	params.Set("fields", NoteSummaryFields)

	var result NotePage
	endpoint := "/folders/" + url.PathEscape(folderID) + "/notes"
	if err := c.do(ctx, http.MethodGet, endpoint, params, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchNotes fetches one page of note summaries matching a query in
// Joplin's search syntax.
func (c *Client) SearchNotes(ctx context.Context, query string, page, limit int) (*NotePage, error) {
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}

	params := pageParams(page, limit)
	params.Set("query", query)
	params.Set("fields", NoteSummaryFields)

	var result NotePage
	if err := c.do(ctx, http.MethodGet, "/search", params, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetNote fetches a single note including its body. A missing id comes
// back as an *APIError with status 404; use IsNotFound to detect it.
func (c *Client) GetNote(ctx context.Context, id string) (*Note, error) {
	if id == "" {
		return nil, fmt.Errorf("note id is required")
	}

	params := url.Values{}
	params.Set("fields", NoteFields)

	var note Note
	if err := c.do(ctx, http.MethodGet, "/notes/"+url.PathEscape(id), params, nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// CreateNote creates a note and returns it as the upstream stored it,
// including the assigned id.
func (c *Client) CreateNote(ctx context.Context, newNote NewNote) (*Note, error) {
	if newNote.Title == "" {
		return nil, fmt.Errorf("note title is required")
	}

	var note Note
	if err := c.do(ctx, http.MethodPost, "/notes", url.Values{}, newNote, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote applies a partial update to an existing note. Only the
// patch's non-nil fields reach the upstream; everything else keeps its
// stored value.
func (c *Client) UpdateNote(ctx context.Context, id string, patch NotePatch) (*Note, error) {
	if id == "" {
		return nil, fmt.Errorf("note id is required")
	}
	if patch.Empty() {
		return nil, fmt.Errorf("note patch is empty")
	}

	var note Note
	if err := c.do(ctx, http.MethodPut, "/notes/"+url.PathEscape(id), url.Values{}, patch, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteNote deletes a note. By default the note moves to Joplin's
// trash; permanent skips the trash and destroys it outright.
func (c *Client) DeleteNote(ctx context.Context, id string, permanent bool) error {
	if id == "" {
		return fmt.Errorf("note id is required")
	}

	params := url.Values{}
	if permanent {
		params.Set("permanent", "1")
	}

	return c.do(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), params, nil, nil)
}

// ListFolders fetches one page of notebooks.
func (c *Client) ListFolders(ctx context.Context, page, limit int) (*FolderPage, error) {
	params := pageParams(page, limit)
	params.Set("fields", FolderFields)

	var result FolderPage
	if err := c.do(ctx, http.MethodGet, "/folders", params, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// pageParams encodes pagination for the upstream. Values are passed
// through verbatim; range checks belong to the caller so that the
// upstream stays the single authority on paging behaviour.
func pageParams(page, limit int) url.Values {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return params
}

// do runs one request against the Data API. It appends the token,
// marshals body (when non-nil) as JSON, and decodes the response into
// out (when non-nil). Every failure maps to exactly one error kind:
// *UnreachableError for transport failures, *APIError for non-2xx
// answers, *DecodeError for 2xx bodies that don't match out.
func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, body, out interface{}) error {
	params.Set("token", c.token)

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	reqURL := c.baseURL + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.debugf("%s %s failed: transport error", method, endpoint)
		return newUnreachableError(endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.debugf("%s %s failed: read error", method, endpoint)
		return newUnreachableError(endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.debugf("%s %s -> %d", method, endpoint, resp.StatusCode)
		return &APIError{StatusCode: resp.StatusCode, Message: upstreamMessage(raw)}
	}

	c.debugf("%s %s -> %d", method, endpoint, resp.StatusCode)

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Endpoint: endpoint, Err: err}
	}

	return nil
}

// upstreamMessage extracts the error text from a Joplin error body.
// The Data API wraps errors as {"error": "..."}; anything else is
// passed through as-is.
func upstreamMessage(raw []byte) string {
	var wrapper struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Error != "" {
		// Joplin appends a stack trace after the first line; only the
		// message itself is useful to callers.
		msg := wrapper.Error
		if idx := strings.IndexByte(msg, '\n'); idx > 0 {
			msg = msg[:idx]
		}
		return strings.TrimSpace(msg)
	}
	return strings.TrimSpace(string(raw))
}

func (c *Client) debugf(format string, v ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, v...)
	}
}
