package joplin

// Field projections requested from the upstream API via the fields=
// query parameter. Only fields named here come back, so the structs
// below and these lists move together.
const (
	// NoteSummaryFields is the projection for note listings and search
	// results. The body is deliberately absent; fetching it for every
	// row would drag whole notebooks through each list call.
	NoteSummaryFields = "id,parent_id,title,is_todo,todo_completed,created_time,updated_time"

	// NoteFields is the projection for a single note fetch.
	NoteFields = NoteSummaryFields + ",body"

	// FolderFields is the projection for notebook listings.
	FolderFields = "id,parent_id,title,created_time,updated_time"
)

// NoteSummary is a note without its body, as returned by list and
// search endpoints. Timestamps are epoch milliseconds. IsTodo is the
// upstream's 0/1 encoding; TodoCompleted is the completion timestamp in
// epoch milliseconds, 0 when not completed.
type NoteSummary struct {
	ID            string `json:"id"`
	ParentID      string `json:"parent_id"`
	Title         string `json:"title"`
	IsTodo        int    `json:"is_todo"`
	TodoCompleted int64  `json:"todo_completed"`
	CreatedTime   int64  `json:"created_time"`
	UpdatedTime   int64  `json:"updated_time"`
}

// Note is a full note including its Markdown body.
type Note struct {
	NoteSummary
	Body string `json:"body"`
}

// Folder is a Joplin notebook. ParentID is empty for top-level
// notebooks.
type Folder struct {
	ID          string `json:"id"`
	ParentID    string `json:"parent_id"`
	Title       string `json:"title"`
	CreatedTime int64  `json:"created_time"`
	UpdatedTime int64  `json:"updated_time"`
}

// NotePage is one page of note summaries. HasMore is the upstream's
// continuation marker; callers fetch the next page by incrementing the
// page number, the gateway never computes page boundaries itself.
type NotePage struct {
	Items   []NoteSummary `json:"items"`
	HasMore bool          `json:"has_more"`
}

// FolderPage is one page of notebooks.
type FolderPage struct {
	Items   []Folder `json:"items"`
	HasMore bool     `json:"has_more"`
}

// NewNote carries the fields for note creation. ParentID selects the
// notebook; when empty the upstream files the note in its default
// notebook and the field is omitted from the request entirely. IsTodo
// is always sent, in the upstream's 0/1 encoding.
type NewNote struct {
	Title    string `json:"title"`
	Body     string `json:"body,omitempty"`
	ParentID string `json:"parent_id,omitempty"`
	IsTodo   int    `json:"is_todo"`
}

// NotePatch is a partial note update. Nil fields are omitted from the
// request body, so the upstream leaves them untouched.
type NotePatch struct {
	Title         *string `json:"title,omitempty"`
	Body          *string `json:"body,omitempty"`
	IsTodo        *int    `json:"is_todo,omitempty"`
	TodoCompleted *int64  `json:"todo_completed,omitempty"`
}

// Empty reports whether the patch would change nothing.
func (p NotePatch) Empty() bool {
	return p.Title == nil && p.Body == nil && p.IsTodo == nil && p.TodoCompleted == nil
}
