// Package notes provides the gateway tools for working with Joplin
// notes over the Data API.
//
// Listing tools return note summaries (no bodies) in the upstream's
// paged envelope, so clients can walk large notebooks without pulling
// every body across the wire. Write tools return the note as Joplin
// stored it, which is how clients learn assigned ids and server-side
// timestamps.
//
// Tool Overview:
//
// list_notes: List note summaries across all notebooks, paginated
//
// search_notes: Search notes with Joplin's search syntax, paginated
//
// get_note: Fetch one note by id, including its Markdown body
//
// create_note: Create a note, optionally as a todo or in a specific notebook
//
// update_note: Change a note's title, body, or todo state by id
//
// delete_note: Move a note to the trash, or delete it permanently
//
// Usage Example:
//
//	// Create a Data API client
//	client, err := joplin.NewClient(token)
//	if err != nil {
//	    return err
//	}
//
//	// Register the note tools
//	registry := tools.NewRegistry()
//	registry.Register(notes.NewListNotesTool(client))
//	registry.Register(notes.NewGetNoteTool(client))
//	registry.Register(notes.NewCreateNoteTool(client))
//
// Design Principles:
//
//   - Arguments are validated before any request reaches Joplin
//   - Argument problems and upstream failures are reported as tool
//     results, never as protocol errors
//   - Pagination values pass through to the upstream unchanged
//   - Each call maps to exactly one Data API request
package notes
