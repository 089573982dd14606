// Package folders provides the gateway tools for working with Joplin
// notebooks (called folders by the Data API).
//
// Tool Overview:
//
// list_folders: List notebooks with their parent ids, paginated
//
// list_notes_in_folder: List note summaries from one notebook, paginated
//
// Notebook hierarchy is flat in the wire format: each folder carries a
// parent_id, and clients reconstruct the tree themselves if they need
// it. The gateway passes the upstream's paging through unchanged, the
// same way the note tools do.
package folders
