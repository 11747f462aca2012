package registry

import "github.com/emmetio/snippets-registry/internal/snippets"

// Source is a snippet file registered at a level.
type Source struct {
	Name  string         // e.g., "global", "user", "project"
	Level snippets.Level // priority; higher wins
	Path  string         // path to the snippet file
}

// LoadResult records what happened to one source during Build.
type LoadResult struct {
	Source  Source
	Entries int  // number of entries stored in the layer
	Missing bool // true if the file did not exist and was skipped
}
