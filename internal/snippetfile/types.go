package snippetfile

import "github.com/emmetio/snippets-registry/internal/snippets"

// FormatConstraint is the range of file format versions this build reads.
const FormatConstraint = "^1.0"

// DefaultVersion is assumed when a file omits the version field.
const DefaultVersion = "1.0.0"

// File is a parsed snippet file.
type File struct {
	Path        string
	Version     string
	Description string
	Data        snippets.Data[string]
}
