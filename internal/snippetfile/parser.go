package snippetfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"

	"github.com/emmetio/snippets-registry/internal/log"
	"github.com/emmetio/snippets-registry/internal/snippets"
)

// document mirrors the top-level structure. Snippets stays a node so that
// key order survives decoding.
type document struct {
	Version     string    `yaml:"version"`
	Description string    `yaml:"description"`
	Snippets    yaml.Node `yaml:"snippets"`
}

// Parse reads a snippet file and returns its entries in document order.
// Parse does not run schema validation; use Load for that.
func Parse(path string) (*File, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data, path)
}

// ParseBytes parses snippet file contents. The path is only used in errors
// and recorded on the returned File.
func ParseBytes(data []byte, path string) (*File, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing snippet file %s: %w", path, err)
	}

	version := doc.Version
	if version == "" {
		version = DefaultVersion
	}
	if err := CheckVersion(version); err != nil {
		return nil, fmt.Errorf("snippet file %s: %w", path, err)
	}

	items, err := decodeSnippets(&doc.Snippets)
	if err != nil {
		return nil, fmt.Errorf("snippet file %s: %w", path, err)
	}
	log.Debug(log.CatFile, "snippet file parsed", "path", path, "version", version, "entries", len(items))

	return &File{
		Path:        path,
		Version:     version,
		Description: doc.Description,
		Data:        items,
	}, nil
}

// Load validates a snippet file against the schema and parses it. Schema
// violations are returned as a *ValidationError.
func Load(path string) (*File, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating snippet file %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &ValidationError{Path: path, Issues: result.Issues}
	}

	return ParseBytes(data, path)
}

// CheckVersion reports whether a file format version is readable by this
// build. A leading "v" is tolerated.
func CheckVersion(version string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing format version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(FormatConstraint)
	if err != nil {
		return fmt.Errorf("parsing format constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("format version %s is not supported (want %s)", version, FormatConstraint)
	}
	return nil
}

// decodeSnippets walks a mapping node pair by pair so that pattern keys
// keep their declared order.
func decodeSnippets(node *yaml.Node) (snippets.Data[string], error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: 'snippets' must be a mapping", node.Line)
	}

	items := make(snippets.Data[string], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		key, err := snippets.ParseKey(keyNode.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", keyNode.Line, err)
		}

		if valueNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: snippet %q must have a string body", valueNode.Line, keyNode.Value)
		}
		var body string
		if err := valueNode.Decode(&body); err != nil {
			return nil, fmt.Errorf("line %d: decoding snippet %q: %w", valueNode.Line, keyNode.Value, err)
		}

		items = items.Add(key, body)
	}
	return items, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
