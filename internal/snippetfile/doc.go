// Package snippetfile handles parsing and validation of snippet files. A
// snippet file is a YAML (or JSON) document with a format version and an
// ordered "snippets" mapping; keys written as /expr/flags become pattern
// keys. Files are validated against the JSON Schema embedded in schema/.
package snippetfile
