// Package snippets implements a layered snippet registry. A Store holds the
// entries of one layer, matched by exact name first and then by regular
// expression in insertion order. A Registry orders stores by level and
// resolves a name against the highest-level store that has a match.
//
// Neither type is safe for concurrent use; callers that share a registry
// across goroutines must serialize access themselves.
package snippets
