package snippets

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind distinguishes exact keys from pattern keys.
type Kind int

const (
	// KindAny is the zero Kind. As a filter it matches every entry.
	KindAny Kind = iota
	// KindExact is a literal string key, matched by equality.
	KindExact
	// KindPattern is a regular expression key, matched by testing the name.
	KindPattern
)

// String returns the option name used by filters: "string" or "regexp".
func (k Kind) String() string {
	switch k {
	case KindExact:
		return "string"
	case KindPattern:
		return "regexp"
	default:
		return "any"
	}
}

// ParseKind converts a filter name to a Kind. Unknown names, including the
// empty string, map to KindAny so that the filter is ignored.
func ParseKind(s string) Kind {
	switch s {
	case "string":
		return KindExact
	case "regexp":
		return KindPattern
	default:
		return KindAny
	}
}

// Key is either an exact string or a compiled pattern. The zero Key is
// invalid and is rejected by Store.Set.
type Key struct {
	kind    Kind
	text    string
	pattern *regexp.Regexp
}

// Exact returns a string key. The text may hold several aliases separated
// by "|"; Store.Set registers each alias separately.
func Exact(text string) Key {
	return Key{kind: KindExact, text: text}
}

// Pattern returns a key matched by re.
func Pattern(re *regexp.Regexp) Key {
	k := Key{kind: KindPattern, pattern: re}
	if re != nil {
		k.text = re.String()
	}
	return k
}

// MustPattern compiles expr and returns a pattern key. It panics if expr is
// not a valid regular expression.
func MustPattern(expr string) Key {
	return Pattern(regexp.MustCompile(expr))
}

// ParseKey interprets text written in snippet files. Text of the form
// /expr/flags is a pattern, where flags is any combination of i, m and s.
// Everything else is an exact key.
func ParseKey(text string) (Key, error) {
	if len(text) < 2 || text[0] != '/' {
		return Exact(text), nil
	}
	end := strings.LastIndexByte(text, '/')
	if end <= 1 {
		return Exact(text), nil
	}

	expr, flags := text[1:end], text[end+1:]
	for _, f := range flags {
		if f != 'i' && f != 'm' && f != 's' {
			// Not a pattern literal, e.g. "/usr/bin".
			return Exact(text), nil
		}
	}
	if flags != "" {
		expr = "(?" + flags + ")" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return Key{}, &InvalidKeyError{Key: text, Reason: err.Error()}
	}
	return Pattern(re), nil
}

// Kind reports whether k is exact or a pattern. The zero Key reports KindAny.
func (k Key) Kind() Kind { return k.kind }

// Text returns the literal text of an exact key or the source of a pattern.
func (k Key) Text() string { return k.text }

// Regexp returns the compiled pattern, or nil for exact keys.
func (k Key) Regexp() *regexp.Regexp { return k.pattern }

// IsPattern reports whether k is a pattern key.
func (k Key) IsPattern() bool { return k.kind == KindPattern }

// Matches reports whether name selects k: equality for exact keys, a
// regexp match for pattern keys.
func (k Key) Matches(name string) bool {
	switch k.kind {
	case KindExact:
		return k.text == name
	case KindPattern:
		return k.pattern != nil && k.pattern.MatchString(name)
	default:
		return false
	}
}

// String renders exact keys verbatim and patterns in /expr/ form.
func (k Key) String() string {
	if k.kind == KindPattern {
		return "/" + k.text + "/"
	}
	return k.text
}

// id identifies a key within a store or snapshot. Two patterns with the
// same source text are the same key.
func (k Key) id() keyID {
	return keyID{kind: k.kind, text: k.text}
}

type keyID struct {
	kind Kind
	text string
}

func (k Key) validate() error {
	switch k.kind {
	case KindExact:
		return nil
	case KindPattern:
		if k.pattern == nil {
			return &InvalidKeyError{Key: k.String(), Reason: "pattern is nil"}
		}
		return nil
	default:
		return &InvalidKeyError{Key: fmt.Sprintf("%q", k.text), Reason: "key is neither a string nor a pattern"}
	}
}
