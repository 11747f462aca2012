package snippets

import "strings"

// aliasSeparator splits a string key into independent aliases.
const aliasSeparator = "|"

// Store holds the snippets of a single registry layer. Exact keys are looked
// up in a map; pattern keys are scanned in the order they were added.
type Store[V any] struct {
	exact      map[string]*Entry[V]
	exactOrder []string
	patterns   []*Entry[V]
	disabled   bool
}

// NewStore creates a store filled with data. On an invalid key the store
// holds the items that preceded it and the error is returned.
func NewStore[V any](data Data[V]) (*Store[V], error) {
	s := &Store[V]{exact: make(map[string]*Entry[V])}
	if err := s.Load(data); err != nil {
		return s, err
	}
	return s, nil
}

// Disabled reports whether the store is disabled.
func (s *Store[V]) Disabled() bool { return s.disabled }

// Disable hides every entry from Get and Values. Entries are kept.
func (s *Store[V]) Disable() { s.disabled = true }

// Enable reverses Disable.
func (s *Store[V]) Enable() { s.disabled = false }

// Set registers value under key. A string key is split on "|" and each
// non-empty alias gets its own entry; a pattern key gets one entry. An
// existing entry with the same key is overwritten in place.
func (s *Store[V]) Set(key Key, value V) error {
	if err := key.validate(); err != nil {
		return err
	}

	if key.IsPattern() {
		s.setPattern(NewEntry(key, value))
		return nil
	}

	aliases := splitAliases(key.Text())
	if len(aliases) == 0 {
		return &InvalidKeyError{Key: `"` + key.Text() + `"`, Reason: "no alias in string key"}
	}
	if s.exact == nil {
		s.exact = make(map[string]*Entry[V])
	}
	for _, alias := range aliases {
		if _, ok := s.exact[alias]; !ok {
			s.exactOrder = append(s.exactOrder, alias)
		}
		s.exact[alias] = NewEntry(Exact(alias), value)
	}
	return nil
}

// MustSet is like Set but panics on an invalid key. It returns the store so
// calls can be chained.
func (s *Store[V]) MustSet(key Key, value V) *Store[V] {
	if err := s.Set(key, value); err != nil {
		panic(err)
	}
	return s
}

func (s *Store[V]) setPattern(e *Entry[V]) {
	id := e.key.id()
	for i, existing := range s.patterns {
		if existing.key.id() == id {
			s.patterns[i] = e
			return
		}
	}
	s.patterns = append(s.patterns, e)
}

// Get returns the entry matching name. An exact key always wins over a
// pattern; among patterns the first one added wins. A disabled store never
// matches.
func (s *Store[V]) Get(name string) (*Entry[V], bool) {
	if s.disabled {
		return nil, false
	}

	if e, ok := s.exact[name]; ok {
		return e, true
	}

	for _, e := range s.patterns {
		if e.key.Matches(name) {
			return e, true
		}
	}
	return nil, false
}

// Load replaces the contents of the store with data. Items are applied in
// order; loading stops at the first invalid key, leaving earlier items set.
func (s *Store[V]) Load(data Data[V]) error {
	s.Reset()
	for _, item := range data {
		if err := s.Set(item.Key, item.Value); err != nil {
			return err
		}
	}
	return nil
}

// Reset removes all entries. The disabled flag is left unchanged.
func (s *Store[V]) Reset() {
	s.exact = make(map[string]*Entry[V])
	s.exactOrder = nil
	s.patterns = nil
}

// Values returns exact entries followed by pattern entries, each group in
// insertion order. A disabled store returns nil.
func (s *Store[V]) Values() []*Entry[V] {
	if s.disabled {
		return nil
	}

	values := make([]*Entry[V], 0, s.Len())
	for _, name := range s.exactOrder {
		values = append(values, s.exact[name])
	}
	return append(values, s.patterns...)
}

// Len returns the number of stored entries, including when disabled.
func (s *Store[V]) Len() int {
	return len(s.exactOrder) + len(s.patterns)
}

// selectsLayer makes a store usable as a LayerSelector, matching by identity.
func (s *Store[V]) selectsLayer(_ Level, store any) bool {
	other, ok := store.(*Store[V])
	return ok && other == s
}

func splitAliases(text string) []string {
	var aliases []string
	for _, alias := range strings.Split(text, aliasSeparator) {
		if alias != "" {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}
