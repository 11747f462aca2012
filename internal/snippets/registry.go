package snippets

import (
	"cmp"
	"slices"
)

// Level is the priority of a registry layer. Higher levels take precedence.
type Level int

// Predefined levels. Any other value may be used as well.
const (
	LevelGlobal  Level = 0
	LevelUser    Level = 1
	LevelProject Level = 2
)

// selectsLayer makes a Level usable as a LayerSelector.
func (l Level) selectsLayer(level Level, _ any) bool {
	return l == level
}

// LayerSelector picks registry layers for removal. It is implemented by
// Level, which selects by priority, and by *Store, which selects by identity.
type LayerSelector interface {
	selectsLayer(level Level, store any) bool
}

// Layer is a store registered at a level.
type Layer[V any] struct {
	Level Level
	Store *Store[V]
}

// Registry is a set of stores ordered by level, highest first.
type Registry[V any] struct {
	layers []Layer[V]
}

// New creates an empty registry.
func New[V any]() *Registry[V] {
	return &Registry[V]{}
}

// NewWithData creates a registry with a single layer at LevelGlobal.
func NewWithData[V any](data Data[V]) (*Registry[V], error) {
	r := New[V]()
	if _, err := r.AddGlobal(data); err != nil {
		return nil, err
	}
	return r, nil
}

// NewWithLayers creates a registry where each element of layers is added at
// the level equal to its index, so later elements take precedence.
func NewWithLayers[V any](layers ...Data[V]) (*Registry[V], error) {
	r := New[V]()
	for i, data := range layers {
		if _, err := r.Add(Level(i), data); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add creates a store from data and registers it at level, replacing any
// store already at that level. The new store is returned so the caller can
// disable or modify it later.
func (r *Registry[V]) Add(level Level, data Data[V]) (*Store[V], error) {
	store, err := NewStore(data)
	if err != nil {
		return nil, err
	}

	r.Remove(level)
	r.layers = append(r.layers, Layer[V]{Level: level, Store: store})
	slices.SortStableFunc(r.layers, func(a, b Layer[V]) int {
		return cmp.Compare(b.Level, a.Level)
	})
	return store, nil
}

// AddGlobal is Add at LevelGlobal.
func (r *Registry[V]) AddGlobal(data Data[V]) (*Store[V], error) {
	return r.Add(LevelGlobal, data)
}

// Get returns the store registered at level.
func (r *Registry[V]) Get(level Level) (*Store[V], bool) {
	for _, l := range r.layers {
		if l.Level == level {
			return l.Store, true
		}
	}
	return nil, false
}

// Remove drops every layer picked by sel.
func (r *Registry[V]) Remove(sel LayerSelector) {
	if sel == nil {
		return
	}
	r.layers = slices.DeleteFunc(r.layers, func(l Layer[V]) bool {
		return sel.selectsLayer(l.Level, l.Store)
	})
}

// Resolve returns the entry for name from the highest-level store that has
// one. Disabled stores never match and are skipped.
func (r *Registry[V]) Resolve(name string) (*Entry[V], bool) {
	for _, l := range r.layers {
		if e, ok := l.Store.Get(name); ok {
			return e, true
		}
	}
	return nil, false
}

// AllOptions filters the result of All.
type AllOptions struct {
	// Type restricts entries to one key kind. KindAny returns every entry.
	Type Kind
}

// All collects the entries of every enabled store in priority order. When
// several layers define the same key only the highest-level entry is kept.
func (r *Registry[V]) All(opts AllOptions) *Snapshot[V] {
	snap := newSnapshot[V]()
	for _, l := range r.layers {
		for _, e := range l.Store.Values() {
			if opts.Type != KindAny && e.Key().Kind() != opts.Type {
				continue
			}
			snap.add(e)
		}
	}
	return snap
}

// Clear removes every layer.
func (r *Registry[V]) Clear() {
	r.layers = nil
}

// Len returns the number of layers.
func (r *Registry[V]) Len() int {
	return len(r.layers)
}

// Levels returns the registered levels, highest first.
func (r *Registry[V]) Levels() []Level {
	levels := make([]Level, len(r.layers))
	for i, l := range r.layers {
		levels[i] = l.Level
	}
	return levels
}

// Layers returns a copy of the layer list, highest level first.
func (r *Registry[V]) Layers() []Layer[V] {
	return slices.Clone(r.layers)
}

// Snapshot is an insertion-ordered set of entries keyed by Key.
type Snapshot[V any] struct {
	order []*Entry[V]
	index map[keyID]int
}

func newSnapshot[V any]() *Snapshot[V] {
	return &Snapshot[V]{index: make(map[keyID]int)}
}

// add keeps the first entry seen for each key.
func (s *Snapshot[V]) add(e *Entry[V]) {
	id := e.Key().id()
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = len(s.order)
	s.order = append(s.order, e)
}

// Len returns the number of entries.
func (s *Snapshot[V]) Len() int { return len(s.order) }

// Entries returns the entries in the order they were first seen.
func (s *Snapshot[V]) Entries() []*Entry[V] {
	return slices.Clone(s.order)
}

// Keys returns the entry keys in the order they were first seen.
func (s *Snapshot[V]) Keys() []Key {
	keys := make([]Key, len(s.order))
	for i, e := range s.order {
		keys[i] = e.Key()
	}
	return keys
}

// Lookup returns the entry stored under key.
func (s *Snapshot[V]) Lookup(key Key) (*Entry[V], bool) {
	i, ok := s.index[key.id()]
	if !ok {
		return nil, false
	}
	return s.order[i], true
}
