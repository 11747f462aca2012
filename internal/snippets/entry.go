package snippets

import "slices"

// Entry is an immutable binding of a key to a payload. The payload is never
// inspected by this package.
type Entry[V any] struct {
	key   Key
	value V
}

// NewEntry returns an entry binding key to value.
func NewEntry[V any](key Key, value V) *Entry[V] {
	return &Entry[V]{key: key, value: value}
}

// Key returns the entry's key. For aliased string keys this is the single
// alias the entry was registered under.
func (e *Entry[V]) Key() Key { return e.key }

// Value returns the entry's payload.
func (e *Entry[V]) Value() V { return e.value }

// Item is one key/value pair of bulk data.
type Item[V any] struct {
	Key   Key
	Value V
}

// Data is ordered bulk input for Store.Load. Order decides precedence among
// pattern keys.
type Data[V any] []Item[V]

// FromMap converts an unordered string-keyed mapping to Data. Keys are
// sorted so that the result is deterministic.
func FromMap[V any](m map[string]V) Data[V] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	data := make(Data[V], 0, len(keys))
	for _, k := range keys {
		data = append(data, Item[V]{Key: Exact(k), Value: m[k]})
	}
	return data
}

// Add appends an item and returns the extended data, for literal construction.
func (d Data[V]) Add(key Key, value V) Data[V] {
	return append(d, Item[V]{Key: key, Value: value})
}
