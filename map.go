package chainmap

import "errors"

// ErrInvalidKey is returned whenever a key argument is empty. The
// failed operation never mutates the map.
var ErrInvalidKey = errors.New("chainmap: invalid key")

// Entry is one key/value pair in an enumeration snapshot.
type Entry[V any] struct {
	Key   string
	Value V
}

// Map is a string-keyed hash table resolving collisions with per-bucket
// chains. It starts with 16 buckets and doubles them whenever the load
// factor reaches 0.75, so insertion stays amortized O(1).
// Map is not safe for concurrent use; callers needing that must wrap it
// with their own synchronization.
type Map[V any] struct {
	table[V]
}

// Returns a new empty map.
func New[V any](opts ...Option[V]) *Map[V] {
	var m Map[V]
	m.init(opts...)

	return &m
}

// Set stores value under key, overwriting in place if key is already
// present. May grow the table once the load factor reaches 0.75.
func (m *Map[V]) Set(key string, value V) error {
	if key == "" {
		return ErrInvalidKey
	}

	m.set(key, value)

	return nil
}

// Get returns the value stored under key. The bool reports presence,
// so a stored zero value is distinguishable from a missing key.
func (m *Map[V]) Get(key string) (V, bool, error) {
	if key == "" {
		var zero V
		return zero, false, ErrInvalidKey
	}

	v, ok := m.get(key)

	return v, ok, nil
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) (bool, error) {
	if key == "" {
		return false, ErrInvalidKey
	}

	return m.has(key), nil
}

// Delete removes key and reports whether it was present.
func (m *Map[V]) Delete(key string) (bool, error) {
	if key == "" {
		return false, ErrInvalidKey
	}

	return m.delete(key), nil
}

// Clear removes every entry. The bucket count is retained, not reset.
func (m *Map[V]) Clear() {
	m.clearAll()
}

// Len returns the number of entries currently stored.
func (m *Map[V]) Len() int {
	return m.size
}

// Keys returns a snapshot of all keys, in bucket order and then chain
// order within a bucket. Not a live view: later mutations don't affect
// a returned slice.
func (m *Map[V]) Keys() []string {
	return m.keys()
}

// Values returns a snapshot of all values, in the same order as Keys.
func (m *Map[V]) Values() []V {
	return m.values()
}

// Entries returns a snapshot of all key/value pairs, in the same order
// as Keys.
func (m *Map[V]) Entries() []Entry[V] {
	return m.entries()
}
