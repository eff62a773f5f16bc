package hashtable

import (
	"errors"
	"iter"
)

// ErrKeyNotFound is returned by At for keys the map does not hold.
var ErrKeyNotFound = errors.New("hashtable: key not found")

// Pair is a key-value pair consumed by the bulk constructors.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a hash table with closed addressing: keys land in
// hash(key) % capacity and collisions chain within the bucket.
// The bucket array doubles once size exceeds it and halves once
// occupancy falls below a quarter, so inserts and deletes stay
// amortized O(1) while memory tracks the live entry count.
// Not safe for concurrent use; callers needing that must wrap the
// whole map in a single lock.
type Map[K comparable, V any] struct {
	table[K, V]
}

// New returns an empty map with the minimum bucket count.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(opts...)

	return &m
}

// FromPairs builds a map by inserting every pair in order. Duplicate
// keys keep the first value.
func FromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := New[K, V](opts...)
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}

	return m
}

// FromMap builds a map holding the same entries as src.
func FromMap[K comparable, V any](src map[K]V, opts ...Option[K, V]) *Map[K, V] {
	m := New[K, V](opts...)
	for k, v := range src {
		m.Insert(k, v)
	}

	return m
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// HashFunc returns the functor the map indexes with.
func (m *Map[K, V]) HashFunc() HashFunc[K] {
	return m.hashFunc
}

// Capacity returns the current bucket count.
func (m *Map[K, V]) Capacity() int {
	return len(m.buckets)
}

// Inserts a key unless it's already present; the existing value is
// never overwritten. Returns whether a new entry was created.
// May rebuild the bucket array, invalidating cursors.
func (m *Map[K, V]) Insert(key K, value V) bool {
	return m.insert(key, value)
}

// Deletes a key. Returns false (and changes nothing) when the key is
// absent. May rebuild the bucket array, invalidating cursors.
func (m *Map[K, V]) Delete(key K) bool {
	return m.delete(key)
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	bucket, offset, ok := m.locate(key)
	if !ok {
		var zero V
		return zero, false
	}

	return m.buckets[bucket][offset].value, true
}

// Find returns a cursor positioned at the key's entry, or the end
// cursor when the key is absent. Never mutates the map.
func (m *Map[K, V]) Find(key K) Cursor[K, V] {
	bucket, offset, ok := m.locate(key)
	if !ok {
		return m.End()
	}

	return Cursor[K, V]{m: m, bucket: bucket, offset: offset}
}

// GetOrInsert returns a pointer to the key's value, first inserting
// the zero value when the key is absent (which may rebuild the bucket
// array). The pointer is valid only until the next structural
// mutation of the map.
func (m *Map[K, V]) GetOrInsert(key K) *V {
	bucket, offset, ok := m.locate(key)
	if !ok {
		var zero V
		m.insert(key, zero)
		// The insert may have rebuilt the table, so re-locate.
		bucket, offset, _ = m.locate(key)
	}

	return &m.buckets[bucket][offset].value
}

// At returns the value stored for key, or ErrKeyNotFound. Unlike
// GetOrInsert it never mutates the map.
func (m *Map[K, V]) At(key K) (V, error) {
	bucket, offset, ok := m.locate(key)
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}

	return m.buckets[bucket][offset].value, nil
}

// Clear drops every entry and shrinks the bucket array back to the
// minimum. Invalidates all cursors.
func (m *Map[K, V]) Clear() {
	m.clear()
}

// Clone returns a deep copy of the map sharing the hash functor.
func (m *Map[K, V]) Clone() *Map[K, V] {
	clone := &Map[K, V]{}
	clone.hashFunc = m.hashFunc
	clone.size = m.size
	clone.buckets = make([][]entry[K, V], len(m.buckets))
	for i, chain := range m.buckets {
		if len(chain) == 0 {
			continue
		}
		clone.buckets[i] = append([]entry[K, V](nil), chain...)
	}

	return clone
}

// Begin returns a cursor at the first entry in bucket-major order, or
// the end cursor for an empty map.
func (m *Map[K, V]) Begin() Cursor[K, V] {
	c := Cursor[K, V]{m: m}
	c.normalize()

	return c
}

// End returns the canonical past-the-end cursor.
func (m *Map[K, V]) End() Cursor[K, V] {
	return Cursor[K, V]{m: m, bucket: len(m.buckets)}
}

// All yields every entry in bucket-major, within-bucket-insertion
// order. The map must not be mutated during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, chain := range m.buckets {
			for i := range chain {
				if !yield(chain[i].key, chain[i].value) {
					return
				}
			}
		}
	}
}
