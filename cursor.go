package hashtable

// Cursor is a position within a map: a bucket index plus an offset
// into that bucket's chain. The past-the-end position is
// (capacity, 0). Any operation that rebuilds the bucket array
// invalidates every cursor; deleting an entry invalidates cursors
// positioned at it.
type Cursor[K comparable, V any] struct {
	m      *Map[K, V]
	bucket int
	offset int
}

// normalize moves the cursor forward past empty buckets (and past the
// exhausted tail of the current one) so it lands on a live entry or
// on the end position.
func (c *Cursor[K, V]) normalize() {
	for c.bucket < len(c.m.buckets) && c.offset == len(c.m.buckets[c.bucket]) {
		c.bucket++
		c.offset = 0
	}
}

// AtEnd reports whether the cursor is the past-the-end position.
func (c Cursor[K, V]) AtEnd() bool {
	return c.bucket >= len(c.m.buckets)
}

// Next advances to the following entry in bucket-major order,
// skipping empty buckets. Panics on the end cursor.
func (c *Cursor[K, V]) Next() {
	if c.AtEnd() {
		panic("hashtable: Next past the end cursor")
	}

	c.offset++
	c.normalize()
}

func (c Cursor[K, V]) deref() *entry[K, V] {
	if c.AtEnd() {
		panic("hashtable: dereference of the end cursor")
	}

	return &c.m.buckets[c.bucket][c.offset]
}

// Key returns the key at the cursor. Panics on the end cursor.
func (c Cursor[K, V]) Key() K {
	return c.deref().key
}

// Value returns the value at the cursor. Panics on the end cursor.
func (c Cursor[K, V]) Value() V {
	return c.deref().value
}

// SetValue overwrites the value at the cursor. Keys are immutable;
// the value is the only mutable part of an entry.
func (c Cursor[K, V]) SetValue(value V) {
	c.deref().value = value
}

// Equal reports whether two cursors denote the same position in the
// same map.
func (c Cursor[K, V]) Equal(other Cursor[K, V]) bool {
	return c.m == other.m && c.bucket == other.bucket && c.offset == other.offset
}
