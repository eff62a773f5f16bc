package hashtable

import "hash/maphash"

const (
	// minCapacity is the bucket count of an empty table. Rebuilds never
	// shrink below it.
	minCapacity = 10

	// shrinkFactor bounds how sparse the table may get: a rebuild is
	// forced once size*shrinkFactor drops below the bucket count.
	shrinkFactor = 4
)

// entry is a key-value pair owned by exactly one bucket. The key never
// changes for the entry's lifetime; the value may be overwritten
// through a cursor or a GetOrInsert pointer.
type entry[K comparable, V any] struct {
	key   K
	value V
}

type table[K comparable, V any] struct {
	buckets [][]entry[K, V]
	size    int

	hashFunc HashFunc[K]
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

func (t *table[K, V]) init(opts ...Option[K, V]) {
	t.buckets = make([][]entry[K, V], minCapacity)
	t.size = 0

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}
}

func (t *table[K, V]) bucketIndex(key K) int {
	return int(t.hashFunc(key) % uint64(len(t.buckets)))
}

// locate returns the bucket index and chain offset of the entry with
// the given key, or ok=false when the key is absent. The bucket index
// is valid either way.
func (t *table[K, V]) locate(key K) (bucket, offset int, ok bool) {
	bucket = t.bucketIndex(key)
	for i := range t.buckets[bucket] {
		if t.buckets[bucket][i].key == key {
			return bucket, i, true
		}
	}

	return bucket, 0, false
}

// insert appends a new entry unless an equal key is already present.
// The first value inserted for a key wins; a duplicate insert never
// overwrites. Reports whether a new entry was created.
func (t *table[K, V]) insert(key K, value V) bool {
	bucket, _, ok := t.locate(key)
	if ok {
		return false
	}

	t.buckets[bucket] = append(t.buckets[bucket], entry[K, V]{key: key, value: value})
	t.size++
	t.maybeRebuild()

	return true
}

// delete removes the entry with the given key, preserving the relative
// order of the surviving entries in its chain. Absent key is a no-op.
func (t *table[K, V]) delete(key K) bool {
	bucket, offset, ok := t.locate(key)
	if !ok {
		return false
	}

	chain := t.buckets[bucket]
	t.buckets[bucket] = append(chain[:offset], chain[offset+1:]...)
	t.size--
	t.maybeRebuild()

	return true
}

// maybeRebuild enforces the occupancy band
// capacity/shrinkFactor <= size <= capacity after every size change.
func (t *table[K, V]) maybeRebuild() {
	if t.size > len(t.buckets) || t.size*shrinkFactor < len(t.buckets) {
		t.rebuild()
	}
}

// rebuild re-indexes every entry into a fresh bucket array sized at
// twice the live entry count, never below minCapacity. O(size) time,
// O(capacity) space; the swap is the last step, so callers never
// observe a partially rebuilt table.
func (t *table[K, V]) rebuild() {
	capacity := max(minCapacity, 2*t.size)

	buckets := make([][]entry[K, V], capacity)
	for _, chain := range t.buckets {
		for _, e := range chain {
			idx := int(t.hashFunc(e.key) % uint64(capacity))
			buckets[idx] = append(buckets[idx], e)
		}
	}

	t.buckets = buckets
}

// clear drops every entry and reuses the rebuild path to shrink the
// bucket array back to minCapacity.
func (t *table[K, V]) clear() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.size = 0

	t.rebuild()
}
