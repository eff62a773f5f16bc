package hashtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable[K comparable, V any](opts ...Option[K, V]) *table[K, V] {
	var tt table[K, V]
	tt.init(opts...)

	return &tt
}

// checkBand asserts the rebuild policy's occupancy band. The
// minCapacity floor exempts small tables from the lower bound.
func checkBand[K comparable, V any](t *testing.T, tt *table[K, V]) {
	t.Helper()

	require.GreaterOrEqual(t, len(tt.buckets), minCapacity)
	require.LessOrEqual(t, tt.size, len(tt.buckets))
	if len(tt.buckets) > minCapacity {
		require.GreaterOrEqual(t, tt.size*shrinkFactor, len(tt.buckets))
	}
}

func TestTable_init(t *testing.T) {
	tt := newTable[string, int]()

	require.Len(t, tt.buckets, minCapacity)
	require.Zero(t, tt.size)
	require.NotNil(t, tt.hashFunc)
}

func TestTable_insert(t *testing.T) {
	tt := newTable[string, string]()

	ok := tt.insert("foo", "bar")
	require.True(t, ok)
	assert.Equal(t, 1, tt.size)

	// First-insert-wins: the duplicate neither inserts nor overwrites.
	ok = tt.insert("foo", "bar2")
	require.False(t, ok)
	assert.Equal(t, 1, tt.size)

	bucket, offset, found := tt.locate("foo")
	require.True(t, found)
	require.Equal(t, "bar", tt.buckets[bucket][offset].value)
}

func TestTable_insert_Grow(t *testing.T) {
	tt := newTable[int, int]()

	prevCapacity := len(tt.buckets)
	for i := range 100 {
		require.True(t, tt.insert(i, i*10))

		checkBand(t, tt)
		require.GreaterOrEqual(t, len(tt.buckets), prevCapacity,
			"capacity must grow monotonically while only inserting")
		prevCapacity = len(tt.buckets)
	}

	require.Equal(t, 100, tt.size)
	for i := range 100 {
		bucket, offset, found := tt.locate(i)
		require.Truef(t, found, "lost key %d after growth", i)
		require.Equal(t, i*10, tt.buckets[bucket][offset].value)
	}
}

func TestTable_delete(t *testing.T) {
	tt := newTable[string, int]()

	require.True(t, tt.insert("foo", 1))
	require.True(t, tt.delete("foo"))
	assert.Zero(t, tt.size)

	_, _, found := tt.locate("foo")
	require.False(t, found)

	// Deleting an absent key is a silent no-op, not an error.
	require.False(t, tt.delete("foo"))
	assert.Zero(t, tt.size)
}

func TestTable_delete_KeepsChainOrder(t *testing.T) {
	// Force every key into bucket 0 so the chain order is observable.
	collisionHash := func(k int) uint64 {
		return 0
	}

	tt := newTable(WithHashFunc[int, int](collisionHash))

	for _, k := range []int{1, 2, 3, 4} {
		require.True(t, tt.insert(k, k))
	}

	require.True(t, tt.delete(2))

	keys := make([]int, 0, 3)
	for _, e := range tt.buckets[0] {
		keys = append(keys, e.key)
	}
	require.Equal(t, []int{1, 3, 4}, keys)
}

func TestTable_delete_Shrink(t *testing.T) {
	tt := newTable[int, int]()

	for i := range 100 {
		require.True(t, tt.insert(i, i))
	}
	grown := len(tt.buckets)
	require.Greater(t, grown, minCapacity)

	for i := range 98 {
		require.True(t, tt.delete(i))
		checkBand(t, tt)
	}

	require.Equal(t, 2, tt.size)
	require.Equal(t, minCapacity, len(tt.buckets))

	// The two survivors are still reachable.
	for i := 98; i < 100; i++ {
		_, _, found := tt.locate(i)
		require.True(t, found)
	}
}

func TestTable_rebuild_PreservesEntries(t *testing.T) {
	tt := newTable[int, string]()

	for i := range 50 {
		require.True(t, tt.insert(i, "v"))
	}

	tt.rebuild()

	require.Equal(t, 50, tt.size)
	for i := range 50 {
		bucket, offset, found := tt.locate(i)
		require.True(t, found)
		require.Equal(t, "v", tt.buckets[bucket][offset].value)
	}
}

func TestTable_clear(t *testing.T) {
	tt := newTable[int, int]()

	for i := range 40 {
		require.True(t, tt.insert(i, i))
	}

	tt.clear()

	require.Zero(t, tt.size)
	require.Len(t, tt.buckets, minCapacity)

	_, _, found := tt.locate(7)
	require.False(t, found)
}
