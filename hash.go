package hashtable

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to a 64-bit hash. The table reduces the result
// modulo its current bucket count.
type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc builds a functor over any comparable key type,
// seeded so that bucket placement differs between table instances.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// StringHash is a seedless xxhash functor for string keys. Unlike the
// maphash default it is deterministic across processes.
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// BytesKeyHash builds a functor for key types that expose a byte
// representation, hashing it with xxhash.
func BytesKeyHash[K comparable](bytes func(K) []byte) HashFunc[K] {
	return func(k K) uint64 {
		return xxhash.Sum64(bytes(k))
	}
}
