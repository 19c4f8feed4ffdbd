package hashmap

import "github.com/cespare/xxhash/v2"

// Hasher maps a key to a bucket-independent hash value.
// A Hasher must be deterministic: the same key always yields the same value.
type Hasher[K comparable] func(K) uint64

// WeightedSum hashes s as the sum over each byte position j of
// (j+1) * s[j]. Anagrams get different hashes, but short keys collide
// easily, so prefer XXHash when the key set is large.
func WeightedSum(s string) uint64 {
	var h uint64
	for j := 0; j < len(s); j++ {
		h += uint64(j+1) * uint64(s[j])
	}
	return h
}

// XXHash hashes s with xxHash64.
func XXHash(s string) uint64 { return xxhash.Sum64String(s) }
