// Package hashmap implements a separate-chaining hash table whose hash
// function is supplied by the caller.
//
// Iteration order depends on the hash values and on the current number of
// buckets. It is not part of the contract.
package hashmap

import (
	"iter"
	"slices"
)

const (
	defaultBuckets       = 8
	defaultMaxLoadFactor = 1.0
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Map is a hash table keyed by K. It is not safe for concurrent use.
// A Map must be created with New: the zero value has no Hasher and
// panics on first use.
type Map[K comparable, V any] struct {
	hash          Hasher[K]
	buckets       [][]entry[K, V]
	size          int
	maxLoadFactor float64
}

// Option configures a Map at construction time.
type Option func(*options)

type options struct {
	buckets       int
	maxLoadFactor float64
}

// WithBuckets sets the initial bucket count. Values below 1 are ignored.
func WithBuckets(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.buckets = n
		}
	}
}

// WithMaxLoadFactor sets the entries-per-bucket ratio above which the
// table doubles. Non-positive values are ignored.
func WithMaxLoadFactor(f float64) Option {
	return func(o *options) {
		if f > 0 {
			o.maxLoadFactor = f
		}
	}
}

// New returns an empty Map that hashes keys with h.
func New[K comparable, V any](h Hasher[K], opts ...Option) *Map[K, V] {
	if h == nil {
		panic("hashmap: nil Hasher")
	}
	o := options{buckets: defaultBuckets, maxLoadFactor: defaultMaxLoadFactor}
	for _, opt := range opts {
		opt(&o)
	}
	return &Map[K, V]{
		hash:          h,
		buckets:       make([][]entry[K, V], o.buckets),
		maxLoadFactor: o.maxLoadFactor,
	}
}

func (m *Map[K, V]) index(k K) int {
	if m.hash == nil {
		panic("hashmap: Map used without New")
	}
	return int(m.hash(k) % uint64(len(m.buckets)))
}

// Put inserts or replaces the value stored under k.
func (m *Map[K, V]) Put(k K, v V) {
	b := m.index(k)
	for i := range m.buckets[b] {
		if m.buckets[b][i].key == k {
			m.buckets[b][i].value = v
			return
		}
	}
	m.buckets[b] = append(m.buckets[b], entry[K, V]{key: k, value: v})
	m.size++

	if m.LoadFactor() > m.maxLoadFactor {
		m.rehash(len(m.buckets) * 2)
	}
}

// Get returns the value stored under k and whether it was present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	for _, e := range m.buckets[m.index(k)] {
		if e.key == k {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes k and reports whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	b := m.index(k)
	for i, e := range m.buckets[b] {
		if e.key == k {
			m.buckets[b] = slices.Delete(m.buckets[b], i, i+1)
			m.size--
			return true
		}
	}
	return false
}

func (m *Map[K, V]) Len() int     { return m.size }
func (m *Map[K, V]) Buckets() int { return len(m.buckets) }

// LoadFactor is the average number of entries per bucket.
func (m *Map[K, V]) LoadFactor() float64 {
	if len(m.buckets) == 0 {
		return 0
	}
	return float64(m.size) / float64(len(m.buckets))
}

// All yields every key/value pair, bucket by bucket.
// The map must not be modified during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Keys returns the keys in iteration order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.size)
	for k := range m.All() {
		out = append(out, k)
	}
	return out
}

// Values returns the values in iteration order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, m.size)
	for _, v := range m.All() {
		out = append(out, v)
	}
	return out
}

func (m *Map[K, V]) rehash(n int) {
	old := m.buckets
	m.buckets = make([][]entry[K, V], n)
	for _, bucket := range old {
		for _, e := range bucket {
			b := m.index(e.key)
			m.buckets[b] = append(m.buckets[b], e)
		}
	}
}
