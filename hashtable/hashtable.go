// Package hashtable implements the chained table operations.
package hashtable

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// New constructs an empty table.
//
//  1. Apply options over the defaults.
//  2. Validate the requested bucket count.
//  3. Round the count up to a power of two so indexing can mask.
//
// Returns ErrOptionViolation when an option carries an invalid value.
func New[V any](opts ...Option) (*Table[V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.buckets < 1 {
		return nil, fmt.Errorf("%w: buckets %d, want >= 1", ErrOptionViolation, cfg.buckets)
	}

	return &Table[V]{buckets: make([]*entry[V], nextPow2(cfg.buckets))}, nil
}

// Len returns the number of stored entries.
//
// Complexity: O(1).
func (t *Table[V]) Len() int {
	return t.size
}

// Buckets returns the current bucket count.
func (t *Table[V]) Buckets() int {
	return len(t.buckets)
}

// Set stores v under key, replacing any previous value.
//
//  1. Hash the key and walk its chain; an existing entry is updated in place.
//  2. Grow once the insert would push the load factor past the threshold.
//  3. Prepend the new entry to its chain.
//
// Complexity: O(1) average, amortized across growth.
func (t *Table[V]) Set(key string, v V) {
	if len(t.buckets) == 0 {
		t.buckets = make([]*entry[V], DefaultBuckets)
	}

	h := hashKey(key)
	idx := h & uint64(len(t.buckets)-1)
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			e.value = v
			return
		}
	}

	if float64(t.size+1) > loadFactor*float64(len(t.buckets)) {
		t.grow()
		idx = h & uint64(len(t.buckets)-1)
	}

	t.buckets[idx] = &entry[V]{key: key, hash: h, value: v, next: t.buckets[idx]}
	t.size++
}

// Get returns the value stored under key and whether it was present.
//
// Complexity: O(1) average.
func (t *Table[V]) Get(key string) (V, bool) {
	if t.size == 0 {
		var zero V
		return zero, false
	}

	idx := hashKey(key) & uint64(len(t.buckets)-1)
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}

	var zero V
	return zero, false
}

// Delete removes the entry stored under key and reports whether one existed.
//
// Complexity: O(1) average.
func (t *Table[V]) Delete(key string) bool {
	if t.size == 0 {
		return false
	}

	idx := hashKey(key) & uint64(len(t.buckets)-1)
	var prev *entry[V]
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key != key {
			prev = e
			continue
		}
		if prev == nil {
			t.buckets[idx] = e.next
		} else {
			prev.next = e.next
		}
		t.size--

		return true
	}

	return false
}

// Keys returns all stored keys in no particular order.
func (t *Table[V]) Keys() []string {
	if t.size == 0 {
		return nil
	}

	out := make([]string, 0, t.size)
	t.Each(func(key string, _ V) bool {
		out = append(out, key)
		return true
	})

	return out
}

// Each calls fn for every entry until fn returns false.
// Iteration order is unspecified.
func (t *Table[V]) Each(fn func(key string, v V) bool) {
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// String renders the entries sorted by key as "k1=v1, k2=v2", so equal
// contents produce equal strings regardless of insertion order.
//
// Complexity: O(n log n).
func (t *Table[V]) String() string {
	pairs := make([]string, 0, t.size)
	t.Each(func(key string, v V) bool {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, v))
		return true
	})
	sort.Strings(pairs)

	return strings.Join(pairs, ", ")
}

// grow doubles the bucket slice and relinks every entry into its new chain.
// Stored hashes make this a pure redistribution pass.
func (t *Table[V]) grow() {
	next := make([]*entry[V], 2*len(t.buckets))
	mask := uint64(len(next) - 1)
	for _, head := range t.buckets {
		for e := head; e != nil; {
			after := e.next
			idx := e.hash & mask
			e.next = next[idx]
			next[idx] = e
			e = after
		}
	}
	t.buckets = next
}

// hashKey hashes key with 64-bit FNV-1a.
func hashKey(key string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))

	return h.Sum64()
}

// nextPow2 rounds n up to the nearest power of two.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
