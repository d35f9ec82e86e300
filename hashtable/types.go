// Package hashtable defines the table types and sentinel errors.
package hashtable

import "errors"

// ErrOptionViolation is returned by New when a construction option
// carries an invalid value.
var ErrOptionViolation = errors.New("hashtable: option violation")

// DefaultBuckets is the initial bucket count when WithBuckets is not given.
const DefaultBuckets = 16

// loadFactor is the occupancy threshold that triggers bucket doubling.
const loadFactor = 0.75

// entry is one link of a bucket chain. The hash is kept so growth can
// redistribute entries without rehashing the keys.
type entry[V any] struct {
	key   string
	hash  uint64
	value V
	next  *entry[V]
}

// Table is a separately chained hash table with string keys.
// The bucket count is always a power of two. Not safe for concurrent use.
type Table[V any] struct {
	buckets []*entry[V]
	size    int
}
