// Package hashtable implements a separately chained hash table with
// string keys.
//
// What:
//
//   - Table[V] maps string keys to values of any type through FNV-1a
//     hashing and per-bucket entry chains.
//   - Buckets double once the load factor passes 0.75, so chains stay
//     short as the table grows.
//   - Set upserts, Get reports presence, Delete unlinks, Each iterates
//     with early stop, String renders entries sorted by key.
//
// Why:
//
//   - The classic open-hashing exercise: collisions are resolved by
//     walking an explicit chain, not by probing or by the built-in map.
//
// Complexity:
//
//   - Set / Get / Delete: O(1) average, O(n) worst case; growth is
//     amortized across inserts.
//   - Keys / Each: O(n). String: O(n log n) for the key sort.
//
// Options:
//
//   - WithBuckets(n): initial bucket count, rounded up to a power of
//     two. n < 1 makes New return ErrOptionViolation.
//
// Errors:
//
//   - ErrOptionViolation: invalid construction option.
//
// See: docs/HASHTABLE.md for the exercise notes.
package hashtable
