// Package linkedlist implements a generic singly linked list with head and
// tail pointers and positional access.
//
// What:
//
//   - List[T] supports O(1) pushes at both ends, O(1) front pops, and
//     0-indexed positional insert/lookup/removal.
//   - The zero value is an empty list ready to use; New is a convenience.
//   - Each iterates with early stop; String renders "a, b, c".
//
// Why:
//
//   - The classic pointer-chain exercise: every operation manipulates
//     explicit next links, nothing is borrowed from container/list.
//
// Complexity:
//
//   - PushFront / PushBack / Front / Back / PopFront: O(1).
//   - InsertAt / At / RemoveAt / PopBack: O(n).
//
// Errors:
//
//   - ErrEmptyList: read or pop on an empty list.
//   - ErrIndexOutOfRange: positional op outside [0, Len()].
//
// See: docs/LINKEDLIST.md for the exercise notes.
package linkedlist
