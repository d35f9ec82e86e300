// Package queue implements a generic linked FIFO queue.
//
// What:
//
//   - Queue[T] enqueues at the tail and dequeues at the head, both O(1),
//     through an explicit head/tail pointer chain.
//   - The zero value is an empty queue ready to use; New is a convenience.
//   - Peek reads the head without removing it; String renders "a, b, c".
//
// Why:
//
//   - A linked list restricted to FIFO semantics: the exercise is keeping
//     both ends consistent while only ever touching one of them per op.
//
// Complexity:
//
//   - Enqueue / Dequeue / Peek / Len / IsEmpty: O(1).
//   - String: O(n).
//
// Errors:
//
//   - ErrEmptyQueue: Dequeue or Peek on an empty queue.
//
// See: docs/QUEUE.md for the exercise notes.
package queue
