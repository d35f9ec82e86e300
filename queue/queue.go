// Package queue implements the FIFO operations.
package queue

import (
	"fmt"
	"strings"
)

// Len returns the number of queued values.
//
// Complexity: O(1).
func (q *Queue[T]) Len() int {
	return q.size
}

// IsEmpty reports whether the queue holds no values.
//
// Complexity: O(1).
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Enqueue appends v at the tail of the queue.
//
// Complexity: O(1).
func (q *Queue[T]) Enqueue(v T) {
	n := &node[T]{value: v}
	if q.tail == nil {
		q.head, q.tail = n, n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.size++
}

// Dequeue removes and returns the head value.
// Returns ErrEmptyQueue when the queue is empty.
//
// Complexity: O(1).
func (q *Queue[T]) Dequeue() (T, error) {
	if q.head == nil {
		var zero T
		return zero, ErrEmptyQueue
	}

	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--

	return n.value, nil
}

// Peek returns the head value without removing it.
// Returns ErrEmptyQueue when the queue is empty.
//
// Complexity: O(1).
func (q *Queue[T]) Peek() (T, error) {
	if q.head == nil {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.head.value, nil
}

// Values returns the queued values head to tail.
// Returns nil for an empty queue.
func (q *Queue[T]) Values() []T {
	if q.size == 0 {
		return nil
	}

	out := make([]T, 0, q.size)
	for n := q.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// String renders the queue head to tail as "a, b, c".
//
// Complexity: O(n).
func (q *Queue[T]) String() string {
	var sb strings.Builder
	for n := q.head; n != nil; n = n.next {
		if n != q.head {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", n.value)
	}

	return sb.String()
}
