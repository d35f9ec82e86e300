// Package linkedlist defines the list types and sentinel errors.
package linkedlist

import "errors"

// Sentinel errors for list operations.
var (
	// ErrEmptyList is returned by reads and pops on an empty list.
	ErrEmptyList = errors.New("linkedlist: list is empty")

	// ErrIndexOutOfRange is returned by positional operations outside
	// the valid range.
	ErrIndexOutOfRange = errors.New("linkedlist: index out of range")
)

// node is one link of the chain.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked list with head and tail pointers.
// The zero value is an empty list ready to use. Not safe for concurrent use.
type List[T any] struct {
	head, tail *node[T]
	size       int
}

// New returns an empty list. Equivalent to &List[T]{}.
func New[T any]() *List[T] {
	return &List[T]{}
}
