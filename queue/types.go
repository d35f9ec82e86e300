// Package queue defines the queue type and its sentinel error.
package queue

import "errors"

// ErrEmptyQueue is returned by Dequeue and Peek on an empty queue.
var ErrEmptyQueue = errors.New("queue: queue is empty")

// node is one link of the chain.
type node[T any] struct {
	value T
	next  *node[T]
}

// Queue is a singly linked FIFO queue with head and tail pointers.
// The zero value is an empty queue ready to use. Not safe for concurrent use.
type Queue[T any] struct {
	head, tail *node[T]
	size       int
}

// New returns an empty queue. Equivalent to &Queue[T]{}.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}
