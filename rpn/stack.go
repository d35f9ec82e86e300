// Package rpn keeps a small slice-backed stack for both passes.
package rpn

// stack is a LIFO over a slice. The zero value is an empty stack.
type stack[T any] struct {
	items []T
}

// push places v on top of the stack.
func (s *stack[T]) push(v T) {
	s.items = append(s.items, v)
}

// pop removes and returns the top value; ok is false on an empty stack.
func (s *stack[T]) pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return v, true
}

// top returns the top value without removing it; ok is false when empty.
func (s *stack[T]) top() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// empty reports whether the stack holds no values.
func (s *stack[T]) empty() bool {
	return len(s.items) == 0
}

// len returns the number of stacked values.
func (s *stack[T]) len() int {
	return len(s.items)
}
