package linkedlist

import (
	"fmt"
	"strings"
)

// Len returns the number of elements. Complexity: O(1).
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no elements. Complexity: O(1).
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// PushFront prepends v. Complexity: O(1).
func (l *List[T]) PushFront(v T) {
	n := &node[T]{value: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// PushBack appends v. Complexity: O(1).
func (l *List[T]) PushBack(v T) {
	n := &node[T]{value: v}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// InsertAt places v before the element at index i, so the new element ends
// up at position i. An index equal to Len() appends. Complexity: O(n).
func (l *List[T]) InsertAt(i int, v T) error {
	switch {
	case i < 0 || i > l.size:
		return fmt.Errorf("%w: insert at %d with length %d", ErrIndexOutOfRange, i, l.size)
	case i == 0:
		l.PushFront(v)
	case i == l.size:
		l.PushBack(v)
	default:
		prev := l.nodeAt(i - 1)
		prev.next = &node[T]{value: v, next: prev.next}
		l.size++
	}

	return nil
}

// Front returns the first element. Complexity: O(1).
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T

		return zero, ErrEmptyList
	}

	return l.head.value, nil
}

// Back returns the last element. Complexity: O(1).
func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T

		return zero, ErrEmptyList
	}

	return l.tail.value, nil
}

// At returns the element at index i. Complexity: O(n).
func (l *List[T]) At(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T

		return zero, fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, i, l.size)
	}

	return l.nodeAt(i).value, nil
}

// PopFront removes and returns the first element. Complexity: O(1).
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T

		return zero, ErrEmptyList
	}
	v := l.head.value
	l.head = l.head.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--

	return v, nil
}

// PopBack removes and returns the last element. A singly linked chain has
// no back pointer, so the walk to the penultimate node costs O(n).
func (l *List[T]) PopBack() (T, error) {
	switch l.size {
	case 0:
		var zero T

		return zero, ErrEmptyList
	case 1:
		return l.PopFront()
	}
	prev := l.nodeAt(l.size - 2)
	v := prev.next.value
	prev.next = nil
	l.tail = prev
	l.size--

	return v, nil
}

// RemoveAt removes and returns the element at index i. Complexity: O(n).
func (l *List[T]) RemoveAt(i int) (T, error) {
	switch {
	case i < 0 || i >= l.size:
		var zero T

		return zero, fmt.Errorf("%w: remove at %d with length %d", ErrIndexOutOfRange, i, l.size)
	case i == 0:
		return l.PopFront()
	case i == l.size-1:
		return l.PopBack()
	}
	prev := l.nodeAt(i - 1)
	v := prev.next.value
	prev.next = prev.next.next
	l.size--

	return v, nil
}

// Each calls fn on every element front to back, stopping early when fn
// returns false. Complexity: O(n).
func (l *List[T]) Each(fn func(v T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(n.value) {
			return
		}
	}
}

// Values copies the elements front to back. Complexity: O(n).
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// String renders the elements as "a, b, c".
func (l *List[T]) String() string {
	var b strings.Builder
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, n.value)
	}

	return b.String()
}

// nodeAt walks to index i. Callers guarantee 0 ≤ i < size.
func (l *List[T]) nodeAt(i int) *node[T] {
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}

	return n
}
