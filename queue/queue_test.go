package queue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/queue"
)

func TestQueue_ZeroValueUsable(t *testing.T) {
	var q queue.Queue[int]
	require.True(t, q.IsEmpty())
	require.Equal(t, 0, q.Len())

	q.Enqueue(1)
	require.False(t, q.IsEmpty())
	require.Equal(t, []int{1}, q.Values())
}

func TestQueue_FIFOOrder(t *testing.T) {
	q := queue.New[int]()
	for i := 10; i < 100; i += 10 {
		q.Enqueue(i)
	}
	require.Equal(t, 9, q.Len())

	for want := 10; want < 100; want += 10 {
		head, err := q.Peek()
		require.NoError(t, err)
		require.Equal(t, want, head)

		got, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.True(t, q.IsEmpty())
}

func TestQueue_EmptyErrors(t *testing.T) {
	q := queue.New[string]()

	_, err := q.Dequeue()
	require.ErrorIs(t, err, queue.ErrEmptyQueue)
	_, err = q.Peek()
	require.ErrorIs(t, err, queue.ErrEmptyQueue)
}

func TestQueue_ReuseAfterDrain(t *testing.T) {
	q := queue.New[int]()
	q.Enqueue(1)
	q.Enqueue(2)

	_, err := q.Dequeue()
	require.NoError(t, err)
	_, err = q.Dequeue()
	require.NoError(t, err)
	require.True(t, q.IsEmpty())

	// Both ends must be reset so the next Enqueue rebuilds the chain.
	q.Enqueue(3)
	require.Equal(t, []int{3}, q.Values())
	head, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, 3, head)
}

func TestQueue_String(t *testing.T) {
	q := queue.New[int]()
	require.Equal(t, "", q.String())

	q.Enqueue(10)
	require.Equal(t, "10", q.String())
	q.Enqueue(20)
	q.Enqueue(30)
	require.Equal(t, "10, 20, 30", q.String())
}

func TestQueue_PeekDoesNotRemove(t *testing.T) {
	q := queue.New[string]()
	q.Enqueue("a")
	q.Enqueue("b")

	for i := 0; i < 3; i++ {
		head, err := q.Peek()
		require.NoError(t, err)
		require.Equal(t, "a", head)
	}
	require.Equal(t, 2, q.Len())
}
