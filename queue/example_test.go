// File: queue/example_test.go
package queue_test

import (
	"fmt"

	"github.com/katalvlaran/katas/queue"
)

// ExampleQueue fills a queue with 10..90 and drains it again.
// Scenario:
//
//   - Print the queue after every Enqueue, then before every Dequeue.
//   - Order is strictly first in, first out.
func ExampleQueue() {
	q := queue.New[int]()

	for i := 10; i < 100; i += 10 {
		q.Enqueue(i)
		fmt.Println(q)
	}

	for !q.IsEmpty() {
		fmt.Println(q)
		_, _ = q.Dequeue()
	}

	fmt.Println("job done")

	// Output:
	// 10
	// 10, 20
	// 10, 20, 30
	// 10, 20, 30, 40
	// 10, 20, 30, 40, 50
	// 10, 20, 30, 40, 50, 60
	// 10, 20, 30, 40, 50, 60, 70
	// 10, 20, 30, 40, 50, 60, 70, 80
	// 10, 20, 30, 40, 50, 60, 70, 80, 90
	// 10, 20, 30, 40, 50, 60, 70, 80, 90
	// 20, 30, 40, 50, 60, 70, 80, 90
	// 30, 40, 50, 60, 70, 80, 90
	// 40, 50, 60, 70, 80, 90
	// 50, 60, 70, 80, 90
	// 60, 70, 80, 90
	// 70, 80, 90
	// 80, 90
	// 90
	// job done
}
