package node

// Queue is a FIFO container used for breadth-first traversal.
type Queue[T any] struct {
	items []T
}

func (q *Queue[T]) Size() int {
	return len(q.items)
}

func (q *Queue[T]) Enqueue(items ...T) {
	q.items = append(q.items, items...)
}

// Dequeue removes and returns the oldest item. Dequeue on an empty queue returns the zero value.
func (q *Queue[T]) Dequeue() T {
	var zero T
	if len(q.items) == 0 {
		return zero
	}
	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return item
}
