package node

// Stack is a LIFO container used for depth-first traversal.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Size() int {
	return len(s.items)
}

func (s *Stack[T]) Push(items ...T) {
	s.items = append(s.items, items...)
}

// Pop removes and returns the most recently pushed item. Pop on an empty stack returns the zero value.
func (s *Stack[T]) Pop() T {
	var zero T
	if len(s.items) == 0 {
		return zero
	}
	last := len(s.items) - 1
	item := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return item
}
