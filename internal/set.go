package internal

import (
	"cmp"
	"slices"
)

type orderedComparable interface {
	comparable
	cmp.Ordered
}

// OrderedSet is an unordered collection of unique values that can be listed in sorted order.
type OrderedSet[T orderedComparable] map[T]struct{}

func NewOrderedSet[T orderedComparable](is ...T) OrderedSet[T] {
	s := make(OrderedSet[T], len(is))
	s.Add(is...)
	return s
}

func (s OrderedSet[T]) Add(ids ...T) {
	for _, i := range ids {
		s[i] = struct{}{}
	}
}

func (s OrderedSet[T]) Contains(i T) bool {
	_, ok := s[i]
	return ok
}

func (s OrderedSet[T]) List() []T {
	ret := make([]T, 0, len(s))
	for i := range s {
		ret = append(ret, i)
	}
	return ret
}

func (s OrderedSet[T]) Sorted() []T {
	ids := s.List()
	slices.Sort(ids)
	return ids
}
