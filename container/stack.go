package container

import "iter"

// NewStack pushes vals in order, so the last one ends up on top.
func NewStack[T any](vals ...T) *Stack[T] {
	s := &Stack[T]{}

	for _, v := range vals {
		s.Push(v)
	}

	return s
}

type stackNode[T any] struct {
	item T
	down *stackNode[T]
}

type Stack[T any] struct {
	top *stackNode[T]
	len int
}

func (s *Stack[T]) Empty() bool {
	return s.len == 0
}

func (s *Stack[T]) Len() int {
	return s.len
}

func (s *Stack[T]) Push(v T) {
	s.top = &stackNode[T]{
		item: v,
		down: s.top,
	}
	s.len++
}

func (s *Stack[T]) Peek() (zero T, _ error) {
	if s.len == 0 {
		return zero, ErrEmptyContainer
	}

	return s.top.item, nil
}

func (s *Stack[T]) Pop() (zero T, _ error) {
	if s.len == 0 {
		return zero, ErrEmptyContainer
	}

	top := s.top
	s.top = top.down
	s.len--

	return top.item, nil
}

// All yields items from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.top; n != nil; n = n.down {
			if !yield(n.item) {
				return
			}
		}
	}
}

func (s *Stack[T]) Clear() {
	s.top = nil
	s.len = 0
}
