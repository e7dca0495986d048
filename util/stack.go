package util

import "github.com/samber/mo"

// Stack is a last-in-first-out collection. A positive Limit bounds its size by
// discarding the oldest entries on Push; the zero value is unbounded.
type Stack[T any] struct {
	Limit int
	items []T
}

// Push puts item on top, evicting the bottom entry when the stack is at its limit.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
	if s.Limit > 0 && len(s.items) > s.Limit {
		RemoveAt(&s.items, 0)
	}
}

// Pop removes and returns the top entry.
func (s *Stack[T]) Pop() mo.Option[T] {
	top := s.Peek()
	if top.IsPresent() {
		RemoveAt(&s.items, len(s.items)-1)
	}
	return top
}

// Peek returns the top entry without removing it.
func (s *Stack[T]) Peek() mo.Option[T] {
	return Last(s.items)
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) Clear() {
	s.items = nil
}
