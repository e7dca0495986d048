// Package util provides a collection of domain-agnostic utility functions and cross-platform helpers.
package util

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

var (
	// ErrEmptySequence is returned by wraparound accessors when the sequence has no elements.
	ErrEmptySequence = errors.New("empty sequence")

	// ErrIndexOutOfRange is returned when a positional operation receives an index outside [0, len).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Removal describes the outcome of removing a single element.
// Index is -1 and Existed is false when nothing was removed.
type Removal[T any] struct {
	Item    T
	Index   int
	Existed bool
}

// Removals describes the outcome of removing every occurrence of an element.
type Removals[T any] struct {
	Item T
	// Indexes are positions in the slice as it was at the moment of each removal,
	// so every entry after the first is relative to an already shortened slice.
	Indexes []int
	Existed bool
}

// Insertion describes where an element ended up after an insert.
type Insertion[T any] struct {
	Item  T
	Index int
}

// Presence describes the outcome of EnsureOne.
type Presence[T any] struct {
	Item    T
	Index   int
	Existed bool
}

// Contains reports whether item occurs in s.
func Contains[T comparable](s []T, item T) bool {
	return lo.Contains(s, item)
}

// IndexOf returns the index of the first occurrence of item in s, or -1.
func IndexOf[T comparable](s []T, item T) int {
	return lo.IndexOf(s, item)
}

// Copy returns a shallow copy of s. A nil slice stays nil.
func Copy[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

// Last returns the final element of s, if any.
func Last[T any](s []T) mo.Option[T] {
	if len(s) == 0 {
		return mo.None[T]()
	}
	return mo.Some(s[len(s)-1])
}

// ItemAt returns the element at index, wrapping indexes outside [0, len) around the slice.
// ItemAt(s, len(s)) is s[0] and ItemAt(s, -1) is the last element.
func ItemAt[T any](s []T, index int) (item T, err error) {
	if len(s) == 0 {
		return item, ErrEmptySequence
	}
	return s[Mod(index, len(s))], nil
}

// Occurrence returns which instance of s[index] that position holds, counting from 1.
// For [5 6 5 6], Occurrence(s, 2) is 2 because it is the second 5. It panics if index is out of range.
func Occurrence[T comparable](s []T, index int) int {
	n := 1
	for i := 0; i < index; i++ {
		if s[i] == s[index] {
			n++
		}
	}
	return n
}

// Remove deletes the first occurrence of item from *s in place.
func Remove[T comparable](s *[]T, item T) Removal[T] {
	index := lo.IndexOf(*s, item)
	if index == -1 {
		return Removal[T]{Item: item, Index: -1}
	}

	*s = deleteAt(*s, index)
	return Removal[T]{Item: item, Index: index, Existed: true}
}

// RemoveAll deletes every occurrence of item from *s in place.
// See Removals for how the reported indexes are to be read.
func RemoveAll[T comparable](s *[]T, item T) Removals[T] {
	var indexes []int

	for index := lo.IndexOf(*s, item); index != -1; index = lo.IndexOf(*s, item) {
		indexes = append(indexes, index)
		*s = deleteAt(*s, index)
	}

	return Removals[T]{Item: item, Indexes: indexes, Existed: len(indexes) > 0}
}

// RemoveMultiple deletes the first occurrence of each of items from *s and returns how many were removed.
func RemoveMultiple[T comparable](s *[]T, items ...T) int {
	var removed int
	for _, item := range items {
		if Remove(s, item).Existed {
			removed++
		}
	}
	return removed
}

// RemoveAt deletes the element at index from *s in place.
// An out of range index, including -1, reports Existed false and leaves *s untouched.
func RemoveAt[T any](s *[]T, index int) Removal[T] {
	if index < 0 || index >= len(*s) {
		return Removal[T]{Index: -1}
	}

	item := (*s)[index]
	*s = deleteAt(*s, index)
	return Removal[T]{Item: item, Index: index, Existed: true}
}

// Insert places item at index in *s, shifting the following elements right.
// The index is clamped to [0, len(*s)].
func Insert[T any](s *[]T, item T, index int) Insertion[T] {
	index = max(0, min(index, len(*s)))

	var zero T
	*s = append(*s, zero)
	copy((*s)[index+1:], (*s)[index:])
	(*s)[index] = item

	return Insertion[T]{Item: item, Index: index}
}

// InsertFunc places item before the first element e for which less(item, e) holds,
// or appends it when there is none. With the comparator used for MergeSort this keeps
// a sorted slice sorted, and equal elements stay in insertion order.
func InsertFunc[T any](s *[]T, item T, less LessFunc[T]) Insertion[T] {
	for i, existing := range *s {
		if less(item, existing) {
			return Insert(s, item, i)
		}
	}

	*s = append(*s, item)
	return Insertion[T]{Item: item, Index: len(*s) - 1}
}

// EnsureOne appends item to *s unless an equal element is already present.
// Duplicates that are already in the slice are left alone.
func EnsureOne[T comparable](s *[]T, item T) Presence[T] {
	if index := lo.IndexOf(*s, item); index != -1 {
		return Presence[T]{Item: item, Index: index, Existed: true}
	}

	*s = append(*s, item)
	return Presence[T]{Item: item, Index: len(*s) - 1}
}

// Swap exchanges the elements at i and j in place.
func Swap[T any](s []T, i, j int) error {
	if i < 0 || i >= len(s) {
		return fmt.Errorf("swap %d: %w", i, ErrIndexOutOfRange)
	}
	if j < 0 || j >= len(s) {
		return fmt.Errorf("swap %d: %w", j, ErrIndexOutOfRange)
	}

	s[i], s[j] = s[j], s[i]
	return nil
}

// SwapItems exchanges the first occurrences of a and b in place.
// It reports false and changes nothing when either element is missing.
func SwapItems[T comparable](s []T, a, b T) bool {
	i, j := lo.IndexOf(s, a), lo.IndexOf(s, b)
	if i == -1 || j == -1 {
		return false
	}

	s[i], s[j] = s[j], s[i]
	return true
}

func deleteAt[T any](s []T, index int) []T {
	copy(s[index:], s[index+1:])

	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}
