package util

import "math/rand/v2"

// Source supplies uniformly distributed integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

func sourceOrGlobal(r Source) Source {
	if r == nil {
		return globalSource{}
	}
	return r
}

// Shuffle permutes s in place with the Fisher-Yates algorithm. A nil Source uses the global generator.
func Shuffle[T any](s []T, r Source) {
	r = sourceOrGlobal(r)
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// InsertRandom inserts item at a uniformly chosen position in [0, len(*s)], the end included.
func InsertRandom[T any](s *[]T, item T, r Source) Insertion[T] {
	return Insert(s, item, sourceOrGlobal(r).IntN(len(*s)+1))
}
