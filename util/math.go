package util

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Max returns the largest of items, or the zero value when there are none.
func Max[T constraints.Ordered](items ...T) T {
	return lo.Max(items)
}

// Min returns the smallest of items, or the zero value when there are none.
func Min[T constraints.Ordered](items ...T) T {
	return lo.Min(items)
}

// Mod returns x modulo m in the range [0, m) for positive m, also for negative x.
// It panics when m is zero.
func Mod(x, m int) int {
	if x >= 0 {
		return x % m
	}

	r := -x % m
	if r == 0 {
		return 0
	}
	return m - r
}

// Sign returns 1, -1 or 0 depending on the sign of n.
func Sign[T constraints.Signed | constraints.Float](n T) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// Range returns the integers from startInclusive up to, but not including, endExclusive.
func Range(startInclusive, endExclusive int) []int {
	if endExclusive <= startInclusive {
		return []int{}
	}

	ret := make([]int, 0, endExclusive-startInclusive)
	for i := startInclusive; i < endExclusive; i++ {
		ret = append(ret, i)
	}
	return ret
}

// RainbowColor maps n in [0, 1] onto a red, green, blue gradient and returns it as a CSS rgb() string.
func RainbowColor(n float64) string {
	var r, g, b float64

	if n < 0.5 {
		r, g = 1, 2*n
	} else {
		r, g = 1-2*(n-0.5), 1
	}

	if n > 0.5 {
		b = 2 * (n - 0.5)
	}

	return fmt.Sprintf("rgb(%d,%d,%d)", int(255*r), int(255*g), int(255*b))
}
