package util

// LessFunc reports whether a should come before b. It must be a strict ordering:
// LessFunc(x, x) is false. A non-strict comparator such as <= makes MergeSort
// put equal elements from the right half first, which reverses ties.
type LessFunc[T any] func(a, b T) bool

// MergeSort returns a stably sorted copy of s. The input slice is not modified.
//
// Elements that compare equal keep their relative input order.
func MergeSort[T any](s []T, less LessFunc[T]) []T {
	if len(s) <= 1 {
		return Copy(s)
	}

	middle := len(s) / 2
	return merge(MergeSort(s[:middle], less), MergeSort(s[middle:], less), less)
}

func merge[T any](left, right []T, less LessFunc[T]) []T {
	merged := make([]T, 0, len(left)+len(right))

	var l, r int
	for l < len(left) && r < len(right) {
		// Right wins only when strictly smaller; ties go to the left half.
		if less(right[r], left[l]) {
			merged = append(merged, right[r])
			r++
		} else {
			merged = append(merged, left[l])
			l++
		}
	}

	merged = append(merged, left[l:]...)
	return append(merged, right[r:]...)
}
