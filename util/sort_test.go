package util

import (
	"math/rand/v2"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type keyed struct {
	key   int
	label string
}

func byKey(a, b keyed) bool { return a.key < b.key }

func ascending(a, b int) bool { return a < b }

func isSorted[T any](s []T, less LessFunc[T]) bool {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}

func counts(s []int) map[int]int {
	m := make(map[int]int)
	for _, v := range s {
		m[v]++
	}
	return m
}

func TestMergeSort(t *testing.T) {
	Convey("MergeSort", t, func() {
		Convey("Sorts integers ascending", func() {
			So(MergeSort([]int{5, 1, 4, 2, 3}, ascending), ShouldResemble, []int{1, 2, 3, 4, 5})
		})

		Convey("Honors a descending comparator", func() {
			desc := func(a, b int) bool { return a > b }
			So(MergeSort([]int{5, 1, 4, 2, 3}, desc), ShouldResemble, []int{5, 4, 3, 2, 1})
		})

		Convey("Does not modify its input", func() {
			in := []int{3, 2, 1}
			out := MergeSort(in, ascending)
			So(in, ShouldResemble, []int{3, 2, 1})

			out[0] = 42
			So(in[2], ShouldEqual, 1)
		})

		Convey("Handles empty and single element input", func() {
			So(MergeSort([]int{}, ascending), ShouldBeEmpty)
			So(MergeSort([]int{7}, ascending), ShouldResemble, []int{7})

			one := []int{7}
			MergeSort(one, ascending)[0] = 8
			So(one[0], ShouldEqual, 7)
		})

		Convey("Keeps equal keys in input order", func() {
			So(MergeSort([]keyed{{1, "a"}, {1, "b"}}, byKey), ShouldResemble, []keyed{{1, "a"}, {1, "b"}})

			in := []keyed{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}, {0, "e"}, {2, "f"}}
			So(MergeSort(in, byKey), ShouldResemble, []keyed{
				{0, "e"}, {1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}, {2, "f"},
			})
		})

		Convey("A non-strict comparator reverses ties", func() {
			atMost := func(a, b keyed) bool { return a.key <= b.key }
			So(MergeSort([]keyed{{1, "a"}, {1, "b"}}, atMost), ShouldResemble, []keyed{{1, "b"}, {1, "a"}})
		})

		Convey("Propagates comparator panics", func() {
			boom := func(a, b int) bool { panic("comparator failed") }
			So(func() { MergeSort([]int{2, 1}, boom) }, ShouldPanicWith, "comparator failed")
		})
	})
}

func TestMergeSortProperties(t *testing.T) {
	Convey("For random inputs", t, func() {
		r := rand.New(rand.NewPCG(1, 2))

		for n := 0; n < 200; n++ {
			in := make([]int, r.IntN(40))
			for i := range in {
				in[i] = r.IntN(10)
			}

			once := MergeSort(in, ascending)

			So(len(once), ShouldEqual, len(in))
			So(counts(once), ShouldResemble, counts(in))
			So(isSorted(once, ascending), ShouldBeTrue)
			So(MergeSort(once, ascending), ShouldResemble, once)
		}
	})

	Convey("Stability holds for random keyed input", t, func() {
		r := rand.New(rand.NewPCG(3, 4))

		for n := 0; n < 100; n++ {
			in := make([]keyed, r.IntN(30))
			for i := range in {
				// Labels record the input position so ties can be checked afterwards.
				in[i] = keyed{key: r.IntN(4), label: string(rune('A' + i))}
			}

			out := MergeSort(in, byKey)
			for i := 1; i < len(out); i++ {
				if out[i].key == out[i-1].key {
					So(out[i-1].label < out[i].label, ShouldBeTrue)
				}
			}
		}
	})
}
