package util

import (
	"math/rand/v2"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// fixedSource returns queued values in order, modulo n.
type fixedSource struct {
	values []int
	calls  []int
}

func (f *fixedSource) IntN(n int) int {
	f.calls = append(f.calls, n)
	v := f.values[0]
	f.values = f.values[1:]
	return v % n
}

func TestShuffle(t *testing.T) {
	Convey("Shuffle", t, func() {
		Convey("Preserves the multiset of elements", func() {
			r := rand.New(rand.NewPCG(7, 7))
			for n := 0; n < 100; n++ {
				in := Range(0, r.IntN(25))
				for i := range in {
					in[i] %= 5
				}
				before := counts(in)

				Shuffle(in, r)
				So(counts(in), ShouldResemble, before)
			}
		})

		Convey("Walks Fisher-Yates from the end", func() {
			src := &fixedSource{values: []int{0, 0, 0}}
			s := []int{1, 2, 3, 4}
			Shuffle(s, src)

			So(src.calls, ShouldResemble, []int{4, 3, 2})
			// i=3 swaps with 0: [4 2 3 1]; i=2 swaps with 0: [3 2 4 1]; i=1 swaps with 0: [2 3 4 1]
			So(s, ShouldResemble, []int{2, 3, 4, 1})
		})

		Convey("Works with the global generator", func() {
			s := []int{1, 2, 3}
			Shuffle(s, nil)
			So(counts(s), ShouldResemble, counts([]int{1, 2, 3}))
		})

		Convey("Leaves empty and single element slices alone", func() {
			src := &fixedSource{}
			var empty []int
			Shuffle(empty, src)
			Shuffle([]int{1}, src)
			So(src.calls, ShouldBeEmpty)
		})
	})
}

func TestInsertRandom(t *testing.T) {
	Convey("InsertRandom", t, func() {
		Convey("Draws from [0, len] inclusive", func() {
			src := &fixedSource{values: []int{3}}
			s := []int{1, 2, 3}
			res := InsertRandom(&s, 9, src)

			So(src.calls, ShouldResemble, []int{4})
			So(res, ShouldResemble, Insertion[int]{Item: 9, Index: 3})
			So(s, ShouldResemble, []int{1, 2, 3, 9})
		})

		Convey("Always lands inside the grown slice", func() {
			r := rand.New(rand.NewPCG(11, 13))
			var s []int
			for i := 0; i < 50; i++ {
				res := InsertRandom(&s, i, r)
				So(res.Index, ShouldBeBetweenOrEqual, 0, len(s)-1)
				So(s[res.Index], ShouldEqual, i)
			}
			So(s, ShouldHaveLength, 50)
		})
	})
}
