package util

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestItemAt(t *testing.T) {
	Convey("Given [10 20 30]", t, func() {
		s := []int{10, 20, 30}

		Convey("In-range indexes are direct", func() {
			for i, want := range s {
				got, err := ItemAt(s, i)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, want)
			}
		})

		Convey("Index 3 wraps to the first element", func() {
			got, err := ItemAt(s, 3)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 10)
		})

		Convey("Index 7 wraps forward twice", func() {
			got, _ := ItemAt(s, 7)
			So(got, ShouldEqual, 20)
		})

		Convey("Index -1 is the last element", func() {
			got, err := ItemAt(s, -1)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 30)
		})

		Convey("Negative multiples of the length map to the first element", func() {
			got, _ := ItemAt(s, -3)
			So(got, ShouldEqual, 10)
			got, _ = ItemAt(s, -6)
			So(got, ShouldEqual, 10)
		})

		Convey("Index -4 wraps backward past the start", func() {
			got, _ := ItemAt(s, -4)
			So(got, ShouldEqual, 30)
		})
	})

	Convey("An empty sequence fails explicitly", t, func() {
		_, err := ItemAt([]int{}, 0)
		So(err, ShouldEqual, ErrEmptySequence)
		_, err = ItemAt[string](nil, -1)
		So(err, ShouldEqual, ErrEmptySequence)
	})
}

func TestRemove(t *testing.T) {
	Convey("Given [1 2 3 2]", t, func() {
		s := []int{1, 2, 3, 2}

		Convey("Removing 2 takes the first occurrence", func() {
			res := Remove(&s, 2)
			So(res, ShouldResemble, Removal[int]{Item: 2, Index: 1, Existed: true})
			So(s, ShouldResemble, []int{1, 3, 2})

			Convey("Removing 2 again takes the remaining one", func() {
				res := Remove(&s, 2)
				So(res, ShouldResemble, Removal[int]{Item: 2, Index: 2, Existed: true})
				So(s, ShouldResemble, []int{1, 3})

				Convey("A third removal reports a miss and changes nothing", func() {
					res := Remove(&s, 2)
					So(res, ShouldResemble, Removal[int]{Item: 2, Index: -1, Existed: false})
					So(s, ShouldResemble, []int{1, 3})
				})
			})
		})
	})
}

func TestRemoveAll(t *testing.T) {
	Convey("Given [7 1 7 7 2]", t, func() {
		s := []int{7, 1, 7, 7, 2}

		Convey("Every 7 is removed and indexes are relative to the shrinking slice", func() {
			res := RemoveAll(&s, 7)
			So(res.Existed, ShouldBeTrue)
			So(res.Item, ShouldEqual, 7)
			So(res.Indexes, ShouldResemble, []int{0, 1, 1})
			So(s, ShouldResemble, []int{1, 2})
		})

		Convey("A missing element reports no indexes", func() {
			res := RemoveAll(&s, 9)
			So(res.Existed, ShouldBeFalse)
			So(res.Indexes, ShouldBeEmpty)
			So(s, ShouldHaveLength, 5)
		})
	})
}

func TestRemoveMultiple(t *testing.T) {
	Convey("RemoveMultiple removes one occurrence per listed item", t, func() {
		s := []string{"a", "b", "a", "c"}
		So(RemoveMultiple(&s, "a", "c", "z"), ShouldEqual, 2)
		So(s, ShouldResemble, []string{"b", "a"})
	})
}

func TestRemoveAt(t *testing.T) {
	Convey("Given [a b c]", t, func() {
		s := []string{"a", "b", "c"}

		Convey("Removing index 1 returns the removed item", func() {
			res := RemoveAt(&s, 1)
			So(res, ShouldResemble, Removal[string]{Item: "b", Index: 1, Existed: true})
			So(s, ShouldResemble, []string{"a", "c"})
		})

		Convey("Index -1 is a miss", func() {
			res := RemoveAt(&s, -1)
			So(res.Existed, ShouldBeFalse)
			So(res.Index, ShouldEqual, -1)
			So(res.Item, ShouldEqual, "")
			So(s, ShouldHaveLength, 3)
		})

		Convey("An index past the end is a miss", func() {
			So(RemoveAt(&s, 3).Existed, ShouldBeFalse)
		})
	})
}

func TestInsert(t *testing.T) {
	Convey("Given [1 2 3]", t, func() {
		s := []int{1, 2, 3}

		Convey("Inserting at 1 shifts the rest right", func() {
			So(Insert(&s, 9, 1), ShouldResemble, Insertion[int]{Item: 9, Index: 1})
			So(s, ShouldResemble, []int{1, 9, 2, 3})
		})

		Convey("Inserting at len appends", func() {
			So(Insert(&s, 9, 3).Index, ShouldEqual, 3)
			So(s, ShouldResemble, []int{1, 2, 3, 9})
		})

		Convey("Out of range indexes are clamped", func() {
			So(Insert(&s, 0, -5).Index, ShouldEqual, 0)
			So(Insert(&s, 8, 100).Index, ShouldEqual, 4)
			So(s, ShouldResemble, []int{0, 1, 2, 3, 8})
		})
	})

	Convey("Inserting into an empty slice", t, func() {
		var s []int
		So(Insert(&s, 4, 0).Index, ShouldEqual, 0)
		So(s, ShouldResemble, []int{4})
	})
}

func TestInsertFunc(t *testing.T) {
	less := func(a, b int) bool { return a < b }

	Convey("Inserting 4 into [1 3 5] lands at index 2", t, func() {
		s := []int{1, 3, 5}
		So(InsertFunc(&s, 4, less), ShouldResemble, Insertion[int]{Item: 4, Index: 2})
		So(s, ShouldResemble, []int{1, 3, 4, 5})
	})

	Convey("An element larger than all is appended", t, func() {
		s := []int{1, 3, 5}
		So(InsertFunc(&s, 8, less).Index, ShouldEqual, 3)
		So(s, ShouldResemble, []int{1, 3, 5, 8})
	})

	Convey("Equal keys are placed after the existing ones", t, func() {
		type entry struct {
			key  int
			name string
		}
		byKey := func(a, b entry) bool { return a.key < b.key }

		s := []entry{{1, "a"}, {2, "b"}, {3, "c"}}
		res := InsertFunc(&s, entry{2, "new"}, byKey)
		So(res.Index, ShouldEqual, 2)
		So(s[1].name, ShouldEqual, "b")
		So(s[2].name, ShouldEqual, "new")
	})

	Convey("Repeated InsertFunc builds the same order as MergeSort", t, func() {
		input := []int{5, 2, 8, 2, 9, 1, 5, 6}
		var built []int
		for _, v := range input {
			InsertFunc(&built, v, less)
		}
		So(built, ShouldResemble, MergeSort(input, less))
	})
}

func TestEnsureOne(t *testing.T) {
	Convey("Given [1 2 3]", t, func() {
		s := []int{1, 2, 3}

		Convey("An existing element is reported where it is", func() {
			So(EnsureOne(&s, 2), ShouldResemble, Presence[int]{Item: 2, Index: 1, Existed: true})
			So(s, ShouldResemble, []int{1, 2, 3})
		})

		Convey("A new element is appended", func() {
			So(EnsureOne(&s, 5), ShouldResemble, Presence[int]{Item: 5, Index: 3, Existed: false})
			So(s, ShouldResemble, []int{1, 2, 3, 5})
		})
	})

	Convey("Existing duplicates are not collapsed", t, func() {
		s := []int{4, 4}
		So(EnsureOne(&s, 4).Index, ShouldEqual, 0)
		So(s, ShouldResemble, []int{4, 4})
	})
}

func TestSwap(t *testing.T) {
	Convey("Swap by index", t, func() {
		s := []string{"a", "b", "c"}
		So(Swap(s, 0, 2), ShouldBeNil)
		So(s, ShouldResemble, []string{"c", "b", "a"})

		So(Swap(s, 1, 1), ShouldBeNil)
		So(s, ShouldResemble, []string{"c", "b", "a"})

		err := Swap(s, 0, 3)
		So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
		So(s, ShouldResemble, []string{"c", "b", "a"})
	})

	Convey("Swap by value uses first occurrences", t, func() {
		s := []string{"a", "b", "a", "c"}
		So(SwapItems(s, "a", "c"), ShouldBeTrue)
		So(s, ShouldResemble, []string{"c", "b", "a", "a"})

		So(SwapItems(s, "b", "z"), ShouldBeFalse)
		So(s, ShouldResemble, []string{"c", "b", "a", "a"})
	})
}

func TestLookups(t *testing.T) {
	Convey("Contains and IndexOf", t, func() {
		s := []string{"x", "y", "x"}
		So(Contains(s, "y"), ShouldBeTrue)
		So(Contains(s, "z"), ShouldBeFalse)
		So(IndexOf(s, "x"), ShouldEqual, 0)
		So(IndexOf(s, "z"), ShouldEqual, -1)
	})

	Convey("Last", t, func() {
		So(Last([]int{1, 2, 3}).MustGet(), ShouldEqual, 3)
		So(Last([]int{}).IsAbsent(), ShouldBeTrue)
	})

	Convey("Copy does not alias", t, func() {
		s := []int{1, 2}
		c := Copy(s)
		c[0] = 9
		So(s[0], ShouldEqual, 1)
		So(Copy[int](nil), ShouldBeNil)
	})

	Convey("Occurrence counts earlier equal elements", t, func() {
		s := []int{5, 6, 5, 6, 5}
		So(Occurrence(s, 0), ShouldEqual, 1)
		So(Occurrence(s, 2), ShouldEqual, 2)
		So(Occurrence(s, 3), ShouldEqual, 2)
		So(Occurrence(s, 4), ShouldEqual, 3)
	})
}
