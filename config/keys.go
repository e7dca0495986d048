package config

import (
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/whisperdoll/aria-client/util"
)

// Keys returns every registered configuration key in ascending order.
func Keys() []string {
	return util.SortedKeys(Default)
}

// Closest returns the registered key with the smallest edit distance to name.
// Keys at the same distance are resolved alphabetically.
func Closest(name string) string {
	ranked := util.MergeSort(Keys(), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return lo.FirstOrEmpty(ranked)
}
