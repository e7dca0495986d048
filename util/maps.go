package util

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// MapValues returns a new map with every value of m replaced by fn(key, value).
func MapValues[V, R any](m map[string]V, fn func(key string, value V) R) map[string]R {
	return lo.MapValues(m, func(value V, key string) R {
		return fn(key, value)
	})
}

// PickKeys returns a new map holding only the listed keys that are present in m.
func PickKeys[V any](m map[string]V, keys ...string) map[string]V {
	return lo.PickByKeys(m, keys)
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
