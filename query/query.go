// Package query remembers what the user searched for in the browser and suggests it again.
package query

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/whisperdoll/aria-client/filesystem"
	"github.com/whisperdoll/aria-client/key"
	"github.com/whisperdoll/aria-client/util"
	"github.com/whisperdoll/aria-client/where"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

func records() map[string]*record {
	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		return make(map[string]*record)
	}
	return cached
}

// Remember records q, or raises its rank by weight if it was searched before. Blank queries are ignored.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	saved := records()
	if r, ok := saved[q]; ok {
		r.Rank += weight
	} else {
		saved[q] = &record{Rank: weight, Query: q}
	}

	return cacher.Set(saved)
}

// Suggest returns the best ranked earlier query matching q.
func Suggest(q string) mo.Option[string] {
	if suggestions := SuggestMany(q); len(suggestions) > 0 {
		return mo.Some(suggestions[0])
	}
	return mo.None[string]()
}

// SuggestMany returns the earlier queries fuzzily matching q, highest rank first.
// Queries of equal rank are in alphabetical order.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.TUISuggestions) {
		return []string{}
	}

	q = sanitize(q)
	saved := records()

	matching := lo.Filter(util.SortedKeys(saved), func(query string, _ int) bool {
		return fuzzy.Match(q, query)
	})

	return util.MergeSort(matching, func(a, b string) bool {
		return saved[a].Rank > saved[b].Rank
	})
}

// Forget removes every remembered query.
func Forget() error {
	return cacher.Set(make(map[string]*record))
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
