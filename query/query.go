// Package query remembers palette search queries and suggests them back,
// most used first.
package query

import (
	"strings"
	"sync"

	"github.com/ledpal/ledpal/filesystem"
	"github.com/ledpal/ledpal/key"
	"github.com/ledpal/ledpal/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var (
	cacher     *gache.Cache[map[string]*queryRecord]
	cacherOnce sync.Once
)

func history() *gache.Cache[map[string]*queryRecord] {
	cacherOnce.Do(func() {
		cacher = gache.New[map[string]*queryRecord](&gache.Options{
			Path:       where.Queries(),
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return cacher
}

// suggestions memoizes SuggestMany per sanitized prefix until the next Remember.
var suggestions = make(map[string][]*queryRecord)

// Remember records q, or raises its rank by weight if it was seen before.
// Blank queries are ignored.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	cached, expired, err := history().Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*queryRecord)
	}

	if record, ok := cached[q]; ok {
		record.Rank += weight
	} else {
		cached[q] = &queryRecord{Rank: weight, Query: q}
	}

	suggestions = make(map[string][]*queryRecord)
	return history().Set(cached)
}

// Suggest returns the best remembered query matching q.
func Suggest(q string) mo.Option[string] {
	matches := SuggestMany(q)
	if len(matches) == 0 {
		return mo.None[string]()
	}
	return mo.Some(matches[0])
}

// SuggestMany returns remembered queries fuzzily matching q, highest rank first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchSuggestions) {
		return []string{}
	}

	q = sanitize(q)
	records, ok := suggestions[q]
	if !ok {
		cached, expired, err := history().Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		records = lo.Filter(lo.Values(cached), func(r *queryRecord, _ int) bool {
			return fuzzy.Match(q, r.Query)
		})

		slices.SortFunc(records, func(a, b *queryRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})

		suggestions[q] = records
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
