// Package filter holds the predicates and comparators that narrow and order
// canonical media items.
package filter

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/vmunix/arrdeck/internal/media"
)

// All is the status value that matches every item.
const All = "all"

// Predicate reports whether an item passes a filter.
type Predicate[T any] func(T) bool

// Apply returns the items that pass every predicate, in input order.
// Nil predicates are skipped. The input slice is not modified.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
outer:
	for _, item := range items {
		for _, p := range preds {
			if p != nil && !p(item) {
				continue outer
			}
		}
		out = append(out, item)
	}
	return out
}

// Status matches the derived status exactly. All and "" match everything.
func Status[T media.Item](status string) Predicate[T] {
	if status == "" || status == All {
		return pass[T]
	}
	return func(item T) bool {
		return item.StatusTag() == status
	}
}

// Search matches a case-insensitive substring of the title, any genre, or
// the network of items that have one. A blank query matches everything.
func Search[T media.Item](query string) Predicate[T] {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return pass[T]
	}
	return func(item T) bool {
		c := item.Common()
		if strings.Contains(fold(c.Title), q) {
			return true
		}
		for _, g := range c.Genres {
			if strings.Contains(fold(g), q) {
				return true
			}
		}
		if n, ok := any(item).(media.Networked); ok {
			return strings.Contains(fold(n.NetworkName()), q)
		}
		return false
	}
}

// Genres matches items with at least one of the given genres.
// An empty set matches everything.
func Genres[T media.Item](genres []string) Predicate[T] {
	want := foldSet(genres)
	if len(want) == 0 {
		return pass[T]
	}
	return func(item T) bool {
		for _, g := range item.Common().Genres {
			if _, ok := want[fold(g)]; ok {
				return true
			}
		}
		return false
	}
}

// YearRange matches years within [minYear, maxYear]; nil bounds are open.
// Items with an unknown year fail whenever a bound is set.
func YearRange[T media.Item](minYear, maxYear *int) Predicate[T] {
	if minYear == nil && maxYear == nil {
		return pass[T]
	}
	return func(item T) bool {
		y := item.Common().Year
		if y <= 0 {
			return false
		}
		if minYear != nil && y < *minYear {
			return false
		}
		if maxYear != nil && y > *maxYear {
			return false
		}
		return true
	}
}

// RatingFloor matches ratings >= floor. Nil is a no-op; unrated items fail
// whenever a floor is set.
func RatingFloor[T media.Item](floor *float64) Predicate[T] {
	if floor == nil {
		return pass[T]
	}
	f := *floor
	return func(item T) bool {
		r := item.Common().Rating
		return r > 0 && r >= f
	}
}

// Networks matches shows whose network is in the set exactly.
// An empty set matches everything.
func Networks(networks []string) Predicate[media.ShowItem] {
	if len(networks) == 0 {
		return pass[media.ShowItem]
	}
	return func(item media.ShowItem) bool {
		return slices.Contains(networks, item.Network)
	}
}

func pass[T any](T) bool { return true }

func fold(s string) string {
	return cases.Fold().String(s)
}

func foldSet(vals []string) map[string]struct{} {
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			set[fold(v)] = struct{}{}
		}
	}
	return set
}
