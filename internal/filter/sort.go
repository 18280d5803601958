package filter

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vmunix/arrdeck/internal/media"
)

// ErrUnknownField is returned for a sort field with no comparator.
var ErrUnknownField = errors.New("unknown sort field")

// Field names a sortable attribute.
type Field string

const (
	ByTitle      Field = "title"
	ByYear       Field = "year"
	ByRating     Field = "rating"
	ByAdded      Field = "added"
	ByNextAiring Field = "nextAiring"
)

// Direction multiplies an ascending comparison.
type Direction int

const (
	Asc  Direction = 1
	Desc Direction = -1
)

// ParseDirection accepts "asc" and "desc".
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "asc":
		return Asc, true
	case "desc":
		return Desc, true
	}
	return 0, false
}

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// Comparator orders two items like cmp.Compare.
type Comparator[T any] func(a, b T) int

// Compare builds the comparator for field in direction dir.
//
// added compares the opaque item id as a string, so it only approximates
// recency while ids are assigned monotonically. nextAiring only separates
// items with a scheduled episode from items without one; items of kinds
// that never air compare equal.
func Compare[T media.Item](field Field, dir Direction) (Comparator[T], error) {
	var base Comparator[T]
	switch field {
	case ByTitle:
		coll := collate.New(language.English, collate.Loose)
		base = func(a, b T) int {
			return coll.CompareString(a.Common().Title, b.Common().Title)
		}
	case ByYear:
		base = func(a, b T) int {
			return cmp.Compare(a.Common().Year, b.Common().Year)
		}
	case ByRating:
		base = func(a, b T) int {
			return cmp.Compare(a.Common().Rating, b.Common().Rating)
		}
	case ByAdded:
		base = func(a, b T) int {
			return cmp.Compare(strconv.Itoa(a.Common().ID), strconv.Itoa(b.Common().ID))
		}
	case ByNextAiring:
		base = func(a, b T) int {
			return cmp.Compare(unscheduled(a), unscheduled(b))
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if dir != Desc {
		dir = Asc
	}
	return func(a, b T) int {
		return int(dir) * base(a, b)
	}, nil
}

func unscheduled(item any) int {
	if a, ok := item.(media.Airing); ok && a.NextAiring() != nil {
		return 0
	}
	return 1
}

// Sort orders items in place. Equal items keep their input order.
func Sort[T any](items []T, c Comparator[T]) {
	if c == nil {
		return
	}
	slices.SortStableFunc(items, c)
}
