package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrdeck/internal/media"
)

func sorted[T media.Item](t *testing.T, items []T, field Field, dir Direction) []int {
	t.Helper()
	c, err := Compare[T](field, dir)
	require.NoError(t, err)
	cp := append([]T(nil), items...)
	Sort(cp, c)
	return ids(cp)
}

func TestCompare_Title(t *testing.T) {
	items := []media.MovieItem{
		movie(1, "zodiac", 0, 0, ""),
		movie(2, "Amélie", 0, 0, ""),
		movie(3, "Alien", 0, 0, ""),
		movie(4, "arrival", 0, 0, ""),
	}
	assert.Equal(t, []int{3, 2, 4, 1}, sorted(t, items, ByTitle, Asc))
	assert.Equal(t, []int{1, 4, 2, 3}, sorted(t, items, ByTitle, Desc))
}

func TestCompare_Stable(t *testing.T) {
	items := []media.MovieItem{
		movie(1, "Same", 0, 0, ""),
		movie(2, "Other", 0, 0, ""),
		movie(3, "Same", 0, 0, ""),
		movie(4, "same", 0, 0, ""),
	}
	assert.Equal(t, []int{2, 1, 3, 4}, sorted(t, items, ByTitle, Asc))
	assert.Equal(t, []int{1, 3, 4, 2}, sorted(t, items, ByTitle, Desc))
}

func TestCompare_YearAndRating(t *testing.T) {
	assert.Equal(t, []int{4, 1, 2, 3, 5}, sorted(t, library, ByYear, Asc))
	assert.Equal(t, []int{5, 3, 2, 1, 4}, sorted(t, library, ByYear, Desc))
	// 2 and 3 tie on 7.9 and keep input order.
	assert.Equal(t, []int{1, 2, 3, 5, 4}, sorted(t, library, ByRating, Desc))
}

func TestCompare_AddedIsLexical(t *testing.T) {
	items := []media.MovieItem{
		movie(9, "a", 0, 0, ""),
		movie(10, "b", 0, 0, ""),
		movie(100, "c", 0, 0, ""),
		movie(2, "d", 0, 0, ""),
	}
	assert.Equal(t, []int{9, 2, 100, 10}, sorted(t, items, ByAdded, Desc))
}

func TestCompare_NextAiring(t *testing.T) {
	soon := time.Now().Add(24 * time.Hour)
	later := time.Now().Add(72 * time.Hour)
	shows := []media.ShowItem{
		show(1, "A", "", nil),
		show(2, "B", "", &later),
		show(3, "C", "", nil),
		show(4, "D", "", &soon),
	}
	assert.Equal(t, []int{2, 4, 1, 3}, sorted(t, shows, ByNextAiring, Asc))
	assert.Equal(t, []int{1, 3, 2, 4}, sorted(t, shows, ByNextAiring, Desc))

	// Movies never air, so the order is untouched.
	assert.Equal(t, []int{1, 2, 3, 4, 5}, sorted(t, library, ByNextAiring, Asc))
}

func TestCompare_UnknownField(t *testing.T) {
	_, err := Compare[media.MovieItem]("popularity", Asc)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection("desc")
	assert.True(t, ok)
	assert.Equal(t, Desc, d)
	assert.Equal(t, "desc", d.String())

	_, ok = ParseDirection("sideways")
	assert.False(t, ok)
}
