package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/arrdeck/internal/media"
)

func ptr[T any](v T) *T { return &v }

func movie(id int, title string, year int, rating float64, status media.MovieStatus, genres ...string) media.MovieItem {
	return media.MovieItem{
		Base:   media.Base{ID: id, MediaType: media.KindMovie, Title: title, Year: year, Rating: rating, Genres: genres},
		Status: status,
	}
}

func show(id int, title, network string, next *time.Time, genres ...string) media.ShowItem {
	return media.ShowItem{
		Base:        media.Base{ID: id, MediaType: media.KindShow, Title: title, Genres: genres},
		Network:     network,
		NextEpisode: next,
	}
}

func ids[T media.Item](items []T) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Common().ID
	}
	return out
}

var library = []media.MovieItem{
	movie(1, "Alien", 1979, 8.1, media.MovieDownloaded, "Horror", "Science Fiction"),
	movie(2, "Heat", 1995, 7.9, media.MovieWanted, "Crime", "Drama"),
	movie(3, "Amélie", 2001, 7.9, media.MovieMissing, "Comedy", "Romance"),
	movie(4, "Unknown Year", 0, 0, media.MovieMissing, "Drama"),
	movie(5, "Arrival", 2016, 7.6, media.MovieDownloaded, "Drama", "Science Fiction"),
}

func TestStatus(t *testing.T) {
	assert.Equal(t, []int{1, 5}, ids(Apply(library, Status[media.MovieItem]("downloaded"))))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(Apply(library, Status[media.MovieItem](All))))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(Apply(library, Status[media.MovieItem](""))))
	assert.Empty(t, Apply(library, Status[media.MovieItem]("downloading")))
}

func TestSearch(t *testing.T) {
	tests := []struct {
		query string
		want  []int
	}{
		{"", []int{1, 2, 3, 4, 5}},
		{"   ", []int{1, 2, 3, 4, 5}},
		{"ALIEN", []int{1}},
		{"science", []int{1, 5}},
		{"am", []int{2, 3, 4, 5}}, // Drama, Amélie, Drama, Drama
		{"zzz no match", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(library, Search[media.MovieItem](tt.query))))
		})
	}
}

func TestSearch_NoMatchIsEmpty(t *testing.T) {
	got := Apply(library, Search[media.MovieItem]("xyzzy"))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearch_Network(t *testing.T) {
	shows := []media.ShowItem{
		show(1, "The Wire", "HBO", nil, "Crime"),
		show(2, "Severance", "Apple TV+", nil, "Drama"),
	}
	assert.Equal(t, []int{1}, ids(Apply(shows, Search[media.ShowItem]("hbo"))))
	assert.Equal(t, []int{2}, ids(Apply(shows, Search[media.ShowItem]("apple"))))
}

func TestGenres(t *testing.T) {
	assert.Equal(t, []int{1, 5}, ids(Apply(library, Genres[media.MovieItem]([]string{"science fiction"}))))
	assert.Equal(t, []int{1, 2}, ids(Apply(library, Genres[media.MovieItem]([]string{"Horror", "Crime"}))))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(Apply(library, Genres[media.MovieItem](nil))))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(Apply(library, Genres[media.MovieItem]([]string{" "}))))
}

func TestYearRange(t *testing.T) {
	assert.Equal(t, []int{2, 3}, ids(Apply(library, YearRange[media.MovieItem](ptr(1990), ptr(2001)))))
	assert.Equal(t, []int{3, 5}, ids(Apply(library, YearRange[media.MovieItem](ptr(2001), nil))))
	assert.Equal(t, []int{1}, ids(Apply(library, YearRange[media.MovieItem](nil, ptr(1979)))))
	// Unknown year only passes with no bounds.
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(Apply(library, YearRange[media.MovieItem](nil, nil))))
}

func TestRatingFloor(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, ids(Apply(library, RatingFloor[media.MovieItem](ptr(7.9)))))
	// Unrated fails even with a zero floor.
	assert.Equal(t, []int{1, 2, 3, 5}, ids(Apply(library, RatingFloor[media.MovieItem](ptr(0.0)))))
}

func TestRatingFloor_NilIsNoop(t *testing.T) {
	got := Apply(library, RatingFloor[media.MovieItem](nil))
	assert.Equal(t, library, got)
}

func TestNetworks(t *testing.T) {
	shows := []media.ShowItem{
		show(1, "The Wire", "HBO", nil),
		show(2, "Severance", "Apple TV+", nil),
		show(3, "Unknown", "", nil),
	}
	assert.Equal(t, []int{1}, ids(Apply(shows, Networks([]string{"HBO"}))))
	assert.Equal(t, []int{}, ids(Apply(shows, Networks([]string{"hbo"}))))
	assert.Equal(t, []int{1, 2, 3}, ids(Apply(shows, Networks(nil))))
}

func TestApply_Commutative(t *testing.T) {
	genre := Genres[media.MovieItem]([]string{"Drama", "Science Fiction"})
	years := YearRange[media.MovieItem](ptr(1980), ptr(2020))
	rating := RatingFloor[media.MovieItem](ptr(7.0))
	search := Search[media.MovieItem]("a")

	want := ids(Apply(library, genre, years, rating, search))
	assert.Equal(t, want, ids(Apply(library, search, rating, years, genre)))
	assert.Equal(t, want, ids(Apply(library, years, genre, search, rating)))
	assert.Equal(t, []int{2, 5}, want)
}

func TestApply_DoesNotMutate(t *testing.T) {
	in := append([]media.MovieItem(nil), library...)
	_ = Apply(in, Status[media.MovieItem]("missing"), nil)
	assert.Equal(t, library, in)
}
