package genre

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapIDs(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
		kind Kind
		want []string
	}{
		{"movie ids", []int{28, 878}, Movie, []string{"Action", "Science Fiction"}},
		{"tv ids", []int{10765, 18}, TV, []string{"Sci-Fi & Fantasy", "Drama"}},
		{"movie id in tv catalog", []int{28}, TV, []string{}},
		{"unknown dropped", []int{1, 35, 999999}, Movie, []string{"Comedy"}},
		{"order preserved", []int{18, 35, 28}, Movie, []string{"Drama", "Comedy", "Action"}},
		{"duplicates kept", []int{35, 35}, Movie, []string{"Comedy", "Comedy"}},
		{"nil input", nil, Movie, []string{}},
		{"unknown kind", []int{28}, Kind("anime"), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapIDs(tt.ids, tt.kind))
		})
	}
}

func TestMapIDs_Deterministic(t *testing.T) {
	ids := []int{12, 4242, 16, 7, 12}
	first := MapIDs(ids, Movie)
	second := MapIDs(ids, Movie)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Adventure", "Animation", "Adventure"}, first)
}

func TestMapNames(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		kind  Kind
		want  []string
	}{
		{"exact", []string{"Drama", "Crime"}, Movie, []string{"Drama", "Crime"}},
		{"case insensitive", []string{"science FICTION"}, Movie, []string{"Science Fiction"}},
		{"movie alias", []string{"Sci-Fi"}, Movie, []string{"Science Fiction"}},
		{"sonarr genres", []string{"Action", "Science Fiction", "Talk Show"}, TV,
			[]string{"Action & Adventure", "Sci-Fi & Fantasy", "Talk"}},
		{"unknown dropped", []string{"Mini-Series", "Drama"}, TV, []string{"Drama"}},
		{"duplicates kept", []string{"Action", "Adventure"}, TV,
			[]string{"Action & Adventure", "Action & Adventure"}},
		{"whitespace trimmed", []string{"  Comedy "}, Movie, []string{"Comedy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapNames(tt.names, tt.kind))
		})
	}
}

func TestLookup(t *testing.T) {
	id, ok := Lookup("Sci-Fi & Fantasy", TV)
	require.True(t, ok)
	assert.Equal(t, 10765, id)

	id, ok = Lookup("science fiction", TV)
	require.True(t, ok, "alias should resolve")
	assert.Equal(t, 10765, id)

	_, ok = Lookup("Sci-Fi & Fantasy", Movie)
	assert.False(t, ok)
}

func TestList_ReturnsCopy(t *testing.T) {
	list := List(Movie)
	require.NotEmpty(t, list)
	list[0].Name = "changed"
	assert.Equal(t, "Action", List(Movie)[0].Name)
	assert.Nil(t, List(Kind("music")))
}

func TestList_Snapshot(t *testing.T) {
	snaps.MatchSnapshot(t, List(Movie))
	snaps.MatchSnapshot(t, List(TV))
}
