// Package genre reconciles TMDB numeric genre ids with the genre names
// Radarr and Sonarr report.
package genre

import (
	"strings"

	"golang.org/x/text/cases"
)

// Kind selects the genre catalog. TMDB numbers movie and TV genres
// independently, so the same id can mean different things per kind.
type Kind string

const (
	Movie Kind = "movie"
	TV    Kind = "tv"
)

// Valid reports whether k names a known catalog.
func (k Kind) Valid() bool {
	return k == Movie || k == TV
}

// Genre is a single provider genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var movieGenres = []Genre{
	{28, "Action"},
	{12, "Adventure"},
	{16, "Animation"},
	{35, "Comedy"},
	{80, "Crime"},
	{99, "Documentary"},
	{18, "Drama"},
	{10751, "Family"},
	{14, "Fantasy"},
	{36, "History"},
	{27, "Horror"},
	{10402, "Music"},
	{9648, "Mystery"},
	{10749, "Romance"},
	{878, "Science Fiction"},
	{10770, "TV Movie"},
	{53, "Thriller"},
	{10752, "War"},
	{37, "Western"},
}

var tvGenres = []Genre{
	{10759, "Action & Adventure"},
	{16, "Animation"},
	{35, "Comedy"},
	{80, "Crime"},
	{99, "Documentary"},
	{18, "Drama"},
	{10751, "Family"},
	{10762, "Kids"},
	{9648, "Mystery"},
	{10763, "News"},
	{10764, "Reality"},
	{10765, "Sci-Fi & Fantasy"},
	{10766, "Soap"},
	{10767, "Talk"},
	{10768, "War & Politics"},
	{37, "Western"},
}

// Download managers spell some genres differently from TMDB; Sonarr in
// particular reports TVDB genres, which are finer-grained than TMDB's TV list.
var movieAliases = map[string]string{
	"sci-fi":          "Science Fiction",
	"scifi":           "Science Fiction",
	"science-fiction": "Science Fiction",
	"musical":         "Music",
	"tv-movie":        "TV Movie",
}

var tvAliases = map[string]string{
	"action":          "Action & Adventure",
	"adventure":       "Action & Adventure",
	"science fiction": "Sci-Fi & Fantasy",
	"science-fiction": "Sci-Fi & Fantasy",
	"sci-fi":          "Sci-Fi & Fantasy",
	"fantasy":         "Sci-Fi & Fantasy",
	"children":        "Kids",
	"talk show":       "Talk",
	"soap opera":      "Soap",
	"war":             "War & Politics",
	"politics":        "War & Politics",
	"game show":       "Reality",
	"reality tv":      "Reality",
	"anime":           "Animation",
	"suspense":        "Mystery",
	"thriller":        "Mystery",
}

// table is the read-only per-kind index built once at init.
type table struct {
	list   []Genre
	byID   map[int]string
	byName map[string]Genre // folded name or alias -> canonical genre
}

var tables = map[Kind]*table{
	Movie: newTable(movieGenres, movieAliases),
	TV:    newTable(tvGenres, tvAliases),
}

func newTable(list []Genre, aliases map[string]string) *table {
	t := &table{
		list:   list,
		byID:   make(map[int]string, len(list)),
		byName: make(map[string]Genre, len(list)+len(aliases)),
	}
	for _, g := range list {
		t.byID[g.ID] = g.Name
		t.byName[fold(g.Name)] = g
	}
	for alias, name := range aliases {
		if g, ok := t.byName[fold(name)]; ok {
			t.byName[fold(alias)] = g
		}
	}
	return t
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// MapIDs converts provider genre ids to names for the given kind.
// Unknown ids are dropped; order and duplicates are preserved.
func MapIDs(ids []int, kind Kind) []string {
	t, ok := tables[kind]
	if !ok {
		return []string{}
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := t.byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// MapNames canonicalizes download-manager genre names against the provider
// catalog for the given kind. Matching is case-insensitive and accepts known
// aliases. Unknown names are dropped; order and duplicates are preserved.
func MapNames(names []string, kind Kind) []string {
	t, ok := tables[kind]
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if g, ok := t.byName[fold(n)]; ok {
			out = append(out, g.Name)
		}
	}
	return out
}

// Lookup returns the provider id for a genre name or alias.
func Lookup(name string, kind Kind) (int, bool) {
	t, ok := tables[kind]
	if !ok {
		return 0, false
	}
	g, ok := t.byName[fold(name)]
	return g.ID, ok
}

// List returns a copy of the catalog for kind in provider order.
func List(kind Kind) []Genre {
	t, ok := tables[kind]
	if !ok {
		return nil
	}
	out := make([]Genre, len(t.list))
	copy(out, t.list)
	return out
}
