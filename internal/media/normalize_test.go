package media

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrdeck/internal/tmdb"
)

func jsonUnmarshal(s string, v any) error {
	return json.Unmarshal([]byte(s), v)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		source Source
		kind   Kind
		raw    string
		check  func(t *testing.T, item Item)
	}{
		{
			name: "radarr movie", source: SourceRadarr, kind: KindMovie,
			raw: `{"id":1,"title":"X","tmdbId":42,"hasFile":false,"monitored":true,"isAvailable":true}`,
			check: func(t *testing.T, item Item) {
				m, ok := item.(MovieItem)
				require.True(t, ok)
				assert.Equal(t, MovieWanted, m.Status)
				assert.Equal(t, 0, m.Year)
			},
		},
		{
			name: "sonarr series", source: SourceSonarr, kind: KindShow,
			raw: `{"id":2,"title":"Y","status":"continuing","statistics":{"episodeCount":4,"episodeFileCount":4}}`,
			check: func(t *testing.T, item Item) {
				s, ok := item.(ShowItem)
				require.True(t, ok)
				assert.Equal(t, ShowComplete, s.Status)
				assert.Equal(t, Continuing, s.ShowStatus)
			},
		},
		{
			name: "tmdb movie", source: SourceTMDB, kind: KindMovie,
			raw: `{"id":603,"title":"The Matrix","release_date":"1999-03-30","genre_ids":[28]}`,
			check: func(t *testing.T, item Item) {
				assert.Equal(t, 1999, item.Common().Year)
				assert.Equal(t, []string{"Action"}, item.Common().Genres)
				assert.Equal(t, string(MovieMissing), item.StatusTag())
			},
		},
		{
			name: "tmdb show", source: SourceTMDB, kind: KindShow,
			raw: `{"id":1,"name":"Z","genre_ids":[10759]}`,
			check: func(t *testing.T, item Item) {
				assert.Equal(t, "Z", item.Common().Title)
				assert.Equal(t, []string{"Action & Adventure"}, item.Common().Genres)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := Normalize(tt.source, tt.kind, json.RawMessage(tt.raw), DefaultImages)
			require.NoError(t, err)
			tt.check(t, item)
		})
	}
}

func TestNormalize_UnknownRoute(t *testing.T) {
	_, err := Normalize(SourceRadarr, KindShow, json.RawMessage(`{}`), DefaultImages)
	assert.ErrorIs(t, err, ErrNoMapper)

	_, err = Normalize("plex", KindMovie, json.RawMessage(`{}`), DefaultImages)
	assert.ErrorIs(t, err, ErrNoMapper)
}

func TestNormalize_BadJSON(t *testing.T) {
	_, err := Normalize(SourceRadarr, KindMovie, json.RawMessage(`[1,2]`), DefaultImages)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode resource")
}

func TestRoutes(t *testing.T) {
	assert.Equal(t, []Route{
		{SourceRadarr, KindMovie},
		{SourceSonarr, KindShow},
		{SourceTMDB, KindMovie},
		{SourceTMDB, KindShow},
	}, Routes())
}

func TestItemJSON(t *testing.T) {
	item := FromTMDBMovie(&tmdb.MovieResult{ID: 1, Title: "T"}, DefaultImages)
	b, err := json.Marshal(item)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "movie", got["mediaType"])
	assert.Equal(t, "missing", got["status"])
	assert.NotContains(t, got, "backdropUrl")
	assert.Equal(t, []any{}, got["genres"])
}
