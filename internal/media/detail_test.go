package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrdeck/internal/tmdb"
	"github.com/vmunix/arrdeck/pkg/arr"
	"github.com/vmunix/arrdeck/pkg/radarr"
	"github.com/vmunix/arrdeck/pkg/sonarr"
)

func quality(t *testing.T, name string) *arr.QualityModel {
	t.Helper()
	var q arr.QualityModel
	require.NoError(t, jsonUnmarshal(`{"quality":{"id":1,"name":"`+name+`"}}`, &q))
	return &q
}

func TestNewMovieDetail_WithoutMetadata(t *testing.T) {
	m := &radarr.Movie{ID: 1, Title: "Heat", Year: ptr(1995), InCinemas: "1995-12-15", HasFile: true}

	d := NewMovieDetail(m, nil, nil, nil, DefaultImages)
	assert.Equal(t, "Heat", d.Title)
	assert.Equal(t, MovieDownloaded, d.Status)
	assert.Equal(t, "1995-12-15", d.ReleaseDate)
	assert.Equal(t, KindMovie, d.Credits.MediaType)
	assert.Empty(t, d.Credits.Cast)
	assert.NotNil(t, d.Reviews)
	assert.NotNil(t, d.Recommendations)
	assert.NotNil(t, d.History)
	assert.NotNil(t, d.Files)
}

func TestNewMovieDetail_WithMetadata(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	m := &radarr.Movie{ID: 1, Title: "Heat", TMDBID: ptr(949)}
	meta := &tmdb.Movie{
		ID: 949, Tagline: "A Los Angeles crime saga", Overview: "Obsessive master thief...",
		PosterPath: "/heat.jpg", ReleaseDate: "1995-12-15",
		Credits: &tmdb.Credits{
			Cast: []tmdb.CastMember{{ID: 2, Name: "Robert De Niro", Order: 1}, {ID: 1, Name: "Al Pacino", Order: 0, ProfilePath: "/al.jpg"}},
			Crew: []tmdb.CrewMember{{ID: 3, Name: "Michael Mann", Job: "Director"}},
		},
		Videos: &tmdb.Videos{Results: []tmdb.Video{
			{Key: "clip", Site: "YouTube", Type: "Clip"},
			{Key: "tr", Site: "YouTube", Type: "Trailer"},
			{Key: "x", Site: "Other", Type: "Teaser"},
		}},
		Reviews: &tmdb.Page[tmdb.Review]{Results: []tmdb.Review{{ID: "r1", Author: "", Content: "Great"}}},
		Recommendations: &tmdb.Page[tmdb.MovieResult]{Results: []tmdb.MovieResult{
			{ID: 680, Title: "Pulp Fiction", ReleaseDate: "1994-09-10", GenreIDs: []int{53, 80}},
		}},
	}
	history := []radarr.HistoryRecord{
		{ID: 1, EventType: "grabbed", Date: &older},
		{ID: 3, EventType: "movieFileDeleted"},
		{ID: 2, EventType: "downloadFolderImported", Date: &newer, Quality: quality(t, "Bluray-1080p")},
	}
	files := []radarr.MovieFile{{ID: 9, RelativePath: "Heat (1995).mkv", Path: "/movies/Heat (1995)/Heat (1995).mkv", Size: 4 << 30}}

	d := NewMovieDetail(m, meta, history, files, DefaultImages)
	assert.Equal(t, "A Los Angeles crime saga", d.Tagline)
	assert.Equal(t, "Obsessive master thief...", d.Overview)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/heat.jpg", d.PosterURL)
	assert.Equal(t, "1995-12-15", d.ReleaseDate)

	require.Len(t, d.Credits.Cast, 2)
	assert.Equal(t, "Al Pacino", d.Credits.Cast[0].Name)
	assert.Equal(t, "https://image.tmdb.org/t/p/w185/al.jpg", d.Credits.Cast[0].ProfileURL)
	assert.Equal(t, "", d.Credits.Cast[1].ProfileURL)

	require.Len(t, d.Videos.Videos, 3)
	assert.Equal(t, "Trailer", d.Videos.Videos[0].Type)
	assert.Equal(t, "https://www.youtube.com/watch?v=tr", d.Videos.Videos[0].URL)
	assert.Equal(t, "", d.Videos.Videos[1].URL)

	require.Len(t, d.Reviews, 1)
	assert.Equal(t, "Unknown", d.Reviews[0].Author)

	require.Len(t, d.Recommendations, 1)
	assert.Equal(t, KindMovie, d.Recommendations[0].MediaType)
	assert.Equal(t, 1994, d.Recommendations[0].Year)
	assert.Equal(t, []string{"Thriller", "Crime"}, d.Recommendations[0].Genres)

	require.Len(t, d.History, 3)
	assert.Equal(t, 2, d.History[0].ID)
	assert.Equal(t, "Bluray-1080p", d.History[0].Quality)
	assert.Equal(t, 1, d.History[1].ID)
	assert.Equal(t, 3, d.History[2].ID)
	assert.Equal(t, UnknownQuality, d.History[2].Quality)

	require.Len(t, d.Files, 1)
	assert.Equal(t, "Heat (1995).mkv", d.Files[0].Path)
	assert.Equal(t, UnknownQuality, d.Files[0].Quality)
}

func TestNewShowDetail(t *testing.T) {
	s := &sonarr.Series{
		ID: 5, Title: "The Wire", TVDBID: ptr(79126),
		Seasons: []sonarr.Season{
			{SeasonNumber: 2, Monitored: true, Statistics: &sonarr.Statistics{EpisodeCount: 12, EpisodeFileCount: 12}},
			{SeasonNumber: 1, Monitored: true, Statistics: &sonarr.Statistics{EpisodeCount: 13, EpisodeFileCount: 3}},
			{SeasonNumber: 0},
		},
		Statistics: &sonarr.Statistics{EpisodeCount: 25, EpisodeFileCount: 15},
	}
	meta := &tmdb.Show{
		ID: 1438, Networks: []tmdb.Network{{Name: "HBO"}},
		Seasons:        []tmdb.SeasonSummary{{SeasonNumber: 1, Name: "Season One", AirDate: "2002-06-02", PosterPath: "/s1.jpg"}},
		ContentRatings: &tmdb.ContentRatings{},
	}
	require.NoError(t, jsonUnmarshal(`{"results":[{"iso_3166_1":"US","rating":"TV-MA"},{"iso_3166_1":"DE","rating":""}]}`, meta.ContentRatings))
	files := []sonarr.EpisodeFile{{ID: 2, SeasonNumber: 2, RelativePath: "b.mkv"}, {ID: 1, SeasonNumber: 1, RelativePath: "a.mkv"}}

	d := NewShowDetail(s, meta, nil, files, DefaultImages)
	assert.Equal(t, 79126, d.TVDBID)
	assert.Equal(t, "HBO", d.Network)
	require.Len(t, d.Seasons, 3)
	assert.Equal(t, "Specials", d.Seasons[0].Name)
	assert.Equal(t, ShowWanted, d.Seasons[0].Status)
	assert.Equal(t, "Season One", d.Seasons[1].Name)
	assert.Equal(t, ShowPartial, d.Seasons[1].Status)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/s1.jpg", d.Seasons[1].PosterURL)
	assert.Equal(t, "Season 2", d.Seasons[2].Name)
	assert.Equal(t, ShowComplete, d.Seasons[2].Status)
	assert.Equal(t, []ContentRating{{Country: "US", Rating: "TV-MA"}}, d.ContentRatings)
	require.Len(t, d.Files, 2)
	assert.Equal(t, 1, d.Files[0].SeasonNumber)
}

func TestNewSeasonDetail(t *testing.T) {
	s := &sonarr.Series{ID: 5, Title: "The Wire"}
	episodes := []sonarr.Episode{
		{ID: 12, SeasonNumber: 1, EpisodeNumber: 2, Title: "The Detail", HasFile: false},
		{ID: 11, SeasonNumber: 1, EpisodeNumber: 1, Title: "The Target", HasFile: true},
		{ID: 21, SeasonNumber: 2, EpisodeNumber: 1, Title: "Ebb Tide", HasFile: true},
	}
	meta := &tmdb.Season{
		Name: "Season 1", Overview: "Baltimore.", SeasonNumber: 1,
		Episodes: []tmdb.Episode{{EpisodeNumber: 1, StillPath: "/e1.jpg", VoteAverage: 8.0, Runtime: ptr(62), Overview: "McNulty..."}},
	}

	d := NewSeasonDetail(s, 1, episodes, meta, DefaultImages)
	assert.Equal(t, KindShow, d.MediaType)
	assert.Equal(t, "Baltimore.", d.Overview)
	require.Len(t, d.Episodes, 2)
	assert.Equal(t, "The Target", d.Episodes[0].Title)
	assert.Equal(t, "https://image.tmdb.org/t/p/w300/e1.jpg", d.Episodes[0].StillURL)
	assert.Equal(t, 62, d.Episodes[0].Runtime)
	assert.Equal(t, "McNulty...", d.Episodes[0].Overview)
	assert.Equal(t, 2, d.TotalEpisodes)
	assert.Equal(t, 1, d.DownloadedEpisodes)
	assert.Equal(t, ShowPartial, d.Status)
}

func TestNewSeasonDetail_Empty(t *testing.T) {
	d := NewSeasonDetail(&sonarr.Series{ID: 1}, 0, nil, nil, ImageConfig{})
	assert.Equal(t, "Specials", d.Name)
	assert.NotNil(t, d.Episodes)
	assert.Equal(t, ShowWanted, d.Status)
}

func TestMovieCertifications(t *testing.T) {
	assert.Empty(t, MovieCertifications(nil))

	rd := &tmdb.ReleaseDates{}
	require.NoError(t, jsonUnmarshal(`{"results":[
		{"iso_3166_1":"US","release_dates":[{"certification":"","type":1},{"certification":"R","type":3}]},
		{"iso_3166_1":"FR","release_dates":[{"certification":"","type":3}]}]}`, rd))
	assert.Equal(t, []ContentRating{{Country: "US", Rating: "R"}}, MovieCertifications(rd))
}

func TestImagesFromTMDB(t *testing.T) {
	imgs := &tmdb.Images{
		Posters:   []tmdb.Image{{FilePath: "/p.jpg", Width: 500, Language: ptr("en")}, {FilePath: ""}},
		Backdrops: []tmdb.Image{{FilePath: "/b.jpg"}},
	}
	got := ImagesFromTMDB(KindShow, imgs, DefaultImages)
	require.Len(t, got.Posters, 1)
	assert.Equal(t, "en", got.Posters[0].Language)
	assert.Equal(t, "https://image.tmdb.org/t/p/w1280/b.jpg", got.Backdrops[0].URL)
	assert.NotNil(t, got.Logos)
}
