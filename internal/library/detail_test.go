package library

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/arrdeck/internal/library/mocks"
	"github.com/vmunix/arrdeck/internal/tmdb"
	"github.com/vmunix/arrdeck/pkg/arr"
	"github.com/vmunix/arrdeck/pkg/radarr"
	"github.com/vmunix/arrdeck/pkg/sonarr"
)

func TestService_MovieDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	movies := mocks.NewMockMovieLibrary(ctrl)
	meta := mocks.NewMockMetadata(ctrl)

	m := radarrMovie(3, "Heat", true, true, true)
	movies.EXPECT().Movie(gomock.Any(), 3).Return(&m, nil)
	movies.EXPECT().History(gomock.Any(), 3).Return([]radarr.HistoryRecord{{ID: 9, MovieID: 3, EventType: "grabbed"}}, nil)
	movies.EXPECT().Files(gomock.Any(), 3).Return([]radarr.MovieFile{{ID: 5, MovieID: 3, Size: 1 << 30}}, nil)
	meta.EXPECT().GetMovie(gomock.Any(), int64(1003)).Return(&tmdb.Movie{ID: 1003, Tagline: "A Los Angeles crime saga"}, nil)

	svc := New(WithMovies(movies), WithMetadata(meta))
	d, err := svc.MovieDetail(t.Context(), 3)
	require.NoError(t, err)

	assert.Equal(t, "Heat", d.Title)
	assert.Equal(t, "A Los Angeles crime saga", d.Tagline)
	require.Len(t, d.History, 1)
	assert.Equal(t, "grabbed", d.History[0].EventType)
	require.Len(t, d.Files, 1)
}

func TestService_MovieDetail_MetadataOptional(t *testing.T) {
	ctrl := gomock.NewController(t)
	movies := mocks.NewMockMovieLibrary(ctrl)
	meta := mocks.NewMockMetadata(ctrl)

	m := radarrMovie(3, "Heat", true, true, true)
	movies.EXPECT().Movie(gomock.Any(), 3).Return(&m, nil)
	movies.EXPECT().History(gomock.Any(), 3).Return(nil, nil)
	movies.EXPECT().Files(gomock.Any(), 3).Return(nil, nil)
	meta.EXPECT().GetMovie(gomock.Any(), int64(1003)).Return(nil, errors.New("timeout"))

	svc := New(WithMovies(movies), WithMetadata(meta))
	d, err := svc.MovieDetail(t.Context(), 3)
	require.NoError(t, err)
	assert.Empty(t, d.Tagline)
	assert.NotNil(t, d.History)
	assert.NotNil(t, d.Files)
}

func TestService_MovieDetail_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	movies := mocks.NewMockMovieLibrary(ctrl)
	movies.EXPECT().Movie(gomock.Any(), 42).Return(nil, fmt.Errorf("get movie 42: %w", arr.ErrNotFound))

	svc := New(WithMovies(movies))
	_, err := svc.MovieDetail(t.Context(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ShowDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	series := mocks.NewMockSeriesLibrary(ctrl)

	s := sonarrSeries(2, "The Bear", "FX", 28, 10)
	series.EXPECT().Series(gomock.Any(), 2).Return(&s, nil)
	series.EXPECT().History(gomock.Any(), 2).Return(nil, nil)
	series.EXPECT().Files(gomock.Any(), 2).Return([]sonarr.EpisodeFile{{ID: 1, SeriesID: 2, SeasonNumber: 1}}, nil)

	svc := New(WithSeries(series))
	d, err := svc.ShowDetail(t.Context(), 2)
	require.NoError(t, err)
	assert.Equal(t, "The Bear", d.Title)
	assert.Equal(t, "FX", d.Network)
	assert.Len(t, d.Files, 1)
}

func TestService_ShowDetail_FilesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	series := mocks.NewMockSeriesLibrary(ctrl)

	s := sonarrSeries(2, "The Bear", "FX", 28, 10)
	series.EXPECT().Series(gomock.Any(), 2).Return(&s, nil)
	series.EXPECT().History(gomock.Any(), 2).Return(nil, nil).AnyTimes()
	series.EXPECT().Files(gomock.Any(), 2).Return(nil, &arr.APIError{StatusCode: 500, Message: "disk unavailable"})

	svc := New(WithSeries(series))
	_, err := svc.ShowDetail(t.Context(), 2)

	var ff *FetchFailure
	require.ErrorAs(t, err, &ff)
	assert.Equal(t, "disk unavailable", ff.Message)
}

func TestService_SeasonDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	series := mocks.NewMockSeriesLibrary(ctrl)
	meta := mocks.NewMockMetadata(ctrl)

	s := sonarrSeries(2, "The Bear", "FX", 28, 10)
	s.Seasons = []sonarr.Season{{SeasonNumber: 1}, {SeasonNumber: 2}}
	series.EXPECT().Series(gomock.Any(), 2).Return(&s, nil)
	series.EXPECT().Episodes(gomock.Any(), 2).Return([]sonarr.Episode{
		{ID: 11, SeasonNumber: 1, EpisodeNumber: 1, Title: "System", HasFile: true},
		{ID: 21, SeasonNumber: 2, EpisodeNumber: 1, Title: "Beef"},
		{ID: 22, SeasonNumber: 2, EpisodeNumber: 2, Title: "Pasta", HasFile: true},
	}, nil)
	meta.EXPECT().GetSeason(gomock.Any(), int64(5002), 2).Return(&tmdb.Season{Name: "Season Two"}, nil)

	svc := New(WithSeries(series), WithMetadata(meta))
	d, err := svc.SeasonDetail(t.Context(), 2, 2)
	require.NoError(t, err)

	assert.Equal(t, "Season Two", d.Name)
	assert.Equal(t, "The Bear", d.ShowTitle)
	require.Len(t, d.Episodes, 2)
	assert.Equal(t, "Beef", d.Episodes[0].Title)
	assert.Equal(t, 2, d.TotalEpisodes)
	assert.Equal(t, 1, d.DownloadedEpisodes)
}

func TestService_SeasonDetail_UnknownSeason(t *testing.T) {
	ctrl := gomock.NewController(t)
	series := mocks.NewMockSeriesLibrary(ctrl)

	s := sonarrSeries(2, "The Bear", "FX", 28, 10)
	s.Seasons = []sonarr.Season{{SeasonNumber: 1}}
	series.EXPECT().Series(gomock.Any(), 2).Return(&s, nil)

	svc := New(WithSeries(series))
	_, err := svc.SeasonDetail(t.Context(), 2, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}
