package library

import (
	"context"

	"github.com/vmunix/arrdeck/internal/tmdb"
	"github.com/vmunix/arrdeck/pkg/arr"
	"github.com/vmunix/arrdeck/pkg/radarr"
	"github.com/vmunix/arrdeck/pkg/sonarr"
)

// MovieLibrary is the Radarr surface the service uses.
type MovieLibrary interface {
	Movies(ctx context.Context) ([]radarr.Movie, error)
	Movie(ctx context.Context, id int) (*radarr.Movie, error)
	Queue(ctx context.Context) ([]radarr.QueueRecord, error)
	History(ctx context.Context, movieID int) ([]radarr.HistoryRecord, error)
	Files(ctx context.Context, movieID int) ([]radarr.MovieFile, error)
	QualityProfiles(ctx context.Context) ([]arr.QualityProfile, error)
	Update(ctx context.Context, id int, changes arr.Changes) (*radarr.Movie, error)
	Delete(ctx context.Context, id int, deleteFiles bool) error
	SystemStatus(ctx context.Context) (*arr.SystemStatus, error)
}

// SeriesLibrary is the Sonarr surface the service uses.
type SeriesLibrary interface {
	AllSeries(ctx context.Context) ([]sonarr.Series, error)
	Series(ctx context.Context, id int) (*sonarr.Series, error)
	Episodes(ctx context.Context, seriesID int) ([]sonarr.Episode, error)
	Files(ctx context.Context, seriesID int) ([]sonarr.EpisodeFile, error)
	Queue(ctx context.Context) ([]sonarr.QueueRecord, error)
	History(ctx context.Context, seriesID int) ([]sonarr.HistoryRecord, error)
	QualityProfiles(ctx context.Context) ([]arr.QualityProfile, error)
	Update(ctx context.Context, id int, changes arr.Changes) (*sonarr.Series, error)
	Delete(ctx context.Context, id int, deleteFiles bool) error
	SystemStatus(ctx context.Context) (*arr.SystemStatus, error)
}

// Metadata is the TMDB surface the service uses.
type Metadata interface {
	DiscoverMovies(ctx context.Context, p tmdb.DiscoverParams) (*tmdb.Page[tmdb.MovieResult], error)
	DiscoverShows(ctx context.Context, p tmdb.DiscoverParams) (*tmdb.Page[tmdb.ShowResult], error)
	SearchMovies(ctx context.Context, query string, page int) (*tmdb.Page[tmdb.MovieResult], error)
	SearchShows(ctx context.Context, query string, page int) (*tmdb.Page[tmdb.ShowResult], error)
	GetMovie(ctx context.Context, tmdbID int64) (*tmdb.Movie, error)
	GetShow(ctx context.Context, tmdbID int64) (*tmdb.Show, error)
	GetSeason(ctx context.Context, tmdbID int64, season int) (*tmdb.Season, error)
	Ping(ctx context.Context) error
}

var (
	_ MovieLibrary  = (*radarr.Client)(nil)
	_ SeriesLibrary = (*sonarr.Client)(nil)
	_ Metadata      = (*tmdb.Client)(nil)
)
