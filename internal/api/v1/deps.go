package v1

import (
	"context"
	"errors"

	"github.com/vmunix/arrdeck/internal/genre"
	"github.com/vmunix/arrdeck/internal/library"
	"github.com/vmunix/arrdeck/internal/media"
	"github.com/vmunix/arrdeck/pkg/arr"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Library is the query and management surface the API serves.
type Library interface {
	Movies(ctx context.Context, q library.MovieQuery) (*library.MovieList, error)
	Shows(ctx context.Context, q library.ShowQuery) (*library.ShowList, error)
	DiscoverMovies(ctx context.Context, q library.DiscoverQuery) (*library.MovieDiscovery, error)
	DiscoverShows(ctx context.Context, q library.DiscoverQuery) (*library.ShowDiscovery, error)
	MovieDetail(ctx context.Context, id int) (*media.MovieDetail, error)
	ShowDetail(ctx context.Context, id int) (*media.ShowDetail, error)
	SeasonDetail(ctx context.Context, id, season int) (*media.SeasonDetail, error)
	Update(ctx context.Context, kind media.Kind, id int, changes arr.Changes) (media.Item, error)
	Delete(ctx context.Context, kind media.Kind, id int, deleteFiles bool) error
	QualityProfiles(ctx context.Context, kind media.Kind) ([]arr.QualityProfile, error)
	Genres(kind media.Kind) ([]genre.Genre, error)
	Health(ctx context.Context) []library.SourceStatus
}

var _ Library = (*library.Service)(nil)
