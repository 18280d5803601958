// Package library runs the per-request pipelines that turn upstream
// collections into filtered, sorted and counted canonical item lists.
package library

import (
	"context"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrdeck/internal/filter"
	"github.com/vmunix/arrdeck/internal/media"
	"github.com/vmunix/arrdeck/pkg/pagination"
	"github.com/vmunix/arrdeck/pkg/radarr"
	"github.com/vmunix/arrdeck/pkg/sonarr"
)

// Service answers library, discover and detail queries. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	movies MovieLibrary
	series SeriesLibrary
	meta   Metadata
	images media.ImageConfig
	log    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithMovies sets the Radarr client.
func WithMovies(m MovieLibrary) Option {
	return func(s *Service) { s.movies = m }
}

// WithSeries sets the Sonarr client.
func WithSeries(l SeriesLibrary) Option {
	return func(s *Service) { s.series = l }
}

// WithMetadata sets the TMDB client.
func WithMetadata(m Metadata) Option {
	return func(s *Service) { s.meta = m }
}

// WithImages sets how TMDB image paths are turned into URLs.
func WithImages(c media.ImageConfig) Option {
	return func(s *Service) { s.images = c.WithDefaults() }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a Service. Sources left unset answer ErrNotConfigured.
func New(opts ...Option) *Service {
	s := &Service{
		images: media.DefaultImages,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "library")
	return s
}

// Query holds the filters and ordering shared by every list.
type Query struct {
	Status    string // derived status, or filter.All
	Search    string
	Genres    []string
	YearMin   *int
	YearMax   *int
	RatingMin *float64
	Sort      filter.Field // zero value selects the list's default
	Dir       filter.Direction
	Page      pagination.Params
}

// MovieQuery narrows Movies.
type MovieQuery struct {
	Query
}

// ShowQuery narrows Shows.
type ShowQuery struct {
	Query
	Networks []string
}

// MovieStats counts the unfiltered movie library.
type MovieStats struct {
	All         int `json:"all"`
	Downloaded  int `json:"downloaded"`
	Downloading int `json:"downloading"`
	Wanted      int `json:"wanted"`
	Missing     int `json:"missing"`
}

// ShowStats counts the unfiltered show library.
type ShowStats struct {
	All         int `json:"all"`
	Complete    int `json:"complete"`
	Partial     int `json:"partial"`
	Downloading int `json:"downloading"`
	Missing     int `json:"missing"`
	Wanted      int `json:"wanted"`
}

// MovieList is the response of Movies.
type MovieList struct {
	Stats MovieStats        `json:"stats"`
	Items []media.MovieItem `json:"items"`
	Meta  pagination.Meta   `json:"meta"`
}

// ShowList is the response of Shows.
type ShowList struct {
	Stats    ShowStats        `json:"stats"`
	Items    []media.ShowItem `json:"items"`
	Networks []string         `json:"networks"`
	Meta     pagination.Meta  `json:"meta"`
}

// Movies fetches the Radarr library and queue, maps, counts, filters,
// sorts and pages it. Stats always describe the whole library.
func (s *Service) Movies(ctx context.Context, q MovieQuery) (*MovieList, error) {
	if s.movies == nil {
		return nil, notConfigured(media.SourceRadarr)
	}

	var raw []radarr.Movie
	var queue []radarr.QueueRecord
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raw, err = s.movies.Movies(gctx)
		return fetchFailure(media.SourceRadarr, err)
	})
	g.Go(func() error {
		var err error
		queue, err = s.movies.Queue(gctx)
		return fetchFailure(media.SourceRadarr, err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]media.MovieItem, len(raw))
	for i := range raw {
		items[i] = media.FromRadarrMovie(&raw[i])
	}

	queued := make(map[int]struct{}, len(queue))
	for _, r := range queue {
		queued[r.MovieID] = struct{}{}
	}
	downloading := inLibrary(items, queued)

	stats := MovieStats{All: len(items), Downloading: len(downloading)}
	for _, it := range items {
		switch it.Status {
		case media.MovieDownloaded:
			stats.Downloaded++
		case media.MovieWanted:
			stats.Wanted++
		case media.MovieMissing:
			stats.Missing++
		}
	}

	out := filter.Apply(items,
		statusPredicate[media.MovieItem](q.Status, string(media.MovieDownloading), downloading),
		filter.Search[media.MovieItem](q.Search),
		filter.Genres[media.MovieItem](q.Genres),
		filter.YearRange[media.MovieItem](q.YearMin, q.YearMax),
		filter.RatingFloor[media.MovieItem](q.RatingMin),
	)
	if err := sortItems(out, q.Sort, q.Dir, filter.ByTitle, filter.Asc); err != nil {
		return nil, err
	}

	s.log.Debug("movies listed", "total", stats.All, "matched", len(out))
	return &MovieList{
		Stats: stats,
		Items: pagination.Slice(out, q.Page),
		Meta:  q.Page.BuildMeta(len(out)),
	}, nil
}

// Shows fetches the Sonarr library and queue, maps, counts, filters,
// sorts and pages it. Stats always describe the whole library.
func (s *Service) Shows(ctx context.Context, q ShowQuery) (*ShowList, error) {
	if s.series == nil {
		return nil, notConfigured(media.SourceSonarr)
	}

	var raw []sonarr.Series
	var queue []sonarr.QueueRecord
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raw, err = s.series.AllSeries(gctx)
		return fetchFailure(media.SourceSonarr, err)
	})
	g.Go(func() error {
		var err error
		queue, err = s.series.Queue(gctx)
		return fetchFailure(media.SourceSonarr, err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]media.ShowItem, len(raw))
	for i := range raw {
		items[i] = media.FromSonarrSeries(&raw[i])
	}

	queued := make(map[int]struct{}, len(queue))
	for _, r := range queue {
		queued[r.SeriesID] = struct{}{}
	}
	downloading := inLibrary(items, queued)

	stats := ShowStats{All: len(items), Downloading: len(downloading)}
	networks := make([]string, 0)
	for _, it := range items {
		switch it.Status {
		case media.ShowComplete:
			stats.Complete++
		case media.ShowPartial:
			stats.Partial++
		case media.ShowMissing:
			stats.Missing++
		case media.ShowWanted:
			stats.Wanted++
		}
		if it.Network != "" && !slices.Contains(networks, it.Network) {
			networks = append(networks, it.Network)
		}
	}
	slices.Sort(networks)

	out := filter.Apply(items,
		statusPredicate[media.ShowItem](q.Status, string(media.ShowDownloading), downloading),
		filter.Search[media.ShowItem](q.Search),
		filter.Genres[media.ShowItem](q.Genres),
		filter.Networks(q.Networks),
		filter.YearRange[media.ShowItem](q.YearMin, q.YearMax),
		filter.RatingFloor[media.ShowItem](q.RatingMin),
	)
	if err := sortItems(out, q.Sort, q.Dir, filter.ByAdded, filter.Desc); err != nil {
		return nil, err
	}

	s.log.Debug("shows listed", "total", stats.All, "matched", len(out))
	return &ShowList{
		Stats:    stats,
		Items:    pagination.Slice(out, q.Page),
		Networks: networks,
		Meta:     q.Page.BuildMeta(len(out)),
	}, nil
}

// inLibrary returns the ids of items present in queued.
func inLibrary[T media.Item](items []T, queued map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{})
	for _, it := range items {
		id := it.Common().ID
		if _, ok := queued[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// statusPredicate is filter.Status, except that the downloading tab selects
// items with an active queue entry. Downloading is never an item's own status.
func statusPredicate[T media.Item](status, downloadingTag string, downloading map[int]struct{}) filter.Predicate[T] {
	if status != downloadingTag {
		return filter.Status[T](status)
	}
	return func(item T) bool {
		_, ok := downloading[item.Common().ID]
		return ok
	}
}

func sortItems[T media.Item](items []T, field filter.Field, dir filter.Direction, defField filter.Field, defDir filter.Direction) error {
	if field == "" {
		field = defField
		if dir == 0 {
			dir = defDir
		}
	}
	if dir == 0 {
		dir = filter.Asc
	}
	c, err := filter.Compare[T](field, dir)
	if err != nil {
		return err
	}
	filter.Sort(items, c)
	return nil
}
