package library

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrdeck/internal/media"
	"github.com/vmunix/arrdeck/internal/tmdb"
	"github.com/vmunix/arrdeck/pkg/radarr"
	"github.com/vmunix/arrdeck/pkg/sonarr"
)

// MovieDetail joins a Radarr movie with its history, files and TMDB
// details. TMDB is advisory: a metadata failure is logged and the detail
// is returned without it.
func (s *Service) MovieDetail(ctx context.Context, id int) (*media.MovieDetail, error) {
	if s.movies == nil {
		return nil, notConfigured(media.SourceRadarr)
	}
	movie, err := s.movies.Movie(ctx, id)
	if err != nil {
		return nil, lookupFailure(media.SourceRadarr, "movie", id, err)
	}

	var history []radarr.HistoryRecord
	var files []radarr.MovieFile
	var meta *tmdb.Movie
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		history, err = s.movies.History(gctx, id)
		return fetchFailure(media.SourceRadarr, err)
	})
	g.Go(func() error {
		var err error
		files, err = s.movies.Files(gctx, id)
		return fetchFailure(media.SourceRadarr, err)
	})
	if tmdbID := deref(movie.TMDBID); s.meta != nil && tmdbID > 0 {
		g.Go(func() error {
			m, err := s.meta.GetMovie(gctx, int64(tmdbID))
			if err != nil {
				s.log.Warn("movie metadata unavailable", "id", id, "tmdb_id", tmdbID, "error", err)
				return nil
			}
			meta = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := media.NewMovieDetail(movie, meta, history, files, s.images)
	return &d, nil
}

// ShowDetail joins a Sonarr series with its history, files and TMDB details.
func (s *Service) ShowDetail(ctx context.Context, id int) (*media.ShowDetail, error) {
	if s.series == nil {
		return nil, notConfigured(media.SourceSonarr)
	}
	series, err := s.series.Series(ctx, id)
	if err != nil {
		return nil, lookupFailure(media.SourceSonarr, "show", id, err)
	}

	var history []sonarr.HistoryRecord
	var files []sonarr.EpisodeFile
	var meta *tmdb.Show
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		history, err = s.series.History(gctx, id)
		return fetchFailure(media.SourceSonarr, err)
	})
	g.Go(func() error {
		var err error
		files, err = s.series.Files(gctx, id)
		return fetchFailure(media.SourceSonarr, err)
	})
	if tmdbID := deref(series.TMDBID); s.meta != nil && tmdbID > 0 {
		g.Go(func() error {
			m, err := s.meta.GetShow(gctx, int64(tmdbID))
			if err != nil {
				s.log.Warn("show metadata unavailable", "id", id, "tmdb_id", tmdbID, "error", err)
				return nil
			}
			meta = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := media.NewShowDetail(series, meta, history, files, s.images)
	return &d, nil
}

// SeasonDetail returns one season of a Sonarr series with its episodes.
// A season Sonarr does not know is ErrNotFound.
func (s *Service) SeasonDetail(ctx context.Context, id, season int) (*media.SeasonDetail, error) {
	if s.series == nil {
		return nil, notConfigured(media.SourceSonarr)
	}
	series, err := s.series.Series(ctx, id)
	if err != nil {
		return nil, lookupFailure(media.SourceSonarr, "show", id, err)
	}
	if !hasSeason(series, season) {
		return nil, fmt.Errorf("show %d season %d: %w", id, season, ErrNotFound)
	}

	var episodes []sonarr.Episode
	var meta *tmdb.Season
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		episodes, err = s.series.Episodes(gctx, id)
		return fetchFailure(media.SourceSonarr, err)
	})
	if tmdbID := deref(series.TMDBID); s.meta != nil && tmdbID > 0 {
		g.Go(func() error {
			m, err := s.meta.GetSeason(gctx, int64(tmdbID), season)
			if err != nil {
				s.log.Warn("season metadata unavailable", "id", id, "season", season, "error", err)
				return nil
			}
			meta = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := media.NewSeasonDetail(series, season, episodes, meta, s.images)
	return &d, nil
}

func hasSeason(s *sonarr.Series, season int) bool {
	for _, sn := range s.Seasons {
		if sn.SeasonNumber == season {
			return true
		}
	}
	return false
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
