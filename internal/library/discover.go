package library

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrdeck/internal/filter"
	"github.com/vmunix/arrdeck/internal/genre"
	"github.com/vmunix/arrdeck/internal/match"
	"github.com/vmunix/arrdeck/internal/media"
	"github.com/vmunix/arrdeck/internal/tmdb"
	"github.com/vmunix/arrdeck/pkg/pagination"
)

// DiscoverQuery selects a page of the TMDB catalog. A non-blank Search
// switches from discover to title search; the remaining filters are then
// applied to the returned page.
type DiscoverQuery struct {
	Search    string
	Page      int
	Genres    []string
	YearMin   *int
	YearMax   *int
	RatingMin *float64
	Sort      filter.Field // zero keeps provider order
	Dir       filter.Direction
}

// MovieDiscovery is a page of catalog movies.
type MovieDiscovery struct {
	Items []media.MovieItem `json:"items"`
	Meta  pagination.Meta   `json:"meta"`
}

// ShowDiscovery is a page of catalog shows.
type ShowDiscovery struct {
	Items []media.ShowItem `json:"items"`
	Meta  pagination.Meta  `json:"meta"`
}

func (q DiscoverQuery) params(kind genre.Kind) tmdb.DiscoverParams {
	p := tmdb.DiscoverParams{Page: q.Page, RatingMin: q.RatingMin}
	for _, name := range q.Genres {
		if id, ok := genre.Lookup(name, kind); ok {
			p.Genres = append(p.Genres, id)
		}
	}
	if q.YearMin != nil {
		p.YearMin = *q.YearMin
	}
	if q.YearMax != nil {
		p.YearMax = *q.YearMax
	}
	return p
}

func pageMeta(page, results, totalPages, totalResults int) pagination.Meta {
	return pagination.Meta{
		Page:       max(page, 1),
		PageSize:   results,
		TotalItems: totalResults,
		TotalPages: totalPages,
	}
}

// DiscoverMovies returns a page of TMDB movies flagged against the Radarr
// library. The library lookup is best effort: when Radarr is unavailable
// the page is returned unflagged.
func (s *Service) DiscoverMovies(ctx context.Context, q DiscoverQuery) (*MovieDiscovery, error) {
	if s.meta == nil {
		return nil, notConfigured(media.SourceTMDB)
	}

	var page *tmdb.Page[tmdb.MovieResult]
	var index *match.Index
	var owned map[int]media.MovieItem
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if strings.TrimSpace(q.Search) != "" {
			page, err = s.meta.SearchMovies(gctx, strings.TrimSpace(q.Search), q.Page)
		} else {
			page, err = s.meta.DiscoverMovies(gctx, q.params(genre.Movie))
		}
		return fetchFailure(media.SourceTMDB, err)
	})
	if s.movies != nil {
		g.Go(func() error {
			raw, err := s.movies.Movies(gctx)
			if err != nil {
				s.log.Warn("library lookup failed, discover results unflagged", "source", media.SourceRadarr, "error", err)
				return nil
			}
			cands := make([]match.Candidate, len(raw))
			owned = make(map[int]media.MovieItem, len(raw))
			for i := range raw {
				item := media.FromRadarrMovie(&raw[i])
				owned[item.ID] = item
				cands[i] = match.Candidate{ID: item.ID, TMDBID: item.TMDBID, Title: item.Title, Year: item.Year}
			}
			index = match.NewIndex(cands)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]media.MovieItem, len(page.Results))
	for i := range page.Results {
		items[i] = media.FromTMDBMovie(&page.Results[i], s.images)
		if index == nil {
			continue
		}
		if r, ok := index.Find(items[i].TMDBID, items[i].Title, items[i].Year, match.ConfidenceHigh); ok {
			items[i].InLibrary = true
			items[i].LibraryID = r.ID
			items[i].Status = owned[r.ID].Status
		}
	}

	out := filter.Apply(items,
		filter.Genres[media.MovieItem](q.Genres),
		filter.YearRange[media.MovieItem](q.YearMin, q.YearMax),
		filter.RatingFloor[media.MovieItem](q.RatingMin),
	)
	if q.Sort != "" {
		if err := sortItems(out, q.Sort, q.Dir, "", 0); err != nil {
			return nil, err
		}
	}
	return &MovieDiscovery{
		Items: out,
		Meta:  pageMeta(page.Page, len(page.Results), page.TotalPages, page.TotalResults),
	}, nil
}

// DiscoverShows returns a page of TMDB shows flagged against the Sonarr
// library, best effort like DiscoverMovies.
func (s *Service) DiscoverShows(ctx context.Context, q DiscoverQuery) (*ShowDiscovery, error) {
	if s.meta == nil {
		return nil, notConfigured(media.SourceTMDB)
	}

	var page *tmdb.Page[tmdb.ShowResult]
	var index *match.Index
	var owned map[int]media.ShowItem
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if strings.TrimSpace(q.Search) != "" {
			page, err = s.meta.SearchShows(gctx, strings.TrimSpace(q.Search), q.Page)
		} else {
			page, err = s.meta.DiscoverShows(gctx, q.params(genre.TV))
		}
		return fetchFailure(media.SourceTMDB, err)
	})
	if s.series != nil {
		g.Go(func() error {
			raw, err := s.series.AllSeries(gctx)
			if err != nil {
				s.log.Warn("library lookup failed, discover results unflagged", "source", media.SourceSonarr, "error", err)
				return nil
			}
			cands := make([]match.Candidate, len(raw))
			owned = make(map[int]media.ShowItem, len(raw))
			for i := range raw {
				item := media.FromSonarrSeries(&raw[i])
				owned[item.ID] = item
				cands[i] = match.Candidate{ID: item.ID, TMDBID: item.TMDBID, Title: item.Title, Year: item.Year}
			}
			index = match.NewIndex(cands)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]media.ShowItem, len(page.Results))
	for i := range page.Results {
		items[i] = media.FromTMDBShow(&page.Results[i], s.images)
		if index == nil {
			continue
		}
		if r, ok := index.Find(items[i].TMDBID, items[i].Title, items[i].Year, match.ConfidenceHigh); ok {
			lib := owned[r.ID]
			items[i].InLibrary = true
			items[i].LibraryID = r.ID
			items[i].Status = lib.Status
			items[i].ShowStatus = lib.ShowStatus
			items[i].TotalEpisodes = lib.TotalEpisodes
			items[i].DownloadedEpisodes = lib.DownloadedEpisodes
			items[i].Network = lib.Network
		}
	}

	out := filter.Apply(items,
		filter.Genres[media.ShowItem](q.Genres),
		filter.YearRange[media.ShowItem](q.YearMin, q.YearMax),
		filter.RatingFloor[media.ShowItem](q.RatingMin),
	)
	if q.Sort != "" {
		if err := sortItems(out, q.Sort, q.Dir, "", 0); err != nil {
			return nil, err
		}
	}
	return &ShowDiscovery{
		Items: out,
		Meta:  pageMeta(page.Page, len(page.Results), page.TotalPages, page.TotalResults),
	}, nil
}
