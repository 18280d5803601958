package media

import (
	"time"

	"github.com/vmunix/arrdeck/internal/genre"
	"github.com/vmunix/arrdeck/internal/tmdb"
	"github.com/vmunix/arrdeck/pkg/arr"
	"github.com/vmunix/arrdeck/pkg/radarr"
	"github.com/vmunix/arrdeck/pkg/sonarr"
)

// UnknownQuality names the quality of a file whose quality Radarr or
// Sonarr did not report.
const UnknownQuality = "Unknown"

// YearFromDate returns the four-digit year prefix of an ISO date, or 0.
func YearFromDate(date string) int {
	return tmdb.Year(date)
}

// FromRadarrMovie maps a Radarr movie.
func FromRadarrMovie(m *radarr.Movie) MovieItem {
	item := MovieItem{
		Base: Base{
			ID:          m.ID,
			TMDBID:      deref(m.TMDBID),
			MediaType:   KindMovie,
			Title:       m.Title,
			Year:        positive(deref(m.Year)),
			Overview:    deref(m.Overview),
			PosterURL:   arr.FindImage(m.Images, "poster"),
			BackdropURL: arr.FindImage(m.Images, "fanart"),
			Runtime:     positive(deref(m.Runtime)),
			Rating:      movieRating(m.Ratings),
			Genres:      genre.MapNames(m.Genres, genre.Movie),
			InLibrary:   true,
		},
		Status:           DeriveMovieStatus(m.HasFile, m.Monitored, m.IsAvailable),
		Monitored:        m.Monitored,
		QualityProfileID: m.QualityProfileID,
		SizeOnDisk:       m.SizeOnDisk,
	}
	if m.MovieFile != nil {
		item.Quality = qualityName(m.MovieFile.Quality)
	}
	return item
}

func movieRating(r *radarr.Ratings) float64 {
	if r == nil {
		return 0
	}
	if r.TMDB != nil && r.TMDB.Value != nil {
		return *r.TMDB.Value
	}
	if r.IMDB != nil && r.IMDB.Value != nil {
		return *r.IMDB.Value
	}
	return 0
}

// FromSonarrSeries maps a Sonarr series.
func FromSonarrSeries(s *sonarr.Series) ShowItem {
	var total, downloaded, seasons int
	var size int64
	if st := s.Statistics; st != nil {
		total, downloaded, seasons, size = st.EpisodeCount, st.EpisodeFileCount, st.SeasonCount, st.SizeOnDisk
	}
	total, downloaded = ClampEpisodes(total, downloaded)

	item := ShowItem{
		Base: Base{
			ID:          s.ID,
			TMDBID:      deref(s.TMDBID),
			MediaType:   KindShow,
			Title:       s.Title,
			Year:        positive(deref(s.Year)),
			Overview:    deref(s.Overview),
			PosterURL:   arr.FindImage(s.Images, "poster"),
			BackdropURL: arr.FindImage(s.Images, "fanart"),
			Runtime:     positive(deref(s.Runtime)),
			Genres:      genre.MapNames(s.Genres, genre.TV),
			InLibrary:   true,
		},
		Status:             DeriveShowStatus(total, downloaded),
		ShowStatus:         DeriveLifecycle(s.Status),
		TotalEpisodes:      total,
		DownloadedEpisodes: downloaded,
		SeasonCount:        max(seasons, 0),
		Network:            deref(s.Network),
		NextEpisode:        parseTime(s.NextAiring),
		Monitored:          s.Monitored,
		QualityProfileID:   s.QualityProfileID,
		SizeOnDisk:         size,
	}
	if s.Ratings != nil && s.Ratings.Value != nil {
		item.Rating = *s.Ratings.Value
	}
	if item.Year == 0 {
		item.Year = YearFromDate(s.FirstAired)
	}
	return item
}

// FromTMDBMovie maps a TMDB discover or search movie. The item is not in
// the library, so its status is missing.
func FromTMDBMovie(r *tmdb.MovieResult, img ImageConfig) MovieItem {
	img = img.WithDefaults()
	return MovieItem{
		Base: Base{
			ID:          int(r.ID),
			TMDBID:      int(r.ID),
			MediaType:   KindMovie,
			Title:       r.Title,
			Year:        YearFromDate(r.ReleaseDate),
			Overview:    r.Overview,
			PosterURL:   tmdb.ImageURL(img.BaseURL, img.PosterSize, r.PosterPath),
			BackdropURL: tmdb.ImageURL(img.BaseURL, img.BackdropSize, r.BackdropPath),
			Rating:      r.VoteAverage,
			VoteCount:   r.VoteCount,
			Popularity:  r.Popularity,
			Genres:      genre.MapIDs(r.GenreIDs, genre.Movie),
		},
		Status: DeriveMovieStatus(false, false, false),
	}
}

// FromTMDBShow maps a TMDB discover or search show.
func FromTMDBShow(r *tmdb.ShowResult, img ImageConfig) ShowItem {
	img = img.WithDefaults()
	return ShowItem{
		Base: Base{
			ID:          int(r.ID),
			TMDBID:      int(r.ID),
			MediaType:   KindShow,
			Title:       r.Name,
			Year:        YearFromDate(r.FirstAirDate),
			Overview:    r.Overview,
			PosterURL:   tmdb.ImageURL(img.BaseURL, img.PosterSize, r.PosterPath),
			BackdropURL: tmdb.ImageURL(img.BaseURL, img.BackdropSize, r.BackdropPath),
			Rating:      r.VoteAverage,
			VoteCount:   r.VoteCount,
			Popularity:  r.Popularity,
			Genres:      genre.MapIDs(r.GenreIDs, genre.TV),
		},
		Status:     DeriveShowStatus(0, 0),
		ShowStatus: DeriveLifecycle(""),
	}
}

// FromTMDBMovieDetails maps full TMDB movie details to an item.
func FromTMDBMovieDetails(m *tmdb.Movie, img ImageConfig) MovieItem {
	item := FromTMDBMovie(&tmdb.MovieResult{
		ID:           m.ID,
		Title:        m.Title,
		Overview:     m.Overview,
		ReleaseDate:  m.ReleaseDate,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		VoteAverage:  m.VoteAverage,
		VoteCount:    m.VoteCount,
		Popularity:   m.Popularity,
	}, img)
	item.Tagline = m.Tagline
	item.Runtime = positive(m.Runtime)
	item.Genres = genreNames(m.Genres, genre.Movie)
	return item
}

// FromTMDBShowDetails maps full TMDB TV details to an item.
func FromTMDBShowDetails(s *tmdb.Show, img ImageConfig) ShowItem {
	item := FromTMDBShow(&tmdb.ShowResult{
		ID:           s.ID,
		Name:         s.Name,
		Overview:     s.Overview,
		FirstAirDate: s.FirstAirDate,
		PosterPath:   s.PosterPath,
		BackdropPath: s.BackdropPath,
		VoteAverage:  s.VoteAverage,
		VoteCount:    s.VoteCount,
		Popularity:   s.Popularity,
	}, img)
	item.Tagline = s.Tagline
	item.Genres = genreNames(s.Genres, genre.TV)
	item.ShowStatus = TMDBLifecycle(s.Status)
	item.SeasonCount = max(s.NumberOfSeasons, 0)
	if len(s.EpisodeRunTime) > 0 {
		item.Runtime = positive(s.EpisodeRunTime[0])
	}
	if len(s.Networks) > 0 {
		item.Network = s.Networks[0].Name
	}
	if s.NextEpisodeToAir != nil {
		item.NextEpisode = parseTime(s.NextEpisodeToAir.AirDate)
	}
	return item
}

// genreNames maps expanded {id,name} genres through the id table, so
// provider renames never leak past the canonical names.
func genreNames(gs []tmdb.Genre, kind genre.Kind) []string {
	ids := make([]int, len(gs))
	for i, g := range gs {
		ids[i] = g.ID
	}
	return genre.MapIDs(ids, kind)
}

func qualityName(q *arr.QualityModel) string {
	if name := q.Name(); name != "" {
		return name
	}
	return UnknownQuality
}

// parseTime accepts RFC 3339 timestamps and bare dates. Anything else is nil.
func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func positive(n int) int {
	return max(n, 0)
}
