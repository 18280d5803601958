// Package tmdb provides a client for The Movie Database API.
package tmdb

import "strings"

// Page is the paging envelope of discover, search and list endpoints.
type Page[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// MovieResult is a movie entry on a discover, search or recommendations page.
type MovieResult struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title,omitempty"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	GenreIDs      []int   `json:"genre_ids"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	Adult         bool    `json:"adult,omitempty"`
}

// ShowResult is a TV entry on a discover, search or recommendations page.
type ShowResult struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	OriginalName  string   `json:"original_name,omitempty"`
	Overview      string   `json:"overview"`
	FirstAirDate  string   `json:"first_air_date"`
	PosterPath    string   `json:"poster_path"`
	BackdropPath  string   `json:"backdrop_path"`
	GenreIDs      []int    `json:"genre_ids"`
	OriginCountry []string `json:"origin_country,omitempty"`
	VoteAverage   float64  `json:"vote_average"`
	VoteCount     int      `json:"vote_count"`
	Popularity    float64  `json:"popularity"`
}

// Movie represents TMDB movie details.
// Appended blocks are nil unless requested via append_to_response.
type Movie struct {
	ID               int64   `json:"id"`
	IMDBID           string  `json:"imdb_id,omitempty"` // e.g., "tt0133093"
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title,omitempty"`
	Tagline          string  `json:"tagline,omitempty"`
	Overview         string  `json:"overview"`
	Status           string  `json:"status,omitempty"`
	ReleaseDate      string  `json:"release_date"` // "2024-03-01"
	PosterPath       string  `json:"poster_path"`  // "/abc123.jpg"
	BackdropPath     string  `json:"backdrop_path"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	Runtime          int     `json:"runtime"` // minutes
	Budget           int64   `json:"budget,omitempty"`
	Revenue          int64   `json:"revenue,omitempty"`
	OriginalLanguage string  `json:"original_language,omitempty"`
	Genres           []Genre `json:"genres"`

	Credits         *Credits           `json:"credits,omitempty"`
	Images          *Images            `json:"images,omitempty"`
	Videos          *Videos            `json:"videos,omitempty"`
	Reviews         *Page[Review]      `json:"reviews,omitempty"`
	Recommendations *Page[MovieResult] `json:"recommendations,omitempty"`
	ReleaseDates    *ReleaseDates      `json:"release_dates,omitempty"`
}

// Show represents TMDB TV series details.
type Show struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	OriginalName     string          `json:"original_name,omitempty"`
	Tagline          string          `json:"tagline,omitempty"`
	Overview         string          `json:"overview"`
	Status           string          `json:"status,omitempty"` // Returning Series, Ended, Canceled, In Production, Planned
	FirstAirDate     string          `json:"first_air_date"`
	LastAirDate      string          `json:"last_air_date,omitempty"`
	PosterPath       string          `json:"poster_path"`
	BackdropPath     string          `json:"backdrop_path"`
	VoteAverage      float64         `json:"vote_average"`
	VoteCount        int             `json:"vote_count"`
	Popularity       float64         `json:"popularity"`
	EpisodeRunTime   []int           `json:"episode_run_time,omitempty"`
	NumberOfSeasons  int             `json:"number_of_seasons"`
	NumberOfEpisodes int             `json:"number_of_episodes"`
	Genres           []Genre         `json:"genres"`
	Networks         []Network       `json:"networks,omitempty"`
	Seasons          []SeasonSummary `json:"seasons,omitempty"`
	NextEpisodeToAir *Episode        `json:"next_episode_to_air,omitempty"`
	LastEpisodeToAir *Episode        `json:"last_episode_to_air,omitempty"`

	Credits         *Credits          `json:"credits,omitempty"`
	Images          *Images           `json:"images,omitempty"`
	Videos          *Videos           `json:"videos,omitempty"`
	Reviews         *Page[Review]     `json:"reviews,omitempty"`
	Recommendations *Page[ShowResult] `json:"recommendations,omitempty"`
	ContentRatings  *ContentRatings   `json:"content_ratings,omitempty"`
}

// Season represents TMDB season details with its episodes.
type Season struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	AirDate      string    `json:"air_date"`
	SeasonNumber int       `json:"season_number"`
	PosterPath   string    `json:"poster_path"`
	VoteAverage  float64   `json:"vote_average"`
	Episodes     []Episode `json:"episodes"`
}

// SeasonSummary is a season entry nested in TV details.
type SeasonSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	AirDate      string `json:"air_date"`
	SeasonNumber int    `json:"season_number"`
	EpisodeCount int    `json:"episode_count"`
	PosterPath   string `json:"poster_path"`
}

// Episode is a single TV episode.
type Episode struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	AirDate       string  `json:"air_date"`
	EpisodeNumber int     `json:"episode_number"`
	SeasonNumber  int     `json:"season_number"`
	StillPath     string  `json:"still_path"`
	VoteAverage   float64 `json:"vote_average"`
	Runtime       *int    `json:"runtime,omitempty"`
}

// Network is a broadcaster or streaming service.
type Network struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	LogoPath string `json:"logo_path,omitempty"`
}

// Genre represents a genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Credits holds cast and crew.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// CastMember is an actor credit.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// CrewMember is a crew credit.
type CrewMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	Department  string `json:"department"`
	ProfilePath string `json:"profile_path"`
}

// Images holds the artwork sets of a title.
type Images struct {
	Backdrops []Image `json:"backdrops"`
	Posters   []Image `json:"posters"`
	Logos     []Image `json:"logos"`
}

// Image is one artwork file.
type Image struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspect_ratio"`
	VoteAverage float64 `json:"vote_average"`
	Language    *string `json:"iso_639_1"`
}

// Videos holds trailers, teasers and clips.
type Videos struct {
	Results []Video `json:"results"`
}

// Video is a hosted video.
type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"` // YouTube, Vimeo
	Type     string `json:"type"` // Trailer, Teaser, Clip, Featurette
	Official bool   `json:"official"`
}

// Review is a user review.
type Review struct {
	ID            string `json:"id"`
	Author        string `json:"author"`
	Content       string `json:"content"`
	URL           string `json:"url"`
	CreatedAt     string `json:"created_at"`
	AuthorDetails struct {
		Username string   `json:"username"`
		Rating   *float64 `json:"rating"`
	} `json:"author_details"`
}

// ReleaseDates holds per-country movie releases and certifications.
type ReleaseDates struct {
	Results []struct {
		Country      string `json:"iso_3166_1"`
		ReleaseDates []struct {
			Certification string `json:"certification"`
			ReleaseDate   string `json:"release_date"`
			Type          int    `json:"type"`
		} `json:"release_dates"`
	} `json:"results"`
}

// ContentRatings holds per-country TV ratings.
type ContentRatings struct {
	Results []struct {
		Country string `json:"iso_3166_1"`
		Rating  string `json:"rating"`
	} `json:"results"`
}

// Year extracts the year from a "YYYY-MM-DD" date, 0 if absent or malformed.
func Year(date string) int {
	if len(date) < 4 {
		return 0
	}
	year := 0
	for _, c := range date[:4] {
		if c < '0' || c > '9' {
			return 0
		}
		year = year*10 + int(c-'0')
	}
	return year
}

// Year extracts the year from ReleaseDate.
func (m *Movie) Year() int {
	return Year(m.ReleaseDate)
}

// Year extracts the year from FirstAirDate.
func (s *Show) Year() int {
	return Year(s.FirstAirDate)
}

// ImageURL joins an image base URL, a size and a relative file path.
// Size can be: w92, w154, w185, w342, w500, w780, original
func ImageURL(base, size, path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + size + path
}
