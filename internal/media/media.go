// Package media defines the canonical movie and show items and the mappers
// that build them from Radarr, Sonarr and TMDB resources.
package media

import (
	"time"

	"github.com/vmunix/arrdeck/internal/genre"
)

// Kind distinguishes movies from shows.
type Kind string

const (
	KindMovie Kind = "movie"
	KindShow  Kind = "show"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindMovie || k == KindShow
}

// GenreKind returns the genre catalog for k.
func (k Kind) GenreKind() genre.Kind {
	if k == KindShow {
		return genre.TV
	}
	return genre.Movie
}

// Source identifies the upstream service a resource came from.
type Source string

const (
	SourceRadarr Source = "radarr"
	SourceSonarr Source = "sonarr"
	SourceTMDB   Source = "tmdb"
)

// MovieStatus is the derived library status of a movie.
type MovieStatus string

const (
	MovieDownloaded  MovieStatus = "downloaded"
	MovieDownloading MovieStatus = "downloading" // aggregate stats only
	MovieWanted      MovieStatus = "wanted"
	MovieMissing     MovieStatus = "missing"
)

// MovieStatuses lists every movie status in display order.
var MovieStatuses = []MovieStatus{MovieDownloaded, MovieDownloading, MovieWanted, MovieMissing}

// ShowStatus is the derived library status of a show.
type ShowStatus string

const (
	ShowComplete    ShowStatus = "complete"
	ShowPartial     ShowStatus = "partial"
	ShowDownloading ShowStatus = "downloading" // aggregate stats only
	ShowMissing     ShowStatus = "missing"
	ShowWanted      ShowStatus = "wanted"
)

// ShowStatuses lists every show status in display order.
var ShowStatuses = []ShowStatus{ShowComplete, ShowPartial, ShowDownloading, ShowMissing, ShowWanted}

// Lifecycle is the airing state of a show.
type Lifecycle string

const (
	Continuing Lifecycle = "continuing"
	Ended      Lifecycle = "ended"
	Upcoming   Lifecycle = "upcoming"
)

// Base holds the fields movie and show items share.
type Base struct {
	ID          int      `json:"id"`
	TMDBID      int      `json:"tmdbId,omitempty"`
	MediaType   Kind     `json:"mediaType"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Overview    string   `json:"overview"`
	Tagline     string   `json:"tagline,omitempty"`
	PosterURL   string   `json:"posterUrl,omitempty"`
	BackdropURL string   `json:"backdropUrl,omitempty"`
	Runtime     int      `json:"runtime"`
	Rating      float64  `json:"rating"`
	VoteCount   int      `json:"voteCount,omitempty"`
	Popularity  float64  `json:"popularity,omitempty"`
	Genres      []string `json:"genres"`
	InLibrary   bool     `json:"inLibrary"`
	LibraryID   int      `json:"libraryId,omitempty"`
}

// Common returns the shared fields. Filters and comparators work on it.
func (b Base) Common() Base { return b }

// Item is implemented by MovieItem and ShowItem.
type Item interface {
	Common() Base
	StatusTag() string
}

// MovieItem is the canonical movie.
type MovieItem struct {
	Base
	Status           MovieStatus `json:"status"`
	Quality          string      `json:"quality,omitempty"`
	Monitored        bool        `json:"monitored"`
	QualityProfileID int         `json:"qualityProfileId,omitempty"`
	SizeOnDisk       int64       `json:"sizeOnDisk,omitempty"`
}

// StatusTag returns the derived status.
func (m MovieItem) StatusTag() string { return string(m.Status) }

// ShowItem is the canonical show. Episode counts satisfy
// 0 <= DownloadedEpisodes <= TotalEpisodes after mapping.
type ShowItem struct {
	Base
	Status             ShowStatus `json:"status"`
	ShowStatus         Lifecycle  `json:"showStatus"`
	TotalEpisodes      int        `json:"totalEpisodes"`
	DownloadedEpisodes int        `json:"downloadedEpisodes"`
	SeasonCount        int        `json:"seasonCount"`
	Network            string     `json:"network"`
	NextEpisode        *time.Time `json:"nextEpisode,omitempty"`
	Monitored          bool       `json:"monitored"`
	QualityProfileID   int        `json:"qualityProfileId,omitempty"`
	SizeOnDisk         int64      `json:"sizeOnDisk,omitempty"`
}

// StatusTag returns the derived display status.
func (s ShowItem) StatusTag() string { return string(s.Status) }

// NetworkName returns the broadcasting network, "" if unknown.
func (s ShowItem) NetworkName() string { return s.Network }

// NextAiring returns the next episode air time, nil if none is scheduled.
func (s ShowItem) NextAiring() *time.Time { return s.NextEpisode }

// Networked is implemented by items that carry a network.
type Networked interface {
	NetworkName() string
}

// Airing is implemented by items that carry a next air time.
type Airing interface {
	NextAiring() *time.Time
}

// ImageConfig composes TMDB relative image paths into URLs.
type ImageConfig struct {
	BaseURL      string
	PosterSize   string
	BackdropSize string
	ProfileSize  string
	StillSize    string
}

// DefaultImages is the public TMDB image CDN with common sizes.
var DefaultImages = ImageConfig{
	BaseURL:      "https://image.tmdb.org/t/p",
	PosterSize:   "w500",
	BackdropSize: "w1280",
	ProfileSize:  "w185",
	StillSize:    "w300",
}

// WithDefaults fills unset fields from DefaultImages.
func (c ImageConfig) WithDefaults() ImageConfig {
	if c.BaseURL == "" {
		c.BaseURL = DefaultImages.BaseURL
	}
	if c.PosterSize == "" {
		c.PosterSize = DefaultImages.PosterSize
	}
	if c.BackdropSize == "" {
		c.BackdropSize = DefaultImages.BackdropSize
	}
	if c.ProfileSize == "" {
		c.ProfileSize = DefaultImages.ProfileSize
	}
	if c.StillSize == "" {
		c.StillSize = DefaultImages.StillSize
	}
	return c
}
