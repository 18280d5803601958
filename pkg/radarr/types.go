// Package radarr provides a client for the Radarr v3 API.
package radarr

import (
	"time"

	"github.com/vmunix/arrdeck/pkg/arr"
)

// Movie is a movie resource from /api/v3/movie.
// Optional fields are pointers so callers can tell absent from zero.
type Movie struct {
	ID               int         `json:"id"`
	Title            string      `json:"title"`
	SortTitle        string      `json:"sortTitle,omitempty"`
	Year             *int        `json:"year,omitempty"`
	TMDBID           *int        `json:"tmdbId,omitempty"`
	IMDBID           string      `json:"imdbId,omitempty"`
	Overview         *string     `json:"overview,omitempty"`
	Runtime          *int        `json:"runtime,omitempty"`
	Studio           string      `json:"studio,omitempty"`
	Certification    string      `json:"certification,omitempty"`
	Status           string      `json:"status,omitempty"` // tba, announced, inCinemas, released, deleted
	InCinemas        string      `json:"inCinemas,omitempty"`
	DigitalRelease   string      `json:"digitalRelease,omitempty"`
	PhysicalRelease  string      `json:"physicalRelease,omitempty"`
	Added            string      `json:"added,omitempty"`
	Path             string      `json:"path,omitempty"`
	QualityProfileID int         `json:"qualityProfileId,omitempty"`
	Monitored        bool        `json:"monitored"`
	IsAvailable      bool        `json:"isAvailable"`
	HasFile          bool        `json:"hasFile"`
	SizeOnDisk       int64       `json:"sizeOnDisk,omitempty"`
	Genres           []string    `json:"genres,omitempty"`
	Images           []arr.Image `json:"images,omitempty"`
	Ratings          *Ratings    `json:"ratings,omitempty"`
	MovieFile        *MovieFile  `json:"movieFile,omitempty"`
}

// Ratings groups the external ratings Radarr aggregates.
type Ratings struct {
	IMDB           *Rating `json:"imdb,omitempty"`
	TMDB           *Rating `json:"tmdb,omitempty"`
	Metacritic     *Rating `json:"metacritic,omitempty"`
	RottenTomatoes *Rating `json:"rottenTomatoes,omitempty"`
}

// Rating is a single rating source.
type Rating struct {
	Votes int      `json:"votes"`
	Value *float64 `json:"value,omitempty"`
	Type  string   `json:"type,omitempty"`
}

// MovieFile is the file attached to a movie.
type MovieFile struct {
	ID           int               `json:"id"`
	MovieID      int               `json:"movieId"`
	RelativePath string            `json:"relativePath,omitempty"`
	Path         string            `json:"path,omitempty"`
	Size         int64             `json:"size"`
	DateAdded    *time.Time        `json:"dateAdded,omitempty"`
	ReleaseGroup string            `json:"releaseGroup,omitempty"`
	Quality      *arr.QualityModel `json:"quality,omitempty"`
	MediaInfo    *MediaInfo        `json:"mediaInfo,omitempty"`
}

// MediaInfo is the probed stream information of a file.
type MediaInfo struct {
	VideoCodec   string `json:"videoCodec,omitempty"`
	AudioCodec   string `json:"audioCodec,omitempty"`
	Resolution   string `json:"resolution,omitempty"`
	VideoDynamic string `json:"videoDynamicRangeType,omitempty"`
}

// QueueRecord is an in-progress download from /api/v3/queue.
type QueueRecord struct {
	ID                    int     `json:"id"`
	MovieID               int     `json:"movieId"`
	Title                 string  `json:"title"`
	Status                string  `json:"status"`
	TrackedDownloadStatus string  `json:"trackedDownloadStatus,omitempty"`
	Size                  float64 `json:"size"`
	SizeLeft              float64 `json:"sizeleft"`
	TimeLeft              string  `json:"timeleft,omitempty"`
	Protocol              string  `json:"protocol,omitempty"`
	DownloadClient        string  `json:"downloadClient,omitempty"`
}

// HistoryRecord is an entry from /api/v3/history/movie.
type HistoryRecord struct {
	ID          int               `json:"id"`
	MovieID     int               `json:"movieId"`
	SourceTitle string            `json:"sourceTitle"`
	EventType   string            `json:"eventType"` // grabbed, downloadFolderImported, downloadFailed, movieFileDeleted, movieFileRenamed
	Date        *time.Time        `json:"date,omitempty"`
	Quality     *arr.QualityModel `json:"quality,omitempty"`
	Data        map[string]string `json:"data,omitempty"`
}
