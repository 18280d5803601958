// Package sonarr provides a client for the Sonarr v3 API.
package sonarr

import (
	"time"

	"github.com/vmunix/arrdeck/pkg/arr"
)

// Series is a series resource from /api/v3/series.
type Series struct {
	ID               int         `json:"id"`
	Title            string      `json:"title"`
	SortTitle        string      `json:"sortTitle,omitempty"`
	Year             *int        `json:"year,omitempty"`
	TVDBID           *int        `json:"tvdbId,omitempty"`
	TMDBID           *int        `json:"tmdbId,omitempty"`
	IMDBID           string      `json:"imdbId,omitempty"`
	Overview         *string     `json:"overview,omitempty"`
	Runtime          *int        `json:"runtime,omitempty"`
	Network          *string     `json:"network,omitempty"`
	Certification    string      `json:"certification,omitempty"`
	Status           string      `json:"status,omitempty"` // continuing, ended, upcoming, deleted
	FirstAired       string      `json:"firstAired,omitempty"`
	NextAiring       string      `json:"nextAiring,omitempty"`
	PreviousAiring   string      `json:"previousAiring,omitempty"`
	Added            string      `json:"added,omitempty"`
	Path             string      `json:"path,omitempty"`
	QualityProfileID int         `json:"qualityProfileId,omitempty"`
	Monitored        bool        `json:"monitored"`
	Genres           []string    `json:"genres,omitempty"`
	Images           []arr.Image `json:"images,omitempty"`
	Ratings          *Ratings    `json:"ratings,omitempty"`
	Statistics       *Statistics `json:"statistics,omitempty"`
	Seasons          []Season    `json:"seasons,omitempty"`
}

// Ratings is Sonarr's single aggregated rating.
type Ratings struct {
	Votes int      `json:"votes"`
	Value *float64 `json:"value,omitempty"`
}

// Statistics are the episode counters Sonarr maintains per series and season.
type Statistics struct {
	SeasonCount       int     `json:"seasonCount"`
	EpisodeFileCount  int     `json:"episodeFileCount"`
	EpisodeCount      int     `json:"episodeCount"`
	TotalEpisodeCount int     `json:"totalEpisodeCount"`
	SizeOnDisk        int64   `json:"sizeOnDisk"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes"`
}

// Season is a season entry nested in a series.
type Season struct {
	SeasonNumber int         `json:"seasonNumber"`
	Monitored    bool        `json:"monitored"`
	Statistics   *Statistics `json:"statistics,omitempty"`
}

// Episode is an episode from /api/v3/episode.
type Episode struct {
	ID            int     `json:"id"`
	SeriesID      int     `json:"seriesId"`
	SeasonNumber  int     `json:"seasonNumber"`
	EpisodeNumber int     `json:"episodeNumber"`
	Title         string  `json:"title"`
	Overview      *string `json:"overview,omitempty"`
	AirDate       string  `json:"airDate,omitempty"`
	AirDateUTC    string  `json:"airDateUtc,omitempty"`
	Runtime       int     `json:"runtime,omitempty"`
	HasFile       bool    `json:"hasFile"`
	Monitored     bool    `json:"monitored"`
	EpisodeFileID int     `json:"episodeFileId,omitempty"`
}

// EpisodeFile is a file from /api/v3/episodefile.
type EpisodeFile struct {
	ID           int               `json:"id"`
	SeriesID     int               `json:"seriesId"`
	SeasonNumber int               `json:"seasonNumber"`
	RelativePath string            `json:"relativePath,omitempty"`
	Path         string            `json:"path,omitempty"`
	Size         int64             `json:"size"`
	DateAdded    *time.Time        `json:"dateAdded,omitempty"`
	ReleaseGroup string            `json:"releaseGroup,omitempty"`
	Quality      *arr.QualityModel `json:"quality,omitempty"`
}

// QueueRecord is an in-progress download from /api/v3/queue.
type QueueRecord struct {
	ID                    int     `json:"id"`
	SeriesID              int     `json:"seriesId"`
	EpisodeID             int     `json:"episodeId"`
	Title                 string  `json:"title"`
	Status                string  `json:"status"`
	TrackedDownloadStatus string  `json:"trackedDownloadStatus,omitempty"`
	Size                  float64 `json:"size"`
	SizeLeft              float64 `json:"sizeleft"`
	TimeLeft              string  `json:"timeleft,omitempty"`
}

// HistoryRecord is an entry from /api/v3/history/series.
type HistoryRecord struct {
	ID          int               `json:"id"`
	SeriesID    int               `json:"seriesId"`
	EpisodeID   int               `json:"episodeId"`
	SourceTitle string            `json:"sourceTitle"`
	EventType   string            `json:"eventType"` // grabbed, downloadFolderImported, downloadFailed, episodeFileDeleted, episodeFileRenamed
	Date        *time.Time        `json:"date,omitempty"`
	Quality     *arr.QualityModel `json:"quality,omitempty"`
	Data        map[string]string `json:"data,omitempty"`
}
