package radarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/vmunix/arrdeck/pkg/arr"
)

// queuePageSize is large enough to cover a household queue in one request.
const queuePageSize = 500

// Client is a Radarr v3 API client.
type Client struct {
	api *arr.Client
}

// New creates a new Radarr client.
func New(baseURL, apiKey string, opts ...arr.Option) *Client {
	return &Client{api: arr.New(baseURL, apiKey, opts...)}
}

// Movies returns every movie in the library.
func (c *Client) Movies(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	if err := c.api.Get(ctx, "/api/v3/movie", nil, &movies); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// Movie returns a single movie by Radarr id.
func (c *Client) Movie(ctx context.Context, id int) (*Movie, error) {
	var m Movie
	if err := c.api.Get(ctx, "/api/v3/movie/"+strconv.Itoa(id), nil, &m); err != nil {
		return nil, fmt.Errorf("get movie %d: %w", id, err)
	}
	return &m, nil
}

// Queue returns the active download queue.
func (c *Client) Queue(ctx context.Context) ([]QueueRecord, error) {
	q := url.Values{
		"page":     {"1"},
		"pageSize": {strconv.Itoa(queuePageSize)},
	}
	var page arr.Page[QueueRecord]
	if err := c.api.Get(ctx, "/api/v3/queue", q, &page); err != nil {
		return nil, fmt.Errorf("get queue: %w", err)
	}
	return page.Records, nil
}

// History returns the history events of a movie, newest first.
func (c *Client) History(ctx context.Context, movieID int) ([]HistoryRecord, error) {
	q := url.Values{"movieId": {strconv.Itoa(movieID)}}
	var records []HistoryRecord
	if err := c.api.Get(ctx, "/api/v3/history/movie", q, &records); err != nil {
		return nil, fmt.Errorf("get history for movie %d: %w", movieID, err)
	}
	return records, nil
}

// Files returns the files attached to a movie.
func (c *Client) Files(ctx context.Context, movieID int) ([]MovieFile, error) {
	q := url.Values{"movieId": {strconv.Itoa(movieID)}}
	var files []MovieFile
	if err := c.api.Get(ctx, "/api/v3/moviefile", q, &files); err != nil {
		return nil, fmt.Errorf("get files for movie %d: %w", movieID, err)
	}
	return files, nil
}

// QualityProfiles returns the configured quality profiles.
func (c *Client) QualityProfiles(ctx context.Context) ([]arr.QualityProfile, error) {
	var profiles []arr.QualityProfile
	if err := c.api.Get(ctx, "/api/v3/qualityprofile", nil, &profiles); err != nil {
		return nil, fmt.Errorf("list quality profiles: %w", err)
	}
	return profiles, nil
}

// Update applies changes to a movie in a single write and returns the
// stored movie.
func (c *Client) Update(ctx context.Context, id int, changes arr.Changes) (*Movie, error) {
	if changes.Empty() {
		return nil, fmt.Errorf("update movie %d: no changes", id)
	}
	var m Movie
	if err := c.api.Update(ctx, "/api/v3/movie/"+strconv.Itoa(id), changes.Fields(), &m); err != nil {
		return nil, fmt.Errorf("update movie %d: %w", id, err)
	}
	return &m, nil
}

// Delete removes a movie from Radarr, optionally deleting its files.
func (c *Client) Delete(ctx context.Context, id int, deleteFiles bool) error {
	q := url.Values{"deleteFiles": {strconv.FormatBool(deleteFiles)}}
	if err := c.api.Delete(ctx, "/api/v3/movie/"+strconv.Itoa(id), q); err != nil {
		return fmt.Errorf("delete movie %d: %w", id, err)
	}
	return nil
}

// SystemStatus reports the service version.
func (c *Client) SystemStatus(ctx context.Context) (*arr.SystemStatus, error) {
	return c.api.SystemStatus(ctx)
}
