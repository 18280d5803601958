package sonarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/vmunix/arrdeck/pkg/arr"
)

const queuePageSize = 500

// Client is a Sonarr v3 API client.
type Client struct {
	api *arr.Client
}

// New creates a new Sonarr client.
func New(baseURL, apiKey string, opts ...arr.Option) *Client {
	return &Client{api: arr.New(baseURL, apiKey, opts...)}
}

// AllSeries returns every series in the library.
func (c *Client) AllSeries(ctx context.Context) ([]Series, error) {
	var series []Series
	if err := c.api.Get(ctx, "/api/v3/series", nil, &series); err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	return series, nil
}

// Series returns a single series by Sonarr id.
func (c *Client) Series(ctx context.Context, id int) (*Series, error) {
	var s Series
	if err := c.api.Get(ctx, "/api/v3/series/"+strconv.Itoa(id), nil, &s); err != nil {
		return nil, fmt.Errorf("get series %d: %w", id, err)
	}
	return &s, nil
}

// Episodes returns the episodes of a series.
func (c *Client) Episodes(ctx context.Context, seriesID int) ([]Episode, error) {
	q := url.Values{"seriesId": {strconv.Itoa(seriesID)}}
	var episodes []Episode
	if err := c.api.Get(ctx, "/api/v3/episode", q, &episodes); err != nil {
		return nil, fmt.Errorf("get episodes for series %d: %w", seriesID, err)
	}
	return episodes, nil
}

// Files returns the episode files of a series.
func (c *Client) Files(ctx context.Context, seriesID int) ([]EpisodeFile, error) {
	q := url.Values{"seriesId": {strconv.Itoa(seriesID)}}
	var files []EpisodeFile
	if err := c.api.Get(ctx, "/api/v3/episodefile", q, &files); err != nil {
		return nil, fmt.Errorf("get files for series %d: %w", seriesID, err)
	}
	return files, nil
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

// History returns the history events of a series, newest first.
func (c *Client) History(ctx context.Context, seriesID int) ([]HistoryRecord, error) {
	q := url.Values{"seriesId": {strconv.Itoa(seriesID)}}
	var records []HistoryRecord
	if err := c.api.Get(ctx, "/api/v3/history/series", q, &records); err != nil {
		return nil, fmt.Errorf("get history for series %d: %w", seriesID, err)
	}
	return records, nil
}

// QualityProfiles returns the configured quality profiles.
func (c *Client) QualityProfiles(ctx context.Context) ([]arr.QualityProfile, error) {
	var profiles []arr.QualityProfile
	if err := c.api.Get(ctx, "/api/v3/qualityprofile", nil, &profiles); err != nil {
		return nil, fmt.Errorf("list quality profiles: %w", err)
	}
	return profiles, nil
}

// Update applies changes to a series in a single write and returns the
// stored series.
func (c *Client) Update(ctx context.Context, id int, changes arr.Changes) (*Series, error) {
	if changes.Empty() {
		return nil, fmt.Errorf("update series %d: no changes", id)
	}
	var s Series
	if err := c.api.Update(ctx, "/api/v3/series/"+strconv.Itoa(id), changes.Fields(), &s); err != nil {
		return nil, fmt.Errorf("update series %d: %w", id, err)
	}
	return &s, nil
}

// Delete removes a series from Sonarr, optionally deleting its files.
func (c *Client) Delete(ctx context.Context, id int, deleteFiles bool) error {
	q := url.Values{"deleteFiles": {strconv.FormatBool(deleteFiles)}}
	if err := c.api.Delete(ctx, "/api/v3/series/"+strconv.Itoa(id), q); err != nil {
		return fmt.Errorf("delete series %d: %w", id, err)
	}
	return nil
}

// SystemStatus reports the service version.
func (c *Client) SystemStatus(ctx context.Context) (*arr.SystemStatus, error) {
	return c.api.SystemStatus(ctx)
}
