package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org"
	defaultCacheTTL = 24 * time.Hour

	// Search keys come from user input, so the cache is bounded.
	defaultCacheEntries = 1000
)

// Sentinel errors for TMDB responses.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized: invalid api key")
)

// APIError is a non-2xx TMDB response.
type APIError struct {
	HTTPStatus int
	Code       int // TMDB status_code
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("TMDB API error %d: %s", e.HTTPStatus, e.Message)
}

// Unwrap maps well-known status codes onto the package sentinels.
func (e *APIError) Unwrap() error {
	switch e.HTTPStatus {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	}
	return nil
}

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	cache      *cache[string, []byte]
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithCacheTTL sets the response cache TTL. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newCache[string, []byte](ttl, defaultCacheEntries)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLanguage sets the language tag sent with every request, e.g. "en-US".
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: newCache[string, []byte](defaultCacheTTL, defaultCacheEntries),
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DiscoverParams narrows a discover query. Zero values are omitted.
type DiscoverParams struct {
	Page      int
	Genres    []int // any-of
	YearMin   int
	YearMax   int
	RatingMin *float64
	SortBy    string // e.g. popularity.desc, vote_average.desc
}

func (p DiscoverParams) values(dateField string) url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if len(p.Genres) > 0 {
		ids := make([]string, len(p.Genres))
		for i, id := range p.Genres {
			ids[i] = strconv.Itoa(id)
		}
		q.Set("with_genres", strings.Join(ids, "|"))
	}
	if p.YearMin > 0 {
		q.Set(dateField+".gte", fmt.Sprintf("%04d-01-01", p.YearMin))
	}
	if p.YearMax > 0 {
		q.Set(dateField+".lte", fmt.Sprintf("%04d-12-31", p.YearMax))
	}
	if p.RatingMin != nil {
		q.Set("vote_average.gte", strconv.FormatFloat(*p.RatingMin, 'f', -1, 64))
	}
	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = "popularity.desc"
	}
	q.Set("sort_by", sortBy)
	return q
}

// DiscoverMovies runs /discover/movie.
func (c *Client) DiscoverMovies(ctx context.Context, p DiscoverParams) (*Page[MovieResult], error) {
	var page Page[MovieResult]
	if err := c.get(ctx, "/3/discover/movie", p.values("primary_release_date"), &page); err != nil {
		return nil, fmt.Errorf("discover movies: %w", err)
	}
	return &page, nil
}

// DiscoverShows runs /discover/tv.
func (c *Client) DiscoverShows(ctx context.Context, p DiscoverParams) (*Page[ShowResult], error) {
	var page Page[ShowResult]
	if err := c.get(ctx, "/3/discover/tv", p.values("first_air_date"), &page); err != nil {
		return nil, fmt.Errorf("discover shows: %w", err)
	}
	return &page, nil
}

// SearchMovies searches movies by title.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*Page[MovieResult], error) {
	var out Page[MovieResult]
	if err := c.get(ctx, "/3/search/movie", searchValues(query, page), &out); err != nil {
		return nil, fmt.Errorf("search movies %q: %w", query, err)
	}
	return &out, nil
}

// SearchShows searches TV series by name.
func (c *Client) SearchShows(ctx context.Context, query string, page int) (*Page[ShowResult], error) {
	var out Page[ShowResult]
	if err := c.get(ctx, "/3/search/tv", searchValues(query, page), &out); err != nil {
		return nil, fmt.Errorf("search shows %q: %w", query, err)
	}
	return &out, nil
}

func searchValues(query string, page int) url.Values {
	q := url.Values{"query": {query}}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	return q
}

// GetMovie fetches movie metadata by TMDB ID, with credits, images,
// videos, reviews, recommendations and release dates appended.
func (c *Client) GetMovie(ctx context.Context, tmdbID int64) (*Movie, error) {
	q := url.Values{
		"append_to_response":     {"credits,images,videos,reviews,recommendations,release_dates"},
		"include_image_language": {"en,null"},
	}
	var movie Movie
	if err := c.get(ctx, fmt.Sprintf("/3/movie/%d", tmdbID), q, &movie); err != nil {
		return nil, fmt.Errorf("get movie %d: %w", tmdbID, err)
	}
	return &movie, nil
}

// GetShow fetches TV series metadata by TMDB ID, with credits, images,
// videos, reviews, recommendations and content ratings appended.
func (c *Client) GetShow(ctx context.Context, tmdbID int64) (*Show, error) {
	q := url.Values{
		"append_to_response":     {"credits,images,videos,reviews,recommendations,content_ratings"},
		"include_image_language": {"en,null"},
	}
	var show Show
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d", tmdbID), q, &show); err != nil {
		return nil, fmt.Errorf("get show %d: %w", tmdbID, err)
	}
	return &show, nil
}

// GetSeason fetches one season of a TV series with its episodes.
func (c *Client) GetSeason(ctx context.Context, tmdbID int64, season int) (*Season, error) {
	var s Season
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d/season/%d", tmdbID, season), nil, &s); err != nil {
		return nil, fmt.Errorf("get show %d season %d: %w", tmdbID, season, err)
	}
	return &s, nil
}

// get performs a cached GET. The cache key excludes the api key.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	if c.language != "" {
		query.Set("language", c.language)
	}
	key := path + "?" + query.Encode()

	body, ok := c.cache.get(key)
	if !ok {
		var err error
		body, err = c.fetch(ctx, path, query)
		if err != nil {
			return err
		}
		c.cache.set(key, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, path string, query url.Values) ([]byte, error) {
	start := time.Now()

	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("api_key", c.apiKey)

	// Build request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	// Execute
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("tmdb request", "path", path, "status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	// Handle errors
	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{HTTPStatus: resp.StatusCode, Message: resp.Status}
		var payload struct {
			StatusCode    int    `json:"status_code"`
			StatusMessage string `json:"status_message"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.StatusMessage != "" {
			apiErr.Code = payload.StatusCode
			apiErr.Message = payload.StatusMessage
		}
		return nil, apiErr
	}
	return body, nil
}

// Ping checks the api key against /3/configuration. It bypasses the cache.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.fetch(ctx, "/3/configuration", url.Values{}); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
