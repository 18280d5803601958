package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vmunix/arrdeck/internal/genre"
	"github.com/vmunix/arrdeck/internal/library"
	"github.com/vmunix/arrdeck/internal/media"
	"github.com/vmunix/arrdeck/pkg/arr"
)

// Client wraps HTTP calls to the arrdeck server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new arrdeck API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("server error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

func (c *Client) do(method, path string, query url.Values, body, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, u, reader)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(result)
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	apiErr := &APIError{Status: resp.StatusCode, Message: string(raw)}
	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Code = body.Code
	}
	return apiErr
}

func (c *Client) get(path string, query url.Values, result any) error {
	return c.do(http.MethodGet, path, query, nil, result)
}

// collection returns the API path segment for a kind.
func collection(kind media.Kind) string {
	if kind == media.KindShow {
		return "shows"
	}
	return "movies"
}

// Movies lists the movie library.
func (c *Client) Movies(q url.Values) (*library.MovieList, error) {
	var list library.MovieList
	if err := c.get("/api/v1/movies", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Shows lists the show library.
func (c *Client) Shows(q url.Values) (*library.ShowList, error) {
	var list library.ShowList
	if err := c.get("/api/v1/shows", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Movie returns a movie detail.
func (c *Client) Movie(id int) (*media.MovieDetail, error) {
	var d media.MovieDetail
	if err := c.get("/api/v1/movies/"+strconv.Itoa(id), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Show returns a show detail.
func (c *Client) Show(id int) (*media.ShowDetail, error) {
	var d media.ShowDetail
	if err := c.get("/api/v1/shows/"+strconv.Itoa(id), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Season returns one season of a show.
func (c *Client) Season(id, season int) (*media.SeasonDetail, error) {
	var d media.SeasonDetail
	path := fmt.Sprintf("/api/v1/shows/%d/seasons/%d", id, season)
	if err := c.get(path, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DiscoverMovies browses or searches the TMDB movie catalog.
func (c *Client) DiscoverMovies(q url.Values) (*library.MovieDiscovery, error) {
	var d library.MovieDiscovery
	if err := c.get("/api/v1/discover/movie", q, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DiscoverShows browses or searches the TMDB show catalog.
func (c *Client) DiscoverShows(q url.Values) (*library.ShowDiscovery, error) {
	var d library.ShowDiscovery
	if err := c.get("/api/v1/discover/show", q, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// GenresResponse is the body of GET /genres/{kind}.
type GenresResponse struct {
	Kind   media.Kind    `json:"kind"`
	Genres []genre.Genre `json:"genres"`
}

// Genres returns the genre catalog of a kind.
func (c *Client) Genres(kind media.Kind) (*GenresResponse, error) {
	var resp GenresResponse
	if err := c.get("/api/v1/genres/"+string(kind), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profiles returns the quality profiles of the upstream serving kind.
func (c *Client) Profiles(kind media.Kind) ([]arr.QualityProfile, error) {
	var profiles []arr.QualityProfile
	if err := c.get("/api/v1/profiles/"+string(kind), nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// ItemResponse decodes the item returned by an update. Only the shared
// fields and monitoring state are needed by the CLI.
type ItemResponse struct {
	media.Base
	Status           string `json:"status"`
	Monitored        bool   `json:"monitored"`
	QualityProfileID int    `json:"qualityProfileId,omitempty"`
}

// Update changes monitoring and/or the quality profile of a library item.
func (c *Client) Update(kind media.Kind, id int, monitored *bool, profileID *int) (*ItemResponse, error) {
	body := map[string]any{}
	if monitored != nil {
		body["monitored"] = *monitored
	}
	if profileID != nil {
		body["qualityProfileId"] = *profileID
	}
	var item ItemResponse
	path := "/api/v1/" + collection(kind) + "/" + strconv.Itoa(id)
	if err := c.do(http.MethodPatch, path, nil, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a library item, optionally with its files.
func (c *Client) Delete(kind media.Kind, id int, deleteFiles bool) error {
	q := url.Values{"delete_files": {strconv.FormatBool(deleteFiles)}}
	path := "/api/v1/" + collection(kind) + "/" + strconv.Itoa(id)
	return c.do(http.MethodDelete, path, q, nil, nil)
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Version string                 `json:"version"`
	Sources []library.SourceStatus `json:"sources"`
}

// Status returns the server version and upstream health.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
