// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/vmunix/arrdeck/internal/filter"
	"github.com/vmunix/arrdeck/internal/library"
	"github.com/vmunix/arrdeck/internal/media"
)

// Server is the v1 API server.
type Server struct {
	lib      Library
	images   media.ImageConfig
	version  string
	validate *validator.Validate
	log      *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithImages sets the image configuration used by /normalize.
func WithImages(c media.ImageConfig) Option {
	return func(s *Server) { s.images = c.WithDefaults() }
}

// WithVersion sets the version reported by /status.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a new v1 API server.
func New(lib Library, opts ...Option) (*Server, error) {
	if lib == nil {
		return nil, fmt.Errorf("library: %w", ErrMissingDependency)
	}
	s := &Server{
		lib:      lib,
		images:   media.DefaultImages,
		version:  "dev",
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "api")
	return s, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Library
	mux.HandleFunc("GET /api/v1/movies", s.listMovies)
	mux.HandleFunc("GET /api/v1/movies/{id}", s.getMovie)
	mux.HandleFunc("PATCH /api/v1/movies/{id}", s.updateItem(media.KindMovie))
	mux.HandleFunc("DELETE /api/v1/movies/{id}", s.deleteItem(media.KindMovie))

	mux.HandleFunc("GET /api/v1/shows", s.listShows)
	mux.HandleFunc("GET /api/v1/shows/{id}", s.getShow)
	mux.HandleFunc("GET /api/v1/shows/{id}/seasons/{season}", s.getSeason)
	mux.HandleFunc("PATCH /api/v1/shows/{id}", s.updateItem(media.KindShow))
	mux.HandleFunc("DELETE /api/v1/shows/{id}", s.deleteItem(media.KindShow))

	// Catalog
	mux.HandleFunc("GET /api/v1/discover/{kind}", s.discover)
	mux.HandleFunc("GET /api/v1/genres/{kind}", s.listGenres)
	mux.HandleFunc("GET /api/v1/profiles/{kind}", s.listProfiles)
	mux.HandleFunc("POST /api/v1/normalize", s.normalize)

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Handler returns the routes wrapped in request id and logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return requestID(logRequests(mux, s.log))
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// writeServiceError maps library errors onto status codes.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ff *library.FetchFailure
	switch {
	case errors.Is(err, library.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", err.Error())
	case errors.Is(err, library.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, library.ErrInvalidKind):
		writeError(w, http.StatusBadRequest, "INVALID_KIND", err.Error())
	case errors.Is(err, filter.ErrUnknownField):
		writeError(w, http.StatusBadRequest, "INVALID_SORT", err.Error())
	case errors.As(err, &ff):
		s.log.Warn("upstream failure", "path", r.URL.Path, "source", ff.Source, "error", ff.Err)
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", ff.Error())
	default:
		s.log.Error("request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

// pathID extracts a non-negative integer from the URL path.
func pathID(r *http.Request, name string) (int, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, idStr)
	}
	return id, nil
}

// pathKind extracts the media kind from the URL path.
func pathKind(r *http.Request) (media.Kind, error) {
	kind := media.Kind(r.PathValue("kind"))
	if !kind.Valid() {
		return "", fmt.Errorf("invalid kind %q: must be movie or show", kind)
	}
	return kind, nil
}
