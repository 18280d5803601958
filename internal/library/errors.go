package library

import (
	"errors"
	"fmt"

	"github.com/vmunix/arrdeck/internal/media"
	"github.com/vmunix/arrdeck/internal/tmdb"
	"github.com/vmunix/arrdeck/pkg/arr"
)

var (
	// ErrNotFound indicates the requested item doesn't exist upstream.
	ErrNotFound = errors.New("not found")

	// ErrNotConfigured indicates the upstream for a request has no configuration.
	ErrNotConfigured = errors.New("source not configured")

	// ErrInvalidKind indicates a media kind other than movie or show.
	ErrInvalidKind = errors.New("invalid media kind")
)

// FetchFailure is an upstream call that failed or answered with an error
// payload. Message carries the upstream's own message when it sent one.
type FetchFailure struct {
	Source  media.Source
	Message string
	Err     error
}

func (f *FetchFailure) Error() string {
	return fmt.Sprintf("%s: %s", f.Source, f.Message)
}

func (f *FetchFailure) Unwrap() error { return f.Err }

// fetchFailure wraps err from source. Nil stays nil and an existing
// FetchFailure is returned unchanged.
func fetchFailure(source media.Source, err error) error {
	if err == nil {
		return nil
	}
	var ff *FetchFailure
	if errors.As(err, &ff) {
		return err
	}
	msg := err.Error()
	var arrErr *arr.APIError
	var tmdbErr *tmdb.APIError
	switch {
	case errors.As(err, &arrErr):
		msg = arrErr.Message
	case errors.As(err, &tmdbErr):
		msg = tmdbErr.Message
	}
	return &FetchFailure{Source: source, Message: msg, Err: err}
}

// lookupFailure is fetchFailure for single-item lookups, where an upstream
// 404 becomes ErrNotFound.
func lookupFailure(source media.Source, what string, id int, err error) error {
	if errors.Is(err, arr.ErrNotFound) || errors.Is(err, tmdb.ErrNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return fetchFailure(source, err)
}

func notConfigured(source media.Source) error {
	return fmt.Errorf("%s: %w", source, ErrNotConfigured)
}
