package library

import (
	"context"
	"fmt"

	"github.com/vmunix/arrdeck/internal/genre"
	"github.com/vmunix/arrdeck/internal/media"
	"github.com/vmunix/arrdeck/pkg/arr"
)

func invalidKind(kind media.Kind) error {
	return fmt.Errorf("%q: %w", kind, ErrInvalidKind)
}

// Update applies changes to a library item in a single upstream write and
// returns the item as the upstream stored it.
func (s *Service) Update(ctx context.Context, kind media.Kind, id int, changes arr.Changes) (media.Item, error) {
	switch kind {
	case media.KindMovie:
		if s.movies == nil {
			return nil, notConfigured(media.SourceRadarr)
		}
		m, err := s.movies.Update(ctx, id, changes)
		if err != nil {
			return nil, lookupFailure(media.SourceRadarr, "movie", id, err)
		}
		s.log.Info("movie updated", changeAttrs(id, changes)...)
		return media.FromRadarrMovie(m), nil
	case media.KindShow:
		if s.series == nil {
			return nil, notConfigured(media.SourceSonarr)
		}
		sr, err := s.series.Update(ctx, id, changes)
		if err != nil {
			return nil, lookupFailure(media.SourceSonarr, "show", id, err)
		}
		s.log.Info("show updated", changeAttrs(id, changes)...)
		return media.FromSonarrSeries(sr), nil
	}
	return nil, invalidKind(kind)
}

func changeAttrs(id int, c arr.Changes) []any {
	attrs := []any{"id", id}
	if c.Monitored != nil {
		attrs = append(attrs, "monitored", *c.Monitored)
	}
	if c.QualityProfileID != nil {
		attrs = append(attrs, "profile", *c.QualityProfileID)
	}
	return attrs
}

// Delete removes a library item, and its files when deleteFiles is set.
func (s *Service) Delete(ctx context.Context, kind media.Kind, id int, deleteFiles bool) error {
	switch kind {
	case media.KindMovie:
		if s.movies == nil {
			return notConfigured(media.SourceRadarr)
		}
		if err := s.movies.Delete(ctx, id, deleteFiles); err != nil {
			return lookupFailure(media.SourceRadarr, "movie", id, err)
		}
		s.log.Info("movie deleted", "id", id, "delete_files", deleteFiles)
		return nil
	case media.KindShow:
		if s.series == nil {
			return notConfigured(media.SourceSonarr)
		}
		if err := s.series.Delete(ctx, id, deleteFiles); err != nil {
			return lookupFailure(media.SourceSonarr, "show", id, err)
		}
		s.log.Info("show deleted", "id", id, "delete_files", deleteFiles)
		return nil
	}
	return invalidKind(kind)
}

// QualityProfiles lists the profiles of the upstream serving kind.
func (s *Service) QualityProfiles(ctx context.Context, kind media.Kind) ([]arr.QualityProfile, error) {
	var (
		profiles []arr.QualityProfile
		err      error
		source   media.Source
	)
	switch kind {
	case media.KindMovie:
		if s.movies == nil {
			return nil, notConfigured(media.SourceRadarr)
		}
		source = media.SourceRadarr
		profiles, err = s.movies.QualityProfiles(ctx)
	case media.KindShow:
		if s.series == nil {
			return nil, notConfigured(media.SourceSonarr)
		}
		source = media.SourceSonarr
		profiles, err = s.series.QualityProfiles(ctx)
	default:
		return nil, invalidKind(kind)
	}
	if err != nil {
		return nil, fetchFailure(source, err)
	}
	if profiles == nil {
		profiles = []arr.QualityProfile{}
	}
	return profiles, nil
}

// Genres returns the genre catalog for kind.
func (s *Service) Genres(kind media.Kind) ([]genre.Genre, error) {
	if !kind.Valid() {
		return nil, invalidKind(kind)
	}
	return genre.List(kind.GenreKind()), nil
}
