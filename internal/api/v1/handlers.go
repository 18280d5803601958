package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vmunix/arrdeck/internal/library"
	"github.com/vmunix/arrdeck/internal/media"
	"github.com/vmunix/arrdeck/pkg/arr"
)

func (s *Server) listMovies(w http.ResponseWriter, r *http.Request) {
	p, err := s.parseListParams(r)
	if err == nil {
		err = s.checkStatus(media.KindMovie, p.Status)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	list, err := s.lib.Movies(r.Context(), library.MovieQuery{Query: p.query()})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) listShows(w http.ResponseWriter, r *http.Request) {
	p, err := s.parseListParams(r)
	if err == nil {
		err = s.checkStatus(media.KindShow, p.Status)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	list, err := s.lib.Shows(r.Context(), library.ShowQuery{Query: p.query(), Networks: p.Networks})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) getMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	d, err := s.lib.MovieDetail(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) getShow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	d, err := s.lib.ShowDetail(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) getSeason(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	season, err := pathID(r, "season")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	d, err := s.lib.SeasonDetail(r.Context(), id, season)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) updateItem(kind media.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
			return
		}

		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
			return
		}
		if !req.Monitored.IsSpecified() && !req.QualityProfileID.IsSpecified() {
			writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "nothing to update: set monitored or qualityProfileId")
			return
		}
		if req.Monitored.IsNull() || req.QualityProfileID.IsNull() {
			writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "monitored and qualityProfileId cannot be null")
			return
		}
		if req.QualityProfileID.IsSpecified() && req.QualityProfileID.MustGet() <= 0 {
			writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "qualityProfileId must be positive")
			return
		}

		var changes arr.Changes
		if req.Monitored.IsSpecified() {
			monitored := req.Monitored.MustGet()
			changes.Monitored = &monitored
		}
		if req.QualityProfileID.IsSpecified() {
			profileID := req.QualityProfileID.MustGet()
			changes.QualityProfileID = &profileID
		}
		item, err := s.lib.Update(r.Context(), kind, id, changes)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func (s *Server) deleteItem(kind media.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
			return
		}
		deleteFiles := false
		if v := r.URL.Query().Get("delete_files"); v != "" {
			if deleteFiles, err = strconv.ParseBool(v); err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_QUERY", "delete_files: must be a boolean")
				return
			}
		}
		if err := s.lib.Delete(r.Context(), kind, id, deleteFiles); err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) discover(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_KIND", err.Error())
		return
	}
	p, err := s.parseListParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	var result any
	if kind == media.KindMovie {
		result, err = s.lib.DiscoverMovies(r.Context(), p.discover())
	} else {
		result, err = s.lib.DiscoverShows(r.Context(), p.discover())
	}
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) listGenres(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_KIND", err.Error())
		return
	}
	genres, err := s.lib.Genres(kind)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, genresResponse{Kind: kind, Genres: genres})
}

func (s *Server) listProfiles(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_KIND", err.Error())
		return
	}
	profiles, err := s.lib.QualityProfiles(r.Context(), kind)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (s *Server) normalize(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", validationError(err).Error())
		return
	}

	item, err := media.Normalize(req.Source, req.Kind, req.Resource, s.images)
	if err != nil {
		if errors.Is(err, media.ErrNoMapper) {
			writeError(w, http.StatusBadRequest, "UNSUPPORTED_ROUTE", err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "INVALID_RESOURCE", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, normalizeResponse{Source: req.Source, Kind: req.Kind, Item: item})
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Version: s.version,
		Sources: s.lib.Health(r.Context()),
		Routes:  media.Routes(),
	})
}
