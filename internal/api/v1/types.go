package v1

import (
	"encoding/json"

	"github.com/oapi-codegen/nullable"

	"github.com/vmunix/arrdeck/internal/genre"
	"github.com/vmunix/arrdeck/internal/library"
	"github.com/vmunix/arrdeck/internal/media"
)

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// updateRequest is the body of PATCH /movies/{id} and /shows/{id}.
// A field left out is unchanged; an explicit null is rejected.
type updateRequest struct {
	Monitored        nullable.Nullable[bool] `json:"monitored,omitempty"`
	QualityProfileID nullable.Nullable[int]  `json:"qualityProfileId,omitempty"`
}

// normalizeRequest is the body of POST /normalize.
type normalizeRequest struct {
	Source   media.Source    `json:"source" validate:"required,oneof=radarr sonarr tmdb"`
	Kind     media.Kind      `json:"kind" validate:"required,oneof=movie show"`
	Resource json.RawMessage `json:"resource" validate:"required"`
}

// normalizeResponse wraps the canonical item built from a raw resource.
type normalizeResponse struct {
	Source media.Source `json:"source"`
	Kind   media.Kind   `json:"kind"`
	Item   media.Item   `json:"item"`
}

// genresResponse is the body of GET /genres/{kind}.
type genresResponse struct {
	Kind   media.Kind    `json:"kind"`
	Genres []genre.Genre `json:"genres"`
}

// statusResponse is the body of GET /status.
type statusResponse struct {
	Version string                 `json:"version"`
	Sources []library.SourceStatus `json:"sources"`
	Routes  []media.Route          `json:"routes"`
}
