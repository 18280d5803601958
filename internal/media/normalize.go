package media

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/vmunix/arrdeck/pkg/radarr"
	"github.com/vmunix/arrdeck/pkg/sonarr"
)

// ErrNoMapper is returned by Normalize for an unregistered (source, kind) pair.
var ErrNoMapper = errors.New("no mapper for source and kind")

// Mapper decodes one raw upstream resource into a canonical item.
type Mapper func(raw json.RawMessage, img ImageConfig) (Item, error)

// Route is a (source, kind) pair.
type Route struct {
	Source Source `json:"source"`
	Kind   Kind   `json:"kind"`
}

// mappers is read-only after init. Supporting another upstream is
// adding entries here.
var mappers = map[Route]Mapper{
	{SourceRadarr, KindMovie}: decode(func(m *radarr.Movie, _ ImageConfig) MovieItem { return FromRadarrMovie(m) }),
	{SourceSonarr, KindShow}:  decode(func(s *sonarr.Series, _ ImageConfig) ShowItem { return FromSonarrSeries(s) }),
	{SourceTMDB, KindMovie}:   decode(FromTMDBMovie),
	{SourceTMDB, KindShow}:    decode(FromTMDBShow),
}

func decode[T any, I Item](fn func(*T, ImageConfig) I) Mapper {
	return func(raw json.RawMessage, img ImageConfig) (Item, error) {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode resource: %w", err)
		}
		return fn(&v, img), nil
	}
}

// Normalize maps a raw resource from source into a canonical item of kind.
func Normalize(source Source, kind Kind, raw json.RawMessage, img ImageConfig) (Item, error) {
	fn, ok := mappers[Route{source, kind}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNoMapper, source, kind)
	}
	return fn(raw, img)
}

// Routes lists the registered (source, kind) pairs in a stable order.
func Routes() []Route {
	out := make([]Route, 0, len(mappers))
	for r := range mappers {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b Route) int {
		return cmp.Or(cmp.Compare(a.Source, b.Source), cmp.Compare(a.Kind, b.Kind))
	})
	return out
}
