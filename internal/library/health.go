package library

import (
	"context"
	"sync"

	"github.com/vmunix/arrdeck/internal/media"
	"github.com/vmunix/arrdeck/pkg/arr"
)

// SourceStatus reports whether one upstream is configured and reachable.
type SourceStatus struct {
	Source     media.Source `json:"source"`
	Configured bool         `json:"configured"`
	OK         bool         `json:"ok"`
	Version    string       `json:"version,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// Health probes every upstream concurrently. The result is always in
// radarr, sonarr, tmdb order; unconfigured sources are reported, not probed.
func (s *Service) Health(ctx context.Context) []SourceStatus {
	out := []SourceStatus{
		{Source: media.SourceRadarr, Configured: s.movies != nil},
		{Source: media.SourceSonarr, Configured: s.series != nil},
		{Source: media.SourceTMDB, Configured: s.meta != nil},
	}

	var wg sync.WaitGroup
	probe := func(st *SourceStatus, fn func(context.Context) (string, error)) {
		if !st.Configured {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			version, err := fn(ctx)
			if err != nil {
				st.Error = fetchFailure(st.Source, err).(*FetchFailure).Message
				s.log.Warn("source unhealthy", "source", st.Source, "error", err)
				return
			}
			st.OK = true
			st.Version = version
		}()
	}
	probe(&out[0], func(ctx context.Context) (string, error) {
		return arrVersion(s.movies.SystemStatus(ctx))
	})
	probe(&out[1], func(ctx context.Context) (string, error) {
		return arrVersion(s.series.SystemStatus(ctx))
	})
	probe(&out[2], func(ctx context.Context) (string, error) {
		return "", s.meta.Ping(ctx)
	})
	wg.Wait()
	return out
}

func arrVersion(st *arr.SystemStatus, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return st.Version, nil
}
