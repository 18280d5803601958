package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrdeck/internal/library"
	"github.com/vmunix/arrdeck/internal/media"
)

// fakeProber returns the queued answers in order, repeating the last.
type fakeProber struct {
	mu      sync.Mutex
	answers [][]library.SourceStatus
	calls   int
}

func (p *fakeProber) Health(context.Context) []library.SourceStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := min(p.calls, len(p.answers)-1)
	p.calls++
	return p.answers[i]
}

func ok() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRunner_StartsAndStops(t *testing.T) {
	runner := NewRunner(ok(), nil, Config{Addr: "127.0.0.1:0"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runner.Run(ctx)
	}()

	// Give the listener time to start
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for runner to stop")
	}
}

func TestRunner_ListenError(t *testing.T) {
	runner := NewRunner(ok(), nil, Config{Addr: "256.0.0.1:bad"}, nil)
	err := runner.Run(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}

func TestNewRunner_Defaults(t *testing.T) {
	runner := NewRunner(ok(), nil, Config{}, nil)
	require.NotNil(t, runner.logger)
	assert.Equal(t, 30*time.Second, runner.config.ShutdownTimeout)
}

func TestWrap_CORS(t *testing.T) {
	h := Wrap(ok(), []string{"http://localhost:5173"}, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestWrap_NoOriginsNoCORS(t *testing.T) {
	h := Wrap(ok(), nil, slog.Default())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestWrap_RecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	h := Wrap(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), nil, log)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "boom")
}

func TestWatchHealth_LogsTransitions(t *testing.T) {
	up := library.SourceStatus{Source: media.SourceRadarr, Configured: true, OK: true, Version: "5.14"}
	down := library.SourceStatus{Source: media.SourceRadarr, Configured: true, Error: "connection refused"}
	unconfigured := library.SourceStatus{Source: media.SourceSonarr}
	prober := &fakeProber{answers: [][]library.SourceStatus{
		{up, unconfigured},
		{up, unconfigured},
		{down, unconfigured},
		{up, unconfigured},
	}}

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	runner := NewRunner(ok(), prober, Config{}, log)

	ctx, cancel := context.WithCancel(context.Background())
	tick := make(chan time.Time)
	done := make(chan struct{})
	go func() {
		runner.watchHealth(ctx, tick)
		close(done)
	}()
	for range 3 {
		tick <- time.Now()
	}
	cancel()
	<-done

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "source available"), out)
	assert.Equal(t, 1, strings.Count(out, "source unavailable"), out)
	assert.NotContains(t, out, "sonarr")
}
