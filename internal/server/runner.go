// Package server runs the HTTP API and its background components.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrdeck/internal/library"
)

// Config for the server runner.
type Config struct {
	Addr            string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	HealthInterval  time.Duration // 0 disables the upstream watcher
}

// Prober reports upstream availability.
type Prober interface {
	Health(ctx context.Context) []library.SourceStatus
}

// Runner manages the HTTP server and the upstream health watcher.
type Runner struct {
	handler http.Handler
	prober  Prober
	config  Config
	logger  *slog.Logger
}

// NewRunner creates a new runner. The handler is wrapped with panic
// recovery and, when origins are configured, CORS.
func NewRunner(h http.Handler, prober Prober, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
	return &Runner{
		handler: Wrap(h, cfg.CORSOrigins, logger),
		prober:  prober,
		config:  cfg,
		logger:  logger,
	}
}

// Run serves until the context is canceled, then shuts down gracefully.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	srv := &http.Server{Handler: r.handler, ReadHeaderTimeout: 10 * time.Second}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r.logger.Info("server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		r.logger.Info("server stopped")
		return nil
	})
	if r.prober != nil && r.config.HealthInterval > 0 {
		g.Go(func() error {
			t := time.NewTicker(r.config.HealthInterval)
			defer t.Stop()
			r.watchHealth(ctx, t.C)
			return nil
		})
	}
	return g.Wait()
}

// watchHealth probes on every tick and logs sources whose state changed.
func (r *Runner) watchHealth(ctx context.Context, tick <-chan time.Time) {
	log := r.logger.With("component", "health")
	last := make(map[string]bool)
	for {
		for _, st := range r.prober.Health(ctx) {
			if !st.Configured {
				continue
			}
			key := string(st.Source)
			prev, seen := last[key]
			last[key] = st.OK
			switch {
			case seen && prev == st.OK:
			case st.OK:
				log.Info("source available", "source", st.Source, "version", st.Version)
			default:
				log.Warn("source unavailable", "source", st.Source, "error", st.Error)
			}
		}
		select {
		case <-ctx.Done():
			return
		case <-tick:
		}
	}
}

// Wrap adds panic recovery and CORS to h.
func Wrap(h http.Handler, origins []string, log *slog.Logger) http.Handler {
	h = handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log}),
		handlers.PrintRecoveryStack(false),
	)(h)
	if len(origins) == 0 {
		return h
	}
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Request-Id"}),
		handlers.ExposedHeaders([]string{"X-Request-Id"}),
	)(h)
}

type recoveryLogger struct {
	log *slog.Logger
}

func (l recoveryLogger) Println(v ...any) {
	l.log.Error("panic recovered", "panic", fmt.Sprint(v...))
}
