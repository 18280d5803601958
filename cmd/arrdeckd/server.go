package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	v1 "github.com/vmunix/arrdeck/internal/api/v1"
	"github.com/vmunix/arrdeck/internal/config"
	"github.com/vmunix/arrdeck/internal/library"
	"github.com/vmunix/arrdeck/internal/media"
	"github.com/vmunix/arrdeck/internal/server"
	"github.com/vmunix/arrdeck/internal/tmdb"
	"github.com/vmunix/arrdeck/pkg/arr"
	"github.com/vmunix/arrdeck/pkg/radarr"
	"github.com/vmunix/arrdeck/pkg/sonarr"
)

const healthInterval = 5 * time.Minute

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// buildLibrary wires a library service from whichever upstreams are configured.
func buildLibrary(cfg *config.Config, logger *slog.Logger) *library.Service {
	opts := []library.Option{library.WithLogger(logger)}

	if cfg.Radarr != nil {
		opts = append(opts, library.WithMovies(radarr.New(cfg.Radarr.URL, cfg.Radarr.APIKey,
			arr.WithHTTPClient(&http.Client{Timeout: cfg.Radarr.Timeout}),
			arr.WithLogger(logger.With("upstream", "radarr")),
		)))
	}
	if cfg.Sonarr != nil {
		opts = append(opts, library.WithSeries(sonarr.New(cfg.Sonarr.URL, cfg.Sonarr.APIKey,
			arr.WithHTTPClient(&http.Client{Timeout: cfg.Sonarr.Timeout}),
			arr.WithLogger(logger.With("upstream", "sonarr")),
		)))
	}
	if cfg.TMDB != nil {
		opts = append(opts,
			library.WithMetadata(tmdb.NewClient(cfg.TMDB.APIKey,
				tmdb.WithBaseURL(cfg.TMDB.BaseURL),
				tmdb.WithLanguage(cfg.TMDB.Language),
				tmdb.WithCacheTTL(cfg.TMDB.CacheTTL),
				tmdb.WithHTTPClient(&http.Client{Timeout: cfg.TMDB.Timeout}),
				tmdb.WithLogger(logger),
			)),
			library.WithImages(imageConfig(cfg.TMDB)),
		)
	}
	return library.New(opts...)
}

func imageConfig(t *config.TMDBConfig) media.ImageConfig {
	return media.ImageConfig{
		BaseURL:      t.ImageBaseURL,
		PosterSize:   t.PosterSize,
		BackdropSize: t.BackdropSize,
	}.WithDefaults()
}

func runServer(configPath string) error {
	if configPath == "" {
		p, err := config.Discover()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	logger.Info("config loaded", "path", configPath,
		"radarr", cfg.Radarr != nil, "sonarr", cfg.Sonarr != nil, "tmdb", cfg.TMDB != nil)

	lib := buildLibrary(cfg, logger)

	apiOpts := []v1.Option{v1.WithVersion(version), v1.WithLogger(logger)}
	if cfg.TMDB != nil {
		apiOpts = append(apiOpts, v1.WithImages(imageConfig(cfg.TMDB)))
	}
	api, err := v1.New(lib, apiOpts...)
	if err != nil {
		return fmt.Errorf("api: %w", err)
	}

	runner := server.NewRunner(api.Handler(), lib, server.Config{
		Addr:            cfg.Server.Addr(),
		CORSOrigins:     cfg.Server.CORSOrigins,
		ShutdownTimeout: 30 * time.Second,
		HealthInterval:  healthInterval,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting arrdeckd", "version", version, "addr", cfg.Server.Addr())
	if err := runner.Run(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
