// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure. Each upstream section is
// optional; features that need a missing upstream answer as unavailable.
type Config struct {
	Server ServerConfig `toml:"server"`
	Radarr *ArrConfig   `toml:"radarr"`
	Sonarr *ArrConfig   `toml:"sonarr"`
	TMDB   *TMDBConfig  `toml:"tmdb"`
}

type ServerConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	LogLevel    string   `toml:"log_level"`
	CORSOrigins []string `toml:"cors_origins"`
}

// ArrConfig locates a Radarr or Sonarr instance.
type ArrConfig struct {
	URL     string        `toml:"url"`
	APIKey  string        `toml:"api_key"`
	Timeout time.Duration `toml:"timeout"`
}

type TMDBConfig struct {
	APIKey       string        `toml:"api_key"`
	BaseURL      string        `toml:"base_url"`
	ImageBaseURL string        `toml:"image_base_url"`
	PosterSize   string        `toml:"poster_size"`
	BackdropSize string        `toml:"backdrop_size"`
	Language     string        `toml:"language"`
	CacheTTL     time.Duration `toml:"cache_ttl"`
	Timeout      time.Duration `toml:"timeout"`
}

// Defaults applied after decoding.
const (
	DefaultHost         = "0.0.0.0"
	DefaultPort         = 8484
	DefaultLogLevel     = "info"
	DefaultTimeout      = 30 * time.Second
	DefaultTMDBURL      = "https://api.themoviedb.org"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
	DefaultPosterSize   = "w500"
	DefaultBackdropSize = "w1280"
	DefaultLanguage     = "en-US"
	DefaultCacheTTL     = time.Hour
)

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads, substitutes, parses and validates the configuration file.
// Missing variables and validation problems are returned together as a
// *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cerr := &ConfigError{Path: path, Missing: missing, Invalid: cfg.Validate()}
	if !cerr.empty() {
		return nil, cerr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration, ignoring
// unresolved variables and validation errors.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = DefaultLogLevel
	}
	for _, a := range []*ArrConfig{c.Radarr, c.Sonarr} {
		if a == nil {
			continue
		}
		a.URL = strings.TrimRight(a.URL, "/")
		if a.Timeout == 0 {
			a.Timeout = DefaultTimeout
		}
	}
	if t := c.TMDB; t != nil {
		if t.BaseURL == "" {
			t.BaseURL = DefaultTMDBURL
		}
		if t.ImageBaseURL == "" {
			t.ImageBaseURL = DefaultImageBaseURL
		}
		if t.PosterSize == "" {
			t.PosterSize = DefaultPosterSize
		}
		if t.BackdropSize == "" {
			t.BackdropSize = DefaultBackdropSize
		}
		if t.Language == "" {
			t.Language = DefaultLanguage
		}
		if t.CacheTTL == 0 {
			t.CacheTTL = DefaultCacheTTL
		}
		if t.Timeout == 0 {
			t.Timeout = DefaultTimeout
		}
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([-?])([^}]*))?\}`)

// substituteEnvVars expands variables in content. Unresolved references are
// left in place and reported in missing, with the :? message when given.
// An empty value counts as unset for both :- and :?.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := os.LookupEnv(name)
		switch op {
		case "-":
			if value == "" {
				return arg
			}
			return value
		case "?":
			if value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, arg))
				return match
			}
			return value
		}
		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})
	return out, missing
}
