package config

import (
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Radarr == nil && c.Sonarr == nil && c.TMDB == nil {
		errs = append(errs, "at least one of radarr, sonarr or tmdb must be configured")
	}

	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}
	for i, origin := range c.Server.CORSOrigins {
		if strings.TrimSpace(origin) == "" {
			errs = append(errs, fmt.Sprintf("server.cors_origins[%d]: must not be empty", i))
		}
	}

	errs = append(errs, validateArr("radarr", c.Radarr)...)
	errs = append(errs, validateArr("sonarr", c.Sonarr)...)

	if t := c.TMDB; t != nil {
		if t.APIKey == "" {
			errs = append(errs, "tmdb.api_key: required when tmdb is configured")
		}
		if t.BaseURL != "" && !validURL(t.BaseURL) {
			errs = append(errs, fmt.Sprintf("tmdb.base_url: must be an http(s) URL, got %q", t.BaseURL))
		}
		if t.ImageBaseURL != "" && !validURL(t.ImageBaseURL) {
			errs = append(errs, fmt.Sprintf("tmdb.image_base_url: must be an http(s) URL, got %q", t.ImageBaseURL))
		}
		if t.CacheTTL < 0 {
			errs = append(errs, fmt.Sprintf("tmdb.cache_ttl: must not be negative, got %s", t.CacheTTL))
		}
		if t.Timeout < 0 {
			errs = append(errs, fmt.Sprintf("tmdb.timeout: must not be negative, got %s", t.Timeout))
		}
	}

	return errs
}

func validateArr(name string, a *ArrConfig) []string {
	if a == nil {
		return nil
	}
	var errs []string
	switch {
	case a.URL == "":
		errs = append(errs, fmt.Sprintf("%s.url: required when %s is configured", name, name))
	case !validURL(a.URL):
		errs = append(errs, fmt.Sprintf("%s.url: must be an http(s) URL, got %q", name, a.URL))
	}
	if a.APIKey == "" {
		errs = append(errs, fmt.Sprintf("%s.api_key: required when %s is configured", name, name))
	}
	if a.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("%s.timeout: must not be negative, got %s", name, a.Timeout))
	}
	return errs
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
