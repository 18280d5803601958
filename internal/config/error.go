package config

import (
	"fmt"
	"strings"
)

// ConfigError reports everything wrong with a config file at once, so a
// single run of the daemon surfaces every problem.
type ConfigError struct {
	Path    string
	Missing []string // unresolved ${VAR} references
	Invalid []string // Validate messages
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "config %s", e.Path)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, ": unset environment variables %s", strings.Join(e.Missing, ", "))
	}
	for _, msg := range e.Invalid {
		b.WriteString("\n  ")
		b.WriteString(msg)
	}
	return b.String()
}

func (e *ConfigError) empty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0
}
