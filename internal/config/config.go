// Package config defines gateway configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Loading layers defaults, an optional YAML file, and environment variables.
// - External errors are wrapped via this package's sentinel kinds.
package config

import (
	"context"
)

// Default upstream client settings.
const (
	defaultAddr            = ":9080"
	defaultUpstreamBaseURL = "http://localhost:3001"
	defaultUpstreamTimeout = 5000
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the gateway HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// UpstreamBaseURL is the base URL of the persistence API,
	// e.g. "http://192.168.1.156:3001".
	UpstreamBaseURL string `koanf:"upstream_base_url"`

	// UpstreamTimeoutMS bounds a single upstream request. There is no retry;
	// a timed-out fetch falls back to the example data set.
	UpstreamTimeoutMS int `koanf:"upstream_timeout_ms"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              defaultAddr,
		UpstreamBaseURL:   defaultUpstreamBaseURL,
		UpstreamTimeoutMS: defaultUpstreamTimeout,
	}
}
