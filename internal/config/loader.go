package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if SWINGLAB_CONFIG is set
//  3. env (prefix SWINGLAB_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("SWINGLAB_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Env keys like SWINGLAB_UPSTREAM_BASE_URL map to upstream_base_url.
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("SWINGLAB_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "swinglab_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.UpstreamBaseURL == "":
		return nil, fmt.Errorf("%w: upstream_base_url must not be empty", ErrInvalidConfig)
	case cfg.UpstreamTimeoutMS <= 0:
		return nil, fmt.Errorf("%w: upstream_timeout_ms must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
