package testsupport

import (
	"testing"

	"playlistgen/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig loads the default configuration anchored at the layout's base
// directory and applies opts.
func NewConfig(t testing.TB, l *Layout, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg, _, _, err := config.Load("", l.BaseDir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithOrder selects the playlist ordering mode.
func WithOrder(order, language string) ConfigOption {
	return func(c *config.Config) {
		c.Playlist.Order = order
		if language != "" {
			c.Playlist.CollationLanguage = language
		}
	}
}

// WithTags enables the ID3 artist fallback.
func WithTags() ConfigOption {
	return func(c *config.Config) {
		c.Playlist.UseTags = true
	}
}

// WithLock enables the advisory output lock.
func WithLock() ConfigOption {
	return func(c *config.Config) {
		c.Output.Lock = true
	}
}
