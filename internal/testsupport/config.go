// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"hitsdeck/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.URLPrefix = "https://cards.example.com/clips/"
	cfg.Paths.TracksDir = filepath.Join(base, "tracks")
	cfg.Paths.SongsDir = filepath.Join(base, "out")
	cfg.Paths.BuildDir = filepath.Join(base, "build")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithPageToggles sets the grid and crop mark toggles on the test config.
func WithPageToggles(grid, cropMarks bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Page.Grid = grid
		cfg.Page.CropMarks = cropMarks
	}
}

// WithURLPrefix overrides the clip URL prefix on the test config.
func WithURLPrefix(prefix string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.URLPrefix = prefix
	}
}
