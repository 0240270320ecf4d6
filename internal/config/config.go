package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// DefaultFileName is the configuration file the CLI looks for in the
// working directory when no explicit path is given.
const DefaultFileName = "hitsdeck.toml"

// Paths contains directory configuration.
type Paths struct {
	TracksDir string `toml:"tracks_dir"`
	SongsDir  string `toml:"songs_dir"`
	BuildDir  string `toml:"build_dir"`
}

// Page contains toggles for decorations drawn on every rendered page.
type Page struct {
	// Grid draws lines at the interior card boundaries. Good for checking
	// the output on screen; for print you usually want crop marks instead,
	// so a slightly misaligned cut does not leave a line near a card edge.
	Grid bool `toml:"grid"`

	// CropMarks draws short cut guides just outside the card grid.
	CropMarks bool `toml:"crop_marks"`
}

// Encode contains tunables for the clip transcoding step.
type Encode struct {
	BitrateKbps int `toml:"bitrate_kbps"`
	ClipSeconds int `toml:"clip_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for a card build.
//
// Configuration sections:
//   - top level: url_prefix under which encoded clips are served, and the
//     display font used on the rendered cards
//   - Paths: source tracks, encoded clip output, and build directories
//   - Page: grid line and crop mark toggles
//   - Encode: clip bitrate and duration cap
//   - Logging: log format and level
type Config struct {
	URLPrefix string `toml:"url_prefix"`
	Font      string `toml:"font"`

	Paths   Paths   `toml:"paths"`
	Page    Page    `toml:"page"`
	Encode  Encode  `toml:"encode"`
	Logging Logging `toml:"logging"`
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. A missing file is a
// fatal configuration error: the build cannot guess a clip URL prefix.
func Load(path string) (*Config, string, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", err
	}
	if !exists {
		return nil, "", fmt.Errorf("config file %s not found (create one with 'hitsdeck config init')", resolvedPath)
	}

	file, err := os.Open(resolvedPath)
	if err != nil {
		return nil, "", fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, "", fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, resolvedPath, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = DefaultFileName
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return expanded, !info.IsDir(), nil
}

// EnsureDirectories creates the track, clip, and build directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.TracksDir, c.Paths.SongsDir, c.Paths.BuildDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// FFmpegBinary returns the transcoder executable name.
func (c *Config) FFmpegBinary() string {
	return "ffmpeg"
}

// RsvgConvertBinary returns the SVG-to-PDF converter executable name.
func (c *Config) RsvgConvertBinary() string {
	return "rsvg-convert"
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
