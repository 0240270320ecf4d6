package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.URLPrefix = strings.TrimSpace(c.URLPrefix)
	c.Font = strings.TrimSpace(c.Font)
	c.normalizeEncode()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.TracksDir) == "" {
		c.Paths.TracksDir = defaultTracksDir
	}
	if c.Paths.TracksDir, err = expandPath(c.Paths.TracksDir); err != nil {
		return fmt.Errorf("paths.tracks_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.SongsDir) == "" {
		c.Paths.SongsDir = defaultSongsDir
	}
	if c.Paths.SongsDir, err = expandPath(c.Paths.SongsDir); err != nil {
		return fmt.Errorf("paths.songs_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.BuildDir) == "" {
		c.Paths.BuildDir = defaultBuildDir
	}
	if c.Paths.BuildDir, err = expandPath(c.Paths.BuildDir); err != nil {
		return fmt.Errorf("paths.build_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeEncode() {
	if c.Encode.BitrateKbps <= 0 {
		c.Encode.BitrateKbps = defaultBitrateKbps
	}
	if c.Encode.ClipSeconds <= 0 {
		c.Encode.ClipSeconds = defaultClipSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}
