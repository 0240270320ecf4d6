package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateURLPrefix(); err != nil {
		return err
	}
	if err := c.validateFont(); err != nil {
		return err
	}
	if err := c.validateEncode(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateURLPrefix() error {
	prefix := strings.TrimSpace(c.URLPrefix)
	if prefix == "" {
		return errors.New("url_prefix must be set: encoded clip URLs are derived from it")
	}
	if !strings.HasPrefix(prefix, "http://") && !strings.HasPrefix(prefix, "https://") {
		return fmt.Errorf("url_prefix must be an http(s) URL, got %q", prefix)
	}
	return nil
}

func (c *Config) validateFont() error {
	if strings.TrimSpace(c.Font) == "" {
		return errors.New("font must be set")
	}
	return nil
}

func (c *Config) validateEncode() error {
	if c.Encode.BitrateKbps < 8 || c.Encode.BitrateKbps > 512 {
		return fmt.Errorf("encode.bitrate_kbps must be between 8 and 512, got %d", c.Encode.BitrateKbps)
	}
	if c.Encode.ClipSeconds < 1 {
		return fmt.Errorf("encode.clip_seconds must be positive, got %d", c.Encode.ClipSeconds)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
