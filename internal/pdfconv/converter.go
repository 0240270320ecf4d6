package pdfconv

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var commandContext = exec.CommandContext

// Client defines SVG-to-PDF conversion behaviour.
type Client interface {
	Convert(ctx context.Context, svgPaths []string, outputPath string) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default converter binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// CLI wraps the rsvg-convert command-line converter, which composes the
// per-page SVG files into one multi-page PDF.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "rsvg-convert"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Convert renders the given SVG files, in order, into a single PDF.
func (c *CLI) Convert(ctx context.Context, svgPaths []string, outputPath string) error {
	if len(svgPaths) == 0 {
		return errors.New("no pages to convert")
	}
	if outputPath == "" {
		return errors.New("output path required")
	}

	args := []string{"--format=pdf", "--output=" + outputPath}
	args = append(args, svgPaths...)

	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("rsvg-convert: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

var _ Client = (*CLI)(nil)
