package encode

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var commandContext = exec.CommandContext

// Client defines clip transcoding behaviour.
type Client interface {
	Encode(ctx context.Context, inputPath, outputPath string) (encoded bool, err error)
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default ffmpeg binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithBitrate overrides the audio bitrate in kbps.
func WithBitrate(kbps int) Option {
	return func(c *CLI) {
		if kbps > 0 {
			c.bitrateKbps = kbps
		}
	}
}

// WithClipSeconds overrides the clip duration cap.
func WithClipSeconds(seconds int) Option {
	return func(c *CLI) {
		if seconds > 0 {
			c.clipSeconds = seconds
		}
	}
}

// CLI wraps the ffmpeg command-line transcoder. It produces mono AAC clips
// with every piece of metadata stripped, so a scanned card cannot leak the
// answer through a player's now-playing display.
type CLI struct {
	binary      string
	bitrateKbps int
	clipSeconds int
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "ffmpeg", bitrateKbps: 128, clipSeconds: 60}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Encode transcodes inputPath into the clip at outputPath. The operation is
// idempotent: when the target already exists it returns (false, nil)
// without running ffmpeg. The clip is written to a unique temporary name in
// the target directory and renamed into place, so concurrent encoders never
// observe a partial file.
func (c *CLI) Encode(ctx context.Context, inputPath, outputPath string) (bool, error) {
	if inputPath == "" {
		return false, errors.New("input path required")
	}
	if outputPath == "" {
		return false, errors.New("output path required")
	}

	if _, err := os.Stat(outputPath); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat clip target: %w", err)
	}

	tempPath := filepath.Join(filepath.Dir(outputPath),
		".encode-"+uuid.NewString()+filepath.Ext(outputPath))

	cmd := commandContext(ctx, c.binary, c.args(inputPath, tempPath)...) //nolint:gosec
	output, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.Remove(tempPath)
		return false, fmt.Errorf("ffmpeg encode %s: %w: %s", filepath.Base(inputPath), err, strings.TrimSpace(string(output)))
	}

	if err := os.Rename(tempPath, outputPath); err != nil {
		_ = os.Remove(tempPath)
		return false, fmt.Errorf("finalize clip: %w", err)
	}
	return true, nil
}

func (c *CLI) args(inputPath, outputPath string) []string {
	return []string{
		"-i", inputPath,
		// Keep the audio stream and nothing else (no cover art).
		"-map", "0:a",
		// ffmpeg copies metadata from input 0 by default; mapping from the
		// non-existent input -1 disables that.
		"-map_metadata", "-1",
		// Suppress the Xing and encoder tags too.
		"-write_xing", "0",
		"-id3v2_version", "0",
		// Mono: the game plays on a phone or a single speaker anyway.
		"-ac", "1",
		"-b:a", strconv.Itoa(c.bitrateKbps) + "k",
		"-c:a", "aac",
		"-to", strconv.Itoa(c.clipSeconds),
		outputPath,
	}
}

var _ Client = (*CLI)(nil)
