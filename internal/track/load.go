package track

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LoadDir scans a flat directory of audio files and constructs a Track for
// every file whose tags are complete. Subdirectories and files without a
// recognized audio extension are ignored silently. Files that fail tag
// extraction or validation are skipped with a warning naming the path and
// the problem; only a directory read failure is fatal.
//
// The returned skipped count covers files that looked like audio but did
// not yield a track.
func LoadDir(dir string, readers map[string]TagReader, urlPrefix string, logger *slog.Logger) ([]Track, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("read tracks directory: %w", err)
	}

	var tracks []Track
	skipped := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		reader, ok := readers[strings.ToLower(filepath.Ext(entry.Name()))]
		if !ok {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		meta, err := reader.ReadTags(path)
		if err != nil {
			warnSkip(logger, path, err)
			skipped++
			continue
		}
		t, err := New(path, meta, urlPrefix)
		if err != nil {
			warnSkip(logger, path, err)
			skipped++
			continue
		}
		tracks = append(tracks, t)
	}
	return tracks, skipped, nil
}

func warnSkip(logger *slog.Logger, path string, err error) {
	if logger == nil {
		return
	}
	reason := "read error"
	switch {
	case errors.Is(err, ErrMissingMetadata):
		reason = "missing metadata"
	case errors.Is(err, ErrUnsupportedFormat):
		reason = "unsupported format"
	}
	logger.Warn("skipping track", "path", path, "reason", reason, "error", err)
}
