package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"hitsdeck/internal/config"
	"hitsdeck/internal/encode"
	"hitsdeck/internal/fileutil"
	"hitsdeck/internal/layout"
	"hitsdeck/internal/logging"
	"hitsdeck/internal/pdfconv"
	"hitsdeck/internal/render"
	"hitsdeck/internal/track"
)

// lockFileName guards the clip directory against interleaved builds. Clips
// are written under content-addressed names via unique temporaries, so the
// lock only has to serialize whole encode phases, not individual renames.
const lockFileName = ".hitsdeck.lock"

// PDFFileName is the final combined document written to the build
// directory.
const PDFFileName = "cards.pdf"

// Options allows callers (and tests) to substitute the external
// collaborators. Zero values select the real ffmpeg and rsvg-convert
// clients, the default tag readers, and os.Stdout.
type Options struct {
	Encoder   encode.Client
	Converter pdfconv.Client
	Readers   map[string]track.TagReader
	Stdout    io.Writer
}

// Result summarizes a completed build.
type Result struct {
	Tracks  int
	Skipped int
	Encoded int
	Pages   int
	PDFPath string
}

// Run executes the whole pipeline: load tracks, encode clips, sort,
// paginate, render both sides of every page, and combine them into one PDF.
// Per-track tag problems are skipped with warnings; external tool failures
// and unusable configuration abort the run.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (Result, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	encoder := opts.Encoder
	if encoder == nil {
		encoder = encode.NewCLI(
			encode.WithBinary(cfg.FFmpegBinary()),
			encode.WithBitrate(cfg.Encode.BitrateKbps),
			encode.WithClipSeconds(cfg.Encode.ClipSeconds),
		)
	}
	converter := opts.Converter
	if converter == nil {
		converter = pdfconv.NewCLI(pdfconv.WithBinary(cfg.RsvgConvertBinary()))
	}
	readers := opts.Readers
	if readers == nil {
		readers = track.DefaultReaders()
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return Result{}, Wrap(ErrConfiguration, "setup", "ensure directories", err)
	}

	tracks, skipped, err := track.LoadDir(cfg.Paths.TracksDir, readers, cfg.URLPrefix, logging.WithComponent(logger, "loader"))
	if err != nil {
		return Result{}, Wrap(ErrConfiguration, "load", "read tracks", err)
	}
	logger.Info("loaded tracks", "tracks", len(tracks), "skipped", skipped)

	encoded, err := encodeAll(ctx, cfg, logging.WithComponent(logger, "encode"), encoder, tracks)
	if err != nil {
		return Result{}, err
	}

	track.Sort(tracks)

	stats := NewStats()
	for _, tr := range tracks {
		stats.Record(tr)
	}
	stats.WriteTo(stdout)

	tables := layout.Paginate(tracks, layout.Columns, layout.Rows)

	svgPaths, err := renderPages(cfg, logging.WithComponent(logger, "render"), tables)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Tracks:  len(tracks),
		Skipped: skipped,
		Encoded: encoded,
		Pages:   len(tables),
	}

	if len(svgPaths) == 0 {
		logger.Warn("no tracks loaded, skipping PDF conversion")
		return result, nil
	}

	result.PDFPath = filepath.Join(cfg.Paths.BuildDir, PDFFileName)
	if err := converter.Convert(ctx, svgPaths, result.PDFPath); err != nil {
		return Result{}, Wrap(ErrExternalTool, "convert", "combine pages into PDF", err)
	}
	logger.Info("build complete", "pages", result.Pages, "pdf", result.PDFPath)
	return result, nil
}

// encodeAll transcodes every track's clip, holding the clip directory lock
// for the whole phase so concurrent builds cannot interleave.
func encodeAll(ctx context.Context, cfg *config.Config, logger *slog.Logger, encoder encode.Client, tracks []track.Track) (int, error) {
	if len(tracks) == 0 {
		return 0, nil
	}

	lock := flock.New(filepath.Join(cfg.Paths.SongsDir, lockFileName))
	if err := lock.Lock(); err != nil {
		return 0, fmt.Errorf("lock clip directory: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	encoded := 0
	for _, tr := range tracks {
		target := filepath.Join(cfg.Paths.SongsDir, tr.ClipFileName())
		ran, err := encoder.Encode(ctx, tr.SourcePath, target)
		if err != nil {
			return encoded, Wrap(ErrExternalTool, "encode", tr.SourcePath, err)
		}
		if ran {
			encoded++
			logger.Info("encoded clip", "source", filepath.Base(tr.SourcePath), "clip", tr.ClipFileName())
		} else {
			logger.Debug("clip exists, skipping", "clip", tr.ClipFileName())
		}
	}
	return encoded, nil
}

// renderPages writes both sides of every table as SVG files named
// {page}a.svg and {page}b.svg and returns the paths in conversion order.
func renderPages(cfg *config.Config, logger *slog.Logger, tables []*layout.Table) ([]string, error) {
	var paths []string
	for i, tbl := range tables {
		page := i + 1
		for _, side := range []render.Side{render.SideIdentity, render.SideLookup} {
			label := fmt.Sprintf("%d%s", page, side.Suffix())
			doc, err := render.RenderSide(tbl, cfg, side, label)
			if err != nil {
				return nil, fmt.Errorf("render page %s: %w", label, err)
			}
			path := filepath.Join(cfg.Paths.BuildDir, label+".svg")
			if err := fileutil.WriteFileAtomic(path, []byte(doc), 0o644); err != nil {
				return nil, fmt.Errorf("write page %s: %w", label, err)
			}
			paths = append(paths, path)
			logger.Debug("wrote page side", "file", path, "cards", tbl.Len())
		}
	}
	return paths, nil
}
