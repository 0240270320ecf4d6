package build_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hitsdeck/internal/build"
	"hitsdeck/internal/config"
	"hitsdeck/internal/logging"
	"hitsdeck/internal/testsupport"
	"hitsdeck/internal/track"
)

// stubEncoder mimics the real client's skip-if-exists behaviour so repeat
// builds can be observed.
type stubEncoder struct {
	calls int
	fail  bool
}

func (e *stubEncoder) Encode(_ context.Context, _, outputPath string) (bool, error) {
	if e.fail {
		return false, errors.New("boom")
	}
	if _, err := os.Stat(outputPath); err == nil {
		return false, nil
	}
	e.calls++
	return true, os.WriteFile(outputPath, []byte("clip"), 0o644)
}

type stubConverter struct {
	pages []string
	out   string
	fail  bool
}

func (c *stubConverter) Convert(_ context.Context, svgPaths []string, outputPath string) error {
	if c.fail {
		return errors.New("converter exploded")
	}
	c.pages = append([]string{}, svgPaths...)
	c.out = outputPath
	return os.WriteFile(outputPath, []byte("%PDF"), 0o644)
}

// stubReader serves metadata derived from the file name: "NNNN - Artist - Title.mp3".
type stubReader struct{}

func (stubReader) ReadTags(path string) (track.Metadata, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parts := strings.SplitN(base, " - ", 3)
	if len(parts) != 3 {
		return track.Metadata{}, fmt.Errorf("%w: %s", track.ErrMissingMetadata, path)
	}
	return track.Metadata{Year: parts[0], Artist: parts[1], Title: parts[2]}, nil
}

func seedTracks(t *testing.T, cfg *config.Config, n int) {
	t.Helper()
	if err := os.MkdirAll(cfg.Paths.TracksDir, 0o755); err != nil {
		t.Fatalf("mkdir tracks: %v", err)
	}
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%d - Artist %02d - Song %02d.mp3", 1960+i, i, i)
		if err := os.WriteFile(filepath.Join(cfg.Paths.TracksDir, name), []byte("audio"), 0o644); err != nil {
			t.Fatalf("seed track: %v", err)
		}
	}
}

func run(t *testing.T, cfg *config.Config, opts build.Options) (build.Result, error) {
	t.Helper()
	if opts.Stdout == nil {
		opts.Stdout = &bytes.Buffer{}
	}
	if opts.Readers == nil {
		opts.Readers = map[string]track.TagReader{".mp3": stubReader{}}
	}
	return build.Run(context.Background(), cfg, logging.NewNop(), opts)
}

func TestRunThirteenTracksProducesTwoPagesFourDrawings(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	seedTracks(t, cfg, 13)

	encoder := &stubEncoder{}
	converter := &stubConverter{}
	var stdout bytes.Buffer
	result, err := run(t, cfg, build.Options{Encoder: encoder, Converter: converter, Stdout: &stdout})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Tracks != 13 || result.Pages != 2 || result.Encoded != 13 {
		t.Fatalf("unexpected result: %+v", result)
	}

	wantPages := []string{"1a.svg", "1b.svg", "2a.svg", "2b.svg"}
	if len(converter.pages) != len(wantPages) {
		t.Fatalf("expected %d drawings, got %v", len(wantPages), converter.pages)
	}
	for i, want := range wantPages {
		if filepath.Base(converter.pages[i]) != want {
			t.Fatalf("page %d: got %s want %s", i, converter.pages[i], want)
		}
		if _, err := os.Stat(converter.pages[i]); err != nil {
			t.Fatalf("drawing %s not written: %v", want, err)
		}
	}
	if filepath.Base(converter.out) != build.PDFFileName {
		t.Fatalf("unexpected pdf target %q", converter.out)
	}
	if result.PDFPath != converter.out {
		t.Fatalf("result pdf path %q != converter target %q", result.PDFPath, converter.out)
	}

	// Clips are content addressed in the songs dir.
	clips, err := os.ReadDir(cfg.Paths.SongsDir)
	if err != nil {
		t.Fatalf("read songs dir: %v", err)
	}
	mp4s := 0
	for _, entry := range clips {
		if filepath.Ext(entry.Name()) == ".mp4" {
			mp4s++
		}
	}
	if mp4s != 13 {
		t.Fatalf("expected 13 clips, got %d", mp4s)
	}

	out := stdout.String()
	for _, want := range []string{"YEAR STATISTICS", "DECADE STATISTICS", "TOTAL", "13 tracks"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in stdout:\n%s", want, out)
		}
	}
}

func TestRunSecondBuildEncodesNothing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	seedTracks(t, cfg, 5)

	encoder := &stubEncoder{}
	if _, err := run(t, cfg, build.Options{Encoder: encoder, Converter: &stubConverter{}}); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if encoder.calls != 5 {
		t.Fatalf("expected 5 encodes on first run, got %d", encoder.calls)
	}

	result, err := run(t, cfg, build.Options{Encoder: encoder, Converter: &stubConverter{}})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if encoder.calls != 5 {
		t.Fatalf("expected no re-encodes, total calls %d", encoder.calls)
	}
	if result.Encoded != 0 {
		t.Fatalf("expected 0 encoded on second run, got %d", result.Encoded)
	}
}

func TestRunSkipsIncompleteTracksAndContinues(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	seedTracks(t, cfg, 3)
	if err := os.WriteFile(filepath.Join(cfg.Paths.TracksDir, "untagged.mp3"), []byte("x"), 0o644); err != nil {
		t.Fatalf("seed broken track: %v", err)
	}

	result, err := run(t, cfg, build.Options{Encoder: &stubEncoder{}, Converter: &stubConverter{}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Tracks != 3 || result.Skipped != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestRunEmptyDirectoryProducesNoPages(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	converter := &stubConverter{}
	result, err := run(t, cfg, build.Options{Encoder: &stubEncoder{}, Converter: converter})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Pages != 0 || result.PDFPath != "" {
		t.Fatalf("unexpected result for empty input: %+v", result)
	}
	if converter.out != "" {
		t.Fatal("converter must not run with zero pages")
	}
}

func TestRunEncoderFailureIsFatal(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	seedTracks(t, cfg, 1)

	_, err := run(t, cfg, build.Options{Encoder: &stubEncoder{fail: true}, Converter: &stubConverter{}})
	if !errors.Is(err, build.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
}

func TestRunConverterFailureIsFatal(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	seedTracks(t, cfg, 1)

	_, err := run(t, cfg, build.Options{Encoder: &stubEncoder{}, Converter: &stubConverter{fail: true}})
	if !errors.Is(err, build.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
}

func TestRunSortsTracksAcrossPages(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	// Seed out of order; names encode descending years.
	if err := os.MkdirAll(cfg.Paths.TracksDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{
		"1999 - Zeta - Last.mp3",
		"1960 - Alpha - First.mp3",
		"1975 - Mid - Middle.mp3",
	} {
		if err := os.WriteFile(filepath.Join(cfg.Paths.TracksDir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	converter := &stubConverter{}
	if _, err := run(t, cfg, build.Options{Encoder: &stubEncoder{}, Converter: converter}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Paths.BuildDir, "1a.svg"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	svg := string(data)
	first := strings.Index(svg, "First")
	middle := strings.Index(svg, "Middle")
	last := strings.Index(svg, "Last")
	if first < 0 || middle < 0 || last < 0 || !(first < middle && middle < last) {
		t.Fatalf("tracks not rendered in year order: %d %d %d", first, middle, last)
	}
}
