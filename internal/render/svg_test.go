package render_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"hitsdeck/internal/config"
	"hitsdeck/internal/layout"
	"hitsdeck/internal/qr"
	"hitsdeck/internal/render"
	"hitsdeck/internal/track"
)

const urlPrefix = "https://example.com/clips/"

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.URLPrefix = urlPrefix
	return &cfg
}

func makeTrack(t *testing.T, year, artist, title string) track.Track {
	t.Helper()
	tr, err := track.New("tracks/x.mp3", track.Metadata{Title: title, Artist: artist, Year: year}, urlPrefix)
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	return tr
}

func fmtMM(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func TestSideSuffixes(t *testing.T) {
	if render.SideIdentity.Suffix() != "a" || render.SideLookup.Suffix() != "b" {
		t.Fatal("unexpected side suffixes")
	}
}

func TestIdentitySidePlacesYearAtCellCenter(t *testing.T) {
	tbl := layout.NewTable(3, 4)
	tbl.Append(makeTrack(t, "1999", "Prince", "1999"))

	svg, err := render.RenderSide(tbl, testConfig(), render.SideIdentity, "1a")
	if err != nil {
		t.Fatalf("RenderSide: %v", err)
	}
	// First cell center is (43, 43); the year sits 6.5mm below center.
	if !strings.Contains(svg, `<text x="43" y="49.5" text-anchor="middle" class="year">1999</text>`) {
		t.Fatalf("year text not placed at cell center:\n%s", svg)
	}
	if !strings.Contains(svg, `class="artist">Prince</text>`) {
		t.Fatal("artist text missing")
	}
	if !strings.Contains(svg, `font-family: "Cantarell"`) {
		t.Fatal("configured font missing from style block")
	}
}

func TestIdentitySideRendersUnknownYearSentinel(t *testing.T) {
	tbl := layout.NewTable(3, 4)
	tbl.Append(makeTrack(t, "19??", "Nobody", "Mystery"))

	svg, err := render.RenderSide(tbl, testConfig(), render.SideIdentity, "1a")
	if err != nil {
		t.Fatalf("RenderSide: %v", err)
	}
	if !strings.Contains(svg, `class="year">????</text>`) {
		t.Fatal("expected ???? for unknown year")
	}
}

func TestLookupSideMirrorsColumns(t *testing.T) {
	tr := makeTrack(t, "1984", "Queen", "Radio Ga Ga")
	tbl := layout.NewTable(3, 4)
	tbl.Append(tr)

	svg, err := render.RenderSide(tbl, testConfig(), render.SideLookup, "1b")
	if err != nil {
		t.Fatalf("RenderSide: %v", err)
	}

	sym, err := qr.Generate(tr.PlaybackURL)
	if err != nil {
		t.Fatalf("qr: %v", err)
	}
	// Cell index 0 mirrors to column 2: origin x = 12 + 2*62 = 136.
	wantX := fmtMM(136 + (62-sym.SideMM)/2)
	wantY := fmtMM(12 + (62-sym.SideMM)/2)
	want := `<g transform="translate(` + wantX + `, ` + wantY + `)">`
	if !strings.Contains(svg, want) {
		t.Fatalf("expected mirrored QR placement %q in:\n%s", want, svg)
	}
	if !strings.Contains(svg, sym.Path) {
		t.Fatal("QR path element missing")
	}
}

func TestBothSidesShareGridGeometry(t *testing.T) {
	tbl := layout.NewTable(3, 4)
	tbl.Append(makeTrack(t, "1970", "Artist", "Title"))
	cfg := testConfig()
	cfg.Page.Grid = false
	cfg.Page.CropMarks = true

	a, err := render.RenderSide(tbl, cfg, render.SideIdentity, "1a")
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	b, err := render.RenderSide(tbl, cfg, render.SideLookup, "1b")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if strings.Count(a, "<line") != strings.Count(b, "<line") {
		t.Fatal("sides disagree on crop mark geometry")
	}
}

func TestGridLinesToggle(t *testing.T) {
	tbl := layout.NewTable(3, 4)
	cfg := testConfig()
	cfg.Page.Grid = false
	cfg.Page.CropMarks = false

	svg, err := render.RenderSide(tbl, cfg, render.SideIdentity, "1a")
	if err != nil {
		t.Fatalf("RenderSide: %v", err)
	}
	if strings.Contains(svg, "<rect") || strings.Contains(svg, "<line") {
		t.Fatal("expected no decorations with both toggles off")
	}

	cfg.Page.Grid = true
	svg, err = render.RenderSide(tbl, cfg, render.SideIdentity, "1a")
	if err != nil {
		t.Fatalf("RenderSide: %v", err)
	}
	if !strings.Contains(svg, "<rect") {
		t.Fatal("expected outer rect with grid enabled")
	}
	// Interior boundaries only: 2 vertical and 3 horizontal lines.
	if got := strings.Count(svg, "<line"); got != 5 {
		t.Fatalf("expected 5 interior grid lines, got %d", got)
	}
}

func TestCropMarksCoverEveryBoundary(t *testing.T) {
	tbl := layout.NewTable(3, 4)
	cfg := testConfig()
	cfg.Page.Grid = false
	cfg.Page.CropMarks = true

	svg, err := render.RenderSide(tbl, cfg, render.SideIdentity, "1a")
	if err != nil {
		t.Fatalf("RenderSide: %v", err)
	}
	// Two marks per column boundary (4 boundaries) and per row boundary (5).
	if got := strings.Count(svg, "<line"); got != 2*4+2*5 {
		t.Fatalf("expected 18 crop marks, got %d", got)
	}
}

func TestFooterAndTextAreEscaped(t *testing.T) {
	tbl := layout.NewTable(3, 4)
	tbl.Append(makeTrack(t, "1977", "Simon & Garfunkel", "Wish You <Were> Here"))

	svg, err := render.RenderSide(tbl, testConfig(), render.SideIdentity, "<2a>")
	if err != nil {
		t.Fatalf("RenderSide: %v", err)
	}
	if !strings.Contains(svg, "Simon &amp; Garfunkel") {
		t.Fatal("artist ampersand not escaped")
	}
	if !strings.Contains(svg, "Wish You &lt;Were&gt; Here") {
		t.Fatal("title angle brackets not escaped")
	}
	if !strings.Contains(svg, `class="footer">&lt;2a&gt;</text>`) {
		t.Fatal("footer not escaped")
	}
	if strings.Contains(svg, "<Were>") {
		t.Fatal("raw angle brackets leaked into the document")
	}
}

func TestLongTitleBreaksIntoStackedLines(t *testing.T) {
	tbl := layout.NewTable(3, 4)
	tbl.Append(makeTrack(t, "1967", "Procol Harum", "A Whiter Shade of Pale Extended"))

	svg, err := render.RenderSide(tbl, testConfig(), render.SideIdentity, "1a")
	if err != nil {
		t.Fatalf("RenderSide: %v", err)
	}
	if got := strings.Count(svg, `class="title"`); got != 2 {
		t.Fatalf("expected 2 title lines, got %d", got)
	}
}
