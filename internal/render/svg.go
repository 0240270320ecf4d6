package render

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"hitsdeck/internal/config"
	"hitsdeck/internal/layout"
	"hitsdeck/internal/qr"
	"hitsdeck/internal/textutil"
	"hitsdeck/internal/track"
)

// Side selects which face of a table to render.
type Side int

const (
	// SideIdentity shows each card's year, artist, and title.
	SideIdentity Side = iota
	// SideLookup shows each card's QR code, with mirrored columns so a
	// double-sided print lines up after flipping the sheet.
	SideLookup
)

// Suffix returns the page-name suffix for the side: "a" for identity,
// "b" for lookup.
func (s Side) Suffix() string {
	if s == SideLookup {
		return "b"
	}
	return "a"
}

// Vertical text placement within a cell, in millimetres relative to the
// cell center.
const (
	yearOffsetMM   = 6.5
	artistAnchorMM = -19
	titleAnchorMM  = 18
	lineHeightMM   = 6
	cropMarkGapMM  = 1
	cropMarkLenMM  = 4
)

// RenderSide renders one face of a table as a standalone SVG document in
// millimetre units. Both sides share the same grid geometry and
// decorations; only the per-cell content and the column order differ. The
// footer label is drawn bottom-right for page identification.
func RenderSide(table *layout.Table, cfg *config.Config, side Side, footer string) (string, error) {
	g := layout.Geometry{
		PageWidth:  layout.PageWidthMM,
		PageHeight: layout.PageHeightMM,
		CellSize:   layout.CellSizeMM,
		Columns:    table.ColumnCount(),
		Rows:       table.RowCount(),
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg version="1.1" width="%smm" height="%smm" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">`+"\n",
		mm(g.PageWidth), mm(g.PageHeight), mm(g.PageWidth), mm(g.PageHeight))
	writeStyle(&b, cfg.Font)
	writeDecorations(&b, g, cfg.Page)

	for i, tr := range table.Cells() {
		row := layout.Row(i, g.Columns)
		switch side {
		case SideIdentity:
			writeIdentityCell(&b, g, layout.NaturalColumn(i, g.Columns), row, tr)
		case SideLookup:
			if err := writeLookupCell(&b, g, layout.MirrorColumn(i, g.Columns), row, tr.PlaybackURL); err != nil {
				return "", err
			}
		}
	}

	fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="end" class="footer">%s</text>`+"\n",
		mm(g.PageWidth-g.HMargin()), mm(g.PageHeight-g.HMargin()), html.EscapeString(footer))
	b.WriteString("</svg>\n")
	return b.String(), nil
}

func writeStyle(b *strings.Builder, font string) {
	fmt.Fprintf(b, `<style>
text { font-family: %q; }
.year { font-size: 18px; font-weight: 900; }
.title, .artist, .footer { font-size: 5.2px; font-weight: 400; }
.title { font-style: italic; }
rect, line { stroke: black; stroke-width: 0.2; }
</style>
`, font)
}

// writeDecorations draws the optional grid lines and crop marks. Grid lines
// sit on the interior cell boundaries; crop marks sit just outside every
// boundary, including the outer edges, so cutting guides survive when the
// grid itself is disabled.
func writeDecorations(b *strings.Builder, g layout.Geometry, page config.Page) {
	hm, vm := g.HMargin(), g.VMargin()
	tw, th := g.TableWidth(), g.TableHeight()

	if page.Grid {
		fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" fill="transparent" stroke-linejoin="miter"/>`+"\n",
			mm(hm), mm(vm), mm(tw), mm(th))
	}

	for ix := 0; ix <= g.Columns; ix++ {
		x := hm + float64(ix)*g.CellSize
		if page.Grid && ix > 0 && ix < g.Columns {
			writeLine(b, x, vm, x, vm+th)
		}
		if page.CropMarks {
			writeLine(b, x, vm-cropMarkGapMM-cropMarkLenMM, x, vm-cropMarkGapMM)
			writeLine(b, x, vm+th+cropMarkGapMM, x, vm+th+cropMarkGapMM+cropMarkLenMM)
		}
	}
	for iy := 0; iy <= g.Rows; iy++ {
		y := vm + float64(iy)*g.CellSize
		if page.Grid && iy > 0 && iy < g.Rows {
			writeLine(b, hm, y, hm+tw, y)
		}
		if page.CropMarks {
			writeLine(b, hm-cropMarkGapMM-cropMarkLenMM, y, hm-cropMarkGapMM, y)
			writeLine(b, hm+tw+cropMarkGapMM, y, hm+tw+cropMarkGapMM+cropMarkLenMM, y)
		}
	}
}

func writeIdentityCell(b *strings.Builder, g layout.Geometry, column, row int, tr track.Track) {
	cx, cy := g.CellCenter(column, row)

	year := strconv.Itoa(tr.Year)
	if tr.Year == track.YearUnknown {
		year = "????"
	}
	fmt.Fprintf(b, `<text x="%s" y="%s" text-anchor="middle" class="year">%s</text>`+"\n",
		mm(cx), mm(cy+yearOffsetMM), year)
	writeTextBlock(b, cx, cy+artistAnchorMM, tr.Artist, "artist")
	writeTextBlock(b, cx, cy+titleAnchorMM, tr.Title, "title")
}

// writeTextBlock draws a string broken across one or two lines, stacked at
// a fixed line height and vertically centered around the anchor point.
func writeTextBlock(b *strings.Builder, x, y float64, s, class string) {
	lines := textutil.BreakLines(s)
	blockHeight := lineHeightMM * float64(len(lines))
	for i, line := range lines {
		dy := lineHeightMM*float64(1+i) - blockHeight/2
		fmt.Fprintf(b, `<text x="%s" y="%s" text-anchor="middle" class="%s">%s</text>`+"\n",
			mm(x), mm(y+dy), class, html.EscapeString(line))
	}
}

// writeLookupCell centers the QR symbol in the cell using its reported
// physical size. The symbol is translated, never rescaled: longer URLs make
// bigger codes that may approach the cell edge, which is accepted.
func writeLookupCell(b *strings.Builder, g layout.Geometry, column, row int, url string) error {
	sym, err := qr.Generate(url)
	if err != nil {
		return err
	}
	ox, oy := g.CellOrigin(column, row)
	x := ox + (g.CellSize-sym.SideMM)/2
	y := oy + (g.CellSize-sym.SideMM)/2
	fmt.Fprintf(b, `<g transform="translate(%s, %s)">`+"\n", mm(x), mm(y))
	b.WriteString(sym.Path)
	b.WriteString("\n</g>\n")
	return nil
}

func writeLine(b *strings.Builder, x1, y1, x2, y2 float64) {
	fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n", mm(x1), mm(y1), mm(x2), mm(y2))
}

// mm formats a millimetre coordinate, rounded to 3 decimals to keep float
// noise out of the output.
func mm(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
