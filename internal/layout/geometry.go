package layout

// Page and cell measurements in millimetres. Cards in the boxed game are
// 65mm squares; 62mm keeps the crop marks clear of the printer's
// non-printable border on A4 while staying close enough to shuffle both
// into one deck.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
	CellSizeMM   = 62.0
)

// Geometry captures the physical placement of a card grid on a page. Both
// sides of a page share one Geometry so double-sided prints register.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	CellSize   float64
	Columns    int
	Rows       int
}

// DefaultGeometry returns the published A4 3x4 layout.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:  PageWidthMM,
		PageHeight: PageHeightMM,
		CellSize:   CellSizeMM,
		Columns:    Columns,
		Rows:       Rows,
	}
}

// TableWidth returns the grid width in millimetres.
func (g Geometry) TableWidth() float64 {
	return g.CellSize * float64(g.Columns)
}

// TableHeight returns the grid height in millimetres.
func (g Geometry) TableHeight() float64 {
	return g.CellSize * float64(g.Rows)
}

// HMargin returns the symmetric horizontal margin derived from the page and
// grid widths.
func (g Geometry) HMargin() float64 {
	return (g.PageWidth - g.TableWidth()) / 2
}

// VMargin returns the top margin. The grid is aligned top-left with the
// horizontal margin rather than centered vertically, which leaves the extra
// space at the bottom of the page for the footer label.
func (g Geometry) VMargin() float64 {
	return g.HMargin()
}

// CellOrigin returns the top-left corner of the given grid cell.
func (g Geometry) CellOrigin(column, row int) (x, y float64) {
	return g.HMargin() + float64(column)*g.CellSize, g.VMargin() + float64(row)*g.CellSize
}

// CellCenter returns the center point of the given grid cell.
func (g Geometry) CellCenter(column, row int) (x, y float64) {
	x, y = g.CellOrigin(column, row)
	return x + g.CellSize/2, y + g.CellSize/2
}
