package layout

import "hitsdeck/internal/track"

// Columns and Rows define the published grid size: 12 cards per page.
const (
	Columns = 3
	Rows    = 4
)

// Table is one physical page's grid of cards. Cells fill in reading order
// (row-major); a table never holds more than Columns*Rows tracks.
type Table struct {
	cells   []track.Track
	columns int
	rows    int
}

// NewTable creates an empty table with the given grid capacity.
func NewTable(columns, rows int) *Table {
	if columns < 1 || rows < 1 {
		panic("layout: table dimensions must be positive")
	}
	return &Table{columns: columns, rows: rows}
}

// Append adds a track to the next cell. Callers must check IsFull first;
// appending to a full table panics.
func (t *Table) Append(tr track.Track) {
	if t.IsFull() {
		panic("layout: append to full table")
	}
	t.cells = append(t.cells, tr)
}

// IsFull reports whether every cell is occupied.
func (t *Table) IsFull() bool {
	return len(t.cells) >= t.Capacity()
}

// IsEmpty reports whether no cell is occupied.
func (t *Table) IsEmpty() bool {
	return len(t.cells) == 0
}

// Len returns the number of occupied cells.
func (t *Table) Len() int {
	return len(t.cells)
}

// Capacity returns the total cell count of the grid.
func (t *Table) Capacity() int {
	return t.columns * t.rows
}

// Columns returns the grid width in cells.
func (t *Table) ColumnCount() int {
	return t.columns
}

// Rows returns the grid height in cells.
func (t *Table) RowCount() int {
	return t.rows
}

// Cells returns the occupied cells in insertion order.
func (t *Table) Cells() []track.Track {
	return t.cells
}

// Paginate chunks a sorted track sequence into tables of the given grid
// size. Every table except possibly the last is full; a trailing partial
// table is emitted only when it holds at least one track.
func Paginate(tracks []track.Track, columns, rows int) []*Table {
	var tables []*Table
	current := NewTable(columns, rows)
	for _, tr := range tracks {
		current.Append(tr)
		if current.IsFull() {
			tables = append(tables, current)
			current = NewTable(columns, rows)
		}
	}
	if !current.IsEmpty() {
		tables = append(tables, current)
	}
	return tables
}

// NaturalColumn maps a cell index to its column in reading order.
func NaturalColumn(index, columns int) int {
	return index % columns
}

// MirrorColumn maps a cell index to its horizontally mirrored column. The
// QR side of a page uses this so that after printing double-sided and
// flipping the sheet, each code lands behind its own card text. Exactly one
// side mirrors; rendering applies it to the lookup side.
func MirrorColumn(index, columns int) int {
	return columns - 1 - index%columns
}

// Row maps a cell index to its row.
func Row(index, columns int) int {
	return index / columns
}
