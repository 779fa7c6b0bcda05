package gridtext

import (
	"maps"
	"slices"
)

// Entry is a cell address paired with the raw,
// unevaluated string value found in a document.
type Entry struct {
	Address
	Value string
}

// Grid is a sparse mapping from 1-based cell addresses
// to raw string values that also tracks the highest
// row and column written so far.
//
// A Grid is populated by exactly one parse call
// and then handed off to the caller.
// The zero value is an empty Grid ready to use.
//
// Grid is not safe for concurrent writes.
type Grid struct {
	cells  map[Address]string
	rowMax int
	colMax int
}

// NewGrid returns an empty Grid.
func NewGrid() *Grid {
	return &Grid{cells: make(map[Address]string)}
}

// NewGridFromEntries returns a Grid populated with entries.
// Later entries overwrite earlier ones with the same address.
func NewGridFromEntries(entries ...Entry) *Grid {
	g := NewGrid()
	for _, e := range entries {
		g.Set(e.Row, e.Col, e.Value)
	}
	return g
}

// Set inserts or overwrites the value of the cell at row and col
// and expands the bounds of the grid to include the cell.
func (g *Grid) Set(row, col int, value string) {
	if g.cells == nil {
		g.cells = make(map[Address]string)
	}
	g.cells[Address{Row: row, Col: col}] = value
	g.ExpandBounds(row, col)
}

// ExpandBounds raises RowMax and ColMax to row and col
// if they are greater than the current bounds.
func (g *Grid) ExpandBounds(row, col int) {
	g.rowMax = max(g.rowMax, row)
	g.colMax = max(g.colMax, col)
}

// Reset removes all cells and zeroes the bounds.
func (g *Grid) Reset() {
	clear(g.cells)
	g.rowMax = 0
	g.colMax = 0
}

// Get returns the raw value at row and col
// and if a value was set for the cell.
func (g *Grid) Get(row, col int) (value string, ok bool) {
	value, ok = g.cells[Address{Row: row, Col: col}]
	return value, ok
}

// Value returns the raw value at row and col
// or an empty string if the cell was never set.
func (g *Grid) Value(row, col int) string {
	return g.cells[Address{Row: row, Col: col}]
}

// Len returns the number of cells with a value.
func (g *Grid) Len() int { return len(g.cells) }

// RowMax returns the highest row of all cells or 0 if the grid is empty.
func (g *Grid) RowMax() int { return g.rowMax }

// ColMax returns the highest column of all cells or 0 if the grid is empty.
func (g *Grid) ColMax() int { return g.colMax }

// Entries returns all cells sorted by row and then by column.
func (g *Grid) Entries() []Entry {
	addrs := slices.SortedFunc(maps.Keys(g.cells), compareAddresses)
	entries := make([]Entry, len(addrs))
	for i, a := range addrs {
		entries[i] = Entry{Address: a, Value: g.cells[a]}
	}
	return entries
}

// Equal returns true if both grids have the same cells and bounds.
// A nil Grid equals an empty Grid.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil {
		g = new(Grid)
	}
	if other == nil {
		other = new(Grid)
	}
	return g.rowMax == other.rowMax &&
		g.colMax == other.colMax &&
		maps.Equal(g.cells, other.cells)
}

func compareAddresses(a, b Address) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

// Parsed is the result of parsing a document.
type Parsed struct {
	// Dialect of the parsed document.
	Dialect Dialect

	// Grid holds the raw cell values of the document.
	Grid *Grid

	// Skipped counts records that the lenient SYLK and DIF
	// scanners ignored without failing the parse.
	Skipped int
}
