package grid

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// New allocates a rows×cols grid with every cell OutOfSight, so a map smaller
// than the allocation never grows a halo of passable terrain.
// Returns ErrAllocation if either dimension is non-positive or above opts.MaxDim.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, opts Options) (*Grid, error) {
	maxDim := opts.MaxDim
	if maxDim <= 0 {
		maxDim = DefaultMaxDim
	}
	if rows <= 0 || cols <= 0 || rows > maxDim || cols > maxDim {
		return nil, fmt.Errorf("%w: %dx%d (max %d)", ErrAllocation, rows, cols, maxDim)
	}
	cells := make([]int32, rows*cols)
	for i := range cells {
		cells[i] = int32(OutOfSight)
	}

	return &Grid{Rows: rows, Cols: cols, cells: cells}, nil
}

// FromRows builds a grid from a non-empty, rectangular slice of rows.
// The input is copied; later changes to rows do not affect the grid.
// Returns ErrMapFormat if rows is empty or any row length differs from the first,
// ErrAllocation if the dimensions exceed opts.MaxDim.
// Complexity: O(rows×cols).
func FromRows(rows [][]Cell, opts Options) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: grid has no rows or no columns", ErrMapFormat)
	}
	cols := len(rows[0])
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMapFormat, y, len(row), cols)
		}
	}
	g, err := New(len(rows), cols, opts)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, c := range row {
			g.cells[g.index(x, y)] = int32(c)
		}
	}

	return g, nil
}

// Parse builds a grid from map glyphs, one string per row:
// '.' Passable, '%' Water, '?' OutOfSight. Intended for fixtures and tests.
func Parse(lines ...string) (*Grid, error) {
	rows := make([][]Cell, len(lines))
	for y, line := range lines {
		row := make([]Cell, 0, len(line))
		for x, ch := range line {
			switch ch {
			case '.':
				row = append(row, Passable)
			case '%':
				row = append(row, Water)
			case '?':
				row = append(row, OutOfSight)
			default:
				return nil, fmt.Errorf("%w: unknown glyph %q at %d,%d", ErrMapFormat, ch, x, y)
			}
		}
		rows[y] = row
	}

	return FromRows(rows, DefaultOptions())
}

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// At returns the cell at p. Points outside the grid read as OutOfSight.
// Complexity: O(1).
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p.X, p.Y) {
		return OutOfSight
	}
	return Cell(atomic.LoadInt32(&g.cells[g.index(p.X, p.Y)]))
}

// Free reports whether p is in bounds, Passable and unclaimed.
// Complexity: O(1).
func (g *Grid) Free(p Point) bool {
	return g.At(p) == Passable
}

// Set overwrites the cell at p. Used by loaders; region growth claims through Claim.
func (g *Grid) Set(p Point, c Cell) error {
	if !g.InBounds(p.X, p.Y) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	atomic.StoreInt32(&g.cells[g.index(p.X, p.Y)], int32(c))
	return nil
}

// Bounds returns the rectangle covering the whole grid.
func (g *Grid) Bounds() Rect {
	return Rect{Top: 0, Bottom: g.Rows - 1, Left: 0, Right: g.Cols - 1}
}

// Clone returns a deep copy of the grid, claims included.
// Complexity: O(rows×cols).
func (g *Grid) Clone() *Grid {
	cells := make([]int32, len(g.cells))
	for i := range g.cells {
		cells[i] = atomic.LoadInt32(&g.cells[i])
	}
	return &Grid{Rows: g.Rows, Cols: g.Cols, cells: cells}
}

// Count returns how many cells satisfy pred.
func (g *Grid) Count(pred func(Cell) bool) int {
	n := 0
	for i := range g.cells {
		if pred(Cell(atomic.LoadInt32(&g.cells[i]))) {
			n++
		}
	}
	return n
}

// String renders the grid with one glyph per cell, rows separated by '\n'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Rows * (g.Cols + 1))
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			b.WriteString(g.At(Point{X: x, Y: y}).String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// index maps (x,y) to a row-major index: y*Cols + x.
func (g *Grid) index(x, y int) int {
	return y*g.Cols + x
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Cols, Y: idx / g.Cols}
}
