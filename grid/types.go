package grid

import "fmt"

// DefaultMaxDim bounds both Rows and Cols unless Options.MaxDim overrides it.
const DefaultMaxDim = 200

// Cell is the terrain state of a single grid cell.
// Values above zero are the id of the region that claimed the cell.
type Cell int32

const (
	// OutOfSight marks cells never observed; obstructed for growth.
	OutOfSight Cell = -2
	// Water marks impassable terrain.
	Water Cell = -1
	// Passable marks open, unclaimed land.
	Passable Cell = 0
)

// ClaimedBy returns the Cell value for a cell owned by region id (id ≥ 1).
func ClaimedBy(id int) Cell { return Cell(id) }

// Obstructed reports whether the cell is OutOfSight or Water.
func (c Cell) Obstructed() bool { return c < Passable }

// Claimed reports whether a region owns the cell.
func (c Cell) Claimed() bool { return c > Passable }

// Owner returns the owning region id, or 0 when the cell is unclaimed.
func (c Cell) Owner() int {
	if c > Passable {
		return int(c)
	}
	return 0
}

// String renders the cell as a single map glyph ('?', '%', '.', or '#').
func (c Cell) String() string {
	switch {
	case c == OutOfSight:
		return "?"
	case c == Water:
		return "%"
	case c == Passable:
		return "."
	default:
		return "#"
	}
}

// Point is a grid coordinate: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx,dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// String formats p as "x,y".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Conn4 lists the orthogonal neighbour offsets N, E, S, W.
var Conn4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Options contains tunable parameters for grid construction.
type Options struct {
	// MaxDim bounds Rows and Cols.
	MaxDim int
}

// DefaultOptions returns Options with MaxDim=DefaultMaxDim.
func DefaultOptions() Options {
	return Options{MaxDim: DefaultMaxDim}
}

// Grid is a rows×cols array of cells stored row-major.
// Rows and Cols are fixed at construction.
type Grid struct {
	Rows, Cols int
	cells      []int32
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
