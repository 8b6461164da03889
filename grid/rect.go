package grid

import "fmt"

// Rect is an inclusive window [Top,Bottom]×[Left,Right] on the grid.
type Rect struct {
	Top, Bottom, Left, Right int
}

// Width returns the number of columns covered by r.
func (r Rect) Width() int { return r.Right - r.Left + 1 }

// Height returns the number of rows covered by r.
func (r Rect) Height() int { return r.Bottom - r.Top + 1 }

// Area returns Width×Height, or 0 for an empty rectangle.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width() * r.Height()
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.Right < r.Left || r.Bottom < r.Top }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Left <= o.Right && o.Left <= r.Right && r.Top <= o.Bottom && o.Top <= r.Bottom
}

// AtLeast reports whether r is at least w wide and h high.
func (r Rect) AtLeast(w, h int) bool {
	return !r.Empty() && r.Width() >= w && r.Height() >= h
}

// Perimeter returns the boundary cells of r, each exactly once,
// walking top row, bottom row, left column, right column.
// Complexity: O(Width+Height).
func (r Rect) Perimeter() []Point {
	if r.Empty() {
		return nil
	}
	pts := make([]Point, 0, 2*(r.Width()+r.Height()))
	for x := r.Left; x <= r.Right; x++ {
		pts = append(pts, Point{X: x, Y: r.Top})
	}
	if r.Bottom != r.Top {
		for x := r.Left; x <= r.Right; x++ {
			pts = append(pts, Point{X: x, Y: r.Bottom})
		}
	}
	for y := r.Top + 1; y < r.Bottom; y++ {
		pts = append(pts, Point{X: r.Left, Y: y})
		if r.Right != r.Left {
			pts = append(pts, Point{X: r.Right, Y: y})
		}
	}
	return pts
}

// Center returns the cell at the integer midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// String formats r as "[top..bottom]x[left..right]".
func (r Rect) String() string {
	return fmt.Sprintf("[%d..%d]x[%d..%d]", r.Top, r.Bottom, r.Left, r.Right)
}
