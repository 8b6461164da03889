package region

import "github.com/katalvlaran/acr/grid"

// Obstructions counts the cells of r that are obstructed or already claimed.
// Zero means r can be claimed as is.
// Complexity: O(area).
func Obstructions(g *grid.Grid, r grid.Rect) int {
	n := 0
	for y := r.Top; y <= r.Bottom; y++ {
		for x := r.Left; x <= r.Right; x++ {
			if !g.Free(grid.Point{X: x, Y: y}) {
				n++
			}
		}
	}
	return n
}

// stripObstructions counts non-free cells along one edge of r.
// Complexity: O(Width) or O(Height).
func stripObstructions(g *grid.Grid, r grid.Rect, e Edge) int {
	n := 0
	switch e {
	case Top, Bottom:
		y := r.Top
		if e == Bottom {
			y = r.Bottom
		}
		for x := r.Left; x <= r.Right; x++ {
			if !g.Free(grid.Point{X: x, Y: y}) {
				n++
			}
		}
	case Left, Right:
		x := r.Left
		if e == Right {
			x = r.Right
		}
		for y := r.Top; y <= r.Bottom; y++ {
			if !g.Free(grid.Point{X: x, Y: y}) {
				n++
			}
		}
	}
	return n
}

// firstObstruction returns the first non-free cell of r in row-major order.
func firstObstruction(g *grid.Grid, r grid.Rect) (grid.Point, bool) {
	for y := r.Top; y <= r.Bottom; y++ {
		for x := r.Left; x <= r.Right; x++ {
			p := grid.Point{X: x, Y: y}
			if !g.Free(p) {
				return p, true
			}
		}
	}
	return grid.Point{}, false
}

// WaterRatio reports how many perimeter cells of r touch a Water cell outside
// r (4-neighbourhood), and the perimeter length. Map edges and out-of-sight
// cells do not count as water.
// Complexity: O(Width+Height).
func WaterRatio(g *grid.Grid, r grid.Rect) (water, perimeter int) {
	pts := r.Perimeter()
	for _, p := range pts {
		for _, d := range grid.Conn4 {
			q := p.Add(d[0], d[1])
			if r.Contains(q) {
				continue
			}
			if g.At(q) == grid.Water {
				water++
				break
			}
		}
	}
	return water, len(pts)
}
