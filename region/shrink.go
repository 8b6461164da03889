package region

import (
	"fmt"

	"github.com/katalvlaran/acr/grid"
)

// Candidate is one fully trimmed rectangle considered by Shrink.
type Candidate struct {
	// Rect is the trimmed rectangle.
	Rect grid.Rect
	// Recession counts how far each edge moved inward from the feeler rectangle.
	Recession [4]int
	// Locked is the edge held at its feeler position, or -1 for the baseline trim.
	Locked Edge
	// Water is the number of perimeter cells bordering water.
	Water int
	// Perimeter is the perimeter length in cells.
	Perimeter int
	// Valid is set when Rect is obstruction-free and at least 2×2.
	Valid bool
}

// Ratio returns Water/Perimeter, 0 for an empty perimeter.
func (c Candidate) Ratio() float64 {
	if c.Perimeter == 0 {
		return 0
	}
	return float64(c.Water) / float64(c.Perimeter)
}

// better reports whether c beats o: higher water ratio, then larger area.
// Ratios are compared by cross-multiplication to stay exact.
func (c Candidate) better(o Candidate) bool {
	lhs, rhs := c.Water*o.Perimeter, o.Water*c.Perimeter
	if lhs != rhs {
		return lhs > rhs
	}
	return c.Rect.Area() > o.Rect.Area()
}

// Shrink trims a provisional rectangle until it is obstruction-free.
//
// A rectangle that is already clear is returned unchanged. Otherwise the
// baseline and alternative trims from Candidates are compared and the valid
// one with the highest water-adjacency ratio wins, larger area breaking ties,
// the baseline winning full ties.
//
// Errors:
//   - ErrRegionTooSmall: no candidate stays obstruction-free at 2×2 or more.
//
// Complexity: O(k·(Rows+Cols)·area) worst case with k ≤ 5 candidates.
func Shrink(g *grid.Grid, r grid.Rect, origin grid.Point) (grid.Rect, error) {
	if Obstructions(g, r) == 0 {
		return r, nil
	}
	best, ok := Best(Candidates(g, r, origin))
	if !ok {
		return grid.Rect{}, fmt.Errorf("%w: %s from origin %s", ErrRegionTooSmall, r, origin)
	}
	return best.Rect, nil
}

// Best picks the winning valid candidate, in slice order on full ties.
func Best(cands []Candidate) (Candidate, bool) {
	var (
		best  Candidate
		found bool
	)
	for _, c := range cands {
		if !c.Valid {
			continue
		}
		if !found || c.better(best) {
			best, found = c, true
		}
	}
	return best, found
}

// Candidates returns the baseline trim of r followed by its alternatives.
//
// Baseline: every edge whose outer strip holds an obstruction recedes one
// row or column at a time, re-scanning only the new strip, until the strip is
// clear. Obstructions left strictly inside are then cut away through their
// quadrant relative to origin, moving whichever of the quadrant's two edges
// loses less area.
//
// Alternatives: for each edge that receded the most in the baseline, the trim
// is repeated from r with that edge held in place, so the obstructions of its
// quadrant are removed by its perpendicular neighbours instead.
//
// The origin row and column are never crossed, so every candidate contains origin.
func Candidates(g *grid.Grid, r grid.Rect, origin grid.Point) []Candidate {
	base := trim(g, r, origin, Edge(-1))
	cands := []Candidate{base}

	most := 0
	for _, n := range base.Recession {
		if n > most {
			most = n
		}
	}
	if most == 0 {
		return cands
	}
	for _, e := range edges {
		if base.Recession[e] == most {
			cands = append(cands, trim(g, r, origin, e))
		}
	}
	return cands
}

// trim shrinks r with the locked edge held fixed (-1 for none).
// The loop is bounded by the rectangle's extent: every pass either finishes
// or recedes at least one edge, and no edge may cross the origin.
func trim(g *grid.Grid, r grid.Rect, origin grid.Point, locked Edge) Candidate {
	c := Candidate{Locked: locked}
	limit := r.Width() + r.Height() + 4

	for pass := 0; pass < limit; pass++ {
		for _, e := range edges {
			if e == locked {
				continue
			}
			for canRecede(r, origin, e) && stripObstructions(g, r, e) > 0 {
				r = recede(r, e, 1)
				c.Recession[e]++
			}
		}

		p, found := firstObstruction(g, r)
		if !found {
			c.Rect = r
			c.Water, c.Perimeter = WaterRatio(g, r)
			c.Valid = r.AtLeast(2, 2)
			return c
		}

		e, n, ok := cutEdge(r, origin, p, locked)
		if !ok {
			break
		}
		r = recede(r, e, n)
		c.Recession[e] += n
	}

	c.Rect = r
	return c
}

// cutEdge chooses which edge to move, and by how much, to exclude p.
// Candidates are the horizontal and vertical edges of p's quadrant; the one
// leaving the larger area wins, horizontal on ties.
func cutEdge(r grid.Rect, origin, p grid.Point, locked Edge) (Edge, int, bool) {
	type cut struct {
		e    Edge
		n    int
		area int
	}
	var cuts []cut
	switch {
	case p.Y < origin.Y:
		n := p.Y - r.Top + 1
		cuts = append(cuts, cut{Top, n, recede(r, Top, n).Area()})
	case p.Y > origin.Y:
		n := r.Bottom - p.Y + 1
		cuts = append(cuts, cut{Bottom, n, recede(r, Bottom, n).Area()})
	}
	switch {
	case p.X < origin.X:
		n := p.X - r.Left + 1
		cuts = append(cuts, cut{Left, n, recede(r, Left, n).Area()})
	case p.X > origin.X:
		n := r.Right - p.X + 1
		cuts = append(cuts, cut{Right, n, recede(r, Right, n).Area()})
	}

	var (
		best  cut
		found bool
	)
	for _, c := range cuts {
		if c.e == locked {
			continue
		}
		if !found || c.area > best.area {
			best, found = c, true
		}
	}
	return best.e, best.n, found
}

// canRecede reports whether edge e may move one step inward without
// crossing the origin row or column.
func canRecede(r grid.Rect, origin grid.Point, e Edge) bool {
	switch e {
	case Top:
		return r.Top < origin.Y
	case Bottom:
		return r.Bottom > origin.Y
	case Left:
		return r.Left < origin.X
	case Right:
		return r.Right > origin.X
	}
	return false
}

// recede moves edge e inward by n cells.
func recede(r grid.Rect, e Edge, n int) grid.Rect {
	switch e {
	case Top:
		r.Top += n
	case Bottom:
		r.Bottom -= n
	case Left:
		r.Left += n
	case Right:
		r.Right -= n
	}
	return r
}
