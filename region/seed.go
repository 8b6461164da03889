package region

import "github.com/katalvlaran/acr/grid"

// ChildSeeds walks the four edges of a finalized rectangle and returns one
// seed per opening, plus how many seeds were dropped by the limit.
//
// A boundary position qualifies when the two cells straight outside the edge
// (distance 1 and 2) are both free. Each maximal run of qualifying positions
// yields the cell just outside the edge at the run's midpoint.
//
// Seeds come out in edge-scan order: top, bottom, left, right, and within an
// edge from low to high coordinate. Only the first limit are kept.
//
// Complexity: O(Width+Height).
func ChildSeeds(g *grid.Grid, r grid.Rect, limit int) ([]grid.Point, int) {
	var all []grid.Point
	for _, e := range edges {
		all = append(all, edgeSeeds(g, r, e)...)
	}
	if len(all) <= limit {
		return all, 0
	}
	return all[:limit:limit], len(all) - limit
}

// edgeSeeds returns the run midpoints along one edge.
func edgeSeeds(g *grid.Grid, r grid.Rect, e Edge) []grid.Point {
	d := directions[e]
	// boundary cell for position i along the edge
	var (
		at     func(i int) grid.Point
		lo, hi int
	)
	switch e {
	case Top:
		at = func(i int) grid.Point { return grid.Point{X: i, Y: r.Top} }
		lo, hi = r.Left, r.Right
	case Bottom:
		at = func(i int) grid.Point { return grid.Point{X: i, Y: r.Bottom} }
		lo, hi = r.Left, r.Right
	case Left:
		at = func(i int) grid.Point { return grid.Point{X: r.Left, Y: i} }
		lo, hi = r.Top, r.Bottom
	case Right:
		at = func(i int) grid.Point { return grid.Point{X: r.Right, Y: i} }
		lo, hi = r.Top, r.Bottom
	}

	open := func(i int) bool {
		b := at(i)
		return g.Free(b.Add(d[0], d[1])) && g.Free(b.Add(2*d[0], 2*d[1]))
	}

	var seeds []grid.Point
	for i := lo; i <= hi; i++ {
		if !open(i) {
			continue
		}
		start := i
		for i+1 <= hi && open(i+1) {
			i++
		}
		mid := at((start + i) / 2)
		seeds = append(seeds, mid.Add(d[0], d[1]))
	}
	return seeds
}
