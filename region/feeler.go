package region

import (
	"fmt"

	"github.com/katalvlaran/acr/grid"
)

// reach holds the four probe lengths, indexed by Edge.
type reach [4]int

// directions maps each Edge to its unit step.
var directions = [4][2]int{
	Top:    {0, -1},
	Bottom: {0, 1},
	Left:   {-1, 0},
	Right:  {1, 0},
}

// Feel extends four cardinal probes from seed and returns the provisional
// rectangle they span together with the origin it was grown from.
//
// Each probe advances one cell at a time and stops at the last free cell
// before water, out-of-sight terrain, a claimed cell, or the map edge.
//
// Nook escape: a rectangle whose vertical or horizontal extent is zero cannot
// hold a 2×2 region. The origin then moves one cell along the other axis,
// toward the longer of its two probes, and the probes are re-run. The first
// chosen direction is kept while it stays open, so a seed deep in a corridor
// walks out instead of oscillating. At most maxRetries moves are made.
//
// Errors:
//   - ErrInvalidSeed:    seed is not free.
//   - ErrRegionCreation: seed sits in a 1×1 pocket, or retries ran out.
//
// Complexity: O((maxRetries+1)·(Rows+Cols)).
func Feel(g *grid.Grid, seed grid.Point, maxRetries int) (grid.Rect, grid.Point, error) {
	if !g.Free(seed) {
		return grid.Rect{}, seed, fmt.Errorf("%w: %s holds %v", ErrInvalidSeed, seed, g.At(seed))
	}

	origin := seed
	escape := Edge(-1)
	for attempt := 0; attempt <= maxRetries; attempt++ {
		rc := probe(g, origin)
		r := grid.Rect{
			Top:    origin.Y - rc[Top],
			Bottom: origin.Y + rc[Bottom],
			Left:   origin.X - rc[Left],
			Right:  origin.X + rc[Right],
		}
		vertical, horizontal := rc[Top]+rc[Bottom], rc[Left]+rc[Right]
		if vertical >= 1 && horizontal >= 1 {
			return r, origin, nil
		}
		if vertical == 0 && horizontal == 0 {
			return grid.Rect{}, origin, fmt.Errorf("%w: %s is a 1x1 pocket", ErrRegionCreation, origin)
		}
		if attempt == maxRetries {
			break
		}
		escape = escapeDirection(rc, horizontal == 0, escape)
		d := directions[escape]
		origin = origin.Add(d[0], d[1])
	}

	return grid.Rect{}, origin, fmt.Errorf("%w: %s after %d retries", ErrRegionCreation, seed, maxRetries)
}

// probe measures how far each cardinal probe travels from p.
func probe(g *grid.Grid, p grid.Point) reach {
	var rc reach
	limit := g.Rows + g.Cols
	for _, e := range edges {
		d := directions[e]
		n := 0
		for n < limit && g.Free(p.Add(d[0]*(n+1), d[1]*(n+1))) {
			n++
		}
		rc[e] = n
	}
	return rc
}

// escapeDirection picks the edge to move the origin toward. When the
// horizontal extent is trivial the move is vertical, and vice versa.
// prev is kept while its probe is still open.
func escapeDirection(rc reach, moveVertical bool, prev Edge) Edge {
	a, b := Left, Right
	if moveVertical {
		a, b = Top, Bottom
	}
	if (prev == a || prev == b) && rc[prev] > 0 {
		return prev
	}
	if rc[a] >= rc[b] {
		return a
	}
	return b
}
