package grid

import (
	"fmt"
	"sync/atomic"
)

// Claim marks every cell of r as ClaimedBy(id).
// The whole rectangle is checked first; on any obstructed or already-claimed
// cell nothing is written and ErrClaimConflict is returned.
// Not safe against concurrent claimers; use TryClaim for that.
// Complexity: O(area).
func (g *Grid) Claim(r Rect, id int) error {
	if err := g.checkClaim(r, id); err != nil {
		return err
	}
	for y := r.Top; y <= r.Bottom; y++ {
		for x := r.Left; x <= r.Right; x++ {
			if c := g.At(Point{X: x, Y: y}); c != Passable {
				return fmt.Errorf("%w: %d,%d holds %d", ErrClaimConflict, x, y, c)
			}
		}
	}
	for y := r.Top; y <= r.Bottom; y++ {
		for x := r.Left; x <= r.Right; x++ {
			atomic.StoreInt32(&g.cells[g.index(x, y)], int32(id))
		}
	}

	return nil
}

// TryClaim claims r for id with a per-cell compare-and-swap from Passable.
// Cells that could not be swapped are returned; in that case every cell this
// call did claim is released again and the error wraps ErrClaimConflict.
// After a clean pass the rectangle is re-read to confirm every cell holds id.
// Safe for concurrent use by growers claiming disjoint or racing rectangles.
// Complexity: O(area).
func (g *Grid) TryClaim(r Rect, id int) ([]Point, error) {
	if err := g.checkClaim(r, id); err != nil {
		return nil, err
	}
	var (
		conflicts []Point
		won       []int
	)
	for y := r.Top; y <= r.Bottom; y++ {
		for x := r.Left; x <= r.Right; x++ {
			i := g.index(x, y)
			if atomic.CompareAndSwapInt32(&g.cells[i], int32(Passable), int32(id)) {
				won = append(won, i)
				continue
			}
			conflicts = append(conflicts, Point{X: x, Y: y})
		}
	}
	if len(conflicts) == 0 {
		for _, i := range won {
			if atomic.LoadInt32(&g.cells[i]) != int32(id) {
				conflicts = append(conflicts, g.Coordinate(i))
			}
		}
	}
	if len(conflicts) > 0 {
		for _, i := range won {
			atomic.CompareAndSwapInt32(&g.cells[i], int32(id), int32(Passable))
		}
		return conflicts, fmt.Errorf("%w: %d cells of %s", ErrClaimConflict, len(conflicts), r)
	}

	return nil, nil
}

// Owned returns how many cells of r are ClaimedBy(id).
func (g *Grid) Owned(r Rect, id int) int {
	n := 0
	for y := r.Top; y <= r.Bottom; y++ {
		for x := r.Left; x <= r.Right; x++ {
			if g.At(Point{X: x, Y: y}).Owner() == id {
				n++
			}
		}
	}
	return n
}

func (g *Grid) checkClaim(r Rect, id int) error {
	if id < 1 {
		return fmt.Errorf("%w: region id %d must be positive", ErrClaimConflict, id)
	}
	if r.Empty() || !g.InBounds(r.Left, r.Top) || !g.InBounds(r.Right, r.Bottom) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, r)
	}
	return nil
}
