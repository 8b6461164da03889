package region

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/acr/grid"
)

// ErrInvalidTree indicates Validate found a broken decomposition invariant.
var ErrInvalidTree = errors.New("region: tree violates a decomposition invariant")

// Len returns the number of regions in the tree.
func (t *Tree) Len() int { return len(t.Regions) }

// RootRegion returns the root region.
func (t *Tree) RootRegion() Region { return t.Regions[t.Root] }

// ByID returns the region with the given id.
func (t *Tree) ByID(id int) (Region, bool) {
	idx, ok := t.index()[id]
	if !ok {
		return Region{}, false
	}
	return t.Regions[idx], true
}

// index returns the id → arena index map, rebuilding it for trees that were
// assembled by hand.
func (t *Tree) index() map[int]int {
	if len(t.byID) == len(t.Regions) {
		return t.byID
	}
	m := make(map[int]int, len(t.Regions))
	for i, r := range t.Regions {
		m[r.ID] = i
	}
	return m
}

// Walk visits regions in preorder (parent, then children in seed order) and
// stops early when fn returns false.
// Complexity: O(V).
func (t *Tree) Walk(fn func(idx int, r Region) bool) {
	if len(t.Regions) == 0 {
		return
	}
	stack := []int{t.Root}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r := t.Regions[idx]
		if !fn(idx, r) {
			return
		}
		for i := len(r.Children) - 1; i >= 0; i-- {
			stack = append(stack, r.Children[i])
		}
	}
}

// Leaves returns the arena indices of regions without children, in preorder.
func (t *Tree) Leaves() []int {
	var out []int
	t.Walk(func(idx int, r Region) bool {
		if len(r.Children) == 0 {
			out = append(out, idx)
		}
		return true
	})
	return out
}

// Depth returns the number of levels below the root (0 for a lone root).
func (t *Tree) Depth() int {
	if len(t.Regions) == 0 {
		return 0
	}
	root := t.Regions[t.Root].Order
	depth := 0
	for _, r := range t.Regions {
		if d := r.Order - root; d > depth {
			depth = d
		}
	}
	return depth
}

// Stats summarises a tree.
type Stats struct {
	Regions      int     `json:"regions"`
	Leaves       int     `json:"leaves"`
	Depth        int     `json:"depth"`
	Skipped      int     `json:"skipped"`
	ClaimedCells int     `json:"claimed_cells"`
	Reachable    int     `json:"reachable"`
	Coverage     float64 `json:"coverage"`
	MeanArea     float64 `json:"mean_area"`
	StdDevArea   float64 `json:"stddev_area"`
	MaxArea      int     `json:"max_area"`
}

// Stats computes region counts and area statistics.
// Coverage is the claimed share of the cells reachable from the hill.
func (t *Tree) Stats() Stats {
	s := Stats{
		Regions:   len(t.Regions),
		Leaves:    len(t.Leaves()),
		Depth:     t.Depth(),
		Skipped:   len(t.Skipped),
		Reachable: t.Reachable,
	}
	areas := make([]float64, len(t.Regions))
	for i, r := range t.Regions {
		a := r.Rect.Area()
		areas[i] = float64(a)
		s.ClaimedCells += a
		if a > s.MaxArea {
			s.MaxArea = a
		}
	}
	if len(areas) > 0 {
		s.MeanArea = stat.Mean(areas, nil)
	}
	if len(areas) > 1 {
		s.StdDevArea = stat.StdDev(areas, nil)
	}
	if t.Reachable > 0 {
		s.Coverage = float64(s.ClaimedCells) / float64(t.Reachable)
	}
	return s
}

// Validate re-checks the decomposition against the grid it was built on:
// every claimed cell lies in its owner's rectangle, every rectangle is fully
// owned by its region and at least 2×2, ids are unique, and each child sits
// exactly one order below its parent.
// Complexity: O(Rows·Cols + V).
func (t *Tree) Validate(g *grid.Grid) error {
	seen := make(map[int]int, len(t.Regions))
	for i, r := range t.Regions {
		if prev, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: id %d used by regions %d and %d", ErrInvalidTree, r.ID, prev, i)
		}
		seen[r.ID] = i
		if !r.Rect.AtLeast(2, 2) {
			return fmt.Errorf("%w: region %d is %s, below 2x2", ErrInvalidTree, r.ID, r.Rect)
		}
		if owned := g.Owned(r.Rect, r.ID); owned != r.Rect.Area() {
			return fmt.Errorf("%w: region %d owns %d of %d cells in %s", ErrInvalidTree, r.ID, owned, r.Rect.Area(), r.Rect)
		}
		for _, c := range r.Children {
			child := t.Regions[c]
			if child.Order != r.Order+1 {
				return fmt.Errorf("%w: child %d has order %d under parent order %d", ErrInvalidTree, child.ID, child.Order, r.Order)
			}
			if child.Parent != r.ID {
				return fmt.Errorf("%w: child %d names parent %d, want %d", ErrInvalidTree, child.ID, child.Parent, r.ID)
			}
		}
	}
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			p := grid.Point{X: x, Y: y}
			id := g.At(p).Owner()
			if id == 0 {
				continue
			}
			i, ok := seen[id]
			if !ok {
				return fmt.Errorf("%w: cell %s claimed by unknown region %d", ErrInvalidTree, p, id)
			}
			if !t.Regions[i].Rect.Contains(p) {
				return fmt.Errorf("%w: cell %s lies outside region %d", ErrInvalidTree, p, id)
			}
		}
	}
	return nil
}
