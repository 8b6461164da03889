package region

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/acr/grid"
)

// Edge names one side of a rectangle.
type Edge int

const (
	Top Edge = iota
	Bottom
	Left
	Right
)

// edges lists the sides in scan order.
var edges = [4]Edge{Top, Bottom, Left, Right}

func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Region is one finalized, obstruction-free rectangle of the decomposition.
// All fields are fixed once the region is claimed.
type Region struct {
	// ID is the value its cells carry in the grid (ClaimedBy(ID)).
	ID int
	// Order is the depth level; children have Order+1.
	Order int
	// Parent is the id of the parent region, 0 for the root. Diagnostic only.
	Parent int
	// Rect is the claimed rectangle.
	Rect grid.Rect
	// Seed is the coordinate the region was seeded at.
	Seed grid.Point
	// Origin is the coordinate growth actually started from; differs from
	// Seed only after a nook escape.
	Origin grid.Point
	// ChildSeeds are the boundary seeds issued to children, in edge-scan order.
	ChildSeeds []grid.Point
	// Children are arena indices of the regions grown from ChildSeeds.
	Children []int
}

// Tree is the region hierarchy stored as an arena: regions refer to each
// other by index, never by pointer. Read-only once Build returns, so it may be
// traversed from several goroutines.
type Tree struct {
	// BuildID tags the log lines of one build.
	BuildID uuid.UUID
	// Hill is the root seed.
	Hill grid.Point
	// Regions is the arena; Regions[Root] is the root.
	Regions []Region
	// Root is the arena index of the root region.
	Root int
	// Reachable is the number of free cells 4-connected to the hill before the build.
	Reachable int
	// Skipped lists branches abandoned because their region could not be grown.
	Skipped []BranchError
	// Warnings lists non-fatal conditions such as seed overflow.
	Warnings []string
	// Truncated is set when a region or depth budget, or cancellation, stopped the build early.
	Truncated bool

	byID map[int]int
}
