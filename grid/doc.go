// Package grid holds the classified cell map that region growth runs on.
//
// What:
//
//   - Grid wraps a rectangular Rows×Cols array of Cell states.
//   - A Cell is OutOfSight, Water, Passable, or ClaimedBy(id) for some region id ≥ 1.
//   - Rect describes an inclusive [Top,Bottom]×[Left,Right] window on the grid.
//   - Claim and TryClaim are the only operations that move a cell to ClaimedBy.
//   - FreeComponents reports the 4-connected islands of unclaimed passable cells.
//
// Why:
//
//   - Region growth needs a single mutable source of truth for which cells are
//     still available; claiming is what keeps sibling regions from overlapping.
//   - The grid is passed explicitly to every operation, never held in a
//     package-level variable.
//
// Concurrency:
//
//   - Cell reads and claims use sync/atomic, so concurrent growers may probe the
//     grid while others claim. Set/Reset are not meant to race with claims.
//
// Complexity:
//
//   - At, Free, InBounds:   O(1).
//   - Claim, TryClaim:      O(area of the rectangle).
//   - FreeComponents:       O(Rows×Cols), Memory: O(Rows×Cols).
//
// Errors:
//
//   - ErrAllocation:    requested dimensions are non-positive or exceed MaxDim.
//   - ErrMapFormat:     input rows are missing or of differing lengths.
//   - ErrOutOfBounds:   a point or rectangle leaves the grid.
//   - ErrClaimConflict: a rectangle holds a cell that is not free to claim.
package grid
