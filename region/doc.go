// Package region grows a hierarchy of convex, obstruction-free rectangles
// over a grid.Grid so that a pathfinder can treat each rectangle as a single
// node instead of searching every cell.
//
// What:
//
//   - Feel extends four cardinal probes from a seed into a provisional rectangle,
//     moving the seed out of one-cell nooks with a bounded number of retries.
//   - Obstructions counts blocked or claimed cells inside a rectangle.
//   - Shrink recedes edges until the rectangle is clear and keeps the trimmed
//     shape that hugs water best (Candidates exposes every shape it compared).
//   - ChildSeeds finds the openings along a finished region's edges.
//   - Build ties these together into a Tree rooted at the hill.
//
// A region is at least 2×2, so moving between any two of its cells never needs
// a search: every straight step toward the target stays inside it.
//
// Tree layout:
//
//	Regions are stored in an arena (Tree.Regions) and refer to their children by
//	index. A child knows its parent only by id. Once Build returns the tree is
//	read-only and safe for concurrent traversal.
//
// Errors:
//
//   - ErrInvalidSeed:    the seed is not a free passable cell.
//   - ErrRegionCreation: the seed could not escape its nook.
//   - ErrRegionTooSmall: trimming collapsed the rectangle below 2×2.
//
// Per-branch errors skip the branch and are listed in Tree.Skipped; only a
// failing root region, a nil grid, or cancellation is returned by Build.
//
// Logging and metrics:
//
//	Build logs through github.com/aukilabs/go-tooling/pkg/logs, tagged with the
//	tree's BuildID, and counts regions, skipped branches, and dropped seeds in
//	Prometheus collectors registered on the default registry.
package region
