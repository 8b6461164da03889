package grid

import "errors"

var (
	// ErrAllocation indicates the requested grid dimensions cannot be allocated.
	ErrAllocation = errors.New("grid: dimensions must be positive and within the configured maximum")
	// ErrMapFormat indicates malformed input rows.
	ErrMapFormat = errors.New("grid: malformed map input")
	// ErrOutOfBounds indicates a point or rectangle outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrClaimConflict indicates a rectangle cell that is obstructed or already claimed.
	ErrClaimConflict = errors.New("grid: cell is not free to claim")
)
