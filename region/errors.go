package region

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/acr/grid"
)

// Sentinel errors for region growth.
var (
	// ErrNilGrid indicates Build was called without a grid.
	ErrNilGrid = errors.New("region: grid is nil")

	// ErrInvalidSeed indicates the seed cell is not Passable and unclaimed.
	ErrInvalidSeed = errors.New("region: seed is not a free passable cell")

	// ErrRegionCreation indicates the seed could not be moved out of a nook
	// within the retry budget.
	ErrRegionCreation = errors.New("region: cannot escape nook around seed")

	// ErrRegionTooSmall indicates every shrink candidate fell below 2×2.
	ErrRegionTooSmall = errors.New("region: shrunk below 2x2")
)

// BranchError reports a seed whose region could not be grown.
// Build records one per skipped branch; the root's failure is returned as one.
type BranchError struct {
	// Seed is the coordinate the branch was seeded at.
	Seed grid.Point
	// Order is the order the region would have had.
	Order int
	// Parent is the id of the region that issued the seed, 0 for the root.
	Parent int
	// Err is the underlying cause.
	Err error
}

// Error implements error.
func (e *BranchError) Error() string {
	return fmt.Sprintf("region: branch at %s (order %d, parent %d): %v", e.Seed, e.Order, e.Parent, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *BranchError) Unwrap() error { return e.Err }

// reason maps an error to a short label for metrics and logs.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidSeed):
		return "invalid_seed"
	case errors.Is(err, ErrRegionCreation):
		return "region_creation"
	case errors.Is(err, ErrRegionTooSmall):
		return "region_too_small"
	case errors.Is(err, grid.ErrClaimConflict):
		return "claim_conflict"
	default:
		return "other"
	}
}
