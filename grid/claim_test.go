package grid_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acr/grid"
)

func TestClaim_MarksEveryCell(t *testing.T) {
	g, err := grid.Parse(
		"....",
		"....",
		"....",
	)
	require.NoError(t, err)

	r := grid.Rect{Top: 0, Bottom: 1, Left: 1, Right: 2}
	require.NoError(t, g.Claim(r, 7))
	require.Equal(t, 4, g.Owned(r, 7))
	require.Equal(t, 7, g.At(grid.Point{X: 1, Y: 1}).Owner())
	require.True(t, g.Free(grid.Point{X: 0, Y: 0}))
	require.True(t, g.Free(grid.Point{X: 1, Y: 2}))
}

func TestClaim_ConflictWritesNothing(t *testing.T) {
	g, err := grid.Parse(
		"..%.",
		"....",
	)
	require.NoError(t, err)

	r := grid.Rect{Top: 0, Bottom: 1, Left: 0, Right: 3}
	require.ErrorIs(t, g.Claim(r, 1), grid.ErrClaimConflict)
	require.Zero(t, g.Owned(r, 1))

	require.NoError(t, g.Claim(grid.Rect{Top: 0, Bottom: 1, Left: 0, Right: 1}, 1))
	require.ErrorIs(t, g.Claim(grid.Rect{Top: 1, Bottom: 1, Left: 1, Right: 3}, 2), grid.ErrClaimConflict)
}

func TestClaim_RejectsBadInput(t *testing.T) {
	g, err := grid.Parse("..", "..")
	require.NoError(t, err)

	require.ErrorIs(t, g.Claim(grid.Rect{Top: 0, Bottom: 1, Left: 0, Right: 1}, 0), grid.ErrClaimConflict)
	require.ErrorIs(t, g.Claim(grid.Rect{Top: 0, Bottom: 2, Left: 0, Right: 1}, 1), grid.ErrOutOfBounds)
	require.ErrorIs(t, g.Claim(grid.Rect{Top: 1, Bottom: 0, Left: 0, Right: 1}, 1), grid.ErrOutOfBounds)
}

func TestTryClaim_RollsBackOnConflict(t *testing.T) {
	g, err := grid.Parse(
		"....",
		"....",
	)
	require.NoError(t, err)
	require.NoError(t, g.Claim(grid.Rect{Top: 1, Bottom: 1, Left: 3, Right: 3}, 9))

	r := grid.Rect{Top: 0, Bottom: 1, Left: 2, Right: 3}
	conflicts, err := g.TryClaim(r, 4)
	require.ErrorIs(t, err, grid.ErrClaimConflict)
	require.Equal(t, []grid.Point{{X: 3, Y: 1}}, conflicts)
	require.Zero(t, g.Owned(r, 4), "partial claim must be released")
	require.Equal(t, 9, g.At(grid.Point{X: 3, Y: 1}).Owner())
}

// TestTryClaim_Race claims overlapping rectangles from many goroutines and
// checks that exactly one claimer owns each contested cell and no claimer is
// left holding a partial rectangle.
func TestTryClaim_Race(t *testing.T) {
	g, err := grid.New(20, 20, grid.DefaultOptions())
	require.NoError(t, err)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			require.NoError(t, g.Set(grid.Point{X: x, Y: y}, grid.Passable))
		}
	}

	const workers = 16
	rects := make([]grid.Rect, workers)
	won := make([]bool, workers)
	for i := range rects {
		off := i % 8
		rects[i] = grid.Rect{Top: off, Bottom: off + 6, Left: off, Right: off + 6}
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := g.TryClaim(rects[i], i+1)
			won[i] = err == nil
		}(i)
	}
	wg.Wait()

	for i, r := range rects {
		owned := g.Owned(r, i+1)
		if won[i] {
			require.Equal(t, r.Area(), owned, "winner %d must own its whole rectangle", i+1)
		} else {
			require.Zero(t, owned, "loser %d must hold nothing", i+1)
		}
	}
}
