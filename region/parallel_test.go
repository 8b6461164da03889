package region

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acr/grid"
)

func TestBuildParallel_TwoRoomsMatchesSequential(t *testing.T) {
	seq := mustGrid(t, twoRooms...)
	par := mustGrid(t, twoRooms...)
	hill := grid.Point{X: 2, Y: 2}

	want, err := Build(context.Background(), seq, hill)
	require.NoError(t, err)
	got, err := Build(context.Background(), par, hill, WithParallel(4))
	require.NoError(t, err)

	// sibling rooms are disjoint, so the level-parallel build finds the same rectangles
	require.Equal(t, want.Len(), got.Len())
	for i := range want.Regions {
		require.Equal(t, want.Regions[i].Rect, got.Regions[i].Rect)
		require.Equal(t, want.Regions[i].ID, got.Regions[i].ID)
		require.Equal(t, want.Regions[i].Order, got.Regions[i].Order)
	}
	require.NoError(t, got.Validate(par))
}

func TestBuildParallel_RandomMapsHoldInvariants(t *testing.T) {
	for seed := int64(100); seed < 120; seed++ {
		g, hill := randomMap(t, seed, 48, 64, 0.1)
		tree, err := Build(context.Background(), g, hill, WithParallel(4))
		if errors.Is(err, ErrRegionTooSmall) || errors.Is(err, ErrRegionCreation) {
			continue
		}
		require.NoError(t, err, "map %d", seed)
		require.NoError(t, tree.Validate(g), "map %d", seed)

		ids := make(map[int]bool, tree.Len())
		for _, r := range tree.Regions {
			require.False(t, ids[r.ID], "duplicate id %d", r.ID)
			ids[r.ID] = true
			require.True(t, r.Rect.AtLeast(2, 2))
		}
		for _, sk := range tree.Skipped {
			require.Contains(t, []string{"invalid_seed", "region_creation", "region_too_small", "claim_conflict"}, reason(sk.Err))
		}
	}
}

func TestBuildParallel_RegionBudget(t *testing.T) {
	g := mustGrid(t, twoRooms...)
	tree, err := Build(context.Background(), g, grid.Point{X: 2, Y: 2}, WithParallel(2), WithMaxRegions(3))
	require.NoError(t, err)
	require.Equal(t, 3, tree.Len())
	require.True(t, tree.Truncated)
	require.NoError(t, tree.Validate(g))
}

func TestBuildParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := mustGrid(t, twoRooms...)
	// Build's own check passes; the first level sees the cancellation
	tree, err := Build(&cancelAfter{Context: ctx, n: 1}, g, grid.Point{X: 2, Y: 2}, WithParallel(2))
	cancel()
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, tree.Len())
	require.True(t, tree.Truncated)
	require.Empty(t, tree.Skipped)
}
