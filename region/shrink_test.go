package region

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acr/grid"
)

func TestShrink_ClearRectUnchanged(t *testing.T) {
	g := openMap(t, 6)
	r, err := Shrink(g, g.Bounds(), grid.Point{X: 2, Y: 2})
	require.NoError(t, err)
	require.Equal(t, g.Bounds(), r)
}

// TestShrink_TrimTheFuzz: both ragged cells sit in the right column. The
// baseline trims the top and bottom rows and borders both water cells; holding
// either row instead cuts the right column and borders only one.
func TestShrink_TrimTheFuzz(t *testing.T) {
	g := mustGrid(t,
		".....%",
		"......",
		"......",
		".....%",
	)
	origin := grid.Point{X: 1, Y: 1}
	feeler, _, err := Feel(g, origin, 0)
	require.NoError(t, err)
	require.Equal(t, g.Bounds(), feeler)

	cands := Candidates(g, feeler, origin)
	require.Len(t, cands, 3)
	require.Equal(t, grid.Rect{Top: 0, Bottom: 2, Left: 0, Right: 4}, cands[1].Rect)
	require.Equal(t, grid.Rect{Top: 1, Bottom: 3, Left: 0, Right: 4}, cands[2].Rect)

	r, err := Shrink(g, feeler, origin)
	require.NoError(t, err)
	require.Equal(t, grid.Rect{Top: 1, Bottom: 2, Left: 0, Right: 5}, r)
	require.Zero(t, Obstructions(g, r))
}

// TestShrink_InteriorObstruction cuts an obstruction that no edge strip touches.
func TestShrink_InteriorObstruction(t *testing.T) {
	g := mustGrid(t,
		".......",
		".%.....",
		".......",
		".......",
		".......",
		".......",
	)
	origin := grid.Point{X: 3, Y: 3}
	r, err := Shrink(g, g.Bounds(), origin)
	require.NoError(t, err)
	require.Zero(t, Obstructions(g, r))
	require.True(t, r.Contains(origin))
	// removing two rows (top) costs 14 cells, two columns (left) costs 12
	require.Equal(t, grid.Rect{Top: 0, Bottom: 5, Left: 2, Right: 6}, r)
}

// TestShrink_TooSmall fails when every candidate collapses below 2×2.
func TestShrink_TooSmall(t *testing.T) {
	g := mustGrid(t,
		"%.%",
		"...",
		"%.%",
	)
	origin := grid.Point{X: 1, Y: 1}
	_, err := Shrink(g, g.Bounds(), origin)
	require.ErrorIs(t, err, ErrRegionTooSmall)
}

// TestShrink_OppositeEdgesPreferWater builds a map where the left and right
// edges both recede by four, and compares the baseline against both
// alternatives directly.
//
//	. . . . . . . . . . .
//	. . . . . . . . . . .
//	% % % % . . . . . . .   water bar touching the left map edge
//	. . . . . . . . . . .
//	. . . . . . . . . . .
//	. . . . . H . . . . .   origin (5,5)
//	. . . . . . . . . . .
//	. . . . . . . . . . .
//	. . . . . . . % % % %   water bar touching the right map edge
//	. . . . . . . . . . .
//	. . . . . . . . . . .
//
// Baseline: left and right recede to a 3-wide strip bordering 2 water cells.
// Holding the left edge instead cuts the top above the bar; holding the right
// edge cuts the bottom. Both border 5 water cells on a 26-cell perimeter.
func TestShrink_OppositeEdgesPreferWater(t *testing.T) {
	g := mustGrid(t,
		"...........",
		"...........",
		"%%%%.......",
		"...........",
		"...........",
		"...........",
		"...........",
		"...........",
		".......%%%%",
		"...........",
		"...........",
	)
	origin := grid.Point{X: 5, Y: 5}
	feeler, _, err := Feel(g, origin, 0)
	require.NoError(t, err)
	require.Equal(t, g.Bounds(), feeler)

	cands := Candidates(g, feeler, origin)
	require.Len(t, cands, 3)

	base, holdLeft, holdRight := cands[0], cands[1], cands[2]
	require.Equal(t, Edge(-1), base.Locked)
	require.Equal(t, grid.Rect{Top: 0, Bottom: 10, Left: 4, Right: 6}, base.Rect)
	require.Equal(t, [4]int{Left: 4, Right: 4}, base.Recession)

	require.Equal(t, Left, holdLeft.Locked)
	require.Equal(t, grid.Rect{Top: 3, Bottom: 10, Left: 0, Right: 6}, holdLeft.Rect)
	require.Equal(t, Right, holdRight.Locked)
	require.Equal(t, grid.Rect{Top: 0, Bottom: 7, Left: 4, Right: 10}, holdRight.Rect)

	for _, c := range cands {
		require.True(t, c.Valid, "candidate %s", c.Rect)
		require.Zero(t, Obstructions(g, c.Rect))
		w, p := WaterRatio(g, c.Rect)
		require.Equal(t, c.Water, w)
		require.Equal(t, c.Perimeter, p)
	}
	require.Equal(t, 2, base.Water)
	require.Equal(t, 24, base.Perimeter)
	require.Equal(t, 5, holdLeft.Water)
	require.Equal(t, 26, holdLeft.Perimeter)
	require.Greater(t, holdLeft.Ratio(), base.Ratio())

	// direct comparison: the kept rectangle has the highest ratio, then area
	got, err := Shrink(g, feeler, origin)
	require.NoError(t, err)
	for _, c := range cands {
		w, p := WaterRatio(g, got)
		require.GreaterOrEqual(t, w*c.Perimeter, c.Water*p, "kept %s loses to %s", got, c.Rect)
	}
	require.Equal(t, holdLeft.Rect, got, "equal ratio and area keep the earlier candidate")
}

func TestBest_TieBreaks(t *testing.T) {
	small := Candidate{Rect: grid.Rect{Top: 0, Bottom: 1, Left: 0, Right: 1}, Water: 1, Perimeter: 4, Valid: true}
	large := Candidate{Rect: grid.Rect{Top: 0, Bottom: 3, Left: 0, Right: 3}, Water: 3, Perimeter: 12, Valid: true}
	wet := Candidate{Rect: grid.Rect{Top: 0, Bottom: 1, Left: 0, Right: 2}, Water: 4, Perimeter: 6, Valid: true}
	broken := Candidate{Rect: grid.Rect{Top: 0, Bottom: 9, Left: 0, Right: 9}, Water: 36, Perimeter: 36}

	best, ok := Best([]Candidate{small, large})
	require.True(t, ok)
	require.Equal(t, large.Rect, best.Rect, "equal ratio: larger area wins")

	best, ok = Best([]Candidate{small, large, wet, broken})
	require.True(t, ok)
	require.Equal(t, wet.Rect, best.Rect, "higher ratio wins, invalid ignored")

	_, ok = Best([]Candidate{broken})
	require.False(t, ok)
}

func TestWaterRatio_IgnoresMapEdgeAndFog(t *testing.T) {
	g := mustGrid(t,
		"?...",
		"....",
		"...%",
	)
	r := grid.Rect{Top: 0, Bottom: 1, Left: 1, Right: 3}
	w, p := WaterRatio(g, r)
	require.Equal(t, 6, p)
	require.Equal(t, 1, w, "only (3,1) touches water at (3,2)")
}
