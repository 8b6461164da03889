// File: region/feeler_test.go
package region

import (
	"errors"
	"testing"

	"github.com/katalvlaran/acr/grid"
)

// TestFeel_OpenMapReachesEdges: on an open map every probe runs to the map edge.
func TestFeel_OpenMapReachesEdges(t *testing.T) {
	g := openMap(t, 10)
	r, origin, err := Feel(g, grid.Point{X: 5, Y: 5}, DefaultMaxNookRetries)
	if err != nil {
		t.Fatalf("Feel failed: %v", err)
	}
	if r != g.Bounds() {
		t.Errorf("rect = %s; want %s", r, g.Bounds())
	}
	if origin != (grid.Point{X: 5, Y: 5}) {
		t.Errorf("origin = %v; want seed", origin)
	}
}

// TestFeel_StopsBeforeObstructions stops at water, out-of-sight and claimed cells.
//
//	. . . . . .
//	. . % . . ?
//	. . . . . .
//	# # . . . .   (# claimed by region 1)
func TestFeel_StopsBeforeObstructions(t *testing.T) {
	g := mustGrid(t,
		"......",
		"..%..?",
		"......",
		"......",
	)
	if err := g.Claim(grid.Rect{Top: 3, Bottom: 3, Left: 0, Right: 1}, 1); err != nil {
		t.Fatalf("Claim failed: %v", err)
	}
	r, _, err := Feel(g, grid.Point{X: 2, Y: 2}, 0)
	if err != nil {
		t.Fatalf("Feel failed: %v", err)
	}
	want := grid.Rect{Top: 2, Bottom: 3, Left: 0, Right: 5}
	if r != want {
		t.Errorf("rect = %s; want %s", r, want)
	}

	r, _, err = Feel(g, grid.Point{X: 4, Y: 1}, 0)
	if err != nil {
		t.Fatalf("Feel failed: %v", err)
	}
	want = grid.Rect{Top: 0, Bottom: 3, Left: 3, Right: 4}
	if r != want {
		t.Errorf("rect = %s; want %s", r, want)
	}
}

// TestFeel_InvalidSeed rejects water, out-of-sight, claimed and off-map seeds.
func TestFeel_InvalidSeed(t *testing.T) {
	g := mustGrid(t, "%?..", "....")
	if err := g.Claim(grid.Rect{Top: 1, Bottom: 1, Left: 2, Right: 3}, 3); err != nil {
		t.Fatalf("Claim failed: %v", err)
	}
	for _, p := range []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 3, Y: 1}, {X: 9, Y: 9}} {
		if _, _, err := Feel(g, p, DefaultMaxNookRetries); !errors.Is(err, ErrInvalidSeed) {
			t.Errorf("Feel(%v) err = %v; want ErrInvalidSeed", p, err)
		}
	}
}

// TestFeel_NookEscape covers a 1-wide, 1-deep nook open to the north:
// the origin moves north once and the rectangle stops above the nook.
//
//	. . . . . . . .
//	. . . . . . . .   (rows 0..5 open)
//	% % % H % % % %   H = hill (3,6)
//	% % % % % % % %
func TestFeel_NookEscape(t *testing.T) {
	g := mustGrid(t,
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"%%%.%%%%",
		"%%%%%%%%",
	)
	r, origin, err := Feel(g, grid.Point{X: 3, Y: 6}, DefaultMaxNookRetries)
	if err != nil {
		t.Fatalf("Feel failed: %v", err)
	}
	if origin != (grid.Point{X: 3, Y: 5}) {
		t.Errorf("origin = %v; want 3,5", origin)
	}
	want := grid.Rect{Top: 0, Bottom: 6, Left: 0, Right: 7}
	if r != want {
		t.Errorf("rect = %s; want %s", r, want)
	}
}

// TestFeel_NookRetriesBounded: a long 1-wide dead end exhausts the retry budget
// instead of looping.
func TestFeel_NookRetriesBounded(t *testing.T) {
	lines := make([]string, 14)
	for i := range lines {
		lines[i] = "%%.%%"
	}
	g := mustGrid(t, lines...)
	_, _, err := Feel(g, grid.Point{X: 2, Y: 13}, 10)
	if !errors.Is(err, ErrRegionCreation) {
		t.Fatalf("err = %v; want ErrRegionCreation", err)
	}
}

// TestFeel_Pocket fails at once for an isolated cell.
func TestFeel_Pocket(t *testing.T) {
	g := mustGrid(t,
		"%%%",
		"%.%",
		"%%%",
	)
	if _, _, err := Feel(g, grid.Point{X: 1, Y: 1}, DefaultMaxNookRetries); !errors.Is(err, ErrRegionCreation) {
		t.Fatalf("err = %v; want ErrRegionCreation", err)
	}
}

// TestEscapeDirection keeps walking the first chosen way while it is open.
func TestEscapeDirection(t *testing.T) {
	rc := reach{Top: 2, Bottom: 3}
	if got := escapeDirection(rc, true, Edge(-1)); got != Bottom {
		t.Errorf("fresh escape = %v; want bottom", got)
	}
	if got := escapeDirection(rc, true, Top); got != Top {
		t.Errorf("kept escape = %v; want top", got)
	}
	rc = reach{Top: 0, Bottom: 3}
	if got := escapeDirection(rc, true, Top); got != Bottom {
		t.Errorf("blocked escape = %v; want bottom", got)
	}
	rc = reach{Left: 1, Right: 1}
	if got := escapeDirection(rc, false, Edge(-1)); got != Left {
		t.Errorf("tie escape = %v; want left", got)
	}
}
