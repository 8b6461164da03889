package region

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/acr/grid"
)

// mustGrid parses fixture rows or fails the test.
func mustGrid(t testing.TB, lines ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(lines...)
	if err != nil {
		t.Fatalf("grid.Parse failed: %v", err)
	}
	return g
}

// openMap returns an n×n fully passable grid.
func openMap(t testing.TB, n int) *grid.Grid {
	t.Helper()
	lines := make([]string, n)
	for i := range lines {
		lines[i] = strings.Repeat(".", n)
	}
	return mustGrid(t, lines...)
}

// twoRooms is a 10×12 map: an upper room and a lower room joined by a
// 2-wide doorway at columns 4..5.
//
// Decomposition from hill (2,2):
//
//	1: [0..4]x[0..9]   root
//	2: [5..11]x[4..5]  doorway corridor, seeded at (4,5)
//	3: [7..11]x[0..3]  lower-left, seeded at (3,9)
//	4: [7..11]x[6..9]  lower-right, seeded at (6,9)
var twoRooms = []string{
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
	"%%%%..%%%%",
	"%%%%..%%%%",
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
}

// randomMap returns a rows×cols grid with roughly density water cells and
// the first free cell near the centre as hill.
func randomMap(t testing.TB, seed int64, rows, cols int, density float64) (*grid.Grid, grid.Point) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	lines := make([]string, rows)
	for y := range lines {
		var b strings.Builder
		for x := 0; x < cols; x++ {
			if rng.Float64() < density {
				b.WriteByte('%')
			} else {
				b.WriteByte('.')
			}
		}
		lines[y] = b.String()
	}
	g := mustGrid(t, lines...)
	for r := 0; r < rows+cols; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				p := grid.Point{X: cols/2 + dx, Y: rows/2 + dy}
				if g.Free(p) {
					return g, p
				}
			}
		}
	}
	t.Fatalf("random map %d has no free cell", seed)
	return nil, grid.Point{}
}

// cancelAfter reports context.Canceled once Err has been called n times.
type cancelAfter struct {
	context.Context
	n int
}

func (c *cancelAfter) Err() error {
	if c.n <= 0 {
		return context.Canceled
	}
	c.n--
	return nil
}
