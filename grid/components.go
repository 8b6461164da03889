package grid

// FreeComponents finds all 4-connected islands of free (Passable, unclaimed)
// cells. Returns a slice of components; each component is a slice of
// row-major cell indices in BFS discovery order, and components are ordered
// by their first cell in row-major order.
//
// To convert an index back to a Point, use Coordinate(idx).
//
// Time:   O(Rows·Cols·4).
// Memory: O(Rows·Cols) for visited flags and output.
func (g *Grid) FreeComponents() [][]int {
	total := g.Rows * g.Cols
	seen := make([]bool, total)
	var comps [][]int

	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if !g.Free(Point{X: x, Y: y}) {
				continue
			}
			i0 := g.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				up := g.Coordinate(u)
				for _, d := range Conn4 {
					v := up.Add(d[0], d[1])
					if !g.Free(v) {
						continue
					}
					vi := g.index(v.X, v.Y)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// ReachableFrom returns the number of free cells 4-connected to p, p included.
// Returns 0 when p itself is not free.
// Time: O(Rows·Cols).
func (g *Grid) ReachableFrom(p Point) int {
	if !g.Free(p) {
		return 0
	}
	seen := make([]bool, g.Rows*g.Cols)
	queue := []int{g.index(p.X, p.Y)}
	seen[queue[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		up := g.Coordinate(queue[qi])
		for _, d := range Conn4 {
			v := up.Add(d[0], d[1])
			if !g.Free(v) {
				continue
			}
			vi := g.index(v.X, v.Y)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return len(queue)
}
