package regiongraph

import (
	"github.com/aukilabs/go-tooling/pkg/logs"

	"github.com/katalvlaran/acr/grid"
	"github.com/katalvlaran/acr/region"
)

// Assemble builds the region graph of tree.
//
// Steps:
//  1. Walk the tree in preorder.
//  2. Emit the root origin as the first vertex.
//  3. For each region, emit one vertex per grown child at the seed the region
//     issued, then join the region's vertex and its children's vertices
//     pairwise with Manhattan-weighted edges.
//
// Complexity: O(V + Σ k²) where k is the number of children of a region.
func Assemble(tree *region.Tree) (*Graph, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	g := newGraph()
	if tree.Len() == 0 {
		return g, nil
	}

	root := tree.RootRegion()
	g.addVertex(vertexAt(root.Origin, root.ID, 0))

	tree.Walk(func(_ int, r region.Region) bool {
		own := pointOf(tree, r)
		members := []grid.Point{own}
		for _, c := range r.Children {
			child := tree.Regions[c]
			g.addVertex(vertexAt(child.Seed, child.ID, r.ID))
			members = append(members, child.Seed)
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				a, b := members[i], members[j]
				g.addEdge(a.String(), b.String(), int64(a.Manhattan(b)), r.ID)
			}
		}
		return true
	})

	logs.WithTag("build_id", tree.BuildID.String()).
		WithTag("vertices", g.VertexCount()).
		WithTag("edges", g.EdgeCount()).
		Debug("region graph assembled")
	return g, nil
}

// pointOf returns the vertex coordinate standing for r: the origin for the
// root, the issued seed for everyone else.
func pointOf(tree *region.Tree, r region.Region) grid.Point {
	if r.ID == tree.RootRegion().ID {
		return r.Origin
	}
	return r.Seed
}

func vertexAt(p grid.Point, regionID, parentID int) Vertex {
	return Vertex{ID: p.String(), Point: p, Region: regionID, Parent: parentID}
}
