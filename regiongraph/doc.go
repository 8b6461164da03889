// Package regiongraph turns a region.Tree into a weighted, undirected graph
// a pathfinder can search instead of the raw cell grid.
//
// Vertices:
//
//   - The root region contributes its origin.
//   - Every grown child contributes the boundary seed its parent issued for it.
//   - Vertex IDs are "x,y"; two regions issuing the same point share a vertex.
//
// Edges:
//
//	Inside each region, the region's own vertex and the vertices of all its
//	children form a clique. Because a region is a convex, obstruction-free
//	rectangle, the Manhattan distance between two of its vertices is an exact
//	walking cost, and that is the edge weight.
//
// Order:
//
//	Vertices and edges are emitted in tree preorder, and within one region in
//	child order, so the same tree always yields the same graph.
//
// A Graph is immutable after Assemble and safe for concurrent reads.
package regiongraph
