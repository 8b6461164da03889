package regiongraph

import (
	"errors"
	"sort"

	"github.com/katalvlaran/acr/grid"
)

// Sentinel errors for graph assembly and queries.
var (
	// ErrNilTree indicates Assemble was called without a tree.
	ErrNilTree = errors.New("regiongraph: tree is nil")

	// ErrVertexNotFound indicates a query named a vertex the graph does not hold.
	ErrVertexNotFound = errors.New("regiongraph: vertex not found")
)

// Vertex is a waypoint on a region boundary (or the root origin).
type Vertex struct {
	// ID is Point formatted as "x,y".
	ID string `json:"id"`

	// Point is the grid coordinate of the waypoint.
	Point grid.Point `json:"point"`

	// Region is the id of the region grown from this point.
	Region int `json:"region"`

	// Parent is the id of the region that issued the point, 0 for the root.
	Parent int `json:"parent"`
}

// Edge connects two vertices lying in or on the same region.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`

	// Weight is the Manhattan distance between the endpoints.
	Weight int64 `json:"weight"`

	// Region is the id of the region whose clique produced the edge.
	Region int `json:"region"`
}

// Graph is the undirected region graph. Vertices and Edges keep emission order.
type Graph struct {
	Vertices []Vertex `json:"vertices"`
	Edges    []Edge   `json:"edges"`

	index map[string]int            // vertex ID → position in Vertices
	adj   map[string]map[string]int // from → to → position in Edges
}

func newGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
		adj:   make(map[string]map[string]int),
	}
}

// addVertex appends v unless a vertex with the same ID exists; it returns the
// stored ID either way.
func (g *Graph) addVertex(v Vertex) string {
	if _, ok := g.index[v.ID]; ok {
		return v.ID
	}
	g.index[v.ID] = len(g.Vertices)
	g.Vertices = append(g.Vertices, v)
	return v.ID
}

// addEdge inserts an undirected edge, skipping loops and pairs already joined.
func (g *Graph) addEdge(from, to string, weight int64, region int) {
	if from == to || g.HasEdge(from, to) {
		return
	}
	pos := len(g.Edges)
	g.Edges = append(g.Edges, Edge{From: from, To: to, Weight: weight, Region: region})
	g.link(from, to, pos)
	g.link(to, from, pos)
}

func (g *Graph) link(from, to string, pos int) {
	m, ok := g.adj[from]
	if !ok {
		m = make(map[string]int)
		g.adj[from] = m
	}
	m[to] = pos
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.Vertices) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// Vertex looks a vertex up by ID.
func (g *Graph) Vertex(id string) (Vertex, bool) {
	i, ok := g.index[id]
	if !ok {
		return Vertex{}, false
	}
	return g.Vertices[i], true
}

// HasEdge reports whether from and to are joined. Order does not matter.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.adj[from][to]
	return ok
}

// Weight returns the weight of the edge between from and to.
func (g *Graph) Weight(from, to string) (int64, bool) {
	pos, ok := g.adj[from][to]
	if !ok {
		return 0, false
	}
	return g.Edges[pos].Weight, true
}

// Neighbors returns the edges incident to id, oriented so that From == id,
// in edge emission order.
// Complexity: O(deg(id) · log deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if _, ok := g.index[id]; !ok {
		return nil, ErrVertexNotFound
	}
	positions := make([]int, 0, len(g.adj[id]))
	for _, pos := range g.adj[id] {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	out := make([]Edge, len(positions))
	for i, pos := range positions {
		e := g.Edges[pos]
		if e.From != id {
			e.From, e.To = e.To, e.From
		}
		out[i] = e
	}
	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) (int, error) {
	if _, ok := g.index[id]; !ok {
		return 0, ErrVertexNotFound
	}
	return len(g.adj[id]), nil
}

// TotalWeight sums all edge weights.
func (g *Graph) TotalWeight() int64 {
	var sum int64
	for _, e := range g.Edges {
		sum += e.Weight
	}
	return sum
}
