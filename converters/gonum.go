package converters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/acr/regiongraph"
)

// ErrNilGraph indicates a nil region graph was passed for conversion.
var ErrNilGraph = errors.New("converters: region graph is nil")

// NodeMap translates between region-graph vertex IDs and gonum node IDs.
// Node IDs are assigned densely from 0 in vertex emission order.
type NodeMap struct {
	ids   map[string]int64
	names []string
}

// Node returns the gonum node ID of the vertex id.
func (m NodeMap) Node(id string) (int64, bool) {
	n, ok := m.ids[id]
	return n, ok
}

// Vertex returns the region-graph vertex ID of gonum node n.
func (m NodeMap) Vertex(n int64) (string, bool) {
	if n < 0 || n >= int64(len(m.names)) {
		return "", false
	}
	return m.names[n], true
}

// Len returns the number of mapped vertices.
func (m NodeMap) Len() int { return len(m.names) }

// ToGonum copies rg into a gonum weighted undirected graph. Self weight is 0
// and absent edges weigh +Inf, which is what gonum's path package expects.
//
// Errors:
//   - ErrNilGraph: rg is nil.
//   - an edge names a vertex rg does not hold.
//
// Complexity: O(V + E).
func ToGonum(rg *regiongraph.Graph) (*simple.WeightedUndirectedGraph, NodeMap, error) {
	if rg == nil {
		return nil, NodeMap{}, ErrNilGraph
	}
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	m := NodeMap{
		ids:   make(map[string]int64, len(rg.Vertices)),
		names: make([]string, 0, len(rg.Vertices)),
	}

	for _, v := range rg.Vertices {
		if _, dup := m.ids[v.ID]; dup {
			continue
		}
		n := int64(len(m.names))
		m.ids[v.ID] = n
		m.names = append(m.names, v.ID)
		out.AddNode(simple.Node(n))
	}

	for _, e := range rg.Edges {
		from, ok := m.ids[e.From]
		if !ok {
			return nil, NodeMap{}, fmt.Errorf("converters: edge %s-%s: %w", e.From, e.To, regiongraph.ErrVertexNotFound)
		}
		to, ok := m.ids[e.To]
		if !ok {
			return nil, NodeMap{}, fmt.Errorf("converters: edge %s-%s: %w", e.From, e.To, regiongraph.ErrVertexNotFound)
		}
		if from == to {
			continue
		}
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(from), simple.Node(to), float64(e.Weight)))
	}
	return out, m, nil
}
