// Package converters provides adapters from regiongraph.Graph to popular Go
// graph libraries:
//   - gonum/graph (simple.WeightedUndirectedGraph)
//
// Use converters to hand a region graph to an external pathfinder, such as
// gonum's graph/path searches, without copying weights by hand.
package converters
