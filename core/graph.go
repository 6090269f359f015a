// SPDX-License-Identifier: MIT
// File: graph.go
// Role: Attributed graph facade: node catalog, features, labels, and a composed EdgeStore.
// Determinism:
//   - Nodes() returns IDs in insertion order (the order of the node file).
//   - Structural queries delegate to EdgeStore and inherit its sorted order.

package core

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithEdgeStore composes an already built EdgeStore into the graph.
// A nil store is ignored.
func WithEdgeStore(s *EdgeStore) GraphOption {
	return func(g *Graph) {
		if s != nil {
			g.edges = s
		}
	}
}

// WithDimension fixes the feature dimension up front. Without it the first
// AddNode call determines the dimension.
func WithDimension(dim int) GraphOption {
	return func(g *Graph) {
		if dim >= 0 {
			g.dim = dim
		}
	}
}

// Graph is the attributed, undirected graph shared by all strategies.
//
// nodes keeps insertion order; index maps an ID to its position in nodes.
// dim is -1 until the first node (or WithDimension) fixes it.
type Graph struct {
	nodes []Node
	index map[int]int
	dim   int
	edges *EdgeStore
}

// NewGraph creates an empty graph with an empty EdgeStore, then applies opts.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[int]int),
		dim:   -1,
		edges: &EdgeStore{},
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromParts builds a graph from loaded nodes and an edge store in one call.
// Feature vectors are copied.
//
// Errors:
//   - ErrNegativeID, ErrDuplicateNode, ErrDimensionMismatch (wrapped).
func FromParts(nodes []Node, edges *EdgeStore) (*Graph, error) {
	g := NewGraph(WithEdgeStore(edges))
	for _, n := range nodes {
		if err := g.AddNode(n.ID, n.Features, n.Label); err != nil {
			return nil, fmt.Errorf("FromParts: %w", err)
		}
	}

	return g, nil
}

// AddNode registers a node with a copy of features.
//
// Errors:
//   - ErrNegativeID if id < 0.
//   - ErrDuplicateNode if id is already registered.
//   - ErrDimensionMismatch if len(features) differs from the graph dimension.
//
// Complexity: O(len(features)).
func (g *Graph) AddNode(id int, features []float64, label int) error {
	if id < 0 {
		return fmt.Errorf("AddNode(%d): %w", id, ErrNegativeID)
	}
	if _, ok := g.index[id]; ok {
		return fmt.Errorf("AddNode(%d): %w", id, ErrDuplicateNode)
	}
	if g.dim >= 0 && len(features) != g.dim {
		return fmt.Errorf("AddNode(%d): got %d values, want %d: %w", id, len(features), g.dim, ErrDimensionMismatch)
	}
	if g.dim < 0 {
		g.dim = len(features)
	}

	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, Features: slices.Clone(features), Label: label})

	return nil
}

// Dim returns the feature dimension, or 0 for a graph without nodes.
func (g *Graph) Dim() int {
	if g.dim < 0 {
		return 0
	}
	return g.dim
}

// Nodes returns all node IDs in insertion order.
func (g *Graph) Nodes() []int {
	out := make([]int, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.ID
	}
	return out
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// HasNode reports whether id is registered.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.index[id]
	return ok
}

// Store exposes the composed EdgeStore.
func (g *Graph) Store() *EdgeStore { return g.edges }

// AddEdge inserts the undirected edge {a,b}. Endpoints need not be registered nodes.
func (g *Graph) AddEdge(a, b int) error { return g.edges.AddEdge(a, b) }

// IsEdge reports whether {a,b} exists.
func (g *Graph) IsEdge(a, b int) bool { return g.edges.IsEdge(a, b) }

// Neighbors returns the sorted neighbors of id; empty for unknown IDs.
func (g *Graph) Neighbors(id int) []int { return g.edges.Neighbors(id) }

// Degree returns the neighbor count of id.
func (g *Graph) Degree(id int) int { return g.edges.Degree(id) }

// Edges returns all edges in canonical form.
func (g *Graph) Edges() []Edge { return g.edges.Edges() }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges.Size() }

// SetEdgeWeight records a weight for {a,b}.
func (g *Graph) SetEdgeWeight(a, b int, w float64) { g.edges.SetWeight(a, b, w) }

// EdgeWeight returns the weight of {a,b} or NaN when unset.
func (g *Graph) EdgeWeight(a, b int) float64 { return g.edges.Weight(a, b) }

// AverageDegree returns the mean degree over registered nodes, 0 for an empty graph.
func (g *Graph) AverageDegree() float64 {
	if len(g.nodes) == 0 {
		return 0
	}
	degrees := make([]float64, len(g.nodes))
	for i, n := range g.nodes {
		degrees[i] = float64(g.edges.Degree(n.ID))
	}
	return stat.Mean(degrees, nil)
}
