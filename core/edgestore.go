// SPDX-License-Identifier: MIT
// File: edgestore.go
// Role: CSR adjacency store for an undirected simple graph with optional weights.
// Determinism:
//   - Every neighbor run is sorted ascending, so Neighbors() and Edges() are reproducible.
// Layout:
//   - offsets has span+1 entries; neighbors of i live in adj[offsets[i]:offsets[i+1]].
//   - Each undirected edge is stored twice in adj (once per endpoint).

package core

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// EdgeStore owns adjacency and optional per-edge weights.
//
// The zero value is an empty, usable store.
type EdgeStore struct {
	offsets []int            // len(offsets) == span+1 once initialized
	adj     []int            // concatenated sorted neighbor runs
	weights map[Edge]float64 // canonical (min,max) → weight
}

// NewEdgeStore builds a store from a complete edge list.
//
// Implementation:
//   - Stage 1: Validate IDs, canonicalize, drop self-loops, collapse duplicates.
//   - Stage 2: Count degrees per node and prefix-sum them into offsets.
//   - Stage 3: Scatter both directions of every edge into adj.
//   - Stage 4: Sort each node's run for reproducible enumeration.
//
// Self-loops are dropped rather than rejected: bulk input comes from files
// that are not guaranteed well-formed, and a loop carries no neighbor signal.
//
// Errors:
//   - ErrNegativeID if any endpoint is negative.
//
// Complexity:
//   - Time O(E log E) for deduplication, Space O(V + E).
func NewEdgeStore(pairs []Edge) (*EdgeStore, error) {
	canon := make([]Edge, 0, len(pairs))
	span := 0
	for _, p := range pairs {
		if p.From < 0 || p.To < 0 {
			return nil, fmt.Errorf("NewEdgeStore: edge (%d,%d): %w", p.From, p.To, ErrNegativeID)
		}
		if p.From == p.To {
			continue
		}
		c := p.Canonical()
		canon = append(canon, c)
		if c.To+1 > span {
			span = c.To + 1
		}
	}

	// Collapse duplicates after sorting canonical pairs.
	sort.Slice(canon, func(i, j int) bool {
		if canon[i].From != canon[j].From {
			return canon[i].From < canon[j].From
		}
		return canon[i].To < canon[j].To
	})
	canon = slices.Compact(canon)

	s := &EdgeStore{
		offsets: make([]int, span+1),
		adj:     make([]int, 2*len(canon)),
		weights: make(map[Edge]float64),
	}

	// Degree counting into offsets[i+1], then prefix sum.
	for _, e := range canon {
		s.offsets[e.From+1]++
		s.offsets[e.To+1]++
	}
	for i := 1; i <= span; i++ {
		s.offsets[i] += s.offsets[i-1]
	}

	// Scatter using a moving cursor per node.
	cursor := make([]int, span)
	copy(cursor, s.offsets[:span])
	for _, e := range canon {
		s.adj[cursor[e.From]] = e.To
		cursor[e.From]++
		s.adj[cursor[e.To]] = e.From
		cursor[e.To]++
	}

	for i := 0; i < span; i++ {
		sort.Ints(s.adj[s.offsets[i]:s.offsets[i+1]])
	}

	return s, nil
}

// Span returns the number of node slots addressable by the store, which is
// one more than the largest ID that appears in any edge.
func (s *EdgeStore) Span() int {
	if len(s.offsets) == 0 {
		return 0
	}
	return len(s.offsets) - 1
}

// run returns the live neighbor slice of id, or nil when id is out of range.
func (s *EdgeStore) run(id int) []int {
	if id < 0 || id >= s.Span() {
		return nil
	}
	return s.adj[s.offsets[id]:s.offsets[id+1]]
}

// Neighbors returns a sorted copy of the neighbors of id.
// Unknown or out-of-range IDs yield an empty (nil) slice.
// Complexity: O(d).
func (s *EdgeStore) Neighbors(id int) []int {
	r := s.run(id)
	if len(r) == 0 {
		return nil
	}
	return slices.Clone(r)
}

// Degree returns the number of neighbors of id (0 when out of range).
func (s *EdgeStore) Degree(id int) int {
	return len(s.run(id))
}

// IsEdge reports whether the undirected edge {a,b} exists.
// Complexity: O(log d) binary search in the sorted run.
func (s *EdgeStore) IsEdge(a, b int) bool {
	r := s.run(a)
	if len(r) == 0 {
		return false
	}
	_, found := slices.BinarySearch(r, b)
	return found
}

// AddEdge inserts the undirected edge {a,b}.
//
// Implementation:
//   - Stage 1: Validate IDs; adding an existing edge is a no-op.
//   - Stage 2: Grow offsets if either endpoint is beyond the current span.
//   - Stage 3: Insert b into a's run (and a into b's) at its sorted position,
//     shifting the tail of adj and bumping every later offset.
//
// Errors:
//   - ErrNegativeID, ErrLoopNotAllowed.
//
// Complexity:
//   - Time O(V + E) per call; intended for occasional additions after bulk load.
func (s *EdgeStore) AddEdge(a, b int) error {
	if a < 0 || b < 0 {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrNegativeID)
	}
	if a == b {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrLoopNotAllowed)
	}
	if s.IsEdge(a, b) {
		return nil
	}

	s.grow(max(a, b) + 1)
	s.insert(a, b)
	s.insert(b, a)

	return nil
}

// grow extends offsets so that ids < span are addressable.
func (s *EdgeStore) grow(span int) {
	if len(s.offsets) == 0 {
		s.offsets = []int{0}
	}
	end := s.offsets[len(s.offsets)-1]
	for s.Span() < span {
		s.offsets = append(s.offsets, end)
	}
}

// insert places to inside from's run, keeping the run sorted.
func (s *EdgeStore) insert(from, to int) {
	r := s.run(from)
	pos, _ := slices.BinarySearch(r, to)
	s.adj = slices.Insert(s.adj, s.offsets[from]+pos, to)
	for i := from + 1; i < len(s.offsets); i++ {
		s.offsets[i]++
	}
}

// Edges returns every edge once in canonical form, ordered by (From, To).
// Complexity: O(V + E).
func (s *EdgeStore) Edges() []Edge {
	out := make([]Edge, 0, s.Size())
	for i := 0; i < s.Span(); i++ {
		for _, j := range s.run(i) {
			if i < j {
				out = append(out, Edge{From: i, To: j})
			}
		}
	}
	return out
}

// Size returns the number of undirected edges.
func (s *EdgeStore) Size() int {
	return len(s.adj) / 2
}

// SetWeight records a weight for the pair {a,b}. Weight existence is
// independent of structure, matching the unweighted-by-default policy.
func (s *EdgeStore) SetWeight(a, b int, w float64) {
	if s.weights == nil {
		s.weights = make(map[Edge]float64)
	}
	s.weights[Edge{From: a, To: b}.Canonical()] = w
}

// Weight returns the weight recorded for {a,b}, or NaN when none was set.
func (s *EdgeStore) Weight(a, b int) float64 {
	if w, ok := s.weights[Edge{From: a, To: b}.Canonical()]; ok {
		return w
	}
	return math.NaN()
}

// ClearWeights forgets every recorded weight.
func (s *EdgeStore) ClearWeights() {
	clear(s.weights)
}
