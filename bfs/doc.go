// Package bfs provides breadth-first search over an integer-keyed adjacency
// source such as core.Graph or core.EdgeStore, returning hop distances.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult whose Depth maps every discovered vertex to its
//     distance (edges) from start; Discovered lists them by (depth, id).
//   - Hook: OnEnqueue, called once per discovered vertex.
//   - Limits: MaxDepth (inclusive depth bound) and MaxDiscovered (count cap).
//
// Count cap
//
//	WithMaxDiscovered(k) ends the search the moment k vertices other than the
//	start have been discovered, even in the middle of a layer. The k-NN
//	imputer uses it to bound its per-node neighborhood; the cover index uses
//	WithMaxDepth and collects members through OnEnqueue instead.
//
// Determinism
//
//	Neighbors are enumerated in ascending ID order, so discovery order and
//	the set of vertices kept by a count cap are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDiscovered(15))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound or ErrOptionViolation
//	}
//	for _, id := range res.Discovered() {
//		_ = res.Depth[id]
//	}
package bfs
