// Package core provides the attributed, undirected graph that every imputation
// strategy in graphimpute reads from and writes into.
//
// The package has two layers:
//
//   - EdgeStore owns structure. Adjacency lives in a compressed sparse row
//     layout: one flat neighbor array plus an offsets array, so that
//     neighbors of node i are adj[offsets[i]:offsets[i+1]]. Runs are kept
//     sorted, which makes enumeration order reproducible. Optional per-edge
//     weights are kept in a map keyed by the canonical (min,max) pair; an
//     absent entry means "unweighted" and is reported as NaN, not 0.
//
//   - Graph owns attributes. Every node has an integer ID, a fixed-length
//     feature vector and an integer label. Missing feature entries are encoded
//     with the NaN sentinel returned by Missing; test them with IsMissing,
//     never with ==.
//
// Read paths are forgiving: neighbor, weight and feature lookups on an unknown
// or out-of-range ID return an empty result instead of an error, because
// edge files routinely reference IDs the node file never declared. Write paths
// are strict: UpdateFeatures on an unknown ID returns ErrNodeNotFound.
//
// Core methods:
//
//	// EdgeStore
//	NewEdgeStore(pairs []Edge) (*EdgeStore, error)  // O(E log d) bulk CSR build
//	AddEdge(a, b int) error                         // O(E) insert-and-shift
//	IsEdge(a, b int) bool                           // O(log d)
//	Neighbors(id int) []int                         // O(d), sorted copy
//	Edges() []Edge                                  // O(E), canonical (min,max)
//	SetWeight(a, b int, w float64)                  // O(1)
//	Weight(a, b int) float64                        // O(1), NaN when unset
//
//	// Graph
//	AddNode(id int, features []float64, label int) error
//	Features(id int) []float64                      // copy; nil when unknown
//	UpdateFeatures(id int, f []float64) error       // ErrNodeNotFound, ErrDimensionMismatch
//	FeatureSnapshot() map[int][]float64             // deep copy for read-then-write passes
//
// Concurrency:
//
//	The graph is not safe for concurrent mutation. Strategies run one at a
//	time on a given Graph and read a FeatureSnapshot before writing a batch
//	of updates, so no locking is required.
package core
