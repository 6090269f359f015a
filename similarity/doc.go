// Package similarity scores pairs of nodes and searches embeddings.
//
//   - Attribute: cosine over the dimensions both vectors observe, clamped to >= 0.
//   - Covers / Structural: Jaccard overlap of depth-bounded BFS covers,
//     memoized in a bounded LRU cache.
//   - TopK: bounded min-heap search for the k embeddings most cosine-similar
//     to a query.
//   - Sample: random candidate pool drawn with replacement.
//
// Degenerate input never yields NaN: missing overlap, zero norms and empty
// unions all score 0, and TopK excludes zero-norm vectors entirely.
package similarity
