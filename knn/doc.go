// Package knn fills missing attributes by averaging over each node's
// k nearest graph neighbors.
//
// A run moves through four phases:
//
//	collect → distances → iterate (≤ maxIterations) → done
//
// The distances phase runs one count-capped BFS per node: the search stops
// as soon as k nodes have been discovered, and the discovered nodes sorted by
// (hop distance, id) form the node's comparison set. Each iteration takes a
// feature snapshot, fills every missing dimension of every pending node with
// the mean of that dimension over comparison nodes observing it in the
// snapshot, and writes all updates afterwards. Nodes that keep a missing
// value are retried in the next iteration; values filled in one iteration
// become visible to the next, so information travels one comparison set per
// iteration.
//
// Hitting the iteration cap with values still missing is not an error; it
// is logged once as a warning.
//
// Parameters: k (default 15), maxIterations (default 10).
package knn
