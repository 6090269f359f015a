// Package alias implements Vose's alias method for O(1) sampling from a
// discrete distribution.
//
// What
//
//   - New builds a Table from non-negative weights in O(n).
//   - Table.Draw picks a uniform bin and flips a biased coin: the bin's own
//     index is returned when the coin lands below the retained mass, the
//     alias index otherwise.
//   - Table.Distribution reconstructs the probabilities the table encodes.
//
// Degenerate input
//
//   - No weights: an empty table whose Draw returns -1.
//   - Weights summing to zero: a uniform table.
//   - Negative, NaN or infinite weights: ErrInvalidWeight.
//
// Random walks over a graph keep one Table per node, indexed like the node's
// sorted neighbor list.
package alias
