// Package subgraph builds Topo2Vec context subgraphs.
//
// A context subgraph replaces a fixed-radius neighborhood with a
// variable-size one grown from a root node v:
//
//  1. Seed: every neighbor c of v is scored by its neighborhood affinity
//     NA(c) = |N(c) ∩ T| / deg(c), with T = {v} ∪ N(v). Neighbors with
//     NA >= τ join in descending NA order.
//  2. Expand, for a number of rounds: each member not yet expanded offers
//     its outside neighbors c. A candidate survives when both
//     NA(c) = |N(c) ∩ S| / deg(c) and SA(c) = |N(c) ∩ S| / m reach τ,
//     where S is the current membership and m the number of edges inside S
//     (SA is 1 while m is 0). Survivors join in (NA desc, SA desc, id asc)
//     order and m grows by |N(c) ∩ S| at each insertion.
//
// The result is v followed by the accepted nodes in insertion order; it is
// used as a skip-gram training sequence. Lower τ grows larger subgraphs.
package subgraph
