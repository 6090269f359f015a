// Package converters adapts core.Graph to gonum/graph so gonum's graph
// algorithms can run on imputation inputs.
//
//   - ToGonum exports nodes, edges and weights to a
//     simple.WeightedUndirectedGraph.
//   - Components reports connected components via topo.ConnectedComponents.
package converters
