// Package mst builds a minimum spanning tree over the terminal set of a pipe
// network: the source plus every consumer, weighted by Manhattan distance.
//
// The tree never touches the grid itself — it spans terminal indices, and its
// only job is to give the planner package a good attachment order. The final
// grid routes are chosen later by the router package.
//
// The implementation is the dense O(n²-per-step) form of Prim's algorithm:
// every round scans all (in-tree, out-of-tree) index pairs and picks the
// minimum-weight candidate. Terminal counts are in the tens, so the dense
// scan is plenty — and it makes the tie-break order trivial to state exactly:
// weight ascending, then the XOR of the endpoints' tiebreak keys ascending,
// then the lower in-tree index, then the lower out-of-tree index. Replicating
// that order is what keeps solutions bit-identical for a fixed seed.
package mst
