// Package router attaches a cell to the existing pipe network: given a start
// coordinate, it finds the cheapest rectilinear path from the start to the
// nearest network cell under a junction-aware cost model, searching over
// every cell of the grid — the best attachment may run through arbitrary
// empty cells, not just terminals.
//
// Cost model per orthogonal step:
//
//   - Reusing an edge already in the network costs 0 and adds 0 hops.
//   - A new edge costs 1 + junctionPenalty×J and adds 1 hop, where J counts
//     the edge endpoints currently at degree exactly 2 — the endpoints the
//     step would convert from a pass-through into a branch point.
//
// The search is a label-setting relaxation in Dijkstra's shape, run over a
// dense arena of grid-indexed arrays rather than a heap: each round scans the
// unvisited cells for the best (cost, hops, tiebreak key) label, with float
// costs compared under a small absolute epsilon. The dense scan is a
// deliberate simplicity-and-determinism choice; cell counts are small.
//
// On a fully connected rectangular grid the search always reaches the
// network, so Route never fails: the degenerate cases (unreachable network,
// broken predecessor chain) are guarded defensively and resolved with a
// deterministic L-shaped fallback path instead of an error.
package router
