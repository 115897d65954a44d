// Package network holds the mutable state one optimization call grows: the
// set of cells carrying pipe, the canonical edge set, and the per-cell degree
// map. A State is created fresh per call, seeded with the source cell, grows
// monotonically as routed paths are merged in, and is discarded once the
// final solution has been derived from it.
//
// State is the single explicit owner of all mutable collections in the
// network-growth loop; the router reads it, Merge writes it, and nothing else
// touches it. It is not safe for concurrent use — one optimization call owns
// one State.
package network
