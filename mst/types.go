// Package mst defines the tree edge type and sentinel errors for terminal
// spanning trees.
package mst

import "errors"

// ErrNoTerminals indicates Build was called with an empty terminal list.
// The terminal list always carries the source at index 0, so an empty list is
// a programming error in the caller.
var ErrNoTerminals = errors.New("mst: terminal list is empty")

// TreeEdge is one edge of a terminal spanning tree. U is the endpoint that
// was already in the tree when the edge was chosen, V the endpoint it
// attached; both index the terminal list passed to Build. Weight is the
// Manhattan distance between the two terminals.
type TreeEdge struct {
	U, V   int
	Weight int
}
