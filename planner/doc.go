// Package planner turns a terminal spanning tree into the order in which
// terminals are attached to the growing grid network.
//
// The order is a breadth-first traversal of the tree rooted at the source
// (terminal index 0). Before a node's children are enqueued they are sorted
// by tree-edge weight ascending, then by the tiebreak key of the child's
// coordinate ascending, which makes the traversal deterministic for a fixed
// seed.
//
// BFS from the root guarantees a terminal's tree parent always precedes the
// terminal itself in the order. Combined with the network being seeded with
// the source, that means every terminal finds a non-empty network to attach
// to when its turn comes.
package planner
