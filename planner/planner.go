package planner

import (
	"sort"

	"pipegrid/grid"
	"pipegrid/mst"
	"pipegrid/tiebreak"
)

// neighbor is one tree-adjacency entry: the terminal index on the far side of
// a tree edge and that edge's weight.
type neighbor struct {
	idx    int
	weight int
}

// Order returns the attachment order of terminal indices, excluding the
// source index 0, by breadth-first traversal of tree from index 0.
//
// At each dequeued node the tree neighbors are sorted by edge weight
// ascending, then by the tiebreak key of the neighbor's coordinate ascending,
// before unseen neighbors are enqueued. Every enqueued index is appended to
// the order, so a terminal's tree parent always appears before the terminal.
//
// A nil or empty tree yields an empty order (single-terminal case).
//
// Complexity: O(n log n) for the per-node sorts, O(n) memory.
func Order(terminals []grid.Coord, tree []mst.TreeEdge, key tiebreak.Keyer) []int {
	n := len(terminals)
	if n == 0 || len(tree) == 0 {
		return nil
	}

	// Tree adjacency, both directions per edge.
	adj := make([][]neighbor, n)
	for _, e := range tree {
		adj[e.U] = append(adj[e.U], neighbor{idx: e.V, weight: e.Weight})
		adj[e.V] = append(adj[e.V], neighbor{idx: e.U, weight: e.Weight})
	}

	visited := make([]bool, n)
	visited[0] = true
	queue := make([]int, 0, n)
	queue = append(queue, 0)
	order := make([]int, 0, n-1)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		// Sort this node's neighbors into the deterministic enqueue order.
		nbrs := adj[u]
		sort.Slice(nbrs, func(i, j int) bool {
			if nbrs[i].weight != nbrs[j].weight {
				return nbrs[i].weight < nbrs[j].weight
			}

			return key.Key(terminals[nbrs[i].idx]) < key.Key(terminals[nbrs[j].idx])
		})

		for _, nb := range nbrs {
			if visited[nb.idx] {
				continue
			}
			visited[nb.idx] = true
			order = append(order, nb.idx)
			queue = append(queue, nb.idx)
		}
	}

	return order
}
