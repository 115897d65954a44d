package mst

import (
	"pipegrid/grid"
	"pipegrid/tiebreak"
)

// candidate is the best (in-tree, out-of-tree) pair found so far in one
// selection round, together with the values it is ordered by.
type candidate struct {
	weight int    // Manhattan distance between the endpoints
	xor    uint64 // XOR of the endpoints' tiebreak keys
	u, v   int    // in-tree index, out-of-tree index
}

// better reports whether c should be selected over cur under the total order
// (weight, key-XOR, in-tree index, out-of-tree index), all ascending.
func (c candidate) better(cur candidate) bool {
	if c.weight != cur.weight {
		return c.weight < cur.weight
	}
	if c.xor != cur.xor {
		return c.xor < cur.xor
	}
	if c.u != cur.u {
		return c.u < cur.u
	}

	return c.v < cur.v
}

// Build computes a minimum spanning tree over terminals using Prim's
// algorithm grown from index 0 (the source). Edge weight is the Manhattan
// distance between terminal coordinates; ties are broken by the XOR of the
// endpoints' keys, then by the lower in-tree index, then by the lower
// out-of-tree index, so the tree is identical for a fixed seed regardless of
// input iteration order.
//
// Returns ErrNoTerminals for an empty terminal list. A single terminal yields
// an empty tree. All terminals are mutually reachable in the complete
// Manhattan graph, so the returned tree always spans the full list.
//
// Steps:
//  1. Precompute every terminal's tiebreak key.
//  2. Seed the in-tree set with index 0.
//  3. Each round, scan all (in-tree, out-of-tree) pairs and keep the best
//     candidate under the (weight, key-XOR, u, v) order.
//  4. Attach the winner, record the TreeEdge, repeat until n-1 edges exist.
//
// Complexity: O(n³) worst case over the rounds (n in the tens), O(n) memory.
func Build(terminals []grid.Coord, key tiebreak.Keyer) ([]TreeEdge, error) {
	n := len(terminals)
	if n == 0 {
		return nil, ErrNoTerminals
	}

	// 1. Keys are consulted O(n²) times per round; compute each once.
	keys := make([]uint64, n)
	for i, c := range terminals {
		keys[i] = key.Key(c)
	}

	// 2. The tree grows from the source terminal.
	inTree := make([]bool, n)
	inTree[0] = true
	tree := make([]TreeEdge, 0, n-1)

	// 3–4. One attachment per round; the loop is bounded by n-1 rounds.
	for len(tree) < n-1 {
		var best candidate
		found := false
		for u := 0; u < n; u++ {
			if !inTree[u] {
				continue
			}
			for v := 0; v < n; v++ {
				if inTree[v] {
					continue
				}
				cand := candidate{
					weight: terminals[u].Manhattan(terminals[v]),
					xor:    keys[u] ^ keys[v],
					u:      u,
					v:      v,
				}
				if !found || cand.better(best) {
					best = cand
					found = true
				}
			}
		}
		// No candidate can only mean every terminal is already in-tree;
		// guarded so the loop terminates unconditionally.
		if !found {
			break
		}

		inTree[best.v] = true
		tree = append(tree, TreeEdge{U: best.u, V: best.v, Weight: best.weight})
	}

	return tree, nil
}
