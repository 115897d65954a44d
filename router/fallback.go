package router

import (
	"pipegrid/grid"
	"pipegrid/network"
	"pipegrid/tiebreak"
)

// fallback builds a synthetic axis-aligned route from start to the nearest
// network cell, for the degenerate case where the search produced no usable
// path. Nearest is by Manhattan distance, ties by tiebreak key; the leg order
// — horizontal then vertical, or the reverse — follows the parity of
// key(start) XOR key(target), so neither axis is favored universally yet the
// choice is reproducible.
func fallback(g grid.Grid, start grid.Coord, st *network.State, key tiebreak.Keyer) []grid.Coord {
	target, ok := nearestNode(g, start, st, key)
	if !ok {
		// Empty network cannot occur (it is seeded with the source), but a
		// one-cell path keeps the contract rather than returning nil.
		return []grid.Coord{start}
	}

	horizontalFirst := (key.Key(start)^key.Key(target))&1 == 0

	path := make([]grid.Coord, 0, start.Manhattan(target)+1)
	path = append(path, start)
	cur := start
	if horizontalFirst {
		cur, path = walkCols(cur, target.Col, path)
		_, path = walkRows(cur, target.Row, path)
	} else {
		cur, path = walkRows(cur, target.Row, path)
		_, path = walkCols(cur, target.Col, path)
	}

	return path
}

// nearestNode scans the grid in dense index order for the network cell
// minimizing (Manhattan distance to start, tiebreak key). Scanning cells
// instead of the node set keeps the result independent of map iteration
// order.
func nearestNode(g grid.Grid, start grid.Coord, st *network.State, key tiebreak.Keyer) (grid.Coord, bool) {
	var (
		best     grid.Coord
		bestDist int
		bestKey  uint64
		found    bool
	)
	for i := 0; i < g.Cells(); i++ {
		c := g.Coord(i)
		if !st.Contains(c) {
			continue
		}
		d, k := start.Manhattan(c), key.Key(c)
		if !found || d < bestDist || (d == bestDist && k < bestKey) {
			best, bestDist, bestKey, found = c, d, k, true
		}
	}

	return best, found
}

// walkCols appends unit column steps from cur to column col and returns the
// final coordinate plus the extended path.
func walkCols(cur grid.Coord, col int, path []grid.Coord) (grid.Coord, []grid.Coord) {
	step := 1
	if col < cur.Col {
		step = -1
	}
	for cur.Col != col {
		cur.Col += step
		path = append(path, cur)
	}

	return cur, path
}

// walkRows appends unit row steps from cur to row row and returns the final
// coordinate plus the extended path.
func walkRows(cur grid.Coord, row int, path []grid.Coord) (grid.Coord, []grid.Coord) {
	step := 1
	if row < cur.Row {
		step = -1
	}
	for cur.Row != row {
		cur.Row += step
		path = append(path, cur)
	}

	return cur, path
}
