package router

import (
	"math"

	"pipegrid/grid"
	"pipegrid/network"
	"pipegrid/tiebreak"
)

// costEps is the absolute tolerance under which two float step costs are
// treated as equal, so penalty arithmetic cannot break ties by rounding noise.
const costEps = 1e-9

// Route returns a path from start to the nearest network cell under the
// junction-aware cost model, as coordinates beginning at start and ending at
// a network cell. If start already belongs to the network the path is just
// [start]. penalty must be non-negative (the caller validates).
//
// Route never fails: if the label-setting search cannot produce a usable path
// (impossible on a fully connected rectangular grid, guarded anyway), it
// falls back to a deterministic L-shaped route to the nearest network cell.
//
// Complexity: O(cells²) time for the dense selection scans, O(cells) memory.
func Route(g grid.Grid, start grid.Coord, st *network.State, penalty float64, key tiebreak.Keyer) []grid.Coord {
	if st.Contains(start) {
		return []grid.Coord{start}
	}

	r := newRunner(g, start, st, penalty, key)
	if goal := r.search(); goal >= 0 {
		if path, ok := r.reconstruct(goal); ok {
			return path
		}
	}

	return fallback(g, start, st, key)
}

// runner holds the label arrays for one search: per-cell best cost, the hop
// count at that cost, the predecessor index, and the visited flag, all
// indexed by the grid's dense row-major index.
type runner struct {
	g       grid.Grid
	start   grid.Coord
	st      *network.State
	penalty float64

	cost []float64
	hops []int
	prev []int
	keys []uint64
	done []bool
}

// newRunner allocates and initializes the label arena: every cost infinite
// except the start at 0, every predecessor -1, cell keys precomputed once.
func newRunner(g grid.Grid, start grid.Coord, st *network.State, penalty float64, key tiebreak.Keyer) *runner {
	n := g.Cells()
	r := &runner{
		g:       g,
		start:   start,
		st:      st,
		penalty: penalty,
		cost:    make([]float64, n),
		hops:    make([]int, n),
		prev:    make([]int, n),
		keys:    make([]uint64, n),
		done:    make([]bool, n),
	}
	for i := 0; i < n; i++ {
		r.cost[i] = math.Inf(1)
		r.prev[i] = -1
		r.keys[i] = key.Key(g.Coord(i))
	}
	r.cost[g.Index(start)] = 0

	return r
}

// search runs the label-setting loop. Each round selects the unvisited cell
// with the best (cost, hops, key) label, finalizes it, and either stops —
// when the selected cell belongs to the network and is not the start — or
// relaxes its orthogonal neighbors. Returns the index of the reached network
// cell, or -1 when every finite-cost cell has been exhausted.
//
// The loop runs at most Cells rounds, so termination is unconditional.
func (r *runner) search() int {
	n := r.g.Cells()
	startIdx := r.g.Index(r.start)

	for round := 0; round < n; round++ {
		u := r.selectNext()
		if u < 0 {
			return -1
		}
		r.done[u] = true

		uc := r.g.Coord(u)
		if u != startIdx && r.st.Contains(uc) {
			return u
		}
		r.relax(u, uc)
	}

	return -1
}

// selectNext scans for the unvisited finite-cost cell with the best
// (cost, hops, key) tuple, comparing costs under costEps.
func (r *runner) selectNext() int {
	best := -1
	for i := range r.cost {
		if r.done[i] || math.IsInf(r.cost[i], 1) {
			continue
		}
		if best < 0 || r.beats(i, best) {
			best = i
		}
	}

	return best
}

// beats reports whether cell i's label precedes cell j's in the selection
// order: lower cost (epsilon-compared), then fewer hops, then smaller key.
func (r *runner) beats(i, j int) bool {
	switch {
	case r.cost[i] < r.cost[j]-costEps:
		return true
	case r.cost[i] > r.cost[j]+costEps:
		return false
	case r.hops[i] != r.hops[j]:
		return r.hops[i] < r.hops[j]
	default:
		return r.keys[i] < r.keys[j]
	}
}

// relax offers cell u's label to each in-bounds orthogonal neighbor under the
// step cost model.
func (r *runner) relax(u int, uc grid.Coord) {
	var buf [4]grid.Coord
	for _, vc := range r.g.Neighbors(uc, buf[:0]) {
		v := r.g.Index(vc)
		if r.done[v] {
			continue
		}

		stepCost, stepHops := r.step(uc, vc)
		if r.improves(v, r.cost[u]+stepCost, r.hops[u]+stepHops, u) {
			r.cost[v] = r.cost[u] + stepCost
			r.hops[v] = r.hops[u] + stepHops
			r.prev[v] = u
		}
	}
}

// step prices one orthogonal move from uc to vc. Reusing a network edge is
// free in both cost and hops; a new edge costs 1 plus the junction penalty
// for each endpoint currently at degree exactly 2 (the step would push it to
// degree 3, a branch point). Degree 0 or 1 endpoints contribute nothing.
func (r *runner) step(uc, vc grid.Coord) (float64, int) {
	if r.st.HasEdge(grid.NewEdge(uc, vc)) {
		return 0, 0
	}

	j := 0
	if r.st.Degree(uc) == 2 {
		j++
	}
	if r.st.Degree(vc) == 2 {
		j++
	}

	return 1 + r.penalty*float64(j), 1
}

// improves reports whether the candidate label (cand, candHops, from u)
// replaces cell v's current label: strictly cheaper under costEps, or tied on
// cost with fewer hops, or tied on both with the relaxing cell's key beating
// the key of the existing predecessor's cell. The comparison is against the
// predecessor's coordinate — not v's — and must stay that way: changing it
// would pick a different one of the equally-optimal paths and break
// bit-for-bit reproducibility with other implementations.
func (r *runner) improves(v int, cand float64, candHops, u int) bool {
	switch {
	case cand < r.cost[v]-costEps:
		return true
	case cand > r.cost[v]+costEps:
		return false
	case candHops != r.hops[v]:
		return candHops < r.hops[v]
	case r.prev[v] < 0:
		// Only the start carries a finite label without a predecessor; its
		// zero-cost label is never displaced by a tie.
		return false
	default:
		return r.keys[u] < r.keys[r.prev[v]]
	}
}

// reconstruct walks predecessors backward from goal and returns the path
// reversed to run start→goal. Returns ok=false if the walk does not land
// exactly on the start cell (defensive; indicates a broken chain).
func (r *runner) reconstruct(goal int) ([]grid.Coord, bool) {
	startIdx := r.g.Index(r.start)

	idxs := make([]int, 0, r.g.Cells())
	for at := goal; at >= 0; at = r.prev[at] {
		idxs = append(idxs, at)
		if len(idxs) > r.g.Cells() {
			return nil, false
		}
	}
	if idxs[len(idxs)-1] != startIdx {
		return nil, false
	}

	path := make([]grid.Coord, len(idxs))
	for i, idx := range idxs {
		path[len(idxs)-1-i] = r.g.Coord(idx)
	}

	return path, true
}
