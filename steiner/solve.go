package steiner

import (
	"fmt"
	"sort"

	"pipegrid/grid"
	"pipegrid/mst"
	"pipegrid/network"
	"pipegrid/planner"
	"pipegrid/router"
	"pipegrid/tiebreak"
)

// Solve computes a connected pipe network on g linking source to every
// consumer.
//
// Consumers are normalized first: duplicates and the source itself are
// silently dropped and the rest sorted into coordinate order, so the result
// is independent of input iteration order. An empty normalized set is not an
// error — Solve returns the empty Solution sentinel.
//
// Steps:
//  1. Validate bounds: g must have positive dimensions; source and every
//     consumer must lie inside it (ErrOutOfBounds otherwise).
//  2. Normalize the consumer set; return the empty Solution if nothing
//     remains.
//  3. Span {source} ∪ consumers with a Manhattan-weighted MST (mst.Build).
//  4. Derive the attachment order by BFS over the tree (planner.Order); a
//     terminal's tree parent always precedes it.
//  5. For each terminal in order that is not yet in the network, route it to
//     the nearest network cell (router.Route) and merge the path in. The
//     network is seeded with the source, so every route finds a target, and
//     by construction the finished network is one connected component
//     containing all terminals.
//  6. Derive the immutable Solution from the final edge set.
//
// Solve allocates only call-local state and never mutates its inputs; both
// loops are bounded (terminal count, cell count), so it always terminates.
//
// Complexity: O(terminals × cells²) worst case, dominated by the router's
// dense selection scans.
func Solve(g grid.Grid, source grid.Coord, consumers []grid.Coord, opts ...Option) (Solution, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Bounds validation. A Grid built with grid.New cannot have bad
	// dimensions; a hand-rolled zero value is caught here.
	if g.Rows <= 0 || g.Cols <= 0 {
		return Solution{}, grid.ErrBadDimensions
	}
	if !g.Contains(source) {
		return Solution{}, fmt.Errorf("%w: source %v", ErrOutOfBounds, source)
	}
	for _, c := range consumers {
		if !g.Contains(c) {
			return Solution{}, fmt.Errorf("%w: consumer %v", ErrOutOfBounds, c)
		}
	}

	// 2. Canonicalize the consumer set.
	normalized := normalizeConsumers(source, consumers)
	if len(normalized) == 0 {
		return emptySolution(), nil
	}

	// 3–4. Terminal list with the source fixed at index 0, spanned and
	// ordered deterministically under the seeded keys.
	key := tiebreak.New(cfg.Seed)
	terminals := make([]grid.Coord, 0, len(normalized)+1)
	terminals = append(terminals, source)
	terminals = append(terminals, normalized...)

	tree, err := mst.Build(terminals, key)
	if err != nil {
		// Unreachable: terminals always holds at least the source.
		return Solution{}, err
	}
	order := planner.Order(terminals, tree, key)

	// 5. Grow the network one terminal at a time.
	st := network.New(source)
	for _, idx := range order {
		term := terminals[idx]
		if st.Contains(term) {
			// An earlier route already ran through this terminal.
			continue
		}
		st.Merge(router.Route(g, term, st, cfg.JunctionPenalty, key))
	}

	// 6. Freeze the result.
	return buildSolution(st, source, normalized), nil
}

// normalizeConsumers returns the duplicate-free consumer set, source
// excluded, sorted by coordinate order. The input slice is never modified.
func normalizeConsumers(source grid.Coord, consumers []grid.Coord) []grid.Coord {
	seen := make(map[grid.Coord]struct{}, len(consumers))
	out := make([]grid.Coord, 0, len(consumers))
	for _, c := range consumers {
		if c == source {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
