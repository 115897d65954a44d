package steiner

import (
	"sort"

	"pipegrid/grid"
	"pipegrid/network"
)

// Solution is the immutable result of one Solve call. Treat every field as
// read-only; slices are sorted into coordinate order so equal solutions
// compare equal with reflect-based equality.
type Solution struct {
	// Edges is the final edge set, canonical and sorted by (A, B).
	Edges []grid.Edge

	// Cells maps every coordinate carrying pipe to the set of cardinal
	// directions its segments occupy; the set's cardinality equals the
	// cell's degree.
	Cells map[grid.Coord]grid.DirSet

	// PipeCells lists the cells carrying pipe that are neither the source
	// nor a consumer, sorted.
	PipeCells []grid.Coord

	// Junctions lists the branch points — cells with more than two incident
	// segments — sorted.
	Junctions []grid.Coord

	// TotalLength is the number of unit edges in the network.
	TotalLength int

	// JunctionCount is len(Junctions).
	JunctionCount int
}

// CellInfo is the per-cell lookup view consumed by renderers.
type CellInfo struct {
	Dirs     grid.DirSet
	Junction bool
}

// At returns the pipe directions and junction flag at c; the zero CellInfo
// for cells carrying no pipe.
func (s Solution) At(c grid.Coord) CellInfo {
	dirs := s.Cells[c]

	return CellInfo{Dirs: dirs, Junction: dirs.Count() > 2}
}

// Empty reports whether s is the distinguished empty solution returned for
// an empty normalized consumer set.
func (s Solution) Empty() bool {
	return len(s.Edges) == 0 && len(s.Cells) == 0
}

// emptySolution returns the empty sentinel: no edges, no cells, no
// junctions, zero metrics.
func emptySolution() Solution {
	return Solution{
		Edges:     []grid.Edge{},
		Cells:     map[grid.Coord]grid.DirSet{},
		PipeCells: []grid.Coord{},
		Junctions: []grid.Coord{},
	}
}

// buildSolution derives the Solution from the final network state.
//
// Per edge, each endpoint gains the direction pointing at the other, so a
// cell's direction set grows by exactly one entry per incident edge and its
// cardinality equals its degree. Junctions are the cells whose set exceeds
// two directions; pipe cells are mapped cells that are not terminals.
func buildSolution(st *network.State, source grid.Coord, consumers []grid.Coord) Solution {
	edges := st.Edges()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A.Less(edges[j].A)
		}

		return edges[i].B.Less(edges[j].B)
	})

	cells := make(map[grid.Coord]grid.DirSet, len(edges)+1)
	for _, e := range edges {
		// Both lookups succeed: canonical edges join adjacent cells.
		if d, ok := grid.DirectionBetween(e.A, e.B); ok {
			cells[e.A] = cells[e.A].With(d)
		}
		if d, ok := grid.DirectionBetween(e.B, e.A); ok {
			cells[e.B] = cells[e.B].With(d)
		}
	}

	terminal := make(map[grid.Coord]struct{}, len(consumers)+1)
	terminal[source] = struct{}{}
	for _, c := range consumers {
		terminal[c] = struct{}{}
	}

	pipe := make([]grid.Coord, 0, len(cells))
	junctions := make([]grid.Coord, 0)
	for c, dirs := range cells {
		if _, isTerm := terminal[c]; !isTerm {
			pipe = append(pipe, c)
		}
		if dirs.Count() > 2 {
			junctions = append(junctions, c)
		}
	}
	sort.Slice(pipe, func(i, j int) bool { return pipe[i].Less(pipe[j]) })
	sort.Slice(junctions, func(i, j int) bool { return junctions[i].Less(junctions[j]) })

	return Solution{
		Edges:         edges,
		Cells:         cells,
		PipeCells:     pipe,
		Junctions:     junctions,
		TotalLength:   len(edges),
		JunctionCount: len(junctions),
	}
}
