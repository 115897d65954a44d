package network

import "pipegrid/grid"

// State is the pipe network built so far during one optimization call:
// which cells carry pipe, which unit edges exist, and each cell's degree
// (count of incident edges). It only ever grows.
type State struct {
	nodes  map[grid.Coord]struct{}
	edges  map[grid.Edge]struct{}
	degree map[grid.Coord]int
}

// New returns a State seeded with the source cell, so the network is never
// empty and the first routed terminal has something to attach to.
// Complexity: O(1).
func New(source grid.Coord) *State {
	s := &State{
		nodes:  make(map[grid.Coord]struct{}),
		edges:  make(map[grid.Edge]struct{}),
		degree: make(map[grid.Coord]int),
	}
	s.nodes[source] = struct{}{}

	return s
}

// Contains reports whether c is part of the network.
// Complexity: O(1).
func (s *State) Contains(c grid.Coord) bool {
	_, ok := s.nodes[c]

	return ok
}

// HasEdge reports whether the canonical edge e is part of the network.
// Complexity: O(1).
func (s *State) HasEdge(e grid.Edge) bool {
	_, ok := s.edges[e]

	return ok
}

// Degree returns the number of network edges incident to c; zero for cells
// outside the network.
// Complexity: O(1).
func (s *State) Degree(c grid.Coord) int {
	return s.degree[c]
}

// Len returns the number of edges in the network.
func (s *State) Len() int {
	return len(s.edges)
}

// Merge folds a routed path into the network. Every path coordinate joins
// the node set; every consecutive pair becomes a canonical edge, inserted
// only if absent, and only a newly inserted edge increments both endpoints'
// degrees. Merging the same path twice is therefore a no-op, and a
// single-coordinate path (start already in the network) adds no edges.
// Complexity: O(len(path)).
func (s *State) Merge(path []grid.Coord) {
	for i, c := range path {
		s.nodes[c] = struct{}{}
		if i == 0 {
			continue
		}
		e := grid.NewEdge(path[i-1], c)
		if _, ok := s.edges[e]; ok {
			continue
		}
		s.edges[e] = struct{}{}
		s.degree[e.A]++
		s.degree[e.B]++
	}
}

// Edges returns the network's edges in map iteration order. Callers needing
// a deterministic order must sort; the solution builder does.
// Complexity: O(E).
func (s *State) Edges() []grid.Edge {
	out := make([]grid.Edge, 0, len(s.edges))
	for e := range s.edges {
		out = append(out, e)
	}

	return out
}
