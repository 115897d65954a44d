package steiner

import "pipegrid/grid"

// Verify reports whether sol connects source to every consumer: a
// breadth-first reachability walk from source over the solution's edges must
// visit each consumer. Solve guarantees connectivity by construction and
// never calls this; it exists for external validation and tests.
//
// An empty consumer list verifies trivially. Duplicate consumers and the
// source itself are accepted, mirroring Solve's normalization.
//
// Complexity: O(V + E) over the solution's cells and edges.
func Verify(sol Solution, source grid.Coord, consumers []grid.Coord) bool {
	adj := make(map[grid.Coord][]grid.Coord, len(sol.Cells))
	for _, e := range sol.Edges {
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}

	reached := map[grid.Coord]struct{}{source: {}}
	queue := []grid.Coord{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if _, ok := reached[v]; ok {
				continue
			}
			reached[v] = struct{}{}
			queue = append(queue, v)
		}
	}

	for _, c := range consumers {
		if _, ok := reached[c]; !ok {
			return false
		}
	}

	return true
}
