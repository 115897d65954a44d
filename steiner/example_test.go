package steiner_test

import (
	"fmt"

	"pipegrid/grid"
	"pipegrid/steiner"
)

// ExampleSolve connects one consumer three cells to the right of the source:
// the network is the straight row-aligned segment between them.
func ExampleSolve() {
	g, err := grid.New(10, 10)
	if err != nil {
		fmt.Println(err)
		return
	}

	sol, err := steiner.Solve(
		g,
		grid.Coord{Row: 5, Col: 5},
		[]grid.Coord{{Row: 5, Col: 8}},
		steiner.WithSeed(42),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("length:", sol.TotalLength)
	fmt.Println("junctions:", sol.JunctionCount)
	fmt.Println("first edge:", sol.Edges[0].A, "-", sol.Edges[0].B)
	// Output:
	// length: 3
	// junctions: 0
	// first edge: (5,5) - (5,6)
}
