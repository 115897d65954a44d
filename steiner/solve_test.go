package steiner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipegrid/grid"
	"pipegrid/steiner"
)

// mustGrid builds a grid or fails the test.
func mustGrid(t *testing.T, rows, cols int) grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)

	return g
}

// assertWellFormed checks the universal solution invariants: adjacency
// validity, metric consistency, direction-set/degree agreement, and full
// connectivity from the source to every consumer.
func assertWellFormed(t *testing.T, g grid.Grid, sol steiner.Solution, source grid.Coord, consumers []grid.Coord) {
	t.Helper()

	// Adjacency validity: unit edges, both endpoints in bounds.
	for _, e := range sol.Edges {
		assert.True(t, e.Adjacent(), "edge %v is not a unit segment", e)
		assert.True(t, g.Contains(e.A) && g.Contains(e.B), "edge %v out of bounds", e)
	}

	// Metric consistency.
	assert.Equal(t, len(sol.Edges), sol.TotalLength)
	assert.Equal(t, len(sol.Junctions), sol.JunctionCount)
	junctions := 0
	for c, dirs := range sol.Cells {
		if dirs.Count() > 2 {
			junctions++
			assert.True(t, sol.At(c).Junction)
		} else {
			assert.False(t, sol.At(c).Junction)
		}
	}
	assert.Equal(t, junctions, sol.JunctionCount)

	// Full connectivity.
	assert.True(t, steiner.Verify(sol, source, consumers))
}

// TestSolve_Validation verifies the input contract: bad grid dimensions and
// out-of-bounds coordinates are reported, never clamped.
func TestSolve_Validation(t *testing.T) {
	g := mustGrid(t, 10, 10)
	inside := grid.Coord{Row: 5, Col: 5}

	_, err := steiner.Solve(grid.Grid{}, inside, nil)
	assert.ErrorIs(t, err, grid.ErrBadDimensions)

	_, err = steiner.Solve(g, grid.Coord{Row: -1, Col: 5}, nil)
	assert.ErrorIs(t, err, steiner.ErrOutOfBounds)

	_, err = steiner.Solve(g, inside, []grid.Coord{{Row: 5, Col: 10}})
	assert.ErrorIs(t, err, steiner.ErrOutOfBounds)
}

// TestSolve_EmptyConsumers verifies the empty sentinel: no consumers, or
// only duplicates of the source, yield the empty solution without error.
func TestSolve_EmptyConsumers(t *testing.T) {
	g := mustGrid(t, 10, 10)
	src := grid.Coord{Row: 5, Col: 5}

	sol, err := steiner.Solve(g, src, nil)
	require.NoError(t, err)
	assert.True(t, sol.Empty())
	assert.Zero(t, sol.TotalLength)
	assert.Zero(t, sol.JunctionCount)

	// The source itself is silently removed from the consumer set.
	sol, err = steiner.Solve(g, src, []grid.Coord{src, src})
	require.NoError(t, err)
	assert.True(t, sol.Empty())
}

// TestSolve_StraightLine is scenario A: a single consumer on the source's
// row produces exactly the straight three-edge segment.
func TestSolve_StraightLine(t *testing.T) {
	g := mustGrid(t, 10, 10)
	src := grid.Coord{Row: 5, Col: 5}
	consumers := []grid.Coord{{Row: 5, Col: 8}}

	sol, err := steiner.Solve(g, src, consumers, steiner.WithSeed(42))
	require.NoError(t, err)
	assertWellFormed(t, g, sol, src, consumers)

	assert.Equal(t, 3, sol.TotalLength)
	assert.Zero(t, sol.JunctionCount)
	assert.Equal(t, []grid.Edge{
		grid.NewEdge(grid.Coord{Row: 5, Col: 5}, grid.Coord{Row: 5, Col: 6}),
		grid.NewEdge(grid.Coord{Row: 5, Col: 6}, grid.Coord{Row: 5, Col: 7}),
		grid.NewEdge(grid.Coord{Row: 5, Col: 7}, grid.Coord{Row: 5, Col: 8}),
	}, sol.Edges)
	// The two interior cells carry pipe; the terminals do not count.
	assert.Equal(t, []grid.Coord{{Row: 5, Col: 6}, {Row: 5, Col: 7}}, sol.PipeCells)
}

// TestSolve_OppositeSides is scenario B: consumers on both sides of the
// source merge through it without redundant cells; the source sits on the
// straight line at degree 2, so no junction forms.
func TestSolve_OppositeSides(t *testing.T) {
	g := mustGrid(t, 10, 10)
	src := grid.Coord{Row: 5, Col: 5}
	consumers := []grid.Coord{{Row: 5, Col: 2}, {Row: 5, Col: 8}}

	sol, err := steiner.Solve(g, src, consumers, steiner.WithSeed(42))
	require.NoError(t, err)
	assertWellFormed(t, g, sol, src, consumers)

	// Total length is the sum of the two Manhattan distances: 3 + 3.
	assert.Equal(t, 6, sol.TotalLength)
	assert.Zero(t, sol.JunctionCount)
	assert.Equal(t, 2, sol.At(src).Dirs.Count())
	assert.True(t, sol.At(src).Dirs.Has(grid.Left))
	assert.True(t, sol.At(src).Dirs.Has(grid.Right))
}

// TestSolve_JunctionPenalty is scenario C: a layout offering a short
// junction-forming attachment and a longer junction-free one. Penalty 0 must
// take the short branch; penalty 10 must not create more junctions — here it
// eliminates them entirely.
func TestSolve_JunctionPenalty(t *testing.T) {
	g := mustGrid(t, 10, 10)
	src := grid.Coord{Row: 5, Col: 2}
	// (5,8) forms a row run through the source first (MST weight 6 beats 7),
	// then (1,5) attaches: 4 cheap edges into the middle of the run, or 7
	// junction-free edges to a run end.
	consumers := []grid.Coord{{Row: 5, Col: 8}, {Row: 1, Col: 5}}

	cheap, err := steiner.Solve(g, src, consumers, steiner.WithSeed(42))
	require.NoError(t, err)
	assertWellFormed(t, g, cheap, src, consumers)
	assert.Equal(t, 10, cheap.TotalLength)
	assert.Equal(t, 1, cheap.JunctionCount)

	costly, err := steiner.Solve(g, src, consumers,
		steiner.WithSeed(42), steiner.WithJunctionPenalty(10))
	require.NoError(t, err)
	assertWellFormed(t, g, costly, src, consumers)
	assert.Zero(t, costly.JunctionCount)
	assert.Equal(t, 13, costly.TotalLength)
	assert.LessOrEqual(t, costly.JunctionCount, cheap.JunctionCount)
}

// TestSolve_SeedSensitivity is scenario D: different seeds may pick
// different tied optima, but every seed's output satisfies the invariants.
func TestSolve_SeedSensitivity(t *testing.T) {
	g := mustGrid(t, 10, 10)
	src := grid.Coord{Row: 2, Col: 2}
	consumers := []grid.Coord{
		{Row: 7, Col: 7},
		{Row: 2, Col: 8},
		{Row: 8, Col: 3},
	}

	for seed := uint64(0); seed < 8; seed++ {
		sol, err := steiner.Solve(g, src, consumers, steiner.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)
		assertWellFormed(t, g, sol, src, consumers)
	}
}

// TestSolve_Deterministic verifies edge-for-edge identical output for a
// fixed seed, and that inputs are observed, not mutated.
func TestSolve_Deterministic(t *testing.T) {
	g := mustGrid(t, 12, 12)
	src := grid.Coord{Row: 6, Col: 6}
	// Deliberately unsorted, with a duplicate: normalization must make the
	// result independent of the input order.
	consumers := []grid.Coord{
		{Row: 9, Col: 1},
		{Row: 1, Col: 9},
		{Row: 3, Col: 3},
		{Row: 9, Col: 1},
	}
	backup := make([]grid.Coord, len(consumers))
	copy(backup, consumers)

	a, err := steiner.Solve(g, src, consumers, steiner.WithSeed(7), steiner.WithJunctionPenalty(2))
	require.NoError(t, err)
	b, err := steiner.Solve(g, src, consumers, steiner.WithSeed(7), steiner.WithJunctionPenalty(2))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, backup, consumers, "Solve must not mutate the consumer slice")
	assertWellFormed(t, g, a, src, consumers)

	// Reordering the consumer input must not change the solution either.
	reordered := []grid.Coord{
		{Row: 3, Col: 3},
		{Row: 9, Col: 1},
		{Row: 1, Col: 9},
	}
	c, err := steiner.Solve(g, src, reordered, steiner.WithSeed(7), steiner.WithJunctionPenalty(2))
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

// TestSolve_ColinearConsumersShareRun verifies a consumer lying between the
// source and a farther consumer shares the same straight run: no redundant
// pipe, no junction.
func TestSolve_ColinearConsumersShareRun(t *testing.T) {
	g := mustGrid(t, 10, 10)
	src := grid.Coord{Row: 5, Col: 2}
	// (5,5) lies on the straight run to (5,8).
	consumers := []grid.Coord{{Row: 5, Col: 8}, {Row: 5, Col: 5}}

	sol, err := steiner.Solve(g, src, consumers, steiner.WithSeed(3))
	require.NoError(t, err)
	assertWellFormed(t, g, sol, src, consumers)
	assert.Equal(t, 6, sol.TotalLength)
	assert.Zero(t, sol.JunctionCount)
}

// TestWithJunctionPenalty_Negative verifies the option constructor rejects
// negative weights by panicking.
func TestWithJunctionPenalty_Negative(t *testing.T) {
	assert.PanicsWithValue(t, steiner.ErrNegativePenalty.Error(), func() {
		steiner.WithJunctionPenalty(-0.5)
	})
}
