package grid

// Grid describes the bounds of a rectangular cell grid. It is immutable once
// built; construct it with New so the dimension contract is enforced.
type Grid struct {
	Rows, Cols int
}

// New constructs a Grid with the given dimensions.
// Returns ErrBadDimensions if rows or cols is not positive.
// Complexity: O(1).
func New(rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, ErrBadDimensions
	}

	return Grid{Rows: rows, Cols: cols}, nil
}

// Contains reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Cells returns the total number of cells, Rows×Cols.
// Complexity: O(1).
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

// Index maps c to its dense row-major index: Row*Cols + Col.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g Grid) Index(c Coord) int {
	return c.Row*g.Cols + c.Col
}

// Coord converts a row-major index back to its coordinate.
// Complexity: O(1).
func (g Grid) Coord(idx int) Coord {
	return Coord{Row: idx / g.Cols, Col: idx % g.Cols}
}

// neighborOffsets lists the four orthogonal displacements in Up, Down, Left,
// Right order. The order is fixed so traversals enumerate candidates
// identically on every run.
var neighborOffsets = [4]Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// Neighbors appends the in-bounds orthogonal neighbors of c to dst and
// returns the extended slice. Pass dst with spare capacity (or nil) to
// control allocation; at most four coordinates are appended.
// Complexity: O(1).
func (g Grid) Neighbors(c Coord, dst []Coord) []Coord {
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.Contains(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// Edge is an unordered pair of grid-adjacent coordinates. NewEdge stores the
// lexicographically smaller endpoint in A, so equal edges compare equal and
// an Edge value can key a set directly.
type Edge struct {
	A, B Coord
}

// NewEdge returns the canonical edge between a and b: the lexicographically
// smaller endpoint first. It does not check adjacency; callers construct
// edges only between neighboring cells.
// Complexity: O(1).
func NewEdge(a, b Coord) Edge {
	if b.Less(a) {
		a, b = b, a
	}

	return Edge{A: a, B: b}
}

// Adjacent reports whether the edge's endpoints are at Manhattan distance
// exactly 1, i.e. the edge is a legal unit pipe segment.
// Complexity: O(1).
func (e Edge) Adjacent() bool {
	return e.A.Manhattan(e.B) == 1
}
