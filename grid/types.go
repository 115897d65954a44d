// Package grid defines core types and sentinel errors for the grid subpackage
// of pipegrid.
package grid

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrBadDimensions indicates a grid was constructed with a non-positive row or
// column count. This is a contract violation by the caller, not a runtime
// condition.
var ErrBadDimensions = errors.New("grid: rows and columns must be positive")

// Coord is an integer (row, column) grid coordinate.
// The total order over coordinates is lexicographic by (Row, Col).
type Coord struct {
	Row, Col int
}

// Less reports whether c precedes o in the lexicographic (Row, Col) order.
// Complexity: O(1).
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}

	return c.Col < o.Col
}

// Manhattan returns the rectilinear distance |Δrow| + |Δcol| between c and o.
// Complexity: O(1).
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// Direction identifies one of the four cardinal directions a pipe segment can
// occupy at a cell.
type Direction uint8

const (
	// Up points toward decreasing row.
	Up Direction = iota
	// Down points toward increasing row.
	Down
	// Left points toward decreasing column.
	Left
	// Right points toward increasing column.
	Right
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// DirSet is a bitmask over the four cardinal directions. The zero value is
// the empty set.
type DirSet uint8

// With returns s with direction d added.
func (s DirSet) With(d Direction) DirSet { return s | 1<<d }

// Has reports whether direction d is in the set.
func (s DirSet) Has(d Direction) bool { return s&(1<<d) != 0 }

// Count returns the number of directions in the set.
func (s DirSet) Count() int { return bits.OnesCount8(uint8(s)) }

// Dirs returns the directions in the set in Up, Down, Left, Right order.
func (s DirSet) Dirs() []Direction {
	out := make([]Direction, 0, s.Count())
	for _, d := range []Direction{Up, Down, Left, Right} {
		if s.Has(d) {
			out = append(out, d)
		}
	}

	return out
}

// DirectionBetween returns the direction of travel from a to its grid-adjacent
// neighbor b. The second return value is false when a and b are not at
// Manhattan distance exactly 1.
func DirectionBetween(a, b Coord) (Direction, bool) {
	switch {
	case b.Row == a.Row-1 && b.Col == a.Col:
		return Up, true
	case b.Row == a.Row+1 && b.Col == a.Col:
		return Down, true
	case b.Row == a.Row && b.Col == a.Col-1:
		return Left, true
	case b.Row == a.Row && b.Col == a.Col+1:
		return Right, true
	default:
		return 0, false
	}
}
