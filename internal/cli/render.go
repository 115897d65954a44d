package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pipegrid/grid"
	"pipegrid/steiner"
)

// pipeRunes maps a cell's direction bitmask (Up=1, Down=2, Left=4, Right=8)
// to the box-drawing glyph occupying those directions.
var pipeRunes = [16]rune{
	'·',        // empty
	'╵',        // U
	'╷',        // D
	'│',        // U D
	'╴',        // L
	'┘',        // U L
	'┐',        // D L
	'┤',        // U D L
	'╶',        // R
	'└',        // U R
	'┌',        // D R
	'├',        // U D R
	'─',        // L R
	'┴',        // U L R
	'┬',        // D L R
	'┼',        // U D L R
}

// cellStyles groups the lipgloss styles used by the renderer.
type cellStyles struct {
	source   lipgloss.Style
	consumer lipgloss.Style
	junction lipgloss.Style
	pipe     lipgloss.Style
	empty    lipgloss.Style
}

// newCellStyles returns the render palette. With color disabled every style
// is the zero style, leaving plain runes.
func newCellStyles(color bool) cellStyles {
	if !color {
		return cellStyles{}
	}

	return cellStyles{
		source:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		consumer: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		junction: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		pipe:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}

// renderSolution draws the solved network as one box-drawing glyph per cell:
// 'S' marks the source, '●' a consumer, junction glyphs are highlighted, and
// unused cells print as faint dots.
func renderSolution(g grid.Grid, sol steiner.Solution, source grid.Coord, consumers []grid.Coord, color bool) string {
	styles := newCellStyles(color)

	consumerSet := make(map[grid.Coord]struct{}, len(consumers))
	for _, c := range consumers {
		consumerSet[c] = struct{}{}
	}

	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			c := grid.Coord{Row: row, Col: col}
			info := sol.At(c)

			var style lipgloss.Style
			var glyph string
			switch {
			case c == source:
				style, glyph = styles.source, "S"
			case hasCoord(consumerSet, c):
				style, glyph = styles.consumer, "●"
			case info.Junction:
				style, glyph = styles.junction, string(pipeRunes[info.Dirs])
			case info.Dirs != 0:
				style, glyph = styles.pipe, string(pipeRunes[info.Dirs])
			default:
				style, glyph = styles.empty, string(pipeRunes[0])
			}
			b.WriteString(style.Render(glyph))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// hasCoord reports set membership; a named helper keeps the render switch
// readable.
func hasCoord(set map[grid.Coord]struct{}, c grid.Coord) bool {
	_, ok := set[c]

	return ok
}
