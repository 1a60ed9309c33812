package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	headlessterm "github.com/danielgatis/go-headless-term"

	"github.com/scriptkit/launcher/internal/termgrid"
)

// termFPS is §4.14's terminal refresh cadence ("≈30 fps refresh timer").
const termFPS = 30

// TermFrameInterval is the tea.Tick interval matching termFPS.
const TermFrameInterval = 1000 / termFPS // milliseconds

// cellRun is a maximal horizontal span of cells sharing identical
// rendering attributes, the unit RenderTerminal emits styled text for
// instead of styling cell-by-cell (§4.14 "merging runs with identical
// attributes").
type cellRun struct {
	text  strings.Builder
	style lipgloss.Style
}

func sameAttrs(a, b *headlessterm.Cell) bool {
	return a.Fg == b.Fg && a.Bg == b.Bg && a.Flags == b.Flags
}

func styleFor(c *headlessterm.Cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.Flags&headlessterm.CellFlagBold != 0 {
		s = s.Bold(true)
	}
	if c.Flags&headlessterm.CellFlagItalic != 0 {
		s = s.Italic(true)
	}
	if c.Flags&headlessterm.CellFlagUnderline != 0 {
		s = s.Underline(true)
	}
	if c.Flags&headlessterm.CellFlagStrike != 0 {
		s = s.Strikethrough(true)
	}
	if c.Flags&headlessterm.CellFlagReverse != 0 {
		s = s.Reverse(true)
	}
	return s
}

// RenderTerminal renders a Grid's visible rows into a single string,
// batching consecutive same-attribute cells into one styled run per
// §4.14 rather than emitting one ANSI escape per cell.
func RenderTerminal(g *termgrid.Grid) string {
	cols, rows := g.Size()
	var lines []string

	for row := 0; row < rows; row++ {
		var line strings.Builder
		var run *cellRun

		flush := func() {
			if run != nil && run.text.Len() > 0 {
				line.WriteString(run.style.Render(run.text.String()))
			}
			run = nil
		}

		var prev *headlessterm.Cell
		for col := 0; col < cols; col++ {
			cell := g.Cell(row, col)
			if cell == nil {
				continue
			}
			if prev == nil || !sameAttrs(prev, cell) {
				flush()
				run = &cellRun{style: styleFor(cell)}
			}
			run.text.WriteRune(cell.Char)
			prev = cell
		}
		flush()
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}
