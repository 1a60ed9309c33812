package render

import (
	"strings"

	"github.com/scriptkit/launcher/internal/listmodel"
)

// RowRenderer renders one cell of a virtualized list into a single
// display line; idx is the cell's absolute index in m.Grouped, selected
// reports whether idx == m.Selected.
type RowRenderer func(cell listmodel.Cell, idx int, selected bool) string

// RenderList renders only the [top, top+height) slice of m.Grouped -
// §4.14's "the renderer queries only the visible index range each
// frame" - joining each row with row.
func RenderList(m *listmodel.Model, top, height int, row RowRenderer) string {
	if height <= 0 || len(m.Grouped) == 0 {
		return ""
	}
	end := top + height
	if end > len(m.Grouped) {
		end = len(m.Grouped)
	}
	if top < 0 {
		top = 0
	}
	if top >= end {
		return ""
	}

	var b strings.Builder
	for i := top; i < end; i++ {
		if i > top {
			b.WriteByte('\n')
		}
		b.WriteString(row(m.Grouped[i], i, i == m.Selected))
	}
	return b.String()
}

// ViewportFor computes the [top, top+height) window that keeps
// selected visible: if selected falls outside [curTop, curTop+height),
// it scrolls just far enough to put selected on the nearest edge;
// otherwise it keeps curTop, clamped so the window does not run past
// total.
func ViewportFor(selected, curTop, height, total int) int {
	if height <= 0 {
		return 0
	}
	if selected < curTop {
		return selected
	}
	if selected >= curTop+height {
		return selected - height + 1
	}
	maxTop := total - height
	if maxTop < 0 {
		maxTop = 0
	}
	if curTop > maxTop {
		return maxTop
	}
	return curTop
}
