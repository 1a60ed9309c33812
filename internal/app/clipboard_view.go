package app

import (
	"github.com/scriptkit/launcher/internal/clipboard"
	"github.com/scriptkit/launcher/internal/listmodel"
)

// clipboardRow wraps a clipboard.Entry as a ClipboardHistory list item
// payload.
type clipboardRow struct {
	entry clipboard.Entry
}

func clipboardCells(rows []clipboardRow) []listmodel.Cell {
	cells := make([]listmodel.Cell, len(rows))
	for i, r := range rows {
		row := r
		cells[i] = listmodel.Cell{Item: &row}
	}
	return cells
}
