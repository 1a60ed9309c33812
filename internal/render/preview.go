package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/scriptkit/launcher/internal/highlight"
	"github.com/scriptkit/launcher/internal/styles"
)

// RenderPreview highlights content (scoped to lineRange) and joins it
// into a single styled string for the preview pane. Caching keyed by
// (path, line range, scoped content) is L5's own responsibility
// (internal/highlight.Highlighter);
// this just adapts its Line/Segment output into lipgloss-rendered text.
// If width is > 0, each rendered line is cell-width-wrapped to it first.
func RenderPreview(h *highlight.Highlighter, path, content string, lineRange highlight.LineRange, width int) (string, error) {
	lines, err := h.Highlight(path, content, lineRange)
	if err != nil {
		return "", err
	}
	var out []string
	for _, line := range lines {
		var b strings.Builder
		for _, seg := range line.Segments {
			style := lipgloss.NewStyle()
			if seg.Color != "" {
				style = style.Foreground(lipgloss.Color(seg.Color))
			}
			if seg.Bold {
				style = style.Bold(true)
			}
			if seg.Italic {
				style = style.Italic(true)
			}
			b.WriteString(style.Render(seg.Text))
		}
		gutter := styles.PreviewLineNumber.Render(strconv.Itoa(line.Number))
		rendered := gutter + " " + b.String()
		if width > 0 {
			rendered = cellbuf.Wrap(rendered, width, "")
		}
		out = append(out, rendered)
	}
	return strings.Join(out, "\n"), nil
}
