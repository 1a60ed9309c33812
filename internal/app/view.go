package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scriptkit/launcher/internal/catalog"
	"github.com/scriptkit/launcher/internal/listmodel"
	"github.com/scriptkit/launcher/internal/render"
	"github.com/scriptkit/launcher/internal/styles"
	"github.com/scriptkit/launcher/internal/toast"
	"github.com/scriptkit/launcher/internal/ui"
	"github.com/scriptkit/launcher/internal/view"
)

// View composes the current frame: a header (title/filter), the body
// C5's Frame renders for list/markdown/terminal kinds (or a
// caller-composed widget for the rest), an optional toast, and a footer
// hint line (§4.14).
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.machine.Current()

	// ConfirmDialog composites over the frame captured when it opened
	// rather than the usual header/body/footer stack, since that frame
	// already carries its own (now dimmed) header and footer.
	if v.Kind == view.KindConfirmDialog && m.confirmModal != nil {
		modalBody := m.confirmModal.Render(m.width, m.height, m.mouseHandler)
		return ui.OverlayModal(m.confirmBackdrop, modalBody, m.width, m.height)
	}

	var body string

	switch v.Kind {
	case view.KindArgPrompt:
		if hasChoicesFor(v) {
			body = m.renderListFrame(v)
		} else {
			body = m.arg.View()
		}
	case view.KindEditorPrompt:
		body = m.editor.View()
	case view.KindFormPrompt, view.KindFieldsPrompt:
		if m.fields != nil {
			body = m.fields.View()
		}
	case view.KindActionsDialog:
		if m.actionsModal != nil {
			body = m.actionsModal.Render(m.width, m.height, m.mouseHandler)
		}
	default:
		body = m.renderListFrame(v)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(v))
	b.WriteString("\n")
	b.WriteString(body)
	if m.toastMsg != nil {
		b.WriteString("\n")
		b.WriteString(m.renderToast(*m.toastMsg))
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter(v))
	return b.String()
}

// renderListFrame composites the virtualized-list/markdown/terminal
// frame C5 draws for every list-shaped view, including an ArgPrompt that
// supplied Choices (§4.12): a fixed-height row protocol with the
// renderer querying only the visible index range.
func (m *Model) renderListFrame(v *view.View) string {
	frameHeight := m.bodyHeight() - 2
	if frameHeight < 1 {
		frameHeight = 1
	}
	body := render.Frame(v, render.Deps{
		Pal:      m.palette,
		Row:      m.rowRenderer(v.Kind),
		Markdown: m.markdown,
		Grid:     m.termGrid,
		Width:    m.width - 4,
		Height:   frameHeight,
		ListTop:  m.listTop(v),
	})
	return styles.RenderPanel(body, m.width, m.bodyHeight(), m.orchestrator.Current() != nil)
}

func (m *Model) bodyHeight() int {
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) listTop(v *view.View) int {
	if v.List == nil {
		return 0
	}
	return render.ViewportFor(v.List.Selected, 0, m.bodyHeight(), len(v.List.Grouped))
}

func (m *Model) renderHeader(v *view.View) string {
	logo := styles.Logo.Render("⚡ ")
	title := v.Kind.String()
	if v.List != nil && v.List.Filter != "" {
		return logo + m.palette.Header.Render(title+" > ") + m.palette.Normal.Render(v.List.Filter) + blinkCursor(m.blink.On())
	}
	return logo + m.palette.Header.Render(title)
}

func blinkCursor(on bool) string {
	if on {
		return "█"
	}
	return " "
}

func (m *Model) renderFooter(v *view.View) string {
	var hints []string
	switch v.Kind {
	case view.KindScriptList:
		hints = []string{"enter select", "cmd-k actions", "esc quit"}
	case view.KindActionsDialog:
		hints = []string{"enter run", "esc close"}
	case view.KindTermPrompt:
		hints = []string{"esc esc exit"}
	case view.KindEditorPrompt:
		hints = []string{"cmd-enter submit", "esc back"}
		if lang := m.editor.Language(); lang != "" {
			hints = append(hints, lang)
		}
	default:
		hints = []string{"enter submit", "esc back"}
	}
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = styles.KeyHint.Render(h)
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderToast(t toast.Msg) string {
	style := styles.ToastSuccess
	switch t.Variant {
	case toast.Warning:
		style = styles.ToastWarning
	case toast.Error:
		style = styles.ToastError
	}
	return style.Render(t.Text)
}

// kindGroupCount is the number of catalog.Kind-derived header groups
// groupedCells can ever emit (see internal/app/search.go's groupHeader),
// used to position each group's tab within the gradient RenderTab paints.
const kindGroupCount = 5

// rowRenderer returns the RowRenderer for whichever list-shaped kind is
// active; each payload type the list carries gets its own one-line
// rendering.
func (m *Model) rowRenderer(kind view.Kind) render.RowRenderer {
	headerIdx := 0
	return func(cell listmodel.Cell, idx int, selected bool) string {
		if cell.IsHeader {
			tab := styles.RenderTab(cell.Header, headerIdx, kindGroupCount, true)
			headerIdx++
			return tab
		}
		style := m.palette.Normal
		if selected {
			style = m.palette.Selected
		}

		switch kind {
		case view.KindArgPrompt:
			row, ok := cell.Item.(*argChoiceRow)
			if !ok {
				return ""
			}
			return style.Render(row.choice.Name)

		case view.KindSelectPrompt:
			row, ok := cell.Item.(*selectRow)
			if !ok {
				return ""
			}
			mark := " "
			if row.checked {
				mark = "x"
			}
			return style.Render(fmt.Sprintf("[%s] %s", mark, row.opt.Name))

		case view.KindClipboardHistory:
			row, ok := cell.Item.(*clipboardRow)
			if !ok {
				return ""
			}
			return style.Render(clipboardPreview(row))

		default:
			e, ok := cell.Item.(catalog.Entry)
			if !ok {
				return ""
			}
			status := ""
			if e.ID == m.lastLaunchedID {
				if m.orchestrator.Current() != nil {
					status = styles.ScriptStatusRunning.Render("● ")
				} else {
					status = styles.ScriptStatusDone.Render("✓ ")
				}
			}
			name := renderMatchedName(e.Name, cell.MatchRanges, style, m.palette.Match)
			return status + name + "  " + m.palette.Muted.Render(e.Description)
		}
	}
}

// renderMatchedName renders name rune-by-rune, swapping in matchStyle for
// runes covered by ranges (L3's fuzzy.MatchRange highlight indices) and
// base otherwise, so a query's matched characters stand out in the list
// the way §4.3's SearchResult.highlight indices are meant to be used.
func renderMatchedName(name string, ranges []listmodel.MatchRange, base, matchStyle lipgloss.Style) string {
	runes := []rune(name)
	if len(ranges) == 0 {
		return base.Render(name)
	}
	var b strings.Builder
	for i, r := range runes {
		if inMatchRange(i, ranges) {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

func inMatchRange(idx int, ranges []listmodel.MatchRange) bool {
	for _, r := range ranges {
		if idx >= r.Start && idx < r.End {
			return true
		}
	}
	return false
}

func clipboardPreview(row *clipboardRow) string {
	if row.entry.Type.String() == "image" {
		return "[image]"
	}
	text := row.entry.Content
	if len(text) > 80 {
		text = text[:80] + "..."
	}
	return strings.ReplaceAll(text, "\n", " ")
}
