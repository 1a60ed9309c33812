package render

import (
	"strings"

	"github.com/scriptkit/launcher/internal/termgrid"
	"github.com/scriptkit/launcher/internal/view"
)

// Deps bundles the per-frame collaborators Frame composes (§4.14:
// "Given the current AppView and shared theme snapshot, produce a
// frame"). Row is required for every list-shaped view; Markdown and
// Grid are only consulted for DivPrompt/TermPrompt respectively, so a
// caller that never shows those views may leave them nil.
type Deps struct {
	Pal      Palette
	Row      RowRenderer
	Markdown *MarkdownRenderer
	Grid     *termgrid.Grid
	Width    int
	Height   int
	ListTop  int
}

// Frame renders the body of the current View per its Kind, dispatching
// to the renderer each view kind actually needs: a virtualized list for
// every list-shaped view (including an ArgPrompt that supplied Choices,
// §4.12), glamour markdown for DivPrompt, the batched cell renderer for
// TermPrompt. Kinds with no list/markdown/terminal body of their own
// (a choiceless ArgPrompt, FormPrompt, FieldsPrompt, EditorPrompt,
// ActionsDialog) return "" - their body is a caller-composed widget
// (huh form, text input) layered on top of this frame, not something
// C5 owns.
func Frame(v *view.View, d Deps) string {
	switch v.Kind {
	case view.KindScriptList, view.KindSelectPrompt, view.KindClipboardHistory,
		view.KindAppLauncher, view.KindWindowSwitcher, view.KindArgPrompt:
		if v.List == nil || d.Row == nil {
			return ""
		}
		return RenderList(v.List, d.ListTop, d.Height, d.Row)

	case view.KindDivPrompt:
		if d.Markdown == nil || v.Prompt.Div == nil {
			return ""
		}
		return strings.Join(d.Markdown.Render(v.Prompt.Div.HTML, d.Width), "\n")

	case view.KindTermPrompt:
		if d.Grid == nil {
			return ""
		}
		return RenderTerminal(d.Grid)

	default:
		return ""
	}
}
