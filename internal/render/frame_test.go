package render

import (
	"strings"
	"testing"

	"github.com/scriptkit/launcher/internal/listmodel"
	"github.com/scriptkit/launcher/internal/protocol"
	"github.com/scriptkit/launcher/internal/view"
)

func TestFrameRendersListBodyForScriptList(t *testing.T) {
	m := listWithN(5)
	v := &view.View{Kind: view.KindScriptList, List: m}

	out := Frame(v, Deps{
		Height: 3,
		Row: func(c listmodel.Cell, idx int, selected bool) string {
			return "row"
		},
	})
	if strings.Count(out, "row") != 3 {
		t.Fatalf("expected 3 rendered rows, got %q", out)
	}
}

func TestFrameRendersMarkdownBodyForDivPrompt(t *testing.T) {
	v := &view.View{
		Kind: view.KindDivPrompt,
		Prompt: view.PromptSpec{
			Div: &protocol.Div{HTML: "hello world"},
		},
	}

	out := Frame(v, Deps{Width: 80, Markdown: NewMarkdownRenderer()})
	if !strings.Contains(out, "hello") {
		t.Fatalf("expected rendered markdown to contain source text, got %q", out)
	}
}

func TestFrameReturnsEmptyForCallerComposedPromptKinds(t *testing.T) {
	for _, k := range []view.Kind{view.KindArgPrompt, view.KindFormPrompt, view.KindFieldsPrompt, view.KindEditorPrompt, view.KindActionsDialog} {
		v := &view.View{Kind: k}
		if out := Frame(v, Deps{}); out != "" {
			t.Fatalf("kind %v: expected empty body, got %q", k, out)
		}
	}
}
