package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/huh"

	"github.com/scriptkit/launcher/internal/catalog"
	"github.com/scriptkit/launcher/internal/protocol"
)

// editorBuffer wraps bubbles/textarea for EditorPrompt, giving the full
// editing command set §4.13 documents (word/line/doc motions, selection,
// undo/redo, clipboard) for free rather than reimplementing a text
// buffer by hand.
type editorBuffer struct {
	ta       textarea.Model
	language string
}

func newEditorBuffer() editorBuffer {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Focus()
	return editorBuffer{ta: ta}
}

func (b *editorBuffer) SetValue(s string) { b.ta.SetValue(s) }
func (b *editorBuffer) Value() string     { return b.ta.Value() }
func (b *editorBuffer) SetSize(w, h int)  { b.ta.SetWidth(w); b.ta.SetHeight(h) }
func (b *editorBuffer) View() string      { return b.ta.View() }

// SetLanguage records the script-supplied language tag (§4.6 "editor"
// prompt's Language field), surfaced in the footer's language hint since
// bubbles/textarea has no per-line styling hook for live syntax color.
func (b *editorBuffer) SetLanguage(lang string) { b.language = lang }
func (b *editorBuffer) Language() string        { return b.language }

func (b *editorBuffer) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	b.ta, cmd = b.ta.Update(msg)
	return cmd
}

type singleLineBuffer struct {
	ti textinput.Model
}

func newSingleLineBuffer(placeholder string) singleLineBuffer {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	return singleLineBuffer{ti: ti}
}

func (b *singleLineBuffer) Value() string     { return b.ti.Value() }
func (b *singleLineBuffer) SetValue(s string) { b.ti.SetValue(s) }
func (b *singleLineBuffer) SetWidth(w int)    { b.ti.Width = w }
func (b *singleLineBuffer) View() string      { return b.ti.View() }

func (b *singleLineBuffer) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	b.ti, cmd = b.ti.Update(msg)
	return cmd
}

// fieldsBuffer wraps a huh.Form built from a catalog/protocol Fields
// spec (§4.6 "fields"/"form" prompt types share the same named-inputs
// shape), collecting results into a name->value map Submit encodes.
type fieldsBuffer struct {
	form   *huh.Form
	values []string // one addressable slot per field, parallel to order
	order  []string
}

// newFieldsBuffer builds a huh.Form with one huh.NewInput per field,
// grounded on the teacher's use of huh for its own interactive prompts.
// values is backed by a slice rather than a map since huh.Value binds to
// a *string address and Go map entries aren't addressable.
func newFieldsBuffer(names []string, labels []string, placeholders []string, requireds []bool) *fieldsBuffer {
	b := &fieldsBuffer{values: make([]string, len(names)), order: names}
	fields := make([]huh.Field, 0, len(names))
	for i := range names {
		input := huh.NewInput().
			Title(labels[i]).
			Placeholder(placeholders[i]).
			Value(&b.values[i])
		if requireds[i] {
			input = input.Validate(requireNonEmpty)
		}
		fields = append(fields, input)
	}
	b.form = huh.NewForm(huh.NewGroup(fields...))
	return b
}

func requireNonEmpty(s string) error {
	if s == "" {
		return errRequiredField
	}
	return nil
}

// Values returns the collected field values as a name->value map, the
// shape protocol.Submit encodes for a Fields/Form prompt.
func (b *fieldsBuffer) Values() map[string]string {
	out := make(map[string]string, len(b.order))
	for i, name := range b.order {
		out[name] = b.values[i]
	}
	return out
}

var errRequiredField = fieldsError("this field is required")

type fieldsError string

func (e fieldsError) Error() string { return string(e) }

func (b *fieldsBuffer) Update(msg tea.Msg) tea.Cmd {
	form, cmd := b.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		b.form = f
	}
	return cmd
}

func (b *fieldsBuffer) View() string { return b.form.View() }

// fieldSpecsFromCatalogInputs adapts a scriptlet's catalog.Input list to
// the parallel slices newFieldsBuffer expects, for the pre-run input
// collection a scriptlet command's `{{name}}` placeholders require
// before its body is materialized (§4.1 Inputs).
func fieldSpecsFromCatalogInputs(inputs []catalog.Input) (names, labels, placeholders []string, requireds []bool) {
	for _, in := range inputs {
		names = append(names, in.Name)
		labels = append(labels, in.Name)
		placeholders = append(placeholders, in.Placeholder)
		requireds = append(requireds, in.Required)
	}
	return
}

// fieldSpecsFromProtocol adapts a script-driven Fields/Form prompt's wire
// spec to the parallel slices newFieldsBuffer expects.
func fieldSpecsFromProtocol(fields []protocol.FieldSpec) (names, labels, placeholders []string, requireds []bool) {
	for _, f := range fields {
		names = append(names, f.Name)
		label := f.Label
		if label == "" {
			label = f.Name
		}
		labels = append(labels, label)
		placeholders = append(placeholders, f.Placeholder)
		requireds = append(requireds, f.Required)
	}
	return
}
