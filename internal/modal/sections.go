package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/scriptkit/launcher/internal/styles"
)

// textSection renders static, non-focusable body text.
type textSection struct {
	content string
}

// Text creates a section that renders a plain line of body text.
func Text(content string) Section {
	return textSection{content: content}
}

func (s textSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	return RenderedSection{Content: styles.Body.Render(s.content)}
}

func (s textSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	return "", nil
}

// spacerSection renders a single blank line between sections.
type spacerSection struct{}

// Spacer creates a one-line blank section for visual separation.
func Spacer() Section {
	return spacerSection{}
}

func (spacerSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	return RenderedSection{Content: " "}
}

func (spacerSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	return "", nil
}

// buttonSpec describes one button within a Buttons row.
type buttonSpec struct {
	label  string
	id     string
	danger bool
}

// BtnOption configures a buttonSpec.
type BtnOption func(*buttonSpec)

// Btn declares a button with the given label and action ID.
func Btn(label, id string, opts ...BtnOption) buttonSpec {
	b := buttonSpec{label: label, id: id}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// BtnDanger marks a button as destructive, styling it with the danger
// palette instead of the primary one.
func BtnDanger() BtnOption {
	return func(b *buttonSpec) { b.danger = true }
}

// buttonsSection renders a horizontal row of buttons.
type buttonsSection struct {
	buttons []buttonSpec
}

// Buttons creates a horizontal row of buttons, each its own focusable.
func Buttons(buttons ...buttonSpec) Section {
	return &buttonsSection{buttons: buttons}
}

func (s *buttonsSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	rendered := make([]string, 0, len(s.buttons)*2)
	focusables := make([]FocusableInfo, 0, len(s.buttons))
	offsetX := 0

	for i, b := range s.buttons {
		style := styles.Button
		switch {
		case b.id == focusID && b.danger:
			style = styles.ButtonDangerFocused
		case b.id == focusID:
			style = styles.ButtonFocused
		case b.id == hoverID && b.danger:
			style = styles.ButtonDangerHover
		case b.id == hoverID:
			style = styles.ButtonHover
		case b.danger:
			style = styles.ButtonDanger
		}

		out := style.Render(b.label)
		w := ansi.StringWidth(out)
		focusables = append(focusables, FocusableInfo{ID: b.id, OffsetX: offsetX, OffsetY: 0, Width: w, Height: 1})
		rendered = append(rendered, out)
		offsetX += w
		if i < len(s.buttons)-1 {
			rendered = append(rendered, "  ")
			offsetX += 2
		}
	}

	return RenderedSection{Content: strings.Join(rendered, ""), Focusables: focusables}
}

func (s *buttonsSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || keyMsg.Type != tea.KeyEnter {
		return "", nil
	}
	for _, b := range s.buttons {
		if b.id == focusID {
			return b.id, nil
		}
	}
	return "", nil
}

// checkboxSection renders a single toggleable checkbox.
type checkboxSection struct {
	id      string
	label   string
	checked *bool
}

// Checkbox creates a focusable checkbox bound to checked, toggled by
// Enter or Space while focused.
func Checkbox(id, label string, checked *bool) Section {
	return &checkboxSection{id: id, label: label, checked: checked}
}

func (s *checkboxSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	box := "[ ]"
	if s.checked != nil && *s.checked {
		box = "[x]"
	}

	style := styles.Body
	if s.id == focusID {
		style = styles.ListItemFocused
	} else if s.id == hoverID {
		style = styles.ListItemSelected
	}

	content := style.Render(box + " " + s.label)
	return RenderedSection{
		Content: content,
		Focusables: []FocusableInfo{{
			ID: s.id, OffsetX: 0, OffsetY: 0,
			Width: ansi.StringWidth(content), Height: 1,
		}},
	}
}

func (s *checkboxSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != s.id {
		return "", nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", nil
	}
	switch keyMsg.String() {
	case "enter", " ":
		if s.checked != nil {
			*s.checked = !*s.checked
		}
	}
	return "", nil
}

// whenSection conditionally includes an inner section in the layout,
// collapsing to zero height (and no spacer line) when cond is false.
type whenSection struct {
	cond  func() bool
	inner Section
}

// When wraps inner so it only renders/receives updates while cond() is true.
func When(cond func() bool, inner Section) Section {
	return &whenSection{cond: cond, inner: inner}
}

func (s *whenSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	if !s.cond() {
		return RenderedSection{}
	}
	return s.inner.Render(contentWidth, focusID, hoverID)
}

func (s *whenSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if !s.cond() {
		return "", nil
	}
	return s.inner.Update(msg, focusID)
}

// CustomRenderFunc renders a hand-authored section's content.
type CustomRenderFunc func(contentWidth int, focusID, hoverID string) RenderedSection

// CustomUpdateFunc handles input for a hand-authored section; may be nil
// for sections with nothing focusable.
type CustomUpdateFunc func(msg tea.Msg, focusID string) (string, tea.Cmd)

// customSection adapts a pair of render/update closures into a Section.
type customSection struct {
	render CustomRenderFunc
	update CustomUpdateFunc
}

// Custom builds a Section from render/update closures, for one-off content
// that doesn't warrant its own named section type.
func Custom(render CustomRenderFunc, update CustomUpdateFunc) Section {
	return &customSection{render: render, update: update}
}

func (s *customSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	return s.render(contentWidth, focusID, hoverID)
}

func (s *customSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if s.update == nil {
		return "", nil
	}
	return s.update(msg, focusID)
}

// inputSection renders a labeled single-line text input field.
type inputSection struct {
	id    string
	label string
	model *textinput.Model
}

// InputWithLabel creates a focusable text input field prefixed with label.
func InputWithLabel(id, label string, model *textinput.Model) Section {
	return &inputSection{id: id, label: label, model: model}
}

func (s *inputSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	content := styles.Muted.Render(s.label) + " " + s.model.View()
	return RenderedSection{
		Content: content,
		Focusables: []FocusableInfo{{
			ID: s.id, OffsetX: 0, OffsetY: 0,
			Width: ansi.StringWidth(content), Height: 1,
		}},
	}
}

func (s *inputSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != s.id {
		return "", nil
	}
	var cmd tea.Cmd
	*s.model, cmd = s.model.Update(msg)
	return "", cmd
}
