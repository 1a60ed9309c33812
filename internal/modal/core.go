package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Variant selects the modal's accent color (border, title) and is also
// consulted by callers deciding which button style to pair with it.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDanger
	VariantWarning
	VariantInfo
	// VariantRunning marks a dialog that's interrupting a still-running
	// script (e.g. confirming exit while a prompt's subprocess hasn't
	// exited yet) - same family as VariantWarning but with its own
	// hint text, since "this will stop the running script" reads
	// differently than a generic warning.
	VariantRunning
)

// DefaultWidth is used when a modal is created without WithWidth.
const DefaultWidth = 50

// MinModalWidth is the smallest width a modal will shrink to on a narrow
// screen before content starts clipping.
const MinModalWidth = 30

// ModalPadding is the combined border + inner padding columns subtracted
// from a modal's total width to get its content width (border 2, padding 4).
const ModalPadding = 6

// FocusableInfo describes one focusable/clickable element within a
// section's rendered content, in section-local coordinates.
type FocusableInfo struct {
	ID      string
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// RenderedSection is what a Section.Render call returns: its content plus
// the focusable regions found inside it, in section-local coordinates.
type RenderedSection struct {
	Content    string
	Focusables []FocusableInfo
}

// Section is one piece of a modal's body - a line of text, a button row,
// a scrollable list, a form field. Modal composes sections and handles
// focus cycling, scrolling, and hit-region registration on their behalf.
type Section interface {
	Render(contentWidth int, focusID, hoverID string) RenderedSection
	Update(msg tea.Msg, focusID string) (string, tea.Cmd)
}

// Option configures a Modal at construction time.
type Option func(*Modal)

// WithWidth overrides the modal's target width (clamped to the screen and
// MinModalWidth at render time).
func WithWidth(w int) Option {
	return func(m *Modal) { m.width = w }
}

// WithVariant sets the modal's accent variant.
func WithVariant(v Variant) Option {
	return func(m *Modal) { m.variant = v }
}

// WithHints shows or hides the trailing keyboard-hint line.
func WithHints(show bool) Option {
	return func(m *Modal) { m.showHints = show }
}

// WithPrimaryAction sets the action ID returned by Enter when the focused
// element itself doesn't produce one.
func WithPrimaryAction(action string) Option {
	return func(m *Modal) { m.primaryAction = action }
}

// WithCloseOnBackdropClick controls whether clicking outside the modal
// dismisses it (returns "cancel" from HandleMouse).
func WithCloseOnBackdropClick(close bool) Option {
	return func(m *Modal) { m.closeOnBackdrop = close }
}

// measureHeight returns the number of lines in content, treating a single
// trailing newline as not starting a new line and an all-newline string as
// empty.
func measureHeight(content string) int {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}
