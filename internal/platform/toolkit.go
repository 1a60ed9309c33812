// Package platform implements the two external-collaborator interfaces
// spec.md treats as out of scope (§6.1/§6.2): the retained-mode UI
// toolkit contract and the macOS-specific platform operations, plus the
// default implementations that let the rest of the engine run as an
// actual terminal program. Grounded on the teacher's internal/app
// (Bubble Tea program construction in cmd/sidecar/main.go) for the
// toolkit side, and authored fresh for PlatformController since the
// teacher runs in a real terminal and has no macOS panel/space/tray code
// of its own to adapt — spec.md §6.2 explicitly keeps this an
// interface-only concern.
package platform

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyModifiers mirrors §6.1's "key-down events carrying {key,
// modifiers}".
type KeyModifiers struct {
	Meta, Shift, Alt, Control bool
}

// ScrollStrategy mirrors listmodel.Strategy at the toolkit boundary so
// UIToolkit doesn't need to import internal/listmodel.
type ScrollStrategy int

const (
	ScrollNearest ScrollStrategy = iota
	ScrollTop
	ScrollCenter
)

// UIToolkit is the §6.1 contract as the engine uses it: access to the
// running program, scroll-to-item, and window background configuration.
// Lists, focus tracking and image primitives are not part of the
// interface. The default implementation (BubbleToolkit) wires this
// straight to a tea.Program; a GPU-backed retained-mode host would
// satisfy the same interface without touching the rest of the engine.
type UIToolkit interface {
	// Program returns the running tea.Program, for code that needs to
	// push messages onto the event loop from a background goroutine
	// (program.Send).
	Program() *tea.Program

	// ScrollToItem requests that a list's viewport be scrolled to make
	// index visible, honoring strategy.
	ScrollToItem(index int, strategy ScrollStrategy)

	// SetWindowBackground toggles between an opaque and a
	// blurred/vibrant window background, where the host terminal
	// supports it (see Vibrancy on PlatformController for the richer
	// macOS material choices).
	SetWindowBackground(blurred bool)
}

// BubbleToolkit is the default UIToolkit: a Bubble Tea program running
// in the host terminal.
type BubbleToolkit struct {
	program  *tea.Program
	blurred  bool
}

// NewBubbleToolkit wraps an already-constructed tea.Program.
func NewBubbleToolkit(p *tea.Program) *BubbleToolkit {
	return &BubbleToolkit{program: p}
}

func (b *BubbleToolkit) Program() *tea.Program { return b.program }

// ScrollToItem is a no-op at this layer: list viewport state lives in
// internal/listmodel, which already implements scroll-to-item
// positioning directly (§4.4); BubbleToolkit exists to satisfy the
// interface for callers that only hold a UIToolkit reference.
func (b *BubbleToolkit) ScrollToItem(index int, strategy ScrollStrategy) {}

func (b *BubbleToolkit) SetWindowBackground(blurred bool) {
	b.blurred = blurred
}
