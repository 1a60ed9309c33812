package app

import (
	"github.com/scriptkit/launcher/internal/platform"
	"github.com/scriptkit/launcher/internal/view"
	"github.com/scriptkit/launcher/internal/window"
)

// originGrowsUpward is false because this host tracks window geometry in
// top-left, Y-down coordinates throughout (§4.12); a native AppKit-backed
// PlatformController implementation would flip this when converting to
// its bottom-left frame origin.
const originGrowsUpward = false

// hasChoicesFor reports whether the active ArgPrompt supplied a choices
// list, the one case where HeightFor's height class depends on payload
// shape rather than Kind alone (§4.12).
func hasChoicesFor(v *view.View) bool {
	return v.Kind == view.KindArgPrompt && v.Prompt.Arg != nil && len(v.Prompt.Arg.Choices) > 0
}

// syncWindowGeometry recomputes the window's target rect for the active
// view's height class (§4.12 C3) and, when it differs from winRect
// beyond the idempotency tolerance, schedules the resize through the
// deferred Coalescer so a burst of view transitions in one update cycle
// produces at most one native apply. The very first call additionally
// runs the show-sequence: position the panel on the display under the
// mouse at the eye line, then float/activate/focus it.
func (m *Model) syncWindowGeometry() {
	v := m.machine.Current()
	height := float64(window.HeightFor(v.Kind, hasChoicesFor(v)))

	if !m.winShown {
		m.showWindow(height)
		return
	}

	next := window.TopAnchoredResize(m.winRect, height, originGrowsUpward)
	if window.SameSize(next, m.winRect) {
		return
	}
	m.resizer.Request(next, func(r window.Rect) {
		m.winRect = r
	})
}

// showWindow runs §4.12's show sequence once: resolve the display under
// the mouse (falling back to a zero Display, which EyeLinePosition still
// places consistently), compute the initial eye-line rect, and apply the
// PlatformController's floating-panel show sequence.
func (m *Model) showWindow(height float64) {
	disp, _ := m.platformCtl.DisplayUnderMouse()
	rect := window.EyeLinePosition(platformToWindowDisplay(disp), window.Width, height)

	m.resizer.Request(rect, func(r window.Rect) {
		m.winRect = r
		m.platformCtl.SetWindowLevel(platform.WindowLevelFloating)
		m.platformCtl.SetMovesToActiveSpace(true)
		m.platformCtl.ActivateApp()
		m.platformCtl.FocusWindow()
	})
	m.winShown = true
}

func platformToWindowDisplay(d platform.Display) window.Display {
	return window.Display{X: d.X, Y: d.Y, Width: d.Width, Height: d.Height}
}
