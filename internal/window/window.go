// Package window implements the window controller (C3): view-type to
// height-class mapping, top-anchored resize math, eye-line positioning,
// and deferred-resize frame coalescing (§4.12). Grounded on the
// teacher's internal/palette/palette.go SetSize (reserve-space-then-clamp
// sizing) and internal/modal/layout.go's clamp/measure helpers, adapted
// from layout-within-a-fixed-terminal-frame to host-window geometry.
package window

import (
	"time"

	"github.com/scriptkit/launcher/internal/view"
)

// Width is the fixed panel width (§4.12 "Fixed width W (e.g., 750)").
const Width = 750

// Height classes (§4.12).
const (
	HeightMin      = 120
	HeightStandard = 500
	HeightMax      = 700
)

// resizeDefer is how long a requested resize is held before being
// applied, to avoid reentrancy with the render cycle (§4.12 "≈16ms").
const resizeDefer = 16 * time.Millisecond

// eyeLineFraction is the fraction of display height the window's top
// edge is positioned at on show (§4.12 step 2).
const eyeLineFraction = 0.14

// HeightFor maps an AppView kind to its height class. hasChoices only
// matters for ArgPrompt, whose height depends on whether the script
// supplied a choices list (§4.12).
func HeightFor(kind view.Kind, hasChoices bool) int {
	switch kind {
	case view.KindArgPrompt:
		if hasChoices {
			return HeightStandard
		}
		return HeightMin
	case view.KindScriptList, view.KindActionsDialog, view.KindDivPrompt,
		view.KindFormPrompt, view.KindFieldsPrompt, view.KindSelectPrompt,
		view.KindClipboardHistory, view.KindAppLauncher, view.KindWindowSwitcher:
		return HeightStandard
	case view.KindEditorPrompt, view.KindTermPrompt:
		return HeightMax
	}
	return HeightStandard
}

// Rect is a window's frame in the host's coordinate space (origin is the
// top-left corner; Y grows downward, matching the "top edge" language of
// §4.12).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Display describes the screen a window should be positioned on.
type Display struct {
	X, Y          float64
	Width, Height float64
}

// EyeLinePosition centers a window of size (w, h) horizontally on disp
// and places its top edge at eyeLineFraction of disp's height (§4.12 show
// step 2).
func EyeLinePosition(disp Display, w, h float64) Rect {
	x := disp.X + (disp.Width-w)/2
	y := disp.Y + disp.Height*(eyeLineFraction*100)/100
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// resizeEpsilon is the "idempotent within 1px" tolerance (§4.12).
const resizeEpsilon = 1.0

// TopAnchoredResize computes the new Rect for a height change from
// cur.Height to newHeight, keeping the top edge fixed (§4.12: "the top
// edge stays fixed by adjusting origin.y opposite to the height delta").
// originGrowsUpward selects the coordinate convention: macOS AppKit's
// frame origin is the bottom-left corner with Y increasing upward, so
// holding top = Y+Height fixed means Y must shrink by the same delta
// Height grows by. A top-left, Y-down convention needs no origin
// adjustment at all; pass false there.
func TopAnchoredResize(cur Rect, newHeight float64, originGrowsUpward bool) Rect {
	if abs(newHeight-cur.Height) < resizeEpsilon {
		return cur
	}
	out := cur
	out.Height = newHeight
	if originGrowsUpward {
		delta := newHeight - cur.Height
		out.Y = cur.Y - delta
	}
	return out
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// SameSize reports whether two rects are equal within the 1px
// idempotency tolerance, implementing §4.12's "skipped-if-equal rule" so
// callers can avoid issuing a native resize for a no-op change.
func SameSize(a, b Rect) bool {
	return abs(a.Width-b.Width) < resizeEpsilon && abs(a.Height-b.Height) < resizeEpsilon
}

// Coalescer defers a resize request by resizeDefer, replacing any
// pending request with the latest one, so bursts of rapid view changes
// produce at most one native resize per frame.
type Coalescer struct {
	timer   *time.Timer
	pending *Rect
}

// NewCoalescer returns an idle Coalescer.
func NewCoalescer() *Coalescer {
	return &Coalescer{}
}

// Request schedules apply(rect) to run after resizeDefer, cancelling any
// previously scheduled call.
func (c *Coalescer) Request(rect Rect, apply func(Rect)) {
	r := rect
	c.pending = &r
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(resizeDefer, func() {
		if c.pending != nil {
			apply(*c.pending)
			c.pending = nil
		}
	})
}

// Stop cancels any pending deferred resize, e.g. on window hide.
func (c *Coalescer) Stop() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.pending = nil
}
