package keys

import "time"

// BlinkInterval is the single process-wide cursor blink cadence (§4.13).
const BlinkInterval = 530 * time.Millisecond

// BlinkState tracks the process-wide cursor blink phase and the
// suppression conditions under which it must stop issuing invalidations:
// the window is hidden, or no input is currently focused.
type BlinkState struct {
	visible bool
	focused bool
	on      bool
}

// NewBlinkState returns a BlinkState starting in the "cursor on" phase.
func NewBlinkState() *BlinkState {
	return &BlinkState{on: true}
}

// SetWindowVisible updates whether the host window is currently shown.
func (b *BlinkState) SetWindowVisible(v bool) {
	b.visible = v
}

// SetFocused updates whether some input currently holds focus.
func (b *BlinkState) SetFocused(f bool) {
	b.focused = f
}

// Suppressed reports whether blinking (and its invalidations) should be
// suppressed right now.
func (b *BlinkState) Suppressed() bool {
	return !b.visible || !b.focused
}

// Tick advances the blink phase on a timer fire and reports whether the
// caller should issue an invalidation. While Suppressed, Tick leaves the
// phase untouched and always returns false, per §4.13's "no
// invalidations are issued" rule.
func (b *BlinkState) Tick() bool {
	if b.Suppressed() {
		return false
	}
	b.on = !b.on
	return true
}

// On reports the current blink phase (true = cursor visible).
func (b *BlinkState) On() bool {
	return b.on
}
