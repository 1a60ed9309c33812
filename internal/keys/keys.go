// Package keys implements the input/key router (C4): translating
// Bubble Tea key events into the canonical chord strings
// internal/keymap's Registry dispatches on, arrow-key alias
// normalization, filter-editing character classification, and the
// process-wide cursor blink cadence (§4.13). Grounded on
// internal/keymap/bindings.go's chord string shapes ("cmd+shift+f" style)
// and internal/tty/keymap.go's key-name-to-sequence table structure from
// the forge tree, adapted from tmux key names to Bubble Tea's KeyMsg.
package keys

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scriptkit/launcher/internal/keymap"
)

// Event is a key-down event with its modifier set, matching §4.13's
// "accepts key-down events with key and modifier set {meta, shift, alt,
// control}".
type Event struct {
	Key     string
	Meta    bool
	Shift   bool
	Alt     bool
	Control bool
}

// arrowAliases maps every recognized spelling of an arrow key to its
// canonical short form. §4.13's normalization rule requires "up"/"down"/
// "left"/"right" and "arrowup"/"arrowdown"/"arrowleft"/"arrowright" to be
// treated as equivalent; both directions fold to the short form here so
// keymap's Registry only needs to store one spelling.
var arrowAliases = map[string]string{
	"arrowup":    "up",
	"arrowdown":  "down",
	"arrowleft":  "left",
	"arrowright": "right",
}

// Normalize canonicalizes a raw key name, folding arrow-key aliases to
// their short form. Unrecognized names pass through unchanged.
func Normalize(key string) string {
	if canon, ok := arrowAliases[strings.ToLower(key)]; ok {
		return canon
	}
	return key
}

// teaKeyNames maps Bubble Tea's named (non-rune) key types to the base
// key name used in chord strings.
var teaKeyNames = map[tea.KeyType]string{
	tea.KeyEnter:     "enter",
	tea.KeyEscape:    "esc",
	tea.KeyBackspace: "backspace",
	tea.KeyTab:       "tab",
	tea.KeyShiftTab:  "shift+tab",
	tea.KeySpace:     "space",
	tea.KeyUp:        "up",
	tea.KeyDown:      "down",
	tea.KeyLeft:      "left",
	tea.KeyRight:     "right",
	tea.KeyHome:      "home",
	tea.KeyEnd:       "end",
	tea.KeyPgUp:      "pgup",
	tea.KeyPgDown:    "pgdown",
	tea.KeyDelete:    "delete",
	tea.KeyCtrlA:     "a",
	tea.KeyCtrlC:     "c",
	tea.KeyCtrlD:     "d",
	tea.KeyCtrlE:     "e",
	tea.KeyCtrlN:     "n",
	tea.KeyCtrlP:     "p",
	tea.KeyCtrlU:     "u",
}

// ctrlKeys is the set of KeyTypes that imply the control modifier rather
// than being spelled out in a chord literal (Bubble Tea reports Ctrl+A
// as its own KeyType, not as KeyRunes + a modifier flag).
var ctrlKeys = map[tea.KeyType]bool{
	tea.KeyCtrlA: true, tea.KeyCtrlC: true, tea.KeyCtrlD: true,
	tea.KeyCtrlE: true, tea.KeyCtrlN: true, tea.KeyCtrlP: true,
	tea.KeyCtrlU: true,
}

// FromTeaMsg converts a tea.KeyMsg into an Event. meta/alt come from the
// host's reported modifiers (Bubble Tea folds "cmd" into Alt on
// non-macOS terminals; the renderer's platform layer is expected to
// remap where needed — out of scope here, see §6.2).
func FromTeaMsg(msg tea.KeyMsg) Event {
	if ctrlKeys[msg.Type] {
		return Event{Key: teaKeyNames[msg.Type], Control: true}
	}
	if name, ok := teaKeyNames[msg.Type]; ok {
		return Event{Key: name}
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		return Event{Key: string(msg.Runes), Alt: msg.Alt}
	}
	return Event{Key: msg.String(), Alt: msg.Alt}
}

// Chord renders an Event as the "mod+mod+key" string keymap.Registry
// keys its bindings by, with arrow aliases already folded by Normalize.
func Chord(ev Event) string {
	var b strings.Builder
	if ev.Meta {
		b.WriteString("cmd+")
	}
	if ev.Control {
		b.WriteString("ctrl+")
	}
	if ev.Alt {
		b.WriteString("alt+")
	}
	if ev.Shift {
		b.WriteString("shift+")
	}
	b.WriteString(Normalize(ev.Key))
	return b.String()
}

// Router dispatches normalized chords against a keymap.Registry for a
// given view context.
type Router struct {
	registry *keymap.Registry
}

// NewRouter wraps an already-populated Registry.
func NewRouter(registry *keymap.Registry) *Router {
	return &Router{registry: registry}
}

// Dispatch resolves a tea.KeyMsg to a command name for the given
// context, or ok=false if no binding matches.
func (r *Router) Dispatch(context string, msg tea.KeyMsg) (command string, ok bool) {
	chord := Chord(FromTeaMsg(msg))
	return r.registry.Lookup(context, chord)
}

// IsFilterChar reports whether r should be appended to a list view's
// filter string: printable characters plus space, '-', and '_' (§4.13
// "Filter editing").
func IsFilterChar(r rune) bool {
	if r == ' ' || r == '-' || r == '_' {
		return true
	}
	return r >= 0x20 && r != 0x7f
}
