package termgrid

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// TranslateKey converts a key-down event into the byte sequence the PTY
// child expects, per §4.7 "Input translation". Grounded on
// internal/tty/keymap.go's MapKeyToTmux switch shape from the pack's
// forge tree, re-targeted from tmux key names to raw escape bytes since
// termgrid writes straight to a PTY instead of shelling out to
// `tmux send-keys`.
func TranslateKey(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte{0x09}
	case tea.KeyUp:
		return []byte("\x1b[A")
	case tea.KeyDown:
		return []byte("\x1b[B")
	case tea.KeyRight:
		return []byte("\x1b[C")
	case tea.KeyLeft:
		return []byte("\x1b[D")
	case tea.KeyHome:
		return []byte("\x1b[H")
	case tea.KeyEnd:
		return []byte("\x1b[F")
	case tea.KeyPgUp:
		return []byte("\x1b[5~")
	case tea.KeyPgDown:
		return []byte("\x1b[6~")
	case tea.KeyDelete:
		return []byte("\x1b[3~")
	case tea.KeyEscape:
		return []byte{0x1b}
	case tea.KeyF1:
		return []byte("\x1bOP")
	case tea.KeyF2:
		return []byte("\x1bOQ")
	case tea.KeyF3:
		return []byte("\x1bOR")
	case tea.KeyF4:
		return []byte("\x1bOS")
	case tea.KeyF5:
		return []byte("\x1b[15~")
	case tea.KeyF6:
		return []byte("\x1b[17~")
	case tea.KeyF7:
		return []byte("\x1b[18~")
	case tea.KeyF8:
		return []byte("\x1b[19~")
	case tea.KeyF9:
		return []byte("\x1b[20~")
	case tea.KeyF10:
		return []byte("\x1b[21~")
	case tea.KeyF11:
		return []byte("\x1b[23~")
	case tea.KeyF12:
		return []byte("\x1b[24~")
	}

	// Ctrl+A..Z -> bytes 0x01..0x1A (§4.7). Bubble Tea reports these as
	// distinct KeyType constants (KeyCtrlA..KeyCtrlZ); map by arithmetic
	// offset from KeyCtrlA rather than a 26-case switch.
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return []byte{byte(msg.Type-tea.KeyCtrlA) + 0x01}
	}

	if msg.Type == tea.KeySpace {
		return []byte{' '}
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		return []byte(string(msg.Runes))
	}
	return nil
}

// bracketedPasteStart/End wrap pasted text per §4.7 when bracketed paste
// mode is active.
const (
	bracketedPasteStart = "\x1b[200~"
	bracketedPasteEnd   = "\x1b[201~"
)

// WrapPaste wraps text in bracketed-paste markers when bracketed is true,
// otherwise returns it unchanged.
func WrapPaste(text string, bracketed bool) string {
	if !bracketed {
		return text
	}
	return bracketedPasteStart + text + bracketedPasteEnd
}

// BellFlashSequence is a debug helper producing the literal BEL byte, used
// by tests that drive a Grid directly without a real child process.
func BellFlashSequence() []byte {
	return []byte{0x07}
}

// escapeDebugString renders an escape-sequence byte slice for
// diagnostics in a readable form (e.g. "\\x1b[A").
func escapeDebugString(b []byte) string {
	out := make([]byte, 0, len(b)*4)
	for _, c := range b {
		if c == 0x1b {
			out = append(out, []byte("\\x1b")...)
			continue
		}
		out = append(out, []byte(fmt.Sprintf("%c", c))...)
	}
	return string(out)
}
