package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderPanel renders content inside PanelActive or PanelInactive
// (picked by active), clamping each line to width/height first so a
// too-long preview line never blows out the panel's border.
//
// width and height are the panel's outer dimensions, borders included.
func RenderPanel(content string, width, height int, active bool) string {
	style := PanelInactive
	if active {
		style = PanelActive
	}

	innerWidth := width - 4   // lipgloss.RoundedBorder + Padding(0,1) on both sides
	innerHeight := height - 2 // top/bottom border
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	return style.Width(innerWidth).Height(innerHeight).Render(clampLines(content, innerWidth, innerHeight))
}

// clampLines trims content to at most height lines, each truncated to
// width visual columns.
func clampLines(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = truncateString(line, width)
		}
	}
	return strings.Join(lines, "\n")
}

// truncateString truncates a string to maxWidth visual characters.
// ANSI escape sequences are preserved but don't count toward visual width.
func truncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	var result strings.Builder
	width := 0
	i := 0

	for i < len(s) {
		// Check for ANSI escape sequence (ESC[...m pattern)
		if i < len(s)-1 && s[i] == '\x1b' && s[i+1] == '[' {
			start := i
			i += 2 // skip ESC[
			for i < len(s) && !isTerminator(s[i]) {
				i++
			}
			if i < len(s) {
				i++ // include the terminating letter
			}
			result.WriteString(s[start:i])
			continue
		}

		r, size := decodeRune(s[i:])
		charWidth := runeWidth(r)

		if width+charWidth > maxWidth {
			break
		}

		result.WriteString(s[i : i+size])
		width += charWidth
		i += size
	}

	return result.String()
}

// isTerminator returns true if b is an ANSI sequence terminator (letter).
func isTerminator(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// decodeRune decodes the first rune in s and returns it with its byte size.
func decodeRune(s string) (rune, int) {
	if len(s) == 0 {
		return 0, 0
	}
	r := rune(s[0])
	if r < 0x80 {
		return r, 1
	}
	// Multi-byte UTF-8 decoding with continuation byte validation.
	if r&0xE0 == 0xC0 && len(s) >= 2 && (s[1]&0xC0) == 0x80 {
		return rune(s[0]&0x1F)<<6 | rune(s[1]&0x3F), 2
	}
	if r&0xF0 == 0xE0 && len(s) >= 3 && (s[1]&0xC0) == 0x80 && (s[2]&0xC0) == 0x80 {
		return rune(s[0]&0x0F)<<12 | rune(s[1]&0x3F)<<6 | rune(s[2]&0x3F), 3
	}
	if r&0xF8 == 0xF0 && len(s) >= 4 && (s[1]&0xC0) == 0x80 && (s[2]&0xC0) == 0x80 && (s[3]&0xC0) == 0x80 {
		return rune(s[0]&0x07)<<18 | rune(s[1]&0x3F)<<12 | rune(s[2]&0x3F)<<6 | rune(s[3]&0x3F), 4
	}
	return r, 1 // fallback for invalid UTF-8
}

// runeWidth returns the visual width of a rune (simplified: the common
// double-width blocks, not a full Unicode width table).
func runeWidth(r rune) int {
	if r >= 0x1100 && r <= 0x115F || // Hangul Jamo
		r >= 0x2E80 && r <= 0x9FFF || // CJK
		r >= 0xAC00 && r <= 0xD7A3 || // Hangul Syllables
		r >= 0xF900 && r <= 0xFAFF || // CJK Compatibility Ideographs
		r >= 0xFE30 && r <= 0xFE6F || // CJK Compatibility Forms
		r >= 0xFF00 && r <= 0xFF60 || // Fullwidth Forms
		r >= 0x20000 && r <= 0x2FFFF || // CJK Unified Ideographs Extension
		r >= 0x1F300 && r <= 0x1F9FF || // Misc Symbols, Emoticons, Dingbats, Transport
		r >= 0x2600 && r <= 0x26FF || // Misc Symbols
		r >= 0x2700 && r <= 0x27BF { // Dingbats
		return 2
	}
	return 1
}
