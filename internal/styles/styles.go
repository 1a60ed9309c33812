// Package styles holds the launcher's color palette and lipgloss style
// vocabulary (§4.14's "pre-computed frame palette"): one process-wide set
// of style variables, rebuilt in place whenever a theme is applied so
// every already-constructed lipgloss.Style var picks up the new colors
// without call sites needing to rebuild anything themselves.
package styles

import "github.com/charmbracelet/lipgloss"

// RGB is a plain 0-255 (stored as float64 for cheap gradient/contrast
// math) additive color, used by the tab-gradient renderer and the WCAG
// contrast checker below.
type RGB struct {
	R, G, B float64
}

// HexToRGB parses a "#RRGGBB" string into an RGB. Malformed input yields
// the zero value (black) rather than an error, matching the
// lipgloss.Color philosophy of "best effort, never panic" for theme data
// that already passed IsValidHexColor.
func HexToRGB(hex string) RGB {
	if len(hex) != 7 || hex[0] != '#' {
		return RGB{}
	}
	return RGB{
		R: float64(hexByte(hex[1], hex[2])),
		G: float64(hexByte(hex[3], hex[4])),
		B: float64(hexByte(hex[5], hex[6])),
	}
}

func hexByte(hi, lo byte) uint8 {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(b byte) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	default:
		return 0
	}
}

// Color palette - Launcher Dark (the scriptkit/launcher default theme).
// Script Kit's brand yellow anchors the active/selected states; the rest
// of the palette is a neutral slate so the yellow reads as an accent, not
// wallpaper.
var (
	// Brand colors
	Primary   = lipgloss.Color("#FACC15") // Script Kit yellow
	Secondary = lipgloss.Color("#38BDF8") // Sky blue
	Accent    = lipgloss.Color("#A78BFA") // Violet

	// Status colors
	Success = lipgloss.Color("#22C55E")
	Warning = lipgloss.Color("#F59E0B")
	Error   = lipgloss.Color("#F87171")
	Info    = lipgloss.Color("#38BDF8")

	// Text colors
	TextPrimary   = lipgloss.Color("#F8FAFC")
	TextSecondary = lipgloss.Color("#94A3B8")
	TextMuted     = lipgloss.Color("#64748B")
	TextSubtle    = lipgloss.Color("#475569")

	// Background colors
	BgPrimary   = lipgloss.Color("#0F172A")
	BgSecondary = lipgloss.Color("#1E293B")
	BgTertiary  = lipgloss.Color("#334155")
	BgOverlay   = lipgloss.Color("#00000080")

	// Border colors
	BorderNormal = lipgloss.Color("#334155")
	BorderActive = lipgloss.Color("#FACC15")
	BorderMuted  = lipgloss.Color("#1E293B")

	// Additional themeable colors
	TextHighlight         = lipgloss.Color("#E2E8F0")
	ButtonHoverColor      = lipgloss.Color("#CA8A04")
	TabTextInactiveColor  = lipgloss.Color("#0F172A")
	LinkColor             = lipgloss.Color("#38BDF8")
	ToastSuccessTextColor = lipgloss.Color("#052E16")
	ToastErrorTextColor   = lipgloss.Color("#450A0A")

	// Third-party theme names (updated by ApplyTheme)
	CurrentSyntaxTheme   = "monokai"
	CurrentMarkdownTheme = "dark"
)

// Tab theme state (updated by ApplyTheme), driving the §4.1 kind-group
// header tabs RenderTab paints in the script list.
var (
	CurrentTabStyle  = "scriptkit"
	CurrentTabColors = []RGB{HexToRGB("#FACC15"), HexToRGB("#38BDF8"), HexToRGB("#A78BFA"), HexToRGB("#22C55E")}
)

// Panel styles
var (
	// Active panel with highlighted border
	PanelActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderActive).
			Padding(0, 1)

	// Inactive panel with subtle border
	PanelInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Padding(0, 1)

	// Panel header
	PanelHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary).
			MarginBottom(1)

	// Panel with no border
	PanelNoBorder = lipgloss.NewStyle().
			Padding(0, 1)
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextHighlight)

	Body = lipgloss.NewStyle().
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Subtle = lipgloss.NewStyle().
		Foreground(TextSubtle)

	Code = lipgloss.NewStyle().
		Foreground(Accent)

	Link = lipgloss.NewStyle().
		Foreground(LinkColor).
		Underline(true)

	// KeyHint renders a single "key action" chip in the footer hint line
	// (§4.14), e.g. "esc" or "cmd-k".
	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)

	// Logo renders the launcher's header glyph.
	Logo = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	// QueryMatch highlights the runes of a list entry's name that the
	// current filter matched (§4.3's SearchResult highlight indices).
	QueryMatch = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// Script run-status styles (§4.6 "a script is running / finished"),
// replacing the teacher's git-status family with the two states the
// launcher's own list actually needs.
var (
	ScriptStatusRunning = lipgloss.NewStyle().
				Foreground(Info).
				Bold(true)

	ScriptStatusDone = lipgloss.NewStyle().
				Foreground(Success)

	// ToastSuccess and ToastError style a single-line toast (§4.13).
	ToastSuccess = lipgloss.NewStyle().
			Background(Success).
			Foreground(ToastSuccessTextColor).
			Bold(true).
			Padding(0, 1)

	ToastWarning = lipgloss.NewStyle().
			Background(Warning).
			Foreground(ToastErrorTextColor).
			Bold(true).
			Padding(0, 1)

	ToastError = lipgloss.NewStyle().
			Background(Error).
			Foreground(ToastErrorTextColor).
			Bold(true).
			Padding(0, 1)
)

// List item styles
var (
	ListItemNormal = lipgloss.NewStyle().
			Foreground(TextPrimary)

	ListItemSelected = lipgloss.NewStyle().
				Foreground(TextPrimary).
				Background(BgTertiary)

	ListItemFocused = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(Primary)

	ListCursor = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// PreviewLineNumber renders the gutter line number in a highlighted file
// preview (§4.5), the one survivor of the teacher's file-browser family -
// the launcher has no file browser, but C5's preview pane still needs a
// gutter style.
var PreviewLineNumber = lipgloss.NewStyle().
	Foreground(TextMuted).
	Width(5).
	AlignHorizontal(lipgloss.Right)

// TabTextActive is the text color for active tabs
var TabTextActive = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true)

// TabTextInactive is the text color for inactive tabs
var TabTextInactive = lipgloss.NewStyle().
	Foreground(TabTextInactiveColor)

// Footer and header
var (
	Footer = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgSecondary)

	Header = lipgloss.NewStyle().
		Background(BgSecondary)
)

// Modal styles
var (
	ModalOverlay = lipgloss.NewStyle().
			Background(BgOverlay)

	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Background(BgSecondary).
			Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Bold(true).
			MarginBottom(1)
)

// Button styles
var (
	Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgTertiary).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(BgPrimary).
			Background(Primary).
			Padding(0, 2).
			Bold(true)

	ButtonHover = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(ButtonHoverColor).
			Padding(0, 2)

	// Danger button styles (for destructive actions like clearing clipboard history)
	ButtonDanger = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FCA5A5")).
			Background(lipgloss.Color("#7F1D1D")).
			Padding(0, 2)

	ButtonDangerFocused = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#DC2626")).
				Padding(0, 2).
				Bold(true)

	ButtonDangerHover = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#B91C1C")).
				Padding(0, 2)
)

// RenderTab renders a kind-group header label using the current tab
// theme. tabIndex is the 0-based index of this group among the groups
// visible in the current frame, totalTabs is that frame's group count.
func RenderTab(label string, tabIndex, totalTabs int, isActive bool) string {
	style := CurrentTabStyle
	colors := CurrentTabColors

	// Check if style is a preset name
	if preset := GetTabPreset(style); preset != nil {
		style = preset.Style
		if len(preset.Colors) > 0 {
			colors = parseTabColors(preset.Colors)
		}
	}

	switch style {
	case "gradient", "scriptkit":
		return renderGradientTab(label, tabIndex, totalTabs, isActive, colors)
	case "per-tab":
		return renderPerTabColor(label, tabIndex, isActive, colors)
	case "solid":
		return renderSolidTab(label, isActive)
	case "minimal":
		return renderMinimalTab(label, isActive)
	default:
		return renderGradientTab(label, tabIndex, totalTabs, isActive, colors)
	}
}

// renderGradientTab renders a tab with per-character gradient coloring.
func renderGradientTab(label string, tabIndex, totalTabs int, isActive bool, colors []RGB) string {
	if totalTabs == 0 {
		totalTabs = 1
	}

	tabWidth := 1.0 / float64(totalTabs)
	startPos := float64(tabIndex) * tabWidth
	endPos := startPos + tabWidth

	padded := " " + label + " "
	chars := []rune(padded)
	result := ""

	for i, ch := range chars {
		charPos := startPos + (endPos-startPos)*float64(i)/float64(len(chars))
		r, g, b := interpolateColors(charPos, colors)

		if !isActive {
			r = uint8(float64(r)*0.35 + 30)
			g = uint8(float64(g)*0.35 + 30)
			b = uint8(float64(b)*0.35 + 30)
		}

		bg := lipgloss.Color(sprintf("#%02x%02x%02x", r, g, b))
		var style lipgloss.Style
		if isActive {
			style = lipgloss.NewStyle().Background(bg).Foreground(BgPrimary).Bold(true)
		} else {
			style = lipgloss.NewStyle().Background(bg).Foreground(TextSecondary)
		}
		result += style.Render(string(ch))
	}

	return result
}

// renderPerTabColor renders a tab with a single solid color from the colors array.
func renderPerTabColor(label string, tabIndex int, isActive bool, colors []RGB) string {
	if len(colors) == 0 {
		return renderSolidTab(label, isActive)
	}

	color := colors[tabIndex%len(colors)]
	r, g, b := uint8(color.R), uint8(color.G), uint8(color.B)

	if !isActive {
		r = uint8(float64(r)*0.35 + 30)
		g = uint8(float64(g)*0.35 + 30)
		b = uint8(float64(b)*0.35 + 30)
	}

	bg := lipgloss.Color(sprintf("#%02x%02x%02x", r, g, b))
	padded := " " + label + " "

	var style lipgloss.Style
	if isActive {
		style = lipgloss.NewStyle().Background(bg).Foreground(BgPrimary).Bold(true)
	} else {
		style = lipgloss.NewStyle().Background(bg).Foreground(TextSecondary)
	}

	return style.Render(padded)
}

// renderSolidTab renders a tab with the theme's primary/tertiary colors.
func renderSolidTab(label string, isActive bool) string {
	padded := " " + label + " "

	var style lipgloss.Style
	if isActive {
		style = lipgloss.NewStyle().Background(Primary).Foreground(BgPrimary).Bold(true)
	} else {
		style = lipgloss.NewStyle().Background(BgTertiary).Foreground(TextSecondary)
	}

	return style.Render(padded)
}

// renderMinimalTab renders a tab with no background, using underline for active.
func renderMinimalTab(label string, isActive bool) string {
	padded := " " + label + " "

	var style lipgloss.Style
	if isActive {
		style = lipgloss.NewStyle().Foreground(Primary).Bold(true).Underline(true)
	} else {
		style = lipgloss.NewStyle().Foreground(TextMuted)
	}

	return style.Render(padded)
}

// interpolateColors returns RGB for a position 0.0-1.0 across the color array
func interpolateColors(pos float64, colors []RGB) (uint8, uint8, uint8) {
	if len(colors) < 2 {
		if len(colors) == 1 {
			return uint8(colors[0].R), uint8(colors[0].G), uint8(colors[0].B)
		}
		return 128, 128, 128
	}

	scaled := pos * float64(len(colors)-1)
	idx := int(scaled)
	if idx >= len(colors)-1 {
		idx = len(colors) - 2
	}
	frac := scaled - float64(idx)

	c1, c2 := colors[idx], colors[idx+1]
	r := uint8(c1.R + frac*(c2.R-c1.R))
	g := uint8(c1.G + frac*(c2.G-c1.G))
	b := uint8(c1.B + frac*(c2.B-c1.B))

	return r, g, b
}

// sprintf is a local helper to avoid importing fmt just for color formatting
func sprintf(format string, a ...interface{}) string {
	if format == "#%02x%02x%02x" && len(a) == 3 {
		r, g, b := a[0].(uint8), a[1].(uint8), a[2].(uint8)
		const hex = "0123456789abcdef"
		return string([]byte{'#',
			hex[r>>4], hex[r&0xf],
			hex[g>>4], hex[g&0xf],
			hex[b>>4], hex[b&0xf],
		})
	}
	return ""
}

// parseTabColors converts hex color strings to RGB values for tab rendering
func parseTabColors(hexColors []string) []RGB {
	if len(hexColors) == 0 {
		return CurrentTabColors
	}

	colors := make([]RGB, len(hexColors))
	for i, hex := range hexColors {
		colors[i] = HexToRGB(hex)
	}
	return colors
}
