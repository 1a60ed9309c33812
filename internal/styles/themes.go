package styles

import (
	"regexp"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// themeMu protects access to themeRegistry and currentTheme for thread safety
var themeMu sync.RWMutex

// hexColorRegex validates hex color codes (#RRGGBB or #RRGGBBAA with alpha)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// ColorPalette holds all theme colors the launcher actually themes.
type ColorPalette struct {
	// Brand colors
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`

	// Status colors
	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
	Info    string `json:"info"`

	// Text colors
	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextMuted     string `json:"textMuted"`
	TextSubtle    string `json:"textSubtle"`

	// Background colors
	BgPrimary   string `json:"bgPrimary"`
	BgSecondary string `json:"bgSecondary"`
	BgTertiary  string `json:"bgTertiary"`
	BgOverlay   string `json:"bgOverlay"`

	// Border colors
	BorderNormal string `json:"borderNormal"`
	BorderActive string `json:"borderActive"`
	BorderMuted  string `json:"borderMuted"`

	// Tab theme configuration (§4.1 kind-group header tabs)
	TabStyle  string   `json:"tabStyle"`  // "scriptkit", "per-tab", "solid", "minimal", or preset name
	TabColors []string `json:"tabColors"` // Color stops for gradient OR per-tab colors

	// Additional UI colors
	TextHighlight    string `json:"textHighlight"`
	ButtonHover      string `json:"buttonHover"`
	TabTextInactive  string `json:"tabTextInactive"`
	Link             string `json:"link"`
	ToastSuccessText string `json:"toastSuccessText"`
	ToastErrorText   string `json:"toastErrorText"`

	// Third-party theme names
	SyntaxTheme   string `json:"syntaxTheme"`   // Chroma theme name
	MarkdownTheme string `json:"markdownTheme"` // Glamour theme name
}

// Theme represents a complete theme configuration
type Theme struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Colors      ColorPalette `json:"colors"`
}

// Built-in themes
var (
	// DefaultTheme is the launcher's default dark theme: Script Kit
	// yellow against a neutral slate background.
	DefaultTheme = Theme{
		Name:        "default",
		DisplayName: "Launcher Dark",
		Colors: ColorPalette{
			Primary:   "#FACC15",
			Secondary: "#38BDF8",
			Accent:    "#A78BFA",

			Success: "#22C55E",
			Warning: "#F59E0B",
			Error:   "#F87171",
			Info:    "#38BDF8",

			TextPrimary:   "#F8FAFC",
			TextSecondary: "#94A3B8",
			TextMuted:     "#64748B",
			TextSubtle:    "#475569",

			BgPrimary:   "#0F172A",
			BgSecondary: "#1E293B",
			BgTertiary:  "#334155",
			BgOverlay:   "#00000080",

			BorderNormal: "#334155",
			BorderActive: "#FACC15",
			BorderMuted:  "#1E293B",

			TabStyle:  "scriptkit",
			TabColors: []string{"#FACC15", "#38BDF8", "#A78BFA", "#22C55E"},

			TextHighlight:    "#E2E8F0",
			ButtonHover:      "#CA8A04",
			TabTextInactive:  "#0F172A",
			Link:             "#38BDF8",
			ToastSuccessText: "#052E16",
			ToastErrorText:   "#450A0A",

			SyntaxTheme:   "monokai",
			MarkdownTheme: "dark",
		},
	}

	// EmberTheme is a warm, high-contrast alternative for users who find
	// the default's yellow/slate combination too cool.
	EmberTheme = Theme{
		Name:        "ember",
		DisplayName: "Ember",
		Colors: ColorPalette{
			Primary:   "#FB923C",
			Secondary: "#FDBA74",
			Accent:    "#F87171",

			Success: "#4ADE80",
			Warning: "#FB923C",
			Error:   "#EF4444",
			Info:    "#FDBA74",

			TextPrimary:   "#FFF7ED",
			TextSecondary: "#D6D3D1",
			TextMuted:     "#78716C",
			TextSubtle:    "#44403C",

			BgPrimary:   "#1C1410",
			BgSecondary: "#2A1F18",
			BgTertiary:  "#3D2E22",
			BgOverlay:   "#00000080",

			BorderNormal: "#3D2E22",
			BorderActive: "#FB923C",
			BorderMuted:  "#2A1F18",

			TabStyle:  "gradient",
			TabColors: []string{"#FB923C", "#F87171", "#FDBA74"},

			TextHighlight:    "#FFEDD5",
			ButtonHover:      "#EA580C",
			TabTextInactive:  "#1C1410",
			Link:             "#FDBA74",
			ToastSuccessText: "#052E16",
			ToastErrorText:   "#FFF7ED",

			SyntaxTheme:   "monokai",
			MarkdownTheme: "dark",
		},
	}
)

// themeRegistry holds all available themes
var themeRegistry = map[string]Theme{
	"default": DefaultTheme,
	"ember":   EmberTheme,
}

// currentTheme tracks the active theme name
var currentTheme = "default"

// IsValidHexColor checks if a string is a valid hex color code (#RRGGBB or #RRGGBBAA)
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// IsValidTheme checks if a theme name exists in the registry
func IsValidTheme(name string) bool {
	themeMu.RLock()
	defer themeMu.RUnlock()
	_, ok := themeRegistry[name]
	return ok
}

// GetTheme returns a theme by name, or the default theme if not found
func GetTheme(name string) Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if theme, ok := themeRegistry[name]; ok {
		return theme
	}
	return DefaultTheme
}

// GetCurrentTheme returns the registered theme for the active theme name.
// Color overrides applied by ApplyThemeWithOverrides or
// ApplyThemeWithGenericOverrides are reflected in the style variables,
// not in the returned Theme.
func GetCurrentTheme() Theme {
	themeMu.RLock()
	name := currentTheme
	themeMu.RUnlock()
	return GetTheme(name)
}

// GetCurrentThemeName returns the name of the currently active theme
func GetCurrentThemeName() string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// ListThemes returns the names of all available themes in sorted order
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterTheme adds a custom theme to the registry
func RegisterTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	themeRegistry[theme.Name] = theme
}

// ApplyTheme applies a theme by name, updating all style variables
func ApplyTheme(name string) {
	theme := GetTheme(name)
	ApplyThemeColors(theme)
	themeMu.Lock()
	currentTheme = name
	themeMu.Unlock()
}

// ApplyThemeWithOverrides applies a theme with color overrides from config
func ApplyThemeWithOverrides(name string, overrides map[string]string) {
	theme := GetTheme(name)
	if overrides != nil {
		applyOverrides(&theme.Colors, overrides)
	}
	ApplyThemeColors(theme)
	themeMu.Lock()
	currentTheme = name
	themeMu.Unlock()
}

// applyOverrides applies color overrides to a palette.
func applyOverrides(palette *ColorPalette, overrides map[string]string) {
	for key, value := range overrides {
		applySingleOverride(palette, key, value)
	}
}

// ApplyThemeWithGenericOverrides applies a theme with overrides that may
// include arrays (tabColors).
func ApplyThemeWithGenericOverrides(name string, overrides map[string]interface{}) {
	theme := GetTheme(name)
	if overrides != nil {
		applyGenericOverrides(&theme.Colors, overrides)
	}
	ApplyThemeColors(theme)
	themeMu.Lock()
	currentTheme = name
	themeMu.Unlock()
}

// ResolvePalette computes the ColorPalette a (name, overrides) pair would
// produce without mutating any package-level style state, so callers
// like ContrastWarnings can inspect a palette before committing to it.
func ResolvePalette(name string, overrides map[string]interface{}) ColorPalette {
	theme := GetTheme(name)
	if overrides != nil {
		applyGenericOverrides(&theme.Colors, overrides)
	}
	return theme.Colors
}

// applyGenericOverrides applies overrides that may include arrays (tabColors).
func applyGenericOverrides(palette *ColorPalette, overrides map[string]interface{}) {
	for key, value := range overrides {
		switch v := value.(type) {
		case string:
			applySingleOverride(palette, key, v)
		case []interface{}:
			colors := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					colors = append(colors, s)
				}
			}
			applyArrayOverride(palette, key, colors)
		case []string:
			applyArrayOverride(palette, key, v)
		}
	}
}

// applySingleOverride applies a single string override.
// Color values must be valid hex colors (#RRGGBB). Invalid colors are silently ignored.
func applySingleOverride(palette *ColorPalette, key, value string) {
	isThemeName := key == "syntaxTheme" || key == "markdownTheme" || key == "tabStyle"
	if !isThemeName && !IsValidHexColor(value) {
		return
	}

	switch key {
	case "primary":
		palette.Primary = value
	case "secondary":
		palette.Secondary = value
	case "accent":
		palette.Accent = value
	case "success":
		palette.Success = value
	case "warning":
		palette.Warning = value
	case "error":
		palette.Error = value
	case "info":
		palette.Info = value
	case "textPrimary":
		palette.TextPrimary = value
	case "textSecondary":
		palette.TextSecondary = value
	case "textMuted":
		palette.TextMuted = value
	case "textSubtle":
		palette.TextSubtle = value
	case "bgPrimary":
		palette.BgPrimary = value
	case "bgSecondary":
		palette.BgSecondary = value
	case "bgTertiary":
		palette.BgTertiary = value
	case "bgOverlay":
		palette.BgOverlay = value
	case "borderNormal":
		palette.BorderNormal = value
	case "borderActive":
		palette.BorderActive = value
	case "borderMuted":
		palette.BorderMuted = value
	case "textHighlight":
		palette.TextHighlight = value
	case "buttonHover":
		palette.ButtonHover = value
	case "tabTextInactive":
		palette.TabTextInactive = value
	case "link":
		palette.Link = value
	case "toastSuccessText":
		palette.ToastSuccessText = value
	case "toastErrorText":
		palette.ToastErrorText = value
	case "syntaxTheme":
		palette.SyntaxTheme = value
	case "markdownTheme":
		palette.MarkdownTheme = value
	case "tabStyle":
		palette.TabStyle = value
	}
}

// applyArrayOverride applies an array override (tab gradient colors).
// All colors must be valid hex colors. The entire array is rejected if any color is invalid.
func applyArrayOverride(palette *ColorPalette, key string, colors []string) {
	for _, c := range colors {
		if !IsValidHexColor(c) {
			return
		}
	}
	if key == "tabColors" {
		palette.TabColors = colors
	}
}

// ApplyThemeColors updates all style package variables from a theme.
//
// IMPORTANT: This function is NOT thread-safe for concurrent reads.
// It must only be called during initialization, before the TUI starts.
// The TUI's single-threaded Bubble Tea model ensures safe access after init.
func ApplyThemeColors(theme Theme) {
	c := theme.Colors

	Primary = lipgloss.Color(c.Primary)
	Secondary = lipgloss.Color(c.Secondary)
	Accent = lipgloss.Color(c.Accent)

	Success = lipgloss.Color(c.Success)
	Warning = lipgloss.Color(c.Warning)
	Error = lipgloss.Color(c.Error)
	Info = lipgloss.Color(c.Info)

	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextSecondary = lipgloss.Color(c.TextSecondary)
	TextMuted = lipgloss.Color(c.TextMuted)
	TextSubtle = lipgloss.Color(c.TextSubtle)

	BgPrimary = lipgloss.Color(c.BgPrimary)
	BgSecondary = lipgloss.Color(c.BgSecondary)
	BgTertiary = lipgloss.Color(c.BgTertiary)
	BgOverlay = lipgloss.Color(c.BgOverlay)

	BorderNormal = lipgloss.Color(c.BorderNormal)
	BorderActive = lipgloss.Color(c.BorderActive)
	BorderMuted = lipgloss.Color(c.BorderMuted)

	TextHighlight = lipgloss.Color(c.TextHighlight)
	ButtonHoverColor = lipgloss.Color(c.ButtonHover)
	TabTextInactiveColor = lipgloss.Color(c.TabTextInactive)
	LinkColor = lipgloss.Color(c.Link)
	ToastSuccessTextColor = lipgloss.Color(c.ToastSuccessText)
	ToastErrorTextColor = lipgloss.Color(c.ToastErrorText)

	CurrentSyntaxTheme = c.SyntaxTheme
	CurrentMarkdownTheme = c.MarkdownTheme

	CurrentTabStyle = c.TabStyle
	CurrentTabColors = parseTabColors(c.TabColors)

	rebuildStyles()
}

// rebuildStyles recreates all lipgloss styles with current colors
func rebuildStyles() {
	PanelActive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Padding(0, 1)

	PanelInactive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)

	PanelHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		MarginBottom(1)

	PanelNoBorder = lipgloss.NewStyle().
		Padding(0, 1)

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

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)

	Logo = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	QueryMatch = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	ScriptStatusRunning = lipgloss.NewStyle().
		Foreground(Info).
		Bold(true)

	ScriptStatusDone = lipgloss.NewStyle().
		Foreground(Success)

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

	PreviewLineNumber = lipgloss.NewStyle().
		Foreground(TextMuted).
		Width(5).
		AlignHorizontal(lipgloss.Right)

	TabTextActive = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	TabTextInactive = lipgloss.NewStyle().
		Foreground(TabTextInactiveColor)

	Footer = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgSecondary)

	Header = lipgloss.NewStyle().
		Background(BgSecondary)

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
}

// GetSyntaxTheme returns the current syntax highlighting theme name
func GetSyntaxTheme() string {
	return CurrentSyntaxTheme
}

// GetMarkdownTheme returns the current markdown rendering theme name
func GetMarkdownTheme() string {
	return CurrentMarkdownTheme
}
