package styles

// TabThemePreset defines a named color scheme for the §4.1 kind-group
// header tabs (Scripts / Scriptlets / Agents / Built-ins).
type TabThemePreset struct {
	Name        string   // Internal name (e.g., "scriptkit")
	DisplayName string   // Display name (e.g., "Script Kit")
	Style       string   // "gradient", "per-tab", "solid", "minimal"
	Colors      []string // Hex colors for gradient stops or per-tab colors
}

// TabThemePresets contains all built-in tab theme presets.
var TabThemePresets = map[string]TabThemePreset{
	// scriptkit is the default: a gradient across the brand yellow, sky
	// blue, violet and success-green used elsewhere in the palette.
	"scriptkit": {
		Name:        "scriptkit",
		DisplayName: "Script Kit",
		Style:       "gradient",
		Colors:      []string{"#FACC15", "#38BDF8", "#A78BFA", "#22C55E"},
	},
	"ember": {
		Name:        "ember",
		DisplayName: "Ember",
		Style:       "gradient",
		Colors:      []string{"#FB923C", "#F87171", "#FDBA74"},
	},
	"ocean": {
		Name:        "ocean",
		DisplayName: "Ocean",
		Style:       "gradient",
		Colors:      []string{"#0077B6", "#00B4D8", "#90E0EF"},
	},
	"forest": {
		Name:        "forest",
		DisplayName: "Forest",
		Style:       "gradient",
		Colors:      []string{"#2D5016", "#4C8B2F", "#A8E063"},
	},

	// Per-tab themes - each kind group gets a distinct, non-gradient color.
	"jewel": {
		Name:        "jewel",
		DisplayName: "Jewel Tones",
		Style:       "per-tab",
		Colors:      []string{"#9B2335", "#0F4C81", "#5B5EA6", "#9C6644"},
	},
	"terminal": {
		Name:        "terminal",
		DisplayName: "Terminal",
		Style:       "per-tab",
		Colors:      []string{"#FF5555", "#50FA7B", "#8BE9FD", "#F1FA8C"},
	},

	// Solid/minimal themes - no per-group coloring, just active/inactive state.
	"mono": {
		Name:        "mono",
		DisplayName: "Monochrome",
		Style:       "solid",
		Colors:      []string{},
	},
	"underline": {
		Name:        "underline",
		DisplayName: "Underline",
		Style:       "minimal",
		Colors:      []string{},
	},
}

// GetTabPreset returns a tab theme preset by name, or nil if not found
func GetTabPreset(name string) *TabThemePreset {
	if preset, ok := TabThemePresets[name]; ok {
		return &preset
	}
	return nil
}

// ListTabPresets returns the names of all available tab presets
func ListTabPresets() []string {
	names := make([]string, 0, len(TabThemePresets))
	for name := range TabThemePresets {
		names = append(names, name)
	}
	return names
}
