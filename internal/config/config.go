package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Kit       KitConfig       `json:"kit"`
	Hotkey    HotkeyConfig    `json:"hotkey"`
	Window    WindowConfig    `json:"window"`
	Editor    EditorConfig    `json:"editor"`
	Clipboard ClipboardConfig `json:"clipboard"`
	Frecency  FrecencyConfig  `json:"frecency"`
	Keymap    KeymapConfig    `json:"keymap"`
	UI        UIConfig        `json:"ui"`
	Features  FeaturesConfig  `json:"features"`
}

// FeaturesConfig holds feature flag settings, including built-ins toggles.
type FeaturesConfig struct {
	Flags map[string]bool `json:"flags"`
}

// KitConfig configures where the catalog loader (L1) looks for scripts,
// extensions and agent definitions, and overrides per command.
type KitConfig struct {
	// Root is the kit root directory. Overridden by the SK_PATH environment
	// variable at load time. Default: "~/.kit".
	Root string `json:"root"`
	// ScriptsDir, ExtensionsDir, AgentsDir are loaded and saved with the
	// config only; the catalog loader does not read them and always uses
	// the scripts/, extensions/ (or scriptlets/) and agents/ dirs under Root.
	ScriptsDir    string                   `json:"scriptsDir"`
	ExtensionsDir string                   `json:"extensionsDir"`
	AgentsDir     string                   `json:"agentsDir"`
	Overrides     map[string]CommandConfig `json:"overrides,omitempty"`
	// RuntimePath is the external interpreter C2 invokes as
	// `runtime <script-path> [args...]` (§6.4). Defaults to "node".
	RuntimePath string `json:"runtimePath"`
}

// CommandConfig is a per-command override (hotkey binding, enabled state).
type CommandConfig struct {
	Enabled bool   `json:"enabled"`
	Hotkey  string `json:"hotkey,omitempty"`
}

// HotkeyConfig configures the global activation shortcut (§6.2).
type HotkeyConfig struct {
	// Binding is a platform-accelerator string, e.g. "cmd+;".
	Binding string `json:"binding"`
}

// WindowConfig configures the floating window's geometry and look (§3
// Theme/Config, §4.12 window controller).
type WindowConfig struct {
	Padding       int     `json:"padding"`
	Opacity       float64 `json:"opacity"`
	Vibrancy      bool    `json:"vibrancy"`
	DropShadow    bool    `json:"dropShadow"`
	FontSize      int     `json:"fontSize"`
	HeaderSize    int     `json:"headerSize"`
	ScrollbackCap int     `json:"scrollbackCap"`
}

// EditorConfig configures default editor behavior for script creation.
type EditorConfig struct {
	Command string `json:"command"`
}

// ClipboardConfig configures the clipboard history monitor (L9).
type ClipboardConfig struct {
	Enabled     bool          `json:"enabled"`
	MaxHistory  int           `json:"maxHistory"`
	PollInterval time.Duration `json:"pollInterval"`
	IgnoreApps  []string      `json:"ignoreApps,omitempty"`
}

// FrecencyConfig configures the usage-frequency/recency scorer (L2).
type FrecencyConfig struct {
	HalfLifeDays float64 `json:"halfLifeDays"`
	PruneOnLoad  bool    `json:"pruneOnLoad"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter bool        `json:"showFooter"`
	ShowClock  bool        `json:"showClock"`
	Theme      ThemeConfig `json:"theme"`
}

// ThemeConfig configures the color theme (§3 Theme entity).
type ThemeConfig struct {
	Name       string                 `json:"name"`
	Overrides  map[string]interface{} `json:"overrides,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Kit: KitConfig{
			Root:          "~/.kit",
			ScriptsDir:    "scripts",
			ExtensionsDir: "extensions",
			AgentsDir:     "agents",
			Overrides:     make(map[string]CommandConfig),
			RuntimePath:   "node",
		},
		Hotkey: HotkeyConfig{
			Binding: "cmd+;",
		},
		Window: WindowConfig{
			Padding:       16,
			Opacity:       1.0,
			Vibrancy:      true,
			DropShadow:    true,
			FontSize:      14,
			HeaderSize:    16,
			ScrollbackCap: 10000,
		},
		Editor: EditorConfig{
			Command: "code",
		},
		Clipboard: ClipboardConfig{
			Enabled:      true,
			MaxHistory:   1000,
			PollInterval: 500 * time.Millisecond,
		},
		Frecency: FrecencyConfig{
			HalfLifeDays: 7,
			PruneOnLoad:  false,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			ShowFooter: true,
			ShowClock:  true,
			Theme: ThemeConfig{
				Name:      "default",
				Overrides: make(map[string]interface{}),
			},
		},
		Features: FeaturesConfig{
			Flags: make(map[string]bool),
		},
	}
}

// Validate checks the configuration for errors, clamping invalid values to
// documented defaults rather than failing load.
func (c *Config) Validate() error {
	if c.Window.Padding < 0 {
		c.Window.Padding = 16
	}
	if c.Window.Opacity <= 0 || c.Window.Opacity > 1 {
		c.Window.Opacity = 1.0
	}
	if c.Window.FontSize <= 0 {
		c.Window.FontSize = 14
	}
	if c.Window.ScrollbackCap <= 0 {
		c.Window.ScrollbackCap = 10000
	}
	if c.Clipboard.MaxHistory <= 0 {
		c.Clipboard.MaxHistory = 1000
	}
	if c.Clipboard.PollInterval <= 0 {
		c.Clipboard.PollInterval = 500 * time.Millisecond
	}
	if c.Frecency.HalfLifeDays <= 0 {
		c.Frecency.HalfLifeDays = 7
	}
	return nil
}
