package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configDir  = ".config/launcher"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary; optional numeric/bool
// fields are pointers so an absent key doesn't overwrite a default with a
// zero value.
type rawConfig struct {
	Kit       rawKitConfig       `json:"kit"`
	Hotkey    HotkeyConfig       `json:"hotkey"`
	Window    rawWindowConfig    `json:"window"`
	Editor    EditorConfig       `json:"editor"`
	Clipboard rawClipboardConfig `json:"clipboard"`
	Frecency  rawFrecencyConfig  `json:"frecency"`
	Keymap    KeymapConfig       `json:"keymap"`
	UI        rawUIConfig        `json:"ui"`
	Features  FeaturesConfig     `json:"features"`
}

type rawKitConfig struct {
	Root          string                   `json:"root"`
	ScriptsDir    string                   `json:"scriptsDir"`
	ExtensionsDir string                   `json:"extensionsDir"`
	AgentsDir     string                   `json:"agentsDir"`
	Overrides     map[string]CommandConfig `json:"overrides"`
	RuntimePath   string                   `json:"runtimePath"`
}

type rawWindowConfig struct {
	Padding       *int     `json:"padding"`
	Opacity       *float64 `json:"opacity"`
	Vibrancy      *bool    `json:"vibrancy"`
	DropShadow    *bool    `json:"dropShadow"`
	FontSize      *int     `json:"fontSize"`
	HeaderSize    *int     `json:"headerSize"`
	ScrollbackCap *int     `json:"scrollbackCap"`
}

type rawClipboardConfig struct {
	Enabled      *bool    `json:"enabled"`
	MaxHistory   *int     `json:"maxHistory"`
	PollInterval string   `json:"pollInterval"`
	IgnoreApps   []string `json:"ignoreApps"`
}

type rawFrecencyConfig struct {
	HalfLifeDays *float64 `json:"halfLifeDays"`
	PruneOnLoad  *bool    `json:"pruneOnLoad"`
}

type rawUIConfig struct {
	ShowFooter *bool       `json:"showFooter"`
	ShowClock  *bool       `json:"showClock"`
	Theme      ThemeConfig `json:"theme"`
}

// Load loads configuration from the default location (or the path set by
// SetTestConfigPath, for tests).
func Load() (*Config, error) {
	return LoadFrom(savePath())
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/launcher/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // Return defaults on error
		}
		path = filepath.Join(home, configDir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)
	applyEnvOverrides(cfg)

	cfg.Kit.Root = ExpandPath(cfg.Kit.Root)

	if _, err := os.Stat(cfg.Kit.Root); os.IsNotExist(err) {
		slog.Warn("kit root not found", "path", cfg.Kit.Root)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides lets SK_PATH override the configured kit root, per §6.4.
func applyEnvOverrides(cfg *Config) {
	if root := os.Getenv("SK_PATH"); root != "" {
		cfg.Kit.Root = ExpandPath(root)
	}
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	if raw.Kit.Root != "" {
		cfg.Kit.Root = raw.Kit.Root
	}
	if raw.Kit.ScriptsDir != "" {
		cfg.Kit.ScriptsDir = raw.Kit.ScriptsDir
	}
	if raw.Kit.ExtensionsDir != "" {
		cfg.Kit.ExtensionsDir = raw.Kit.ExtensionsDir
	}
	if raw.Kit.AgentsDir != "" {
		cfg.Kit.AgentsDir = raw.Kit.AgentsDir
	}
	if raw.Kit.RuntimePath != "" {
		cfg.Kit.RuntimePath = raw.Kit.RuntimePath
	}
	if raw.Kit.Overrides != nil {
		for k, v := range raw.Kit.Overrides {
			cfg.Kit.Overrides[k] = v
		}
	}

	if raw.Hotkey.Binding != "" {
		cfg.Hotkey.Binding = raw.Hotkey.Binding
	}

	if raw.Window.Padding != nil {
		cfg.Window.Padding = *raw.Window.Padding
	}
	if raw.Window.Opacity != nil {
		cfg.Window.Opacity = *raw.Window.Opacity
	}
	if raw.Window.Vibrancy != nil {
		cfg.Window.Vibrancy = *raw.Window.Vibrancy
	}
	if raw.Window.DropShadow != nil {
		cfg.Window.DropShadow = *raw.Window.DropShadow
	}
	if raw.Window.FontSize != nil {
		cfg.Window.FontSize = *raw.Window.FontSize
	}
	if raw.Window.HeaderSize != nil {
		cfg.Window.HeaderSize = *raw.Window.HeaderSize
	}
	if raw.Window.ScrollbackCap != nil {
		cfg.Window.ScrollbackCap = *raw.Window.ScrollbackCap
	}

	if raw.Editor.Command != "" {
		cfg.Editor.Command = raw.Editor.Command
	}

	if raw.Clipboard.Enabled != nil {
		cfg.Clipboard.Enabled = *raw.Clipboard.Enabled
	}
	if raw.Clipboard.MaxHistory != nil {
		cfg.Clipboard.MaxHistory = *raw.Clipboard.MaxHistory
	}
	if raw.Clipboard.PollInterval != "" {
		if d, err := time.ParseDuration(raw.Clipboard.PollInterval); err == nil {
			cfg.Clipboard.PollInterval = d
		}
	}
	if raw.Clipboard.IgnoreApps != nil {
		cfg.Clipboard.IgnoreApps = raw.Clipboard.IgnoreApps
	}

	if raw.Frecency.HalfLifeDays != nil {
		cfg.Frecency.HalfLifeDays = *raw.Frecency.HalfLifeDays
	}
	if raw.Frecency.PruneOnLoad != nil {
		cfg.Frecency.PruneOnLoad = *raw.Frecency.PruneOnLoad
	}

	if raw.Keymap.Overrides != nil {
		for k, v := range raw.Keymap.Overrides {
			cfg.Keymap.Overrides[k] = v
		}
	}

	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.ShowClock != nil {
		cfg.UI.ShowClock = *raw.UI.ShowClock
	}
	if raw.UI.Theme.Name != "" {
		cfg.UI.Theme.Name = raw.UI.Theme.Name
	}
	if raw.UI.Theme.Overrides != nil {
		for k, v := range raw.UI.Theme.Overrides {
			cfg.UI.Theme.Overrides[k] = v
		}
	}

	if raw.Features.Flags != nil {
		for k, v := range raw.Features.Flags {
			cfg.Features.Flags[k] = v
		}
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
