package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	Kit       saveKitConfig       `json:"kit"`
	Hotkey    HotkeyConfig        `json:"hotkey"`
	Window    WindowConfig        `json:"window"`
	Editor    EditorConfig        `json:"editor"`
	Clipboard saveClipboardConfig `json:"clipboard"`
	Frecency  FrecencyConfig      `json:"frecency"`
	Keymap    KeymapConfig        `json:"keymap"`
	UI        UIConfig            `json:"ui"`
	Features  FeaturesConfig      `json:"features,omitempty"`
}

type saveKitConfig struct {
	Root          string                   `json:"root,omitempty"`
	ScriptsDir    string                   `json:"scriptsDir,omitempty"`
	ExtensionsDir string                   `json:"extensionsDir,omitempty"`
	AgentsDir     string                   `json:"agentsDir,omitempty"`
	Overrides     map[string]CommandConfig `json:"overrides,omitempty"`
}

type saveClipboardConfig struct {
	Enabled      *bool    `json:"enabled,omitempty"`
	MaxHistory   *int     `json:"maxHistory,omitempty"`
	PollInterval string   `json:"pollInterval,omitempty"`
	IgnoreApps   []string `json:"ignoreApps,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Kit: saveKitConfig{
			Root:          cfg.Kit.Root,
			ScriptsDir:    cfg.Kit.ScriptsDir,
			ExtensionsDir: cfg.Kit.ExtensionsDir,
			AgentsDir:     cfg.Kit.AgentsDir,
			Overrides:     cfg.Kit.Overrides,
		},
		Hotkey: cfg.Hotkey,
		Window: cfg.Window,
		Editor: cfg.Editor,
		Clipboard: saveClipboardConfig{
			Enabled:      &cfg.Clipboard.Enabled,
			MaxHistory:   &cfg.Clipboard.MaxHistory,
			PollInterval: cfg.Clipboard.PollInterval.String(),
			IgnoreApps:   cfg.Clipboard.IgnoreApps,
		},
		Frecency: cfg.Frecency,
		Keymap:   cfg.Keymap,
		UI:       cfg.UI,
		Features: cfg.Features,
	}
}

var testConfigPath string

// SetTestConfigPath redirects Save/ConfigPath to a test-owned file. Tests
// must call ResetTestConfigPath when done.
func SetTestConfigPath(path string) {
	testConfigPath = path
}

// ResetTestConfigPath clears a path set by SetTestConfigPath.
func ResetTestConfigPath() {
	testConfigPath = ""
}

// savePath returns the effective config path, honoring SetTestConfigPath.
func savePath() string {
	if testConfigPath != "" {
		return testConfigPath
	}
	return ConfigPath()
}

// Save writes the config to ~/.config/launcher/config.json, merging the
// managed keys over whatever unmanaged keys (e.g. a "prompts" array a user
// hand-edited in) are already present in the file.
func Save(cfg *Config) error {
	path := savePath()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	merged := map[string]json.RawMessage{}
	if existing, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(existing, &merged)
	}

	sc := toSaveConfig(cfg)
	scData, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	var scFields map[string]json.RawMessage
	if err := json.Unmarshal(scData, &scFields); err != nil {
		return err
	}
	for k, v := range scFields {
		merged[k] = v
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// SaveTheme updates only the theme name in config and saves.
func SaveTheme(themeName string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.UI.Theme.Name = themeName
	cfg.UI.Theme.Overrides = nil
	return Save(cfg)
}

// SaveThemeWithOverrides saves a theme name and full overrides map to config.
func SaveThemeWithOverrides(themeName string, overrides map[string]interface{}) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.UI.Theme.Name = themeName
	cfg.UI.Theme.Overrides = overrides
	return Save(cfg)
}

// SaveGlobalTheme saves a ThemeConfig as the global UI theme.
func SaveGlobalTheme(tc ThemeConfig) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.UI.Theme = tc
	return Save(cfg)
}
