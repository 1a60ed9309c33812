package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Kit.Root != "~/.kit" {
		t.Errorf("got kit root %q, want '~/.kit'", cfg.Kit.Root)
	}
	if !cfg.Clipboard.Enabled {
		t.Error("clipboard should be enabled by default")
	}
	if cfg.Clipboard.PollInterval != 500*time.Millisecond {
		t.Errorf("got poll interval %v, want 500ms", cfg.Clipboard.PollInterval)
	}
	if cfg.Frecency.HalfLifeDays != 7 {
		t.Errorf("got half-life %v, want 7", cfg.Frecency.HalfLifeDays)
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.json")
	if err != nil {
		t.Errorf("should not error on missing file: %v", err)
	}
	if cfg == nil {
		t.Error("should return default config")
	}
}

func TestLoadFrom_ValidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := []byte(`{
		"clipboard": {
			"enabled": false,
			"maxHistory": 50
		},
		"ui": {
			"showFooter": false
		}
	}`)

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Clipboard.Enabled {
		t.Error("clipboard should be disabled")
	}
	if cfg.Clipboard.MaxHistory != 50 {
		t.Errorf("got maxHistory %v, want 50", cfg.Clipboard.MaxHistory)
	}
	if cfg.UI.ShowFooter {
		t.Error("showFooter should be false")
	}
	// Default values should still be present
	if cfg.Hotkey.Binding != "cmd+;" {
		t.Errorf("hotkey should still default to cmd+;, got %q", cfg.Hotkey.Binding)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte(`{invalid`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Error("should error on invalid JSON")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input  string
		expect string
	}{
		{"~/.kit", filepath.Join(home, ".kit")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tc := range tests {
		got := ExpandPath(tc.input)
		if got != tc.expect {
			t.Errorf("ExpandPath(%q) = %q, want %q", tc.input, got, tc.expect)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Clipboard.PollInterval = -1

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}

	// Negative values should be corrected
	if cfg.Clipboard.PollInterval != 500*time.Millisecond {
		t.Errorf("got %v, want 500ms after validation", cfg.Clipboard.PollInterval)
	}
}

func TestLoadFrom_KitOverrides(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")

	content := []byte(`{
		"kit": {
			"overrides": {
				"my-script": {"enabled": false, "hotkey": "cmd+shift+m"}
			}
		}
	}`)

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	override, ok := cfg.Kit.Overrides["my-script"]
	if !ok {
		t.Fatal("expected override for my-script")
	}
	if override.Enabled {
		t.Error("my-script override should be disabled")
	}
	if override.Hotkey != "cmd+shift+m" {
		t.Errorf("got hotkey %q, want cmd+shift+m", override.Hotkey)
	}
}

func TestLoadFrom_SKPathOverride(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	if err := os.WriteFile(configPath, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	kitDir := filepath.Join(dir, "custom-kit")
	if err := os.MkdirAll(kitDir, 0755); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SK_PATH", kitDir)

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Kit.Root != kitDir {
		t.Errorf("got kit root %q, want %q (SK_PATH override)", cfg.Kit.Root, kitDir)
	}
}
