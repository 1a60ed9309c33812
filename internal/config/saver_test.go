package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSave_PreservesUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	// Write a config file that includes a "prompts" key (not managed by Save)
	initial := []byte(`{
  "prompts": [
    {"name": "My Prompt", "body": "do the thing {{input}}"}
  ],
  "customKey": "should survive"
}`)
	if err := os.WriteFile(path, initial, 0644); err != nil {
		t.Fatal(err)
	}

	// Point Save() at our temp file
	SetTestConfigPath(path)
	defer ResetTestConfigPath()

	// Save a default config
	cfg := Default()
	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Read back and verify prompts and customKey still exist
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal saved config: %v", err)
	}

	if _, ok := raw["prompts"]; !ok {
		t.Error("Save() deleted 'prompts' key from config.json")
	}
	if _, ok := raw["customKey"]; !ok {
		t.Error("Save() deleted 'customKey' from config.json")
	}

	// Verify prompts content is intact
	var prompts []map[string]interface{}
	if err := json.Unmarshal(raw["prompts"], &prompts); err != nil {
		t.Fatalf("unmarshal prompts: %v", err)
	}
	if len(prompts) != 1 {
		t.Errorf("got %d prompts, want 1", len(prompts))
	}
	if prompts[0]["name"] != "My Prompt" {
		t.Errorf("got prompt name %q, want 'My Prompt'", prompts[0]["name"])
	}

	// Verify managed keys are also present
	if _, ok := raw["kit"]; !ok {
		t.Error("Save() did not write 'kit' key")
	}
	if _, ok := raw["clipboard"]; !ok {
		t.Error("Save() did not write 'clipboard' key")
	}
}

func TestSave_WorksWithNoExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	SetTestConfigPath(path)
	defer ResetTestConfigPath()

	cfg := Default()
	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Verify file was created and is valid JSON
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, ok := raw["kit"]; !ok {
		t.Error("missing 'kit' key")
	}
}
