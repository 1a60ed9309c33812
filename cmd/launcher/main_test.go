package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scriptkit/launcher/internal/app"
)

func TestRunHelpExitsClean(t *testing.T) {
	code := run([]string{"--help"}, strings.NewReader(""))
	if code != exitClean {
		t.Fatalf("--help exit code = %d, want %d", code, exitClean)
	}
}

func TestRunBadConfigExitsConfigFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	code := run([]string{"--config", path}, strings.NewReader(""))
	if code != exitConfigFatal {
		t.Fatalf("bad config exit code = %d, want %d", code, exitConfigFatal)
	}
}

func TestReadExternalCommandsSkipsMalformedLines(t *testing.T) {
	input := strings.NewReader("not json\n{\"type\":\"show\"}\n\n{\"type\":\"run\",\"path\":\"a.ts\"}\n")
	ch := make(chan app.ExternalCmdMsg, 4)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	readExternalCommands(input, ch, log)

	first := <-ch
	second := <-ch
	if first.Type != "show" {
		t.Fatalf("first command type = %q, want show", first.Type)
	}
	if second.Type != "run" || second.Path != "a.ts" {
		t.Fatalf("second command = %+v, want run a.ts", second)
	}
}
