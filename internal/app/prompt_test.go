package app

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/scriptkit/launcher/internal/render"
	"github.com/scriptkit/launcher/internal/session"
	"github.com/scriptkit/launcher/internal/view"
)

// These tests drive the protocol's literal end-to-end scenarios: a real
// subprocess writes the exact wire-format JSON a script would send, and
// the assertions read back the exact wire-format Submit the app writes
// to its stdin, rather than exercising Go struct shapes directly.

func TestArgPromptWithChoicesSubmitsSelectedValue(t *testing.T) {
	m := testModel(t)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	m.runCtx = ctx

	tmp := t.TempDir() + "/submit.json"
	script := `printf '{"type":"arg","id":"1","choices":[{"name":"A","value":"a"},{"name":"B","value":"b"}]}\n'; IFS= read -r line; printf '%s' "$line" > ` + tmp + `; exit 0`

	events := make(chan session.Event, 1)
	sess, err := m.orchestrator.Run(ctx, "sh", []string{"-c", script}, "", nil, func(e session.Event) {
		events <- e
	}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	select {
	case ev := <-events:
		if cmd := m.handlePromptEvent(ev); cmd != nil {
			cmd()
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for arg prompt")
	}

	if got := m.machine.Current().Kind; got != view.KindArgPrompt {
		t.Fatalf("kind = %v, want KindArgPrompt", got)
	}
	if m.machine.Current().List == nil {
		t.Fatal("expected a populated choice list")
	}

	m.moveSelection(1) // Down: A (index 0) -> B (index 1)

	if cmd := m.submitActive(); cmd != nil {
		cmd()
	}

	select {
	case <-sess.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("script did not exit after submit")
	}

	data, err := os.ReadFile(tmp)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := `{"type":"submit","id":"1","value":"b"}`
	if string(data) != want {
		t.Fatalf("submit payload = %q, want %q", data, want)
	}
}

func TestEditorPromptLoadsContentAndLanguageThenSubmitsEdit(t *testing.T) {
	m := testModel(t)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	m.runCtx = ctx

	tmp := t.TempDir() + "/submit.json"
	script := `printf '{"type":"editor","id":"e","content":"hello","language":"typescript"}\n'; IFS= read -r line; printf '%s' "$line" > ` + tmp + `; exit 0`

	events := make(chan session.Event, 1)
	sess, err := m.orchestrator.Run(ctx, "sh", []string{"-c", script}, "", nil, func(e session.Event) {
		events <- e
	}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	select {
	case ev := <-events:
		if cmd := m.handlePromptEvent(ev); cmd != nil {
			cmd()
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for editor prompt")
	}

	if got := m.machine.Current().Kind; got != view.KindEditorPrompt {
		t.Fatalf("kind = %v, want KindEditorPrompt", got)
	}
	if got := m.editor.Value(); got != "hello" {
		t.Fatalf("editor value = %q, want %q", got, "hello")
	}
	if got := m.editor.Language(); got != "typescript" {
		t.Fatalf("editor language = %q, want %q", got, "typescript")
	}

	m.editor.SetValue("hello world")

	if cmd := m.submitActive(); cmd != nil {
		cmd()
	}

	select {
	case <-sess.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("script did not exit after submit")
	}

	data, err := os.ReadFile(tmp)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := `{"type":"submit","id":"e","value":"hello world"}`
	if string(data) != want {
		t.Fatalf("submit payload = %q, want %q", data, want)
	}
}

func TestTermPromptRunsSuppliedCommand(t *testing.T) {
	m := testModel(t)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	m.runCtx = ctx
	m.width, m.height = 80, 24
	m.cfg.Kit.Root = t.TempDir()

	script := `printf '{"type":"term","id":"t","command":"printf TERMOK"}\n'; sleep 5`

	events := make(chan session.Event, 1)
	_, err := m.orchestrator.Run(ctx, "sh", []string{"-c", script}, "", nil, func(e session.Event) {
		events <- e
	}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	select {
	case ev := <-events:
		if cmd := m.handlePromptEvent(ev); cmd != nil {
			cmd()
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for term prompt")
	}
	t.Cleanup(m.stopTermPrompt)

	if got := m.machine.Current().Kind; got != view.KindTermPrompt {
		t.Fatalf("kind = %v, want KindTermPrompt", got)
	}
	if m.termPTY == nil {
		t.Fatal("expected a spawned PTY")
	}

	deadline := time.Now().Add(2 * time.Second)
	var out string
	for time.Now().Before(deadline) {
		if m.termGrid != nil {
			out = render.RenderTerminal(m.termGrid)
			if strings.Contains(out, "TERMOK") {
				break
			}
		}
		time.Sleep(25 * time.Millisecond)
	}

	if !strings.Contains(out, "TERMOK") {
		t.Fatalf("terminal output %q does not contain the supplied command's output", out)
	}
}
