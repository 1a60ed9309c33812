package session

import (
	"context"
	"testing"
	"time"

	"github.com/scriptkit/launcher/internal/protocol"
)

// scriptEcho prints one arg prompt request, then on any stdin line
// echoes "done" to stderr and exits.
const scriptEcho = `printf '{"type":"arg","id":"p1","placeholder":"name?"}\n'; read _; printf 'done\n' 1>&2; exit 0`

func startEcho(t *testing.T) *Session {
	t.Helper()
	s, err := Start(context.Background(), "sh", []string{"-c", scriptEcho}, "", nil, nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() { s.Cancel() })
	return s
}

func TestSessionRoutesPromptRequestAndAcceptsSubmit(t *testing.T) {
	s := startEcho(t)

	var got Event
	done := make(chan struct{})
	go func() {
		s.Run(func(e Event) {
			got = e
			close(done)
		}, nil)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for prompt request")
	}

	if got.Envelope.Type != protocol.TypeArg || got.Envelope.ID != "p1" {
		t.Fatalf("unexpected envelope: %+v", got.Envelope)
	}

	if err := s.Submit("p1", "hello"); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("session did not exit after submit")
	}
}

func TestSessionSubmitDropsSecondAttemptForSameID(t *testing.T) {
	s := startEcho(t)
	go s.Run(func(Event) {}, nil)

	time.Sleep(100 * time.Millisecond)
	if err := s.Submit("p1", "first"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	// Second attempt for the same id must be dropped silently, not error.
	if err := s.Submit("p1", "second"); err != nil {
		t.Fatalf("Submit (second): %v", err)
	}
}

func TestSessionSubmitIgnoresWrongID(t *testing.T) {
	s := startEcho(t)
	go s.Run(func(Event) {}, nil)
	time.Sleep(100 * time.Millisecond)

	if err := s.Submit("not-pending", "value"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
}

func TestOrchestratorCancelsPreviousSessionOnRun(t *testing.T) {
	o := NewOrchestrator(nil)

	first, err := o.Run(context.Background(), "sh", []string{"-c", "sleep 5"}, "", nil, func(Event) {}, nil)
	if err != nil {
		t.Fatalf("Run (first): %v", err)
	}

	second, err := o.Run(context.Background(), "sh", []string{"-c", scriptEcho}, "", nil, func(Event) {}, nil)
	if err != nil {
		t.Fatalf("Run (second): %v", err)
	}
	defer second.Cancel()

	select {
	case <-first.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("expected first session to be cancelled when second Run was called")
	}

	if o.Current() != second {
		t.Fatal("expected orchestrator's current session to be the second one")
	}
}
