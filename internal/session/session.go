// Package session implements the prompt orchestrator (C2): the
// one-at-a-time script Session, its subprocess lifetime, stdout reader
// loop, request/response correlation, and cancellation semantics
// (§4.11). Grounded on the teacher's internal/plugins/workspace/agent.go
// subprocess-lifecycle idioms (StopAgent's interrupt-then-kill sequence,
// exec.CommandContext usage) adapted from a tmux-attached long-lived
// agent to a directly-spawned, stdin/stdout/stderr-piped script process.
package session

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/scriptkit/launcher/internal/protocol"
)

// stderrTailCap bounds the in-memory stderr tail kept for diagnostics and
// optional toast surfacing (§4.11 step 5).
const stderrTailCap = 4096

// killGrace is how long Cancel waits after closing stdin before force
// killing the process, mirroring StopAgent's "graceful interrupt, sleep,
// then force kill" sequence (§4.11 step 6's "≤2s").
const killGrace = 2 * time.Second

// Event is one decoded message surfaced to the caller of Run: its
// envelope plus the raw JSON line for a typed Decode call.
type Event struct {
	Envelope protocol.Envelope
	Raw      []byte
}

// Adapter dispatches a request-correlated system op (clipboard, windows,
// keyboard, etc.) and returns the reply payload to encode back to the
// script, per §4.11 step 3's second bullet. The orchestrator doesn't know
// how to fulfill these itself; it just owns correlation bookkeeping.
type Adapter func(env protocol.Envelope, raw []byte) (reply interface{}, ok bool)

// Session owns one running script subprocess: its stdin writer, stdout
// reader, and stderr tail. Exactly one Session is active at a time,
// matching §3's "Per active Session" resource note.
type Session struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser

	decoder *protocol.Decoder
	encoder *protocol.Encoder

	log *slog.Logger

	mu          sync.Mutex
	pendingID   string // id of the prompt currently awaiting Submit
	submitted   map[string]bool
	stderrTail  []byte
	cancelled   bool
	doneCh      chan struct{}
}

// Start spawns name/args with dir as its working directory and extraEnv
// appended to the inherited environment, wiring stdin/stdout/stderr per
// §4.11 step 2.
func Start(ctx context.Context, name string, args []string, dir string, extraEnv []string, log *slog.Logger) (*Session, error) {
	if log == nil {
		log = slog.Default()
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), extraEnv...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("session: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("session: stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("session: stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("session: start: %w", err)
	}

	s := &Session{
		cmd:       cmd,
		stdin:     stdin,
		stdout:    stdout,
		decoder:   protocol.NewDecoder(stdout, log),
		encoder:   protocol.NewEncoder(stdin),
		log:       log,
		submitted: make(map[string]bool),
		doneCh:    make(chan struct{}),
	}
	go s.tailStderr(stderr)
	return s, nil
}

// tailStderr forwards the subprocess's stderr into a bounded in-memory
// tail (§4.11 step 5), never growing past stderrTailCap bytes.
func (s *Session) tailStderr(r io.Reader) {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			s.mu.Lock()
			s.stderrTail = append(s.stderrTail, line...)
			if over := len(s.stderrTail) - stderrTailCap; over > 0 {
				s.stderrTail = s.stderrTail[over:]
			}
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// StderrTail returns a copy of the current bounded stderr tail.
func (s *Session) StderrTail() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(bytes.Clone(s.stderrTail))
}

// Run decodes stdout messages until EOF or cancellation, invoking
// onPromptRequest for messages that need C1 routing and using adapter to
// fulfill request-correlated system ops, replying on their behalf
// (§4.11 step 3). It blocks; call it on its own goroutine.
func (s *Session) Run(onPromptRequest func(Event), adapter Adapter) {
	defer close(s.doneCh)
	defer s.decoder.Close()

	for {
		env, raw, ok := s.decoder.Next()
		if !ok {
			return
		}

		if env.Type == protocol.TypeExit {
			return
		}

		if env.RequestID != "" && adapter != nil {
			if reply, handled := adapter(env, raw); handled {
				if err := s.encoder.Encode(reply); err != nil {
					s.log.Debug("session: failed replying to request", "error", err)
				}
			}
			continue
		}

		if env.ID != "" {
			s.mu.Lock()
			s.pendingID = env.ID
			s.mu.Unlock()
		}
		if onPromptRequest != nil {
			onPromptRequest(Event{Envelope: env, Raw: raw})
		}
	}
}

// Submit encodes a Submit message for id carrying value, honoring the
// "at most one Submit per id" ordering guarantee (§4.11) by dropping any
// attempt for an id that isn't the currently pending one, or that has
// already been submitted.
func (s *Session) Submit(id string, value interface{}) error {
	s.mu.Lock()
	if id != s.pendingID || s.submitted[id] {
		s.mu.Unlock()
		return nil
	}
	s.submitted[id] = true
	s.mu.Unlock()

	return s.encoder.Encode(protocol.Submit{
		Envelope: protocol.Envelope{Type: protocol.TypeSubmit, ID: id},
		Value:    value,
	})
}

// AbandonPending clears the pending id without submitting, implementing
// "a new prompt request supersedes the current view; any pending Submit
// for the previous id is abandoned" (§4.11's third ordering guarantee).
// Called whenever C1 transitions to a new prompt.
func (s *Session) AbandonPending(id string) {
	s.mu.Lock()
	if id == s.pendingID {
		s.submitted[id] = true
	}
	s.mu.Unlock()
}

// Cancel implements §4.11 step 6: set the cancellation flag, close
// stdin, and wait up to killGrace before force killing.
func (s *Session) Cancel() {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		return
	}
	s.cancelled = true
	s.mu.Unlock()

	if s.cmd.Process != nil {
		_ = s.cmd.Process.Signal(syscall.SIGTERM)
	}
	_ = s.stdin.Close()

	select {
	case <-s.doneCh:
		return
	case <-time.After(killGrace):
	}

	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	<-s.doneCh
}

// Done reports whether the session's reader loop has exited.
func (s *Session) Done() <-chan struct{} {
	return s.doneCh
}
