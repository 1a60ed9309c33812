package session

import (
	"context"
	"log/slog"
	"sync"
)

// Orchestrator owns the single active Session and implements §4.11's
// "Cancel any existing Session... Spawn the runtime with a fresh env"
// sequencing for Run(script, args) requests arriving from C1.
type Orchestrator struct {
	log *slog.Logger

	mu      sync.Mutex
	current *Session
	cancel  context.CancelFunc
}

// NewOrchestrator constructs an Orchestrator with no active session.
func NewOrchestrator(log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{log: log}
}

// Run cancels any existing session, then spawns a new one for
// name/args, wiring onPromptRequest/adapter exactly as Session.Run does.
// It returns the new Session so the caller (C1) can Submit/AbandonPending
// against it.
func (o *Orchestrator) Run(ctx context.Context, name string, args []string, dir string, extraEnv []string, onPromptRequest func(Event), adapter Adapter) (*Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.cancelLocked()

	runCtx, cancel := context.WithCancel(ctx)
	s, err := Start(runCtx, name, args, dir, extraEnv, o.log)
	if err != nil {
		cancel()
		return nil, err
	}
	o.current = s
	o.cancel = cancel
	go s.Run(onPromptRequest, adapter)
	return s, nil
}

// Current returns the active Session, or nil if none is running.
func (o *Orchestrator) Current() *Session {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Cancel tears down the active session, if any.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cancelLocked()
}

func (o *Orchestrator) cancelLocked() {
	if o.current == nil {
		return
	}
	o.current.Cancel()
	if o.cancel != nil {
		o.cancel()
	}
	o.current = nil
	o.cancel = nil
}
