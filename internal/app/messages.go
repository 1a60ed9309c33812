package app

import (
	"github.com/scriptkit/launcher/internal/catalog"
	"github.com/scriptkit/launcher/internal/clipboard"
	"github.com/scriptkit/launcher/internal/session"
	"github.com/scriptkit/launcher/internal/watcher"
)

// catalogLoadedMsg carries a freshly built Snapshot, emitted at startup
// and again after every debounced reload event (§4.8).
type catalogLoadedMsg struct {
	snapshot *catalog.Snapshot
	err      error
}

// watchEventMsg re-arms listenWatchCmd and signals a catalog reload is
// due for ev.Root.
type watchEventMsg struct {
	ev watcher.ReloadEvent
}

// clipboardEntryMsg re-arms listenClipboardCmd and carries a newly
// recorded clipboard entry for the toast/history list to pick up.
type clipboardEntryMsg struct {
	entry clipboard.Entry
}

// promptEventMsg re-arms listenPromptCmd and carries the next decoded
// message a running script's Session surfaced (§4.11).
type promptEventMsg struct {
	event session.Event
}

// sessionStartedMsg reports the result of launching a catalog entry.
type sessionStartedMsg struct {
	sess *session.Session
	err  error
}

// blinkTickMsg re-arms blinkTickCmd, driving the cursor blink cadence
// (§4.13).
type blinkTickMsg struct{}

// termFrameMsg re-arms termTickCmd while a TermPrompt is active, driving
// the ≈30fps terminal redraw (§4.14).
type termFrameMsg struct{}

// resizeAppliedMsg is posted by the window Coalescer once a deferred
// resize request actually fires (§4.12).
type resizeAppliedMsg struct{}

// sessionCancelledMsg is posted once cancelSessionCmd's background
// Orchestrator.Cancel() call returns, which can take up to the session
// package's kill grace if the subprocess ignores SIGTERM.
type sessionCancelledMsg struct{}

// ExternalCmdMsg is the decoded shape of a single stdin command line per
// §6.5's CLI surface: `{ "type": "run", "path": "..." }` or
// `{ "type": "show" }` / `{ "type": "hide" }`. cmd/launcher owns the
// stdin reader goroutine; it feeds decoded commands to ExternalCommands()
// and the root Update loop applies them the same way a key press or
// script message would be applied.
type ExternalCmdMsg struct {
	Type string   `json:"type"`
	Path string   `json:"path,omitempty"`
	Args []string `json:"args,omitempty"`
}
