package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scriptkit/launcher/internal/catalog"
	"github.com/scriptkit/launcher/internal/clipboard"
	"github.com/scriptkit/launcher/internal/keys"
	"github.com/scriptkit/launcher/internal/render"
	"github.com/scriptkit/launcher/internal/session"
	"github.com/scriptkit/launcher/internal/watcher"
)

// loadCatalogCmd walks kitRoot on its own goroutine (file I/O has no
// place on the Bubble Tea update loop) and posts the resulting Snapshot
// back as a catalogLoadedMsg.
func loadCatalogCmd(loader *catalog.Loader, kitRoot string) tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg{snapshot: loader.Load(kitRoot)}
	}
}

// blinkTickCmd arms the next cursor-blink tick, matching the teacher's
// "re-arm the tick command after every message" idiom for a
// process-wide cadence that isn't tied to any one subprocess.
func blinkTickCmd() tea.Cmd {
	return tea.Tick(keys.BlinkInterval, func(time.Time) tea.Msg {
		return blinkTickMsg{}
	})
}

// termTickCmd arms the next terminal redraw tick while a TermPrompt is
// the active view.
func termTickCmd() tea.Cmd {
	return tea.Tick(time.Duration(render.TermFrameInterval)*time.Millisecond, func(time.Time) tea.Msg {
		return termFrameMsg{}
	})
}

// listenWatchCmd blocks on the watcher's event channel and re-arms
// itself every time it's called again from Update, bridging a channel
// fed by a background goroutine into tea.Msg delivery (the teacher's
// conversations plugin listenForWatchEvents pattern).
func listenWatchCmd(events <-chan watcher.ReloadEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return watchEventMsg{ev: ev}
	}
}

// listenClipboardCmd blocks on the clipboard monitor's buffered channel
// and re-arms itself the same way listenWatchCmd does.
func listenClipboardCmd(ch <-chan clipboard.Entry) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return clipboardEntryMsg{entry: e}
	}
}

// listenPromptCmd blocks on the session event channel a running
// Session's onPromptRequest callback feeds, re-arming itself the same
// way.
func listenPromptCmd(ch <-chan session.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return promptEventMsg{event: ev}
	}
}

// listenExternalCmd blocks on the stdin command channel cmd/launcher's
// reader goroutine feeds (§6.5's CLI surface), re-arming itself the same
// way the other background-event listeners do.
func listenExternalCmd(ch <-chan ExternalCmdMsg) tea.Cmd {
	return func() tea.Msg {
		cmd, ok := <-ch
		if !ok {
			return nil
		}
		return cmd
	}
}

// cancelSessionCmd tears down the orchestrator's active session off the
// Update goroutine, mirroring the teacher's StopAgent: Session.Cancel can
// block for up to the kill grace waiting on a SIGTERM'd subprocess, and
// Bubble Tea's Update must never block on subprocess teardown.
func cancelSessionCmd(o *session.Orchestrator) tea.Cmd {
	return func() tea.Msg {
		o.Cancel()
		return sessionCancelledMsg{}
	}
}
