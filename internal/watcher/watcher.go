// Package watcher implements the file watcher (§4.8): debounced
// fsnotify monitoring of the kit's scripts/extensions/agents directories
// plus its config and theme files, coalescing bursts into one reload
// event per watch root.
package watcher

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/scriptkit/launcher/internal/catalog"
)

// DebounceWindow is §4.8's coalescing window, per watch root.
const DebounceWindow = 500 * time.Millisecond

// Root identifies which watched area produced a reload event.
type Root int

const (
	RootScripts Root = iota
	RootScriptlets
	RootAgents
	RootConfig
	RootTheme
)

func (r Root) String() string {
	switch r {
	case RootScripts:
		return "scripts"
	case RootScriptlets:
		return "scriptlets"
	case RootAgents:
		return "agents"
	case RootConfig:
		return "config"
	case RootTheme:
		return "theme"
	default:
		return "unknown"
	}
}

// ReloadEvent is emitted once per debounce window per root (§4.8
// "coalesces bursts into a single reload request per root").
type ReloadEvent struct {
	Root Root
	Path string // the most recent triggering path
}

// Watcher monitors a kit root's reload-relevant directories and files.
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan ReloadEvent
	log    *slog.Logger

	kitRoot       string
	scriptsDir    string
	scriptletsDir string
	agentsDir     string

	mu     sync.Mutex
	timers map[Root]*time.Timer
}

// New creates a Watcher over kitRoot. The caller must call Run (in its
// own goroutine) to begin dispatching events, and Close to release
// fsnotify resources.
func New(kitRoot string, log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:           fsw,
		events:        make(chan ReloadEvent, 32),
		log:           log,
		kitRoot:       kitRoot,
		scriptsDir:    filepath.Join(kitRoot, "scripts"),
		scriptletsDir: catalog.ScriptletDir(kitRoot),
		agentsDir:     filepath.Join(kitRoot, "agents"),
		timers:        make(map[Root]*time.Timer),
	}

	for _, dir := range []string{w.scriptsDir, w.scriptletsDir, w.agentsDir, kitRoot} {
		if err := fsw.Add(dir); err != nil {
			w.log.Warn("watcher: failed to watch directory", "dir", dir, "error", err)
		}
	}

	return w, nil
}

// Events returns the channel reload events are delivered on.
func (w *Watcher) Events() <-chan ReloadEvent {
	return w.events
}

// Close stops watching and releases fsnotify resources. It does not
// close Events(); Run's exit does that.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run processes fsnotify events until the watcher is closed, debouncing
// per root and closing Events() on exit. Intended to be run in its own
// goroutine.
func (w *Watcher) Run() {
	defer close(w.events)

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			root, matched := w.classify(ev.Name)
			if !matched {
				continue
			}
			w.scheduleReload(root, ev.Name)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher: fsnotify error", "error", err)
		}
	}
}

// classify maps a changed path to its watch root, or reports no match
// for files the watcher isn't responsible for (e.g. an unrelated file
// dropped directly in kitRoot).
func (w *Watcher) classify(path string) (Root, bool) {
	switch {
	case strings.HasPrefix(path, w.scriptsDir+string(filepath.Separator)):
		return RootScripts, true
	case strings.HasPrefix(path, w.scriptletsDir+string(filepath.Separator)):
		return RootScriptlets, true
	case strings.HasPrefix(path, w.agentsDir+string(filepath.Separator)):
		return RootAgents, true
	}

	if filepath.Dir(path) != w.kitRoot {
		return 0, false
	}
	base := filepath.Base(path)
	switch {
	case strings.HasPrefix(base, "config."):
		return RootConfig, true
	case strings.HasPrefix(base, "theme."):
		return RootTheme, true
	}
	return 0, false
}

// scheduleReload (re)starts root's debounce timer; firing it emits one
// coalesced ReloadEvent for whatever the most recent path was.
func (w *Watcher) scheduleReload(root Root, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[root]; ok {
		t.Stop()
	}
	w.timers[root] = time.AfterFunc(DebounceWindow, func() {
		select {
		case w.events <- ReloadEvent{Root: root, Path: path}:
		default:
			w.log.Debug("watcher: event channel full, dropping reload", "root", root)
		}
	})
}
