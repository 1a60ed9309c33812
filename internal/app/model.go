// Package app composes the launcher engine's collaborator packages
// (C1-C5, L1-L9) into a single root Bubble Tea Model (§2 "[NEW] package
// mapping"). Grounded on the teacher's internal/app/model.go Model
// struct shape (one struct field per owned subsystem, a single
// activeModal()-style accessor for what's currently showing) and
// cmd/sidecar/main.go's program construction, generalized from the
// teacher's fixed set of coding-agent plugins to the launcher's
// catalog/session/clipboard/window subsystems.
package app

import (
	"context"
	"log/slog"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scriptkit/launcher/internal/catalog"
	"github.com/scriptkit/launcher/internal/clipboard"
	"github.com/scriptkit/launcher/internal/config"
	"github.com/scriptkit/launcher/internal/frecency"
	"github.com/scriptkit/launcher/internal/highlight"
	"github.com/scriptkit/launcher/internal/keymap"
	"github.com/scriptkit/launcher/internal/keys"
	"github.com/scriptkit/launcher/internal/modal"
	"github.com/scriptkit/launcher/internal/mouse"
	"github.com/scriptkit/launcher/internal/platform"
	"github.com/scriptkit/launcher/internal/render"
	"github.com/scriptkit/launcher/internal/session"
	"github.com/scriptkit/launcher/internal/styles"
	"github.com/scriptkit/launcher/internal/termgrid"
	"github.com/scriptkit/launcher/internal/theme"
	"github.com/scriptkit/launcher/internal/toast"
	"github.com/scriptkit/launcher/internal/view"
	"github.com/scriptkit/launcher/internal/watcher"
	"github.com/scriptkit/launcher/internal/window"
)

// Model is the launcher's root Bubble Tea model. Exactly one instance is
// constructed per process; it owns every subsystem the view state
// machine, prompt orchestrator, and renderer need.
type Model struct {
	cfg     *config.Config
	log     *slog.Logger
	kitRoot string

	loader   *catalog.Loader
	snapshot *catalog.Snapshot

	frecency *frecency.Store

	registry *keymap.Registry
	router   *keys.Router
	blink    *keys.BlinkState

	machine *view.Machine

	orchestrator *session.Orchestrator

	clipStore   *clipboard.Store
	clipMonitor *clipboard.Monitor

	highlighter   *highlight.Highlighter
	markdown      *render.MarkdownRenderer
	palette       render.Palette
	resolvedTheme theme.ResolvedTheme

	watch *watcher.Watcher

	platformCtl platform.PlatformController

	width, height int
	winRect       window.Rect
	winShown      bool
	resizer       *window.Coalescer
	mouseHandler  *mouse.Handler

	actionsModal   *modal.Modal
	actionSelected int

	confirmModal         *modal.Modal
	confirmBackdrop      string
	pendingConfirmAction string

	termGrid *termgrid.Grid
	termPTY  *termgrid.PTY

	editor editorBuffer
	arg    singleLineBuffer
	fields *fieldsBuffer

	toastMsg *toast.Msg
	toastSeq int

	lastLaunchedID string

	quitting bool

	runCtx    context.Context
	runCancel context.CancelFunc

	promptCh    chan session.Event
	clipboardCh chan clipboard.Entry
	externalCh  chan ExternalCmdMsg
}

// ExternalCommands returns the send side of the channel cmd/launcher's
// stdin command reader feeds (§6.5's CLI surface). Safe to send on
// before or after Init; the listener goroutine is armed from Init.
func (m *Model) ExternalCommands() chan<- ExternalCmdMsg {
	return m.externalCh
}

// New constructs a Model from cfg, ready for Init. log must not be nil;
// callers get one from internal/logging.Setup.
func New(cfg *config.Config, log *slog.Logger) *Model {
	registry := keymap.NewRegistry()
	keymap.RegisterDefaults(registry)
	registry.ApplyOverrides(cfg.Keymap.Overrides)

	resolved := theme.ResolveTheme(cfg)

	m := &Model{
		cfg:           cfg,
		log:           log,
		kitRoot:       cfg.Kit.Root,
		loader:        catalog.NewLoader(log),
		frecency:      frecency.New(frecencyPath(cfg), cfg.Frecency.HalfLifeDays),
		registry:      registry,
		router:        keys.NewRouter(registry),
		blink:         keys.NewBlinkState(),
		machine:       view.NewMachine(),
		orchestrator:  session.NewOrchestrator(log),
		highlighter:   highlight.New(),
		markdown:      render.NewMarkdownRenderer(),
		resolvedTheme: resolved,
		palette:       render.BuildPalette(resolved),
		platformCtl:   platform.NewDefaultController(log),
		mouseHandler:  mouse.NewHandler(),
		resizer:       window.NewCoalescer(),
		promptCh:      make(chan session.Event, 8),
		clipboardCh:   make(chan clipboard.Entry, 8),
		externalCh:    make(chan ExternalCmdMsg, 8),
	}
	m.blink.SetWindowVisible(true)
	m.blink.SetFocused(true)

	for _, w := range styles.ContrastWarnings(styles.ResolvePalette(resolved.BaseName, resolved.Overrides)) {
		log.Warn("app: theme contrast", "warning", w)
	}

	return m
}

func frecencyPath(cfg *config.Config) string {
	return config.ExpandPath(cfg.Kit.Root) + "/.launcher-frecency.json"
}

// Init loads the catalog, opens the clipboard store, starts the file
// watcher and clipboard monitor on their own goroutines, and arms the
// cursor blink and background-event listener commands (§5 "dedicated
// goroutines for blocking I/O... post tea.Msg back").
func (m *Model) Init() tea.Cmd {
	m.runCtx, m.runCancel = context.WithCancel(context.Background())

	if err := m.frecency.Load(m.cfg.Frecency.PruneOnLoad); err != nil {
		m.log.Warn("app: frecency load failed", "error", err)
	}

	m.syncWindowGeometry()

	var cmds []tea.Cmd
	cmds = append(cmds, loadCatalogCmd(m.loader, m.kitRoot), blinkTickCmd(), listenPromptCmd(m.promptCh), listenExternalCmd(m.externalCh))

	if w, err := watcher.New(m.kitRoot, m.log); err != nil {
		m.log.Warn("app: watcher init failed", "error", err)
	} else {
		m.watch = w
		go w.Run()
		cmds = append(cmds, listenWatchCmd(w.Events()))
	}

	if m.cfg.Clipboard.Enabled {
		if store, err := clipboard.NewStore(clipboardDBPath(m.cfg), m.cfg.Clipboard.MaxHistory); err != nil {
			m.log.Warn("app: clipboard store open failed", "error", err)
		} else {
			m.clipStore = store
			m.clipMonitor = clipboard.NewMonitor(clipboard.NewSystemReader(), store, clipboard.DefaultImageCacheSize, m.cfg.Clipboard.PollInterval)
			go m.clipMonitor.Run(m.runCtx, func(e clipboard.Entry) {
				select {
				case m.clipboardCh <- e:
				default:
				}
			})
			cmds = append(cmds, listenClipboardCmd(m.clipboardCh))
		}
	}

	return tea.Batch(cmds...)
}

func clipboardDBPath(cfg *config.Config) string {
	return config.ExpandPath(cfg.Kit.Root) + "/.launcher-clipboard.db"
}

// runtimeCommand resolves the external interpreter invocation for a
// catalog entry, per §6.4: `runtime <script-path> [args...]`. Scriptlet
// commands have no on-disk script of their own (their body lives inline
// in the parent extension file), so their body is materialized to a temp
// file first.
func runtimeCommand(cfg *config.Config, e catalog.Entry, args []string) (path string, fullArgs []string, cleanup func(), err error) {
	if e.Kind == catalog.KindScript {
		return cfg.Kit.RuntimePath, append([]string{e.Path}, args...), func() {}, nil
	}

	tmp, werr := writeScriptletTemp(e)
	if werr != nil {
		return "", nil, func() {}, werr
	}
	return cfg.Kit.RuntimePath, append([]string{tmp}, args...), func() { removeTemp(tmp) }, nil
}

func launchEditor(cfg *config.Config, path string) *exec.Cmd {
	return exec.Command(cfg.Editor.Command, path)
}
