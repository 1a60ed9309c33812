package keymap

// Binding associates a key chord with a command name inside a view context.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Registry holds the active key bindings, keyed by context then key chord,
// with user overrides (from config) layered on top of the defaults.
type Registry struct {
	byContext map[string]map[string]string // context -> key -> command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byContext: make(map[string]map[string]string)}
}

// RegisterBinding adds a single binding to the registry.
func (r *Registry) RegisterBinding(b Binding) {
	ctx, ok := r.byContext[b.Context]
	if !ok {
		ctx = make(map[string]string)
		r.byContext[b.Context] = ctx
	}
	ctx[b.Key] = b.Command
}

// Lookup resolves a key chord to a command, checking the view-specific
// context first and falling back to "global".
func (r *Registry) Lookup(context, key string) (string, bool) {
	if ctx, ok := r.byContext[context]; ok {
		if cmd, ok := ctx[key]; ok {
			return cmd, true
		}
	}
	if ctx, ok := r.byContext["global"]; ok {
		if cmd, ok := ctx[key]; ok {
			return cmd, true
		}
	}
	return "", false
}

// ApplyOverrides replaces the command bound to a key chord in the "global"
// context with a user-configured command name (config.KeymapConfig.Overrides).
func (r *Registry) ApplyOverrides(overrides map[string]string) {
	ctx, ok := r.byContext["global"]
	if !ok {
		ctx = make(map[string]string)
		r.byContext["global"] = ctx
	}
	for key, cmd := range overrides {
		ctx[key] = cmd
	}
}

// DefaultBindings returns the default key bindings for every view context
// the launcher engine defines (§4.13 Input/Key Router).
func DefaultBindings() []Binding {
	return []Binding{
		// Global — available from every view unless shadowed by a more
		// specific context.
		{Key: "esc", Command: "escape", Context: "global"},
		{Key: "ctrl+c", Command: "quit", Context: "global"},
		{Key: "cmd+k", Command: "open-actions", Context: "global"},
		{Key: "cmd+l", Command: "select-all-filter", Context: "global"},
		{Key: "cmd+e", Command: "open-in-editor", Context: "global"},
		{Key: "cmd+shift+f", Command: "file-search", Context: "global"},
		{Key: "cmd+shift+c", Command: "clipboard-history", Context: "global"},
		{Key: "cmd+n", Command: "new-script", Context: "global"},
		{Key: "cmd+r", Command: "rerun-last", Context: "global"},
		{Key: "cmd+,", Command: "open-settings", Context: "global"},
		{Key: "up", Command: "cursor-up", Context: "global"},
		{Key: "down", Command: "cursor-down", Context: "global"},
		{Key: "ctrl+p", Command: "cursor-up", Context: "global"},
		{Key: "ctrl+n", Command: "cursor-down", Context: "global"},
		{Key: "tab", Command: "cursor-down", Context: "global"},
		{Key: "shift+tab", Command: "cursor-up", Context: "global"},
		{Key: "enter", Command: "submit", Context: "global"},

		// MainPrompt — catalog browse/filter.
		{Key: "backspace", Command: "filter-backspace", Context: "main-prompt"},
		{Key: "ctrl+u", Command: "filter-clear", Context: "main-prompt"},
		{Key: "cmd+1", Command: "select-group-1", Context: "main-prompt"},
		{Key: "cmd+2", Command: "select-group-2", Context: "main-prompt"},

		// ScriptletPrompt — mini-shell scriptlet input editing.
		{Key: "ctrl+a", Command: "cursor-line-start", Context: "scriptlet-prompt"},
		{Key: "ctrl+e", Command: "cursor-line-end", Context: "scriptlet-prompt"},

		// FormPrompt / FieldsPrompt.
		{Key: "tab", Command: "field-next", Context: "form-prompt"},
		{Key: "shift+tab", Command: "field-prev", Context: "form-prompt"},
		{Key: "cmd+enter", Command: "submit-form", Context: "form-prompt"},

		// SelectPrompt — multi/single choice list.
		{Key: "space", Command: "toggle-selection", Context: "select-prompt"},
		{Key: "cmd+a", Command: "select-all", Context: "select-prompt"},

		// DivPrompt — read-only markdown/HTML display.
		{Key: "j", Command: "scroll-down", Context: "div-prompt"},
		{Key: "k", Command: "scroll-up", Context: "div-prompt"},
		{Key: "space", Command: "page-down", Context: "div-prompt"},
		{Key: "ctrl+d", Command: "page-down", Context: "div-prompt"},
		{Key: "ctrl+u", Command: "page-up", Context: "div-prompt"},

		// TermPrompt — PTY-backed interactive shell.
		{Key: "shift+pgup", Command: "scrollback-up", Context: "term-prompt"},
		{Key: "shift+pgdown", Command: "scrollback-down", Context: "term-prompt"},
		{Key: "cmd+shift+v", Command: "paste", Context: "term-prompt"},
		{Key: "cmd+shift+c", Command: "copy-selection", Context: "term-prompt"},
		{Key: "esc esc", Command: "exit-term", Context: "term-prompt"},

		// ActionsDialog — the secondary cmd-k command panel.
		{Key: "up", Command: "cursor-up", Context: "actions-dialog"},
		{Key: "down", Command: "cursor-down", Context: "actions-dialog"},
		{Key: "enter", Command: "run-action", Context: "actions-dialog"},
		{Key: "esc", Command: "close-actions", Context: "actions-dialog"},

		// EditorPrompt — full editing set (§4.13).
		{Key: "alt+left", Command: "word-left", Context: "editor-prompt"},
		{Key: "alt+right", Command: "word-right", Context: "editor-prompt"},
		{Key: "cmd+left", Command: "line-start", Context: "editor-prompt"},
		{Key: "cmd+right", Command: "line-end", Context: "editor-prompt"},
		{Key: "cmd+up", Command: "document-start", Context: "editor-prompt"},
		{Key: "cmd+down", Command: "document-end", Context: "editor-prompt"},
		{Key: "shift+left", Command: "extend-selection-left", Context: "editor-prompt"},
		{Key: "shift+right", Command: "extend-selection-right", Context: "editor-prompt"},
		{Key: "shift+up", Command: "extend-selection-up", Context: "editor-prompt"},
		{Key: "shift+down", Command: "extend-selection-down", Context: "editor-prompt"},
		{Key: "cmd+c", Command: "copy", Context: "editor-prompt"},
		{Key: "cmd+x", Command: "cut", Context: "editor-prompt"},
		{Key: "cmd+v", Command: "paste", Context: "editor-prompt"},
		{Key: "cmd+z", Command: "undo", Context: "editor-prompt"},
		{Key: "cmd+shift+z", Command: "redo", Context: "editor-prompt"},
		{Key: "cmd+a", Command: "select-all", Context: "editor-prompt"},
		{Key: "tab", Command: "insert-tab", Context: "editor-prompt"},
		{Key: "cmd+enter", Command: "submit", Context: "editor-prompt"},
	}
}

// RegisterDefaults registers all default bindings with the registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
}
