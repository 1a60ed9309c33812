// Package view implements the app view state machine (C1): the
// AppView tagged union, its transition table, and escape/hide policy
// (§4.10). Grounded on the teacher's internal/app/model.go ModalKind /
// activeModal() pattern — a single accessor is the source of truth for
// "what is currently showing" — generalized from a flat set of modal
// bools to a true tagged union carrying per-view payload, since each
// AppView here owns state (a ListState, a prompt spec, a terminal grid)
// the teacher's modals don't.
package view

import (
	"github.com/scriptkit/launcher/internal/listmodel"
	"github.com/scriptkit/launcher/internal/protocol"
)

// Kind discriminates the current AppView. Order is not priority here
// (there is exactly one active view, unlike the teacher's layered
// modals); it exists only to label the union's active arm.
type Kind int

const (
	KindScriptList Kind = iota
	KindActionsDialog
	KindArgPrompt
	KindDivPrompt
	KindFormPrompt
	KindFieldsPrompt
	KindSelectPrompt
	KindEditorPrompt
	KindTermPrompt
	KindClipboardHistory
	KindAppLauncher
	KindWindowSwitcher
	KindConfirmDialog
)

func (k Kind) String() string {
	switch k {
	case KindScriptList:
		return "script_list"
	case KindActionsDialog:
		return "actions_dialog"
	case KindArgPrompt:
		return "arg_prompt"
	case KindDivPrompt:
		return "div_prompt"
	case KindFormPrompt:
		return "form_prompt"
	case KindFieldsPrompt:
		return "fields_prompt"
	case KindSelectPrompt:
		return "select_prompt"
	case KindEditorPrompt:
		return "editor_prompt"
	case KindTermPrompt:
		return "term_prompt"
	case KindClipboardHistory:
		return "clipboard_history"
	case KindAppLauncher:
		return "app_launcher"
	case KindWindowSwitcher:
		return "window_switcher"
	case KindConfirmDialog:
		return "confirm_dialog"
	}
	return "unknown"
}

// isPrompt reports whether k is one of the script-driven prompt views
// (as opposed to the built-in list views), per §4.10's "Any prompt ->
// ScriptList" rule.
func (k Kind) isPrompt() bool {
	switch k {
	case KindArgPrompt, KindDivPrompt, KindFormPrompt, KindFieldsPrompt,
		KindSelectPrompt, KindEditorPrompt, KindTermPrompt:
		return true
	}
	return false
}

// PromptSpec carries the script-supplied payload for whichever prompt
// kind is active. Only the field matching Kind is populated; this mirrors
// the envelope-plus-variant shape of the wire protocol it was built from.
type PromptSpec struct {
	ID     string // correlation id to echo back on Submit (§4.11)
	Arg    *protocol.Arg
	Div    *protocol.Div
	Form   *protocol.Fields // Form reuses the Fields shape (named fields, one screen)
	Fields *protocol.Fields
	Select *protocol.Select
	Editor *protocol.Editor
	Term   *protocol.Term
}

// View is the active AppView: a discriminated union with the minimal
// state each variant needs (§3 AppView row).
type View struct {
	Kind Kind

	// List is the ListState for every list-shaped view (ScriptList,
	// ActionsDialog, SelectPrompt, ClipboardHistory, AppLauncher,
	// WindowSwitcher, and an ArgPrompt that supplied Choices). Views
	// without a list (a choiceless ArgPrompt, DivPrompt, FormPrompt,
	// FieldsPrompt, EditorPrompt, TermPrompt, ConfirmDialog) leave it nil.
	List *listmodel.Model

	Prompt PromptSpec

	// EditorText is an untyped hook for C5 to attach the editor buffer;
	// view only needs to know a prompt of that kind is active.
	EditorText string
}

// New returns a view.View initialized to ScriptList with a fresh,
// empty ListState — the machine's starting and resting state.
func New() *View {
	return &View{Kind: KindScriptList, List: listmodel.New()}
}

// Machine owns the current View. It keeps no previous view: the hide
// operation's "reset to ScriptList first" rule (§4.10) needs none.
type Machine struct {
	current *View
}

// NewMachine constructs a Machine starting at ScriptList.
func NewMachine() *Machine {
	return &Machine{current: New()}
}

// Current returns the active View.
func (m *Machine) Current() *View {
	return m.current
}

// transition installs v as the active view, applying the shared entry
// contract: reset ListState (filter cleared, selected=0) if the new view
// carries a list. Deferred resize and focus rerouting are the caller's
// responsibility (C3/C4 react to the Kind change); this function only
// owns the state itself, matching activeModal()'s narrow single
// responsibility.
func (m *Machine) transition(v *View) {
	if v.List == nil {
		switch v.Kind {
		case KindScriptList, KindActionsDialog, KindSelectPrompt,
			KindClipboardHistory, KindAppLauncher, KindWindowSwitcher:
			v.List = listmodel.New()
		}
	}
	m.current = v
}

// ToggleActionsDialog implements the ScriptList <-> ActionsDialog toggle
// (cmd-K). Calling it while any other view is active is a no-op; the
// dialog only makes sense layered over the script list.
func (m *Machine) ToggleActionsDialog() {
	switch m.current.Kind {
	case KindScriptList:
		m.transition(&View{Kind: KindActionsDialog})
	case KindActionsDialog:
		m.transition(&View{Kind: KindScriptList})
	}
}

// EnterPrompt installs a new script-driven prompt view, replacing
// whatever was active before — "any prompt -> any prompt" (§4.10). An
// ArgPrompt that supplies Choices gets a ListState too, since it renders
// as a navigable picker rather than a free-text field (§4.12).
func (m *Machine) EnterPrompt(kind Kind, spec PromptSpec) {
	if !kind.isPrompt() {
		return
	}
	v := &View{Kind: kind, Prompt: spec}
	switch {
	case kind == KindSelectPrompt:
		v.List = listmodel.New()
	case kind == KindArgPrompt && spec.Arg != nil && len(spec.Arg.Choices) > 0:
		v.List = listmodel.New()
	}
	m.transition(v)
}

// EnterBuiltin switches to one of the built-in launcher views
// (ClipboardHistory, AppLauncher, WindowSwitcher), always reachable from
// ScriptList.
func (m *Machine) EnterBuiltin(kind Kind) {
	switch kind {
	case KindClipboardHistory, KindAppLauncher, KindWindowSwitcher:
		m.transition(&View{Kind: kind})
	}
}

// EnterConfirm switches to the confirmation dialog, reachable from any
// view that needs to gate a destructive action behind a yes/no prompt
// (currently ActionsDialog's "Clear Clipboard History" entry).
func (m *Machine) EnterConfirm() {
	m.transition(&View{Kind: KindConfirmDialog})
}

// ReturnToScriptList implements "any prompt -> ScriptList" on Submit
// handled, Exit, or an Escape that found an empty filter.
func (m *Machine) ReturnToScriptList() {
	m.transition(New())
}

// EscapeResult tells the caller what an Escape keypress should do, per
// §4.10's escape policy, without performing the side effects itself
// (cancelling a session is C2's job; hiding the window is C3's).
type EscapeResult int

const (
	EscapeClearedFilter EscapeResult = iota
	EscapeHide
)

// Escape applies the escape policy: if the active view has a non-empty
// filter, clear it and report EscapeClearedFilter; otherwise report
// EscapeHide so the caller hides the window (and, if a session is
// active, cancels it first).
func (m *Machine) Escape() EscapeResult {
	if m.current.List != nil && m.current.List.Filter != "" {
		m.current.List.Filter = ""
		m.current.List.Rebuild(m.current.List.Grouped)
		return EscapeClearedFilter
	}
	return EscapeHide
}

// Hide resets to ScriptList first, preventing a stale view from
// flashing the next time the window is shown (§4.10's hide-operation
// note).
func (m *Machine) Hide() {
	m.ReturnToScriptList()
}
