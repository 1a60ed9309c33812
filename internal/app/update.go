package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scriptkit/launcher/internal/catalog"
	"github.com/scriptkit/launcher/internal/keys"
	"github.com/scriptkit/launcher/internal/toast"
	"github.com/scriptkit/launcher/internal/ui"
	"github.com/scriptkit/launcher/internal/view"
)

// Update dispatches every inbound tea.Msg, including the re-armed
// background-event messages (§5 "dedicated goroutines for blocking
// I/O... post tea.Msg back"), then resyncs the host window's geometry to
// whatever view is active afterward (§4.12 C3).
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.dispatch(msg)
	if mm, ok := model.(*Model); ok && !mm.quitting {
		mm.syncWindowGeometry()
	}
	return model, cmd
}

func (m *Model) dispatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case catalogLoadedMsg:
		if msg.err != nil {
			m.log.Warn("app: catalog load failed", "error", msg.err)
			return m, nil
		}
		m.snapshot = msg.snapshot
		m.rebuildScriptList()
		return m, nil

	case watchEventMsg:
		return m, tea.Batch(loadCatalogCmd(m.loader, m.kitRoot), listenWatchCmd(m.watch.Events()))

	case clipboardEntryMsg:
		if m.machine.Current().Kind == view.KindClipboardHistory {
			m.rebuildClipboardHistory()
		}
		return m, listenClipboardCmd(m.clipboardCh)

	case promptEventMsg:
		cmd := m.handlePromptEvent(msg.event)
		return m, tea.Batch(cmd, listenPromptCmd(m.promptCh))

	case sessionStartedMsg:
		if msg.err != nil {
			return m, showToastCmd(msg.err)
		}
		return m, nil

	case sessionCancelledMsg:
		return m, nil

	case blinkTickMsg:
		m.blink.Tick()
		return m, blinkTickCmd()

	case termFrameMsg:
		if m.machine.Current().Kind != view.KindTermPrompt {
			return m, nil
		}
		return m, termTickCmd()

	case toast.Msg:
		m.toastSeq++
		id := m.toastSeq
		msgCopy := msg
		m.toastMsg = &msgCopy
		dur := msg.Duration
		if dur == 0 {
			dur = toast.DefaultDuration
		}
		return m, toast.ScheduleDismiss(id, dur)

	case toast.DismissMsg:
		if m.toastMsg != nil && msg.ID == m.toastSeq {
			m.toastMsg = nil
		}
		return m, nil

	case ExternalCmdMsg:
		cmd := m.handleExternalCmd(msg)
		return m, tea.Batch(cmd, listenExternalCmd(m.externalCh))
	}

	return m, m.updateActiveBuffer(msg)
}

// handleResize tracks the terminal's current size and, for TermPrompt,
// resizes the live PTY to match (§4.7 "On size change, resize the PTY
// and the grid").
func (m *Model) handleResize(msg tea.WindowSizeMsg) tea.Cmd {
	m.width, m.height = msg.Width, msg.Height
	if m.termPTY != nil {
		_ = m.termPTY.Resize(float64(m.width), float64(m.height-4), termPad, termCell)
	}
	if m.machine.Current().Kind == view.KindEditorPrompt {
		m.editor.SetSize(m.width-4, m.height-6)
	}
	return nil
}

// contextFor maps the active AppView kind to the keymap context its keys
// are dispatched against (§4.13).
func contextFor(kind view.Kind) string {
	switch kind {
	case view.KindActionsDialog:
		return "actions-dialog"
	case view.KindArgPrompt:
		return "scriptlet-prompt"
	case view.KindDivPrompt:
		return "div-prompt"
	case view.KindFormPrompt, view.KindFieldsPrompt:
		return "form-prompt"
	case view.KindSelectPrompt:
		return "select-prompt"
	case view.KindEditorPrompt:
		return "editor-prompt"
	case view.KindTermPrompt:
		return "term-prompt"
	default:
		return "main-prompt"
	}
}

// handleKey dispatches a key event through the router for the active
// view's context, then runs the resolved command, falling back to
// forwarding raw runes/edits into the active widget when no command
// matched (§4.13).
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kind := m.machine.Current().Kind

	if kind == view.KindTermPrompt {
		return m, m.forwardTermKey(msg)
	}
	if kind == view.KindConfirmDialog {
		return m, m.forwardConfirmKey(msg)
	}

	cmdName, ok := m.router.Dispatch(contextFor(kind), msg)
	if ok {
		if model, cmd, handled := m.runCommand(cmdName, msg); handled {
			return model, cmd
		}
	}

	// No bound command (or the command chose not to fully handle the
	// key) - let filter typing and the active prompt widget see it.
	return m, m.handleUnboundKey(msg)
}

// runCommand executes a resolved keymap command name. handled=false lets
// the caller fall through to filter-typing/widget forwarding for
// commands that only make sense combined with raw key forwarding
// (currently none do, but the seam mirrors the teacher's dispatch table
// shape).
func (m *Model) runCommand(name string, msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch name {
	case "quit":
		m.quitting = true
		return m, tea.Batch(cancelSessionCmd(m.orchestrator), tea.Quit), true

	case "escape":
		return m, m.handleEscape(), true

	case "open-actions":
		m.machine.ToggleActionsDialog()
		sel := 0
		m.actionSelected = sel
		m.actionsModal = buildActionsModal(&m.actionSelected)
		return m, nil, true

	case "close-actions":
		m.machine.ToggleActionsDialog()
		return m, nil, true

	case "cursor-up":
		return m, m.moveSelection(-1), true

	case "cursor-down":
		return m, m.moveSelection(1), true

	case "run-action":
		if m.machine.Current().Kind == view.KindActionsDialog {
			return m, m.runSelectedAction(), true
		}
		return m, nil, false

	case "submit":
		return m, m.submitActive(), true

	case "submit-form":
		return m, m.submitActive(), true

	case "toggle-selection":
		m.toggleSelectOption()
		return m, nil, true

	case "filter-backspace":
		m.filterBackspace()
		return m, nil, true

	case "filter-clear":
		if v := m.machine.Current(); v.List != nil {
			v.List.Filter = ""
			m.rebuildScriptList()
		}
		return m, nil, true

	case "scroll-down", "page-down":
		return m, m.moveSelection(1), true

	case "scroll-up", "page-up":
		return m, m.moveSelection(-1), true

	case "exit-term":
		m.stopTermPrompt()
		m.machine.ReturnToScriptList()
		return m, cancelSessionCmd(m.orchestrator), true

	case "clipboard-history":
		m.machine.EnterBuiltin(view.KindClipboardHistory)
		m.rebuildClipboardHistory()
		return m, nil, true

	case "rerun-last":
		if m.lastLaunchedID != "" && m.snapshot != nil {
			if e, ok := m.snapshot.ByID[m.lastLaunchedID]; ok {
				return m, m.launchEntry(*e, nil), true
			}
		}
		return m, nil, true

	case "open-in-editor":
		return m, m.openSelectedInEditor(), true

	default:
		return m, nil, false
	}
}

// handleEscape implements §4.10's escape policy: clear a non-empty
// filter first, otherwise cancel any active session and quit (this host
// has no backgrounded "hidden" state to return to, unlike a floating
// window under an external supervisor - see §6.2's PlatformController).
func (m *Model) handleEscape() tea.Cmd {
	switch m.machine.Escape() {
	case view.EscapeClearedFilter:
		m.rebuildScriptList()
		return nil
	default: // EscapeHide
		m.stopTermPrompt()
		m.quitting = true
		return tea.Batch(cancelSessionCmd(m.orchestrator), tea.Quit)
	}
}

// handleExternalCmd applies a decoded stdin command per §6.5's CLI
// surface: "run" launches path the same way Enter on a ScriptList entry
// would, "show" resets to ScriptList (this host has no hidden state to
// restore, see handleEscape), "hide" cancels and quits exactly like
// EscapeHide. Unknown types are dropped silently, matching §7's "C4:
// unhandled keys are dropped silently" propagation policy extended to
// unrecognized external commands.
func (m *Model) handleExternalCmd(msg ExternalCmdMsg) tea.Cmd {
	switch msg.Type {
	case "run":
		if msg.Path == "" {
			return nil
		}
		return m.launchEntry(catalog.Entry{ID: msg.Path, Kind: catalog.KindScript, Path: msg.Path}, msg.Args)

	case "show":
		m.machine.ReturnToScriptList()
		m.rebuildScriptList()
		return nil

	case "hide":
		m.stopTermPrompt()
		m.quitting = true
		return tea.Batch(cancelSessionCmd(m.orchestrator), tea.Quit)

	default:
		m.log.Debug("app: unrecognized external command", "type", msg.Type)
		return nil
	}
}

// moveSelection steps the active list's selection, or cycles the actions
// dialog's selection when it's the active view.
func (m *Model) moveSelection(delta int) tea.Cmd {
	if m.machine.Current().Kind == view.KindActionsDialog {
		n := len(defaultActions)
		if n == 0 {
			return nil
		}
		m.actionSelected = ((m.actionSelected+delta)%n + n) % n
		return nil
	}
	v := m.machine.Current()
	if v.List == nil {
		return nil
	}
	if delta < 0 {
		v.List.MoveUp()
	} else {
		v.List.MoveDown()
	}
	return nil
}

// runSelectedAction executes the highlighted actions-dialog entry,
// closing the dialog - unless the entry is destructive, in which case it
// opens the confirmation dialog instead and leaves closing the actions
// dialog to whichever of confirm/cancel the user picks next.
func (m *Model) runSelectedAction() tea.Cmd {
	a, ok := actionByIndex(m.actionSelected)
	if !ok {
		m.machine.ToggleActionsDialog()
		return nil
	}
	if destructiveActions[a.id] {
		title, message := confirmCopyFor(a.id)
		m.openConfirm(a.id, title, message)
		return nil
	}
	m.machine.ToggleActionsDialog()
	_, cmd, _ := m.runCommand(a.id, tea.KeyMsg{})
	return cmd
}

// confirmCopyFor returns the title/message pair shown for a destructive
// action's confirmation dialog.
func confirmCopyFor(actionID string) (title, message string) {
	switch actionID {
	case "clear-clipboard-history":
		return "Clear Clipboard History", "This removes every unpinned clipboard entry. This can't be undone."
	default:
		return "Confirm", "Are you sure?"
	}
}

// openConfirm captures the current frame as the confirm dialog's dimmed
// backdrop (§4.10's "close over the view beneath" modal convention),
// builds the dialog, and transitions to it.
func (m *Model) openConfirm(actionID, title, message string) {
	m.confirmBackdrop = m.View()
	m.confirmModal = ui.NewConfirmDialog(title, message).ToModal()
	m.pendingConfirmAction = actionID
	m.machine.EnterConfirm()
}

// forwardConfirmKey routes a key event to the confirm dialog's own
// focus/button handling (Tab cycles Confirm/Cancel, Enter/click
// triggers), bypassing the keymap router the way exit-term does for the
// terminal prompt.
func (m *Model) forwardConfirmKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirmModal == nil {
		m.machine.ReturnToScriptList()
		return nil
	}
	action, cmd := m.confirmModal.HandleKey(msg)
	switch action {
	case "confirm":
		return m.resolvePendingConfirm(true)
	case "cancel":
		return m.resolvePendingConfirm(false)
	default:
		return cmd
	}
}

// resolvePendingConfirm applies or discards the pending destructive
// action and returns to ScriptList, clearing the confirm dialog state.
func (m *Model) resolvePendingConfirm(confirmed bool) tea.Cmd {
	actionID := m.pendingConfirmAction
	m.confirmModal = nil
	m.confirmBackdrop = ""
	m.pendingConfirmAction = ""
	m.machine.ReturnToScriptList()
	m.rebuildScriptList()
	if !confirmed {
		return nil
	}
	switch actionID {
	case "clear-clipboard-history":
		if m.clipStore == nil {
			return nil
		}
		if err := m.clipStore.Clear(); err != nil {
			return showToastCmd(err)
		}
		return toast.ShowVariant("Clipboard history cleared", toast.Success, toast.DefaultDuration)
	}
	return nil
}

// submitActive submits whatever the current prompt view collected,
// matching each prompt kind's Submit payload shape (§4.11, §4.6).
func (m *Model) submitActive() tea.Cmd {
	v := m.machine.Current()
	sess := m.orchestrator.Current()

	switch v.Kind {
	case view.KindScriptList, view.KindAppLauncher, view.KindWindowSwitcher:
		item := v.List.SelectedItem()
		e, ok := item.(catalog.Entry)
		if !ok {
			return nil
		}
		return m.launchEntry(e, nil)

	case view.KindArgPrompt:
		if sess == nil {
			return nil
		}
		value := m.argSubmitValue(v)
		_ = sess.Submit(v.Prompt.ID, value)
		m.machine.ReturnToScriptList()
		m.rebuildScriptList()
		return nil

	case view.KindSelectPrompt:
		if sess == nil {
			return nil
		}
		value := m.selectedSelectValue(v)
		_ = sess.Submit(v.Prompt.ID, value)
		m.machine.ReturnToScriptList()
		m.rebuildScriptList()
		return nil

	case view.KindFormPrompt, view.KindFieldsPrompt:
		if sess == nil || m.fields == nil {
			return nil
		}
		_ = sess.Submit(v.Prompt.ID, m.fields.Values())
		m.machine.ReturnToScriptList()
		m.rebuildScriptList()
		return nil

	case view.KindEditorPrompt:
		if sess == nil {
			return nil
		}
		_ = sess.Submit(v.Prompt.ID, m.editor.Value())
		m.machine.ReturnToScriptList()
		m.rebuildScriptList()
		return nil

	default:
		return nil
	}
}

// argSubmitValue returns what an ArgPrompt's Submit should carry: the
// selected choice's Value when the prompt supplied Choices (§4.12), or
// the free-text buffer's contents otherwise.
func (m *Model) argSubmitValue(v *view.View) interface{} {
	if hasChoicesFor(v) && v.List != nil {
		if row, ok := v.List.SelectedItem().(*argChoiceRow); ok {
			return row.choice.Value
		}
	}
	return m.arg.Value()
}

func (m *Model) selectedSelectValue(v *view.View) interface{} {
	if v.Prompt.Select == nil || v.List == nil {
		return nil
	}
	if !v.Prompt.Select.Multiple {
		row, ok := v.List.SelectedItem().(*selectRow)
		if !ok {
			return nil
		}
		return row.opt.Value
	}
	var values []string
	for _, cell := range v.List.Grouped {
		if cell.IsHeader {
			continue
		}
		if row, ok := cell.Item.(*selectRow); ok && row.checked {
			values = append(values, row.opt.Value)
		}
	}
	return values
}

func (m *Model) toggleSelectOption() {
	v := m.machine.Current()
	if v.Kind != view.KindSelectPrompt || v.List == nil {
		return
	}
	if row, ok := v.List.SelectedItem().(*selectRow); ok {
		row.checked = !row.checked
	}
}

// filterBackspace removes the last rune from the active list's filter
// and re-scores (§4.4, §4.13).
func (m *Model) filterBackspace() {
	v := m.machine.Current()
	if v.List == nil || v.List.Filter == "" {
		return
	}
	r := []rune(v.List.Filter)
	v.List.Filter = string(r[:len(r)-1])
	m.rebuildScriptList()
}

// handleUnboundKey forwards a key the router had no binding for: filter
// typing on list views, or raw editing keys into whichever buffer the
// active prompt owns.
func (m *Model) handleUnboundKey(msg tea.KeyMsg) tea.Cmd {
	kind := m.machine.Current().Kind

	switch kind {
	case view.KindScriptList, view.KindSelectPrompt, view.KindAppLauncher, view.KindWindowSwitcher, view.KindClipboardHistory:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				if keys.IsFilterChar(r) {
					v := m.machine.Current()
					if v.List != nil {
						v.List.Filter += string(r)
					}
				}
			}
			m.rebuildScriptList()
		}
		return nil

	case view.KindArgPrompt:
		return m.arg.Update(msg)

	case view.KindEditorPrompt:
		return m.editor.Update(msg)

	case view.KindFormPrompt, view.KindFieldsPrompt:
		if m.fields != nil {
			return m.fields.Update(msg)
		}
		return nil

	default:
		return nil
	}
}

// updateActiveBuffer forwards any message type that isn't handled above
// (e.g. bubbles' internal blink-cursor ticks) to the focused widget.
func (m *Model) updateActiveBuffer(msg tea.Msg) tea.Cmd {
	switch m.machine.Current().Kind {
	case view.KindArgPrompt:
		return m.arg.Update(msg)
	case view.KindEditorPrompt:
		return m.editor.Update(msg)
	case view.KindFormPrompt, view.KindFieldsPrompt:
		if m.fields != nil {
			return m.fields.Update(msg)
		}
	}
	return nil
}

// forwardTermKey translates a key event into PTY bytes and writes them
// to the running shell, or handles the exit-term chord first (§4.7).
func (m *Model) forwardTermKey(msg tea.KeyMsg) tea.Cmd {
	if cmdName, ok := m.router.Dispatch("term-prompt", msg); ok {
		if _, cmd, handled := m.runCommand(cmdName, msg); handled {
			return cmd
		}
	}
	if m.termPTY == nil {
		return nil
	}
	return termWriteCmd(m.termPTY, msg)
}

// openSelectedInEditor launches the configured editor against the
// currently selected catalog entry's Path (cmd+e, §4.13).
func (m *Model) openSelectedInEditor() tea.Cmd {
	v := m.machine.Current()
	if v.List == nil {
		return nil
	}
	e, ok := v.List.SelectedItem().(catalog.Entry)
	if !ok || e.Path == "" {
		return nil
	}
	cmd := launchEditor(m.cfg, e.Path)
	if err := cmd.Start(); err != nil {
		return showToastCmd(err)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case m.machine.Current().Kind == view.KindActionsDialog && m.actionsModal != nil:
		action := m.actionsModal.HandleMouse(msg, m.mouseHandler)
		if action == "cancel" {
			m.machine.ToggleActionsDialog()
		} else if action == "run-action" {
			return m.runSelectedAction()
		}

	case m.machine.Current().Kind == view.KindConfirmDialog && m.confirmModal != nil:
		switch m.confirmModal.HandleMouse(msg, m.mouseHandler) {
		case "confirm":
			return m.resolvePendingConfirm(true)
		case "cancel":
			return m.resolvePendingConfirm(false)
		}
	}
	return nil
}

// rebuildClipboardHistory loads the clipboard store's current entries
// into the ClipboardHistory view's list.
func (m *Model) rebuildClipboardHistory() {
	v := m.machine.Current()
	if v.List == nil || m.clipStore == nil {
		return
	}
	entries, err := m.clipStore.List(0)
	if err != nil {
		m.log.Warn("app: clipboard list failed", "error", err)
		return
	}
	rows := make([]clipboardRow, len(entries))
	for i, e := range entries {
		rows[i] = clipboardRow{entry: e}
	}
	v.List.Rebuild(clipboardCells(rows))
}
