package app

import (
	"github.com/scriptkit/launcher/internal/modal"
)

// actionDef is one entry in the cmd-K actions dialog, a static command
// list layered over ScriptList (§4.10 ToggleActionsDialog).
type actionDef struct {
	id    string
	label string
}

// defaultActions is the built-in action set, independent of whichever
// catalog entry is currently selected.
var defaultActions = []actionDef{
	{id: "open-in-editor", label: "Open Script in Editor"},
	{id: "new-script", label: "New Script"},
	{id: "clipboard-history", label: "Clipboard History"},
	{id: "rerun-last", label: "Rerun Last Script"},
	{id: "open-settings", label: "Open Settings"},
	{id: "clear-clipboard-history", label: "Clear Clipboard History"},
}

// destructiveActions gates a command behind EnterConfirm instead of
// running it immediately when selected from the actions dialog.
var destructiveActions = map[string]bool{
	"clear-clipboard-history": true,
}

// buildActionsModal constructs the modal.Modal shown for KindActionsDialog,
// rebuilt fresh each time the dialog opens since its list never needs to
// persist state across show/hide cycles.
func buildActionsModal(selected *int) *modal.Modal {
	items := make([]modal.ListItem, len(defaultActions))
	for i, a := range defaultActions {
		items[i] = modal.ListItem{ID: a.id, Label: a.label}
	}
	m := modal.New("Actions", modal.WithPrimaryAction("run-action"))
	m.AddSection(modal.List("actions", items, selected))
	return m
}

func actionByIndex(idx int) (actionDef, bool) {
	if idx < 0 || idx >= len(defaultActions) {
		return actionDef{}, false
	}
	return defaultActions[idx], true
}
