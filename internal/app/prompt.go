package app

import (
	"encoding/json"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scriptkit/launcher/internal/listmodel"
	"github.com/scriptkit/launcher/internal/protocol"
	"github.com/scriptkit/launcher/internal/session"
	"github.com/scriptkit/launcher/internal/toast"
	"github.com/scriptkit/launcher/internal/view"
)

// handlePromptEvent applies one decoded script message to the view
// machine, per §4.11's "route to C1" contract. Request-correlated system
// ops never reach here — Session.Run answers those itself via the
// adapter before onPromptRequest is ever invoked.
func (m *Model) handlePromptEvent(ev session.Event) tea.Cmd {
	switch ev.Envelope.Type {
	case protocol.TypeArg, protocol.TypeMini, protocol.TypeMicro:
		var arg protocol.Arg
		if err := json.Unmarshal(ev.Raw, &arg); err != nil {
			return showToastCmd(err)
		}
		m.machine.EnterPrompt(view.KindArgPrompt, view.PromptSpec{ID: arg.ID, Arg: &arg})
		m.arg = newSingleLineBuffer(arg.Placeholder)
		if len(arg.Choices) > 0 {
			m.rebuildArgChoiceList(&arg)
		}
		return nil

	case protocol.TypeDiv:
		var div protocol.Div
		if err := json.Unmarshal(ev.Raw, &div); err != nil {
			return showToastCmd(err)
		}
		m.machine.EnterPrompt(view.KindDivPrompt, view.PromptSpec{ID: div.ID, Div: &div})
		return nil

	case protocol.TypeSelect:
		var sel protocol.Select
		if err := json.Unmarshal(ev.Raw, &sel); err != nil {
			return showToastCmd(err)
		}
		m.machine.EnterPrompt(view.KindSelectPrompt, view.PromptSpec{ID: sel.ID, Select: &sel})
		m.rebuildSelectList(&sel)
		return nil

	case protocol.TypeForm:
		var form protocol.Fields
		if err := json.Unmarshal(ev.Raw, &form); err != nil {
			return showToastCmd(err)
		}
		m.machine.EnterPrompt(view.KindFormPrompt, view.PromptSpec{ID: form.ID, Form: &form})
		names, labels, placeholders, requireds := fieldSpecsFromProtocol(form.Fields)
		m.fields = newFieldsBuffer(names, labels, placeholders, requireds)
		return m.fields.form.Init()

	case protocol.TypeFields:
		var fields protocol.Fields
		if err := json.Unmarshal(ev.Raw, &fields); err != nil {
			return showToastCmd(err)
		}
		m.machine.EnterPrompt(view.KindFieldsPrompt, view.PromptSpec{ID: fields.ID, Fields: &fields})
		names, labels, placeholders, requireds := fieldSpecsFromProtocol(fields.Fields)
		m.fields = newFieldsBuffer(names, labels, placeholders, requireds)
		return m.fields.form.Init()

	case protocol.TypeEditor:
		var ed protocol.Editor
		if err := json.Unmarshal(ev.Raw, &ed); err != nil {
			return showToastCmd(err)
		}
		m.machine.EnterPrompt(view.KindEditorPrompt, view.PromptSpec{ID: ed.ID, Editor: &ed})
		eb := newEditorBuffer()
		eb.SetValue(ed.Content)
		eb.SetLanguage(ed.Language)
		eb.SetSize(m.width-4, m.height-6)
		m.editor = eb
		return nil

	case protocol.TypeTerm:
		var term protocol.Term
		if err := json.Unmarshal(ev.Raw, &term); err != nil {
			return showToastCmd(err)
		}
		m.machine.EnterPrompt(view.KindTermPrompt, view.PromptSpec{ID: term.ID, Term: &term})
		return m.startTermPrompt(term.Command)

	case protocol.TypeNotify:
		var n protocol.Notify
		if err := json.Unmarshal(ev.Raw, &n); err != nil {
			return showToastCmd(err)
		}
		return toast.Show(n.Title + ": " + n.Body)

	case protocol.TypeHud:
		var n protocol.Notify
		if err := json.Unmarshal(ev.Raw, &n); err != nil {
			return showToastCmd(err)
		}
		return toast.Show(n.Body)

	case protocol.TypeHide:
		m.machine.Hide()
		return nil

	default:
		// set_status/set_panel/set_preview/set_actions/set_input and the
		// remaining lifecycle/system-op types aren't surfaced as a
		// distinct AppView; they're logged for diagnostics rather than
		// silently dropped.
		m.log.Debug("app: unhandled script message", "type", ev.Envelope.Type)
		return nil
	}
}

func (m *Model) rebuildSelectList(sel *protocol.Select) {
	v := m.machine.Current()
	if v.List == nil {
		return
	}
	rows := make([]listmodel.Cell, len(sel.Options))
	for i, opt := range sel.Options {
		rows[i] = listmodel.Cell{Item: &selectRow{opt: opt}}
	}
	v.List.Rebuild(rows)
}

// selectRow wraps a SelectOption as a list item payload, plus whether the
// user has toggled it on for a Multiple=true select prompt.
type selectRow struct {
	opt     protocol.SelectOption
	checked bool
}

// rebuildArgChoiceList fills an ArgPrompt's ListState with one row per
// choice, the picker EnterPrompt already gave the view for this case
// (§4.12 "ArgPrompt(with choices)").
func (m *Model) rebuildArgChoiceList(arg *protocol.Arg) {
	v := m.machine.Current()
	if v.List == nil {
		return
	}
	rows := make([]listmodel.Cell, len(arg.Choices))
	for i, c := range arg.Choices {
		rows[i] = listmodel.Cell{Item: &argChoiceRow{choice: c}}
	}
	v.List.Rebuild(rows)
}

// argChoiceRow wraps an ArgChoice as a list item payload for the
// ArgPrompt-with-choices picker.
type argChoiceRow struct {
	choice protocol.ArgChoice
}
