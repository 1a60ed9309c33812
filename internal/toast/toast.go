// Package toast implements the four-variant transient notification system
// used for user-visible failures and confirmations (§7).
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Variant selects the toast's color and default auto-dismiss behavior.
type Variant int

const (
	Info Variant = iota
	Success
	Warning
	Error
)

// DefaultDuration is used when a toast is shown without an explicit
// duration; Error toasts use ErrorDuration instead since they carry more
// text and warrant a longer read.
const (
	DefaultDuration = 3 * time.Second
	ErrorDuration   = 6 * time.Second
)

// Msg is the Bubble Tea message carrying a toast to display.
type Msg struct {
	Text     string
	Variant  Variant
	Duration time.Duration
	// Action, if non-empty, is a label for a dismissible action button
	// (e.g. "Undo", "Retry"); ActionCmd runs when the action is triggered.
	Action    string
	ActionCmd tea.Cmd
}

// DismissMsg is sent by the scheduled tea.Cmd once a toast's duration has
// elapsed, clearing it from the active view if it's still the same one.
type DismissMsg struct {
	ID int
}

// Show returns a command that posts a plain info toast.
func Show(text string) tea.Cmd {
	return ShowVariant(text, Info, DefaultDuration)
}

// ShowError returns a command that posts an error toast with the longer
// default duration.
func ShowError(text string) tea.Cmd {
	return ShowVariant(text, Error, ErrorDuration)
}

// ShowVariant returns a command that posts a toast of the given variant and
// duration.
func ShowVariant(text string, variant Variant, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return Msg{Text: text, Variant: variant, Duration: duration}
	}
}

// ShowWithAction returns a command that posts a toast carrying a dismissible
// action button.
func ShowWithAction(text string, variant Variant, action string, actionCmd tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		return Msg{
			Text:      text,
			Variant:   variant,
			Duration:  DefaultDuration,
			Action:    action,
			ActionCmd: actionCmd,
		}
	}
}

// ScheduleDismiss returns a command that fires DismissMsg{id} after d.
func ScheduleDismiss(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{ID: id}
	})
}
