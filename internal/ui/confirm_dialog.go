package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/scriptkit/launcher/internal/modal"
	"github.com/scriptkit/launcher/internal/styles"
)

// Modal width presets shared by dialogs built on top of internal/modal.
const (
	ModalWidthSmall  = 40
	ModalWidthMedium = 50
	ModalWidthLarge  = 70
)

// ConfirmDialog is a reusable confirmation modal with interactive buttons.
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string         // e.g., " Confirm ", " Delete ", " Yes "
	CancelLabel  string         // e.g., " Cancel ", " No "
	BorderColor  lipgloss.Color // Modal border color
	Width        int            // Modal width (default 50)
	Running      bool           // true if confirming would interrupt a running script
}

// NewConfirmDialog creates a dialog with sensible defaults.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: " Confirm ",
		CancelLabel:  " Cancel ",
		BorderColor:  styles.Primary,
		Width:        ModalWidthMedium,
	}
}

// NewRunningConfirmDialog builds the dialog shown when the user tries to
// quit or navigate away while a script is still executing - confirming
// stops the script rather than just dismissing a prompt.
func NewRunningConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: " Stop script ",
		CancelLabel:  " Keep running ",
		BorderColor:  styles.Warning,
		Width:        ModalWidthMedium,
		Running:      true,
	}
}

// ToModal adapts the dialog configuration into a modal.Modal instance.
func (d *ConfirmDialog) ToModal() *modal.Modal {
	variant := modal.VariantDefault
	switch {
	case d.Running:
		variant = modal.VariantRunning
	case d.BorderColor == styles.Error:
		variant = modal.VariantDanger
	case d.BorderColor == styles.Warning:
		variant = modal.VariantWarning
	case d.BorderColor == styles.Info:
		variant = modal.VariantInfo
	}

	return modal.New(d.Title,
		modal.WithWidth(d.Width),
		modal.WithVariant(variant),
		modal.WithPrimaryAction("confirm"),
		modal.WithHints(false),
	).
		AddSection(modal.Text(d.Message)).
		AddSection(modal.Spacer()).
		AddSection(modal.Buttons(
			modal.Btn(d.ConfirmLabel, "confirm"),
			modal.Btn(d.CancelLabel, "cancel"),
		))
}
