package app

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scriptkit/launcher/internal/termgrid"
)

// killGraceTerm bounds how long stopTermPrompt waits for the shell's PTY
// reader loop to observe EOF after Kill.
const killGraceTerm = 500 * time.Millisecond

// termCell/termPad treat one terminal character cell as one negotiation
// "pixel" (cell 1x1, no padding), since this host is itself a terminal
// rather than the pixel-addressable floating window §4.7 was written
// against - Negotiate's formula degenerates to cols=width, rows=height
// under that substitution, which is exactly what a PTY child run inside
// our own terminal needs.
var (
	termCell = termgrid.CellSize{W: 1, H: 1}
	termPad  = termgrid.Padding{}
)

// startTermPrompt spawns a PTY sized to the current terminal and begins
// driving the ≈30fps redraw tick (§4.7, §4.14). With command empty it is
// an interactive shell; with command set it runs that command under the
// shell via "-c" (§4.6 "term"'s Command field), matching S3's
// `{"type":"term","command":"htop"}`.
func (m *Model) startTermPrompt(command string) tea.Cmd {
	w, h := float64(m.width), float64(m.height-4)
	if h < float64(termgrid.MinRows) {
		h = float64(termgrid.MinRows)
	}
	grid := termgrid.New(w, h, termPad, termCell, m.cfg.Window.ScrollbackCap)
	m.termGrid = grid

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	var args []string
	if command != "" {
		args = []string{"-c", command}
	}

	pty, err := termgrid.Spawn(m.runCtx, grid, shell, args, m.cfg.Kit.Root, nil)
	if err != nil {
		return showToastCmd(err)
	}
	m.termPTY = pty
	return termTickCmd()
}

// stopTermPrompt tears down the active PTY, if any, called on exit-term
// or when a new prompt supersedes TermPrompt.
func (m *Model) stopTermPrompt() {
	if m.termPTY != nil {
		_ = m.termPTY.Kill(killGraceTerm)
		m.termPTY = nil
	}
	m.termGrid = nil
}

// termWriteCmd translates msg and writes the resulting bytes to pty's
// child, as a tea.Cmd so a write error doesn't block the update loop.
func termWriteCmd(pty *termgrid.PTY, msg tea.KeyMsg) tea.Cmd {
	b := termgrid.TranslateKey(msg)
	if len(b) == 0 {
		return nil
	}
	return func() tea.Msg {
		_, _ = pty.Write(b)
		return nil
	}
}
