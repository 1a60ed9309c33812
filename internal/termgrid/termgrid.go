// Package termgrid implements the PTY terminal model of §4.7: a grid
// backed by a real VT220 emulator, a PTY-spawned child process, size
// negotiation arithmetic, and key/paste translation into the bytes that
// child expects.
//
// The grid/cursor/scrollback/escape-parsing machinery itself is not
// reimplemented here - github.com/danielgatis/go-headless-term already
// is a complete VT220 emulator, so termgrid wraps it the way the teacher
// wraps tmux in internal/plugins/workspace: own the subprocess, own the
// size math, delegate byte interpretation to the library that already
// does it correctly.
package termgrid

import (
	"sync"

	headlessterm "github.com/danielgatis/go-headless-term"
)

// MinCols and MinRows are §4.7's size-negotiation floors.
const (
	MinCols = 20
	MinRows = 5
)

// DefaultScrollback is §4.8/§3's documented default scrollback cap.
const DefaultScrollback = 10000

// Padding is the inner margin subtracted from the host window's content
// area before computing cell geometry (§4.7 "calc(cols,rows)").
type Padding struct {
	Top, Bottom, Left, Right float64
}

// CellSize is one monospace cell's pixel footprint.
type CellSize struct {
	W, H float64
}

// Negotiate computes (cols, rows) for a content area of (width, height)
// pixels, given padding and cell size, per §4.7's exact formula: both top
// and bottom (and left/right) padding are subtracted before dividing by
// cell size, and the result is floored then clamped to the MIN_* bounds.
// This function is regression-tested directly against spec.md's S3
// worked example.
func Negotiate(width, height float64, pad Padding, cell CellSize) (cols, rows int) {
	innerW := width - pad.Left - pad.Right
	innerH := height - pad.Top - pad.Bottom
	cols = int(innerW / cell.W)
	rows = int(innerH / cell.H)
	if cols < MinCols {
		cols = MinCols
	}
	if rows < MinRows {
		rows = MinRows
	}
	return cols, rows
}

// bellHook is the emulator's bell provider: each BEL byte sets the Grid's
// one-shot bell flag, which C5 consumes as a visual flash.
type bellHook struct {
	fired func()
}

func (b bellHook) Ring() {
	if b.fired != nil {
		b.fired()
	}
}

// Grid owns one TermPrompt's terminal state: the VT220 emulator, a
// bracketed-paste flag, and a one-shot bell flag consumed by the
// renderer. Exclusively owned by its AppView (§3 "TerminalState...
// lifetime = session"); the PTY reader thread feeds it via Write, but
// all reads happen on the UI task.
type Grid struct {
	mu    sync.Mutex
	term  *headlessterm.Terminal
	bell  bool
	title string

	cols, rows int
	lastPad    Padding
	lastCell   CellSize
}

// New creates a Grid negotiated for (width, height) pixels.
func New(width, height float64, pad Padding, cell CellSize, scrollbackCap int) *Grid {
	cols, rows := Negotiate(width, height, pad, cell)
	if scrollbackCap <= 0 {
		scrollbackCap = DefaultScrollback
	}
	g := &Grid{cols: cols, rows: rows, lastPad: pad, lastCell: cell}
	g.term = headlessterm.New(
		headlessterm.WithSize(rows, cols),
		headlessterm.WithBell(bellHook{fired: g.ring}),
		headlessterm.WithTitle(titleHook{g}),
	)
	g.term.SetMaxScrollback(scrollbackCap)
	return g
}

func (g *Grid) ring() {
	g.mu.Lock()
	g.bell = true
	g.mu.Unlock()
}

type titleHook struct{ g *Grid }

func (t titleHook) SetTitle(s string) {
	t.g.mu.Lock()
	t.g.title = s
	t.g.mu.Unlock()
}

// PushTitle/PopTitle satisfy headlessterm.TitleProvider; the title stack
// (OSC 22/23) isn't surfaced anywhere in §4.7, so these are no-ops.
func (t titleHook) PushTitle() {}
func (t titleHook) PopTitle()  {}

// Write feeds raw child-process output into the emulator. Safe to call
// from the PTY reader goroutine; the Terminal itself serializes writes
// internally, matching the "single writer" resource-model note of §5.
func (g *Grid) Write(p []byte) (int, error) {
	return g.term.Write(p)
}

// ConsumeBell reports and clears the one-shot bell flag.
func (g *Grid) ConsumeBell() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	fired := g.bell
	g.bell = false
	return fired
}

// Title returns the terminal's OSC-set title, if any.
func (g *Grid) Title() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.title
}

// Size returns the grid's currently negotiated (cols, rows).
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// ResizeIfNeeded renegotiates (cols, rows) for a new content area and
// resizes both the emulator and, via the returned bool, tells the caller
// whether a PTY resize is actually required - §4.14's "called once per
// size-equality transition" rule lives here, not in the renderer.
func (g *Grid) ResizeIfNeeded(width, height float64, pad Padding, cell CellSize) (cols, rows int, changed bool) {
	cols, rows = Negotiate(width, height, pad, cell)
	if cols == g.cols && rows == g.rows {
		return cols, rows, false
	}
	g.cols, g.rows = cols, rows
	g.lastPad, g.lastCell = pad, cell
	g.term.Resize(rows, cols)
	return cols, rows, true
}

// Cell returns the emulator cell at (row, col), for the renderer to
// translate into a styled run.
func (g *Grid) Cell(row, col int) *headlessterm.Cell {
	return g.term.Cell(row, col)
}

// CursorPos returns the emulator's current cursor position.
func (g *Grid) CursorPos() (row, col int) {
	return g.term.CursorPos()
}

// CursorVisible reports whether the cursor should currently be drawn.
func (g *Grid) CursorVisible() bool {
	return g.term.CursorVisible()
}

// ScrollbackLen and ScrollbackLine expose the bounded scrollback deque.
// No renderer in the launcher reads them: RenderTerminal draws only the
// live rows (see DESIGN.md, Open Question 2).
func (g *Grid) ScrollbackLen() int {
	return g.term.ScrollbackLen()
}

func (g *Grid) ScrollbackLine(index int) []headlessterm.Cell {
	return g.term.ScrollbackLine(index)
}
