package termgrid

import (
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/x/xpty"
)

// PTY owns one spawned child's pseudo-terminal pair (§6.3), wiring its
// output into a Grid and its input from translated key events.
type PTY struct {
	pty  xpty.Pty
	cmd  *exec.Cmd
	grid *Grid
	done chan struct{}
}

// Spawn starts name/args attached to a PTY sized to cols/rows, with env
// inherited from the current process plus any extra vars, and begins
// copying its output into grid on a dedicated goroutine (§5 "Per active
// Session... Terminal PTY reader").
func Spawn(ctx context.Context, grid *Grid, name string, args []string, dir string, extraEnv []string) (*PTY, error) {
	cols, rows := grid.Size()
	p, err := xpty.NewPty(cols, rows)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), extraEnv...)

	if err := p.Start(cmd); err != nil {
		_ = p.Close()
		return nil, err
	}

	term := &PTY{pty: p, cmd: cmd, grid: grid, done: make(chan struct{})}
	go term.readLoop()
	return term, nil
}

// readLoop copies PTY output into the grid until EOF or the child exits.
func (t *PTY) readLoop() {
	defer close(t.done)
	buf := make([]byte, 32*1024)
	for {
		n, err := t.pty.Read(buf)
		if n > 0 {
			_, _ = t.grid.Write(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// Write sends translated key bytes to the child's stdin (the PTY slave).
func (t *PTY) Write(p []byte) (int, error) {
	return t.pty.Write(p)
}

// Resize negotiates a new grid size for (width, height) and, if it
// changed, resizes the underlying PTY to match - §4.7 "On size change,
// resize the PTY and the grid."
func (t *PTY) Resize(width, height float64, pad Padding, cell CellSize) error {
	cols, rows, changed := t.grid.ResizeIfNeeded(width, height, pad, cell)
	if !changed {
		return nil
	}
	return t.pty.Resize(cols, rows)
}

// Done returns a channel closed once the PTY reader loop exits (child
// exited or the PTY was closed).
func (t *PTY) Done() <-chan struct{} {
	return t.done
}

// Kill terminates the child and releases the PTY, waiting up to timeout
// for the reader loop to observe EOF.
func (t *PTY) Kill(timeout time.Duration) error {
	if t.cmd.Process != nil {
		_ = t.cmd.Process.Kill()
	}
	err := t.pty.Close()
	select {
	case <-t.done:
	case <-time.After(timeout):
	}
	return err
}
