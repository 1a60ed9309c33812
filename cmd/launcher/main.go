// Command launcher is the headless binary entry point (§6.5 "CLI
// surface"). With no arguments it loads config/theme, builds the root
// Bubble Tea model and runs it on the current terminal, acting as the
// single floating-window process a real build's hotkey daemon would
// re-spawn per activation. A single optional stdin channel accepts
// newline-delimited JSON commands of the form `{"type":"run","path":"..."}`,
// `{"type":"show"}` and `{"type":"hide"}`, fed to the running model via
// app.ExternalCmdMsg.
//
// Grounded on cmd/sidecar/main.go's flag parsing, file-only slog setup,
// and tea.NewProgram construction, generalized from the teacher's
// plugin-registry wiring to this module's catalog/session/clipboard/
// window subsystems, and using cobra instead of the teacher's bare
// `flag` package per SPEC_FULL.md §6.5.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/scriptkit/launcher/internal/app"
	"github.com/scriptkit/launcher/internal/config"
	"github.com/scriptkit/launcher/internal/logging"
)

// Exit codes per §6.5.
const (
	exitClean        = 0
	exitConfigFatal  = 2
	exitGenericFatal = 1
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin))
}

func run(args []string, stdin io.Reader) int {
	var configPath string
	var debugFlag bool
	var compactLog bool

	root := &cobra.Command{
		Use:           "launcher",
		Short:         "A keyboard-driven script launcher.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLauncher(configPath, debugFlag, compactLog, stdin)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "path to config file")
	root.Flags().BoolVar(&debugFlag, "debug", false, "enable debug logging (overrides SK_LOG_LEVEL)")
	root.Flags().BoolVar(&compactLog, "compact-log", false, "use the compact single-line log format (overrides SK_LOG_COMPACT)")
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return exitClean
	}
	var ce *configError
	if errors.As(err, &ce) {
		fmt.Fprintf(os.Stderr, "launcher: %v\n", ce.err)
		return exitConfigFatal
	}
	fmt.Fprintf(os.Stderr, "launcher: %v\n", err)
	return exitGenericFatal
}

// configError wraps a config/theme load failure so run() can map it to
// exit code 2 instead of the generic 1 (§6.5 "2 config/theme fatal").
type configError struct{ err error }

func (c *configError) Error() string { return c.err.Error() }
func (c *configError) Unwrap() error { return c.err }

func runLauncher(configPath string, debugFlag, compactLog bool, stdin io.Reader) error {
	if debugFlag {
		_ = os.Setenv(logging.EnvLogLevel, "debug")
	}
	if compactLog {
		_ = os.Setenv(logging.EnvLogCompact, "1")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return &configError{err: fmt.Errorf("load config: %w", err)}
	}

	log, closeLog, err := logging.Setup(cfg.Kit.Root)
	if err != nil {
		return &configError{err: fmt.Errorf("open log file: %w", err)}
	}
	defer closeLog()

	model := app.New(cfg, log)

	// Feed decoded stdin commands into the model for the lifetime of the
	// process; the reader goroutine exits on EOF or a closed stdin.
	go readExternalCommands(stdin, model.ExternalCommands(), log)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run application: %w", err)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// readExternalCommands decodes newline-delimited JSON commands from r
// (§6.5's "single optional stdin channel") and forwards each to ch. A
// malformed line is logged and skipped, matching §6 L6's "never
// terminate the loop on a single bad line" policy applied here to the
// outer CLI command stream rather than the script protocol itself.
func readExternalCommands(r io.Reader, ch chan<- app.ExternalCmdMsg, log *slog.Logger) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var cmd app.ExternalCmdMsg
		if err := json.Unmarshal(line, &cmd); err != nil {
			log.Warn("launcher: malformed stdin command", "error", err)
			continue
		}
		select {
		case ch <- cmd:
		default:
			log.Debug("launcher: external command channel full, dropping", "type", cmd.Type)
		}
	}
}
