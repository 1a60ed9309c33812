// Package logging sets up the process-wide slog logger: file-only
// output (stderr leaks through the TUI), a JSONL handler matching the
// ~/.scriptkit/logs/*.jsonl persisted-state layout, and an optional
// compact single-line handler toggled by an env var for faster scanning
// (§6.4's "AI-compact-log toggle (affects logging format only)").
// Grounded on cmd/sidecar/main.go's "logging to file, never stderr" setup
// (openLogFile, slog.NewTextHandler(logWriter, ...), slog.SetDefault);
// the JSONL handler choice follows spec.md's documented log file
// extension instead of the teacher's plain text, and the compact handler
// itself is authored fresh since nothing in the pack implements one.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Env vars §6.4 documents: kit-root override, log level, compact format.
const (
	EnvKitPath    = "SK_PATH"
	EnvLogLevel   = "SK_LOG_LEVEL"
	EnvLogCompact = "SK_LOG_COMPACT"
)

// DefaultLogDir is where log files live under the kit root
// (~/.scriptkit/logs/*.jsonl per §6.4's persisted state layout).
func DefaultLogDir(kitRoot string) string {
	return filepath.Join(kitRoot, "logs")
}

// OpenLogFile creates (or appends to) today's log file under dir,
// creating dir if necessary. Mirrors openLogFile's "fall back to
// discarding" contract by letting the caller decide what to do with a
// non-nil error.
func OpenLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: mkdir: %w", err)
	}
	name := fmt.Sprintf("%s.jsonl", time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open: %w", err)
	}
	return f, nil
}

// LevelFromEnv parses SK_LOG_LEVEL ("debug"/"info"/"warn"/"error"),
// defaulting to Info.
func LevelFromEnv() slog.Level {
	switch os.Getenv(EnvLogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New builds the process-wide logger. w is typically a log file opened
// via OpenLogFile, or io.Discard if one couldn't be opened - logs never
// go to stderr, since stderr leaks through the TUI. When SK_LOG_COMPACT
// is set, records use CompactHandler instead of the default JSON one.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	var handler slog.Handler
	if os.Getenv(EnvLogCompact) != "" {
		handler = NewCompactHandler(w, level)
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

// Setup is the convenience entry point cmd/launcher uses: opens the log
// file under kitRoot's logs dir, falling back to io.Discard, and returns
// a ready logger plus a close func the caller should defer.
func Setup(kitRoot string) (logger *slog.Logger, closeFn func(), err error) {
	level := LevelFromEnv()
	f, openErr := OpenLogFile(DefaultLogDir(kitRoot))
	if openErr != nil {
		logger = New(io.Discard, level)
		return logger, func() {}, nil
	}
	logger = New(f, level)
	return logger, func() { _ = f.Close() }, nil
}
