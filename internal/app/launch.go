package app

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scriptkit/launcher/internal/catalog"
	"github.com/scriptkit/launcher/internal/platform"
	"github.com/scriptkit/launcher/internal/protocol"
	"github.com/scriptkit/launcher/internal/session"
	"github.com/scriptkit/launcher/internal/toast"
)

func decodeInto(raw []byte, v interface{}) error {
	return json.Unmarshal(raw, v)
}

// writeScriptletTemp materializes a scriptlet entry's inline Body to a
// temp file named after its language's conventional extension, since the
// runtime interpreter needs a real path to invoke (§6.4).
func writeScriptletTemp(e catalog.Entry) (string, error) {
	ext := scriptletExtension(e.Language)
	f, err := os.CreateTemp("", "launcher-scriptlet-*"+ext)
	if err != nil {
		return "", fmt.Errorf("app: create scriptlet temp file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(e.Body); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("app: write scriptlet temp file: %w", err)
	}
	return f.Name(), nil
}

func scriptletExtension(lang string) string {
	switch lang {
	case "bash":
		return ".sh"
	case "ts":
		return ".ts"
	case "applescript":
		return ".scpt"
	default:
		return ".js"
	}
}

func removeTemp(path string) {
	if path != "" {
		_ = os.Remove(path)
	}
}

// launchEntry starts e running under the orchestrator, cancelling
// whatever was active first (§4.11 "Cancel any existing Session"). For
// scriptlets it first materializes Body to a temp file and schedules its
// removal once the session ends.
func (m *Model) launchEntry(e catalog.Entry, args []string) tea.Cmd {
	return func() tea.Msg {
		path, fullArgs, cleanup, err := runtimeCommand(m.cfg, e, args)
		if err != nil {
			return sessionStartedMsg{err: err}
		}

		dir := m.cfg.Kit.Root
		extraEnv := []string{"SK_PATH=" + m.cfg.Kit.Root}

		sess, err := m.orchestrator.Run(m.runCtx, path, fullArgs, dir, extraEnv,
			func(ev session.Event) {
				select {
				case m.promptCh <- ev:
				default:
				}
			},
			m.systemOpAdapter,
		)
		if err != nil {
			cleanup()
			return sessionStartedMsg{err: err}
		}

		go func() {
			<-sess.Done()
			cleanup()
		}()

		m.lastLaunchedID = e.ID
		return sessionStartedMsg{sess: sess}
	}
}

// systemOpAdapter fulfills request-correlated system ops a running
// script issues (clipboard, keyboard/mouse simulation, window control,
// screenshot, selected text, accessibility permission) per §4.11 step 3,
// dispatching each to the relevant adapter (clipStore or platformCtl)
// and replying with a message carrying the same request_id. Ops with no
// real backend in this host (everything platformCtl's default
// no-op/logging implementation covers) still reply successfully rather
// than leaving the script's await hanging, matching §7's "platform
// failures are logged; never crash" propagation policy.
func (m *Model) systemOpAdapter(env protocol.Envelope, raw []byte) (interface{}, bool) {
	switch env.Type {
	case protocol.TypeClipboardRead:
		text, err := m.platformCtl.ReadClipboardText()
		if err != nil {
			return m.errorReply(env), true
		}
		return protocol.Submit{Envelope: replyEnvelope(env), Value: text}, true

	case protocol.TypeClipboardWrite:
		var msg protocol.ClipboardWrite
		if err := decodeInto(raw, &msg); err != nil {
			return m.errorReply(env), true
		}
		if err := m.platformCtl.WriteClipboardText(msg.Text); err != nil {
			return m.errorReply(env), true
		}
		return protocol.Submit{Envelope: replyEnvelope(env)}, true

	case protocol.TypeClipboardHistoryList:
		return m.clipboardHistoryReply(env), true

	case protocol.TypeClipboardHistoryPin:
		return m.clipboardHistoryMutate(env, raw, func(id int64) error { return m.clipStore.SetPinned(id, true) })

	case protocol.TypeClipboardHistoryUnpin:
		return m.clipboardHistoryMutate(env, raw, func(id int64) error { return m.clipStore.SetPinned(id, false) })

	case protocol.TypeClipboardHistoryRemove:
		return m.clipboardHistoryMutate(env, raw, func(id int64) error { return m.clipStore.Delete(id) })

	case protocol.TypeClipboardHistoryClear:
		if m.clipStore == nil {
			return m.clipboardHistoryError(env, "clipboard history disabled"), true
		}
		if err := m.clipStore.Clear(); err != nil {
			return m.clipboardHistoryError(env, err.Error()), true
		}
		return protocol.ClipboardHistorySuccess{Envelope: replyEnvelope(env)}, true

	case protocol.TypeClipboardHistoryTrimOversize:
		// evictExcess runs on every Insert already (§4.9's MAX_HISTORY
		// cap); nothing further to trim on demand, but the op still
		// replies successfully rather than erroring.
		return protocol.ClipboardHistorySuccess{Envelope: replyEnvelope(env)}, true

	case protocol.TypeKeyboardType:
		var msg protocol.KeyboardType
		if err := decodeInto(raw, &msg); err != nil {
			return m.errorReply(env), true
		}
		if err := m.platformCtl.TypeText(msg.Text); err != nil {
			return m.errorReply(env), true
		}
		return protocol.Submit{Envelope: replyEnvelope(env)}, true

	case protocol.TypeKeyboardTap:
		var msg protocol.KeyboardTap
		if err := decodeInto(raw, &msg); err != nil {
			return m.errorReply(env), true
		}
		if err := m.platformCtl.TapKey(msg.Key, msg.Modifiers); err != nil {
			return m.errorReply(env), true
		}
		return protocol.Submit{Envelope: replyEnvelope(env)}, true

	case protocol.TypeMouseMove:
		var msg protocol.MouseMove
		if err := decodeInto(raw, &msg); err != nil {
			return m.errorReply(env), true
		}
		if err := m.platformCtl.MoveMouse(msg.X, msg.Y); err != nil {
			return m.errorReply(env), true
		}
		return protocol.Submit{Envelope: replyEnvelope(env)}, true

	case protocol.TypeMouseClick:
		var msg protocol.MouseClick
		if err := decodeInto(raw, &msg); err != nil {
			return m.errorReply(env), true
		}
		if err := m.platformCtl.ClickMouse(msg.X, msg.Y, msg.Button); err != nil {
			return m.errorReply(env), true
		}
		return protocol.Submit{Envelope: replyEnvelope(env)}, true

	case protocol.TypeMouseSetPosition:
		var msg protocol.MouseSetPosition
		if err := decodeInto(raw, &msg); err != nil {
			return m.errorReply(env), true
		}
		if err := m.platformCtl.SetMousePosition(msg.X, msg.Y); err != nil {
			return m.errorReply(env), true
		}
		return protocol.Submit{Envelope: replyEnvelope(env)}, true

	case protocol.TypeWindowsList:
		windows, err := m.platformCtl.ListWindows()
		if err != nil {
			return m.errorReply(env), true
		}
		reply := protocol.WindowsListReply{Envelope: replyEnvelope(env)}
		for _, w := range windows {
			reply.Windows = append(reply.Windows, protocol.WindowDescriptor{
				ID: w.ID, AppName: w.AppName, Title: w.Title, X: w.X, Y: w.Y, W: w.W, H: w.H,
			})
		}
		return reply, true

	case protocol.TypeWindowsFocus:
		var msg protocol.WindowsFocus
		return m.windowOp(env, raw, &msg, func() error { return m.platformCtl.FocusWindowByID(msg.ID) })

	case protocol.TypeWindowsClose:
		var msg protocol.WindowsClose
		return m.windowOp(env, raw, &msg, func() error { return m.platformCtl.CloseWindowByID(msg.ID) })

	case protocol.TypeWindowsMinimize:
		var msg protocol.WindowsMinimize
		return m.windowOp(env, raw, &msg, func() error { return m.platformCtl.MinimizeWindowByID(msg.ID) })

	case protocol.TypeWindowsMaximize:
		var msg protocol.WindowsMaximize
		return m.windowOp(env, raw, &msg, func() error { return m.platformCtl.MaximizeWindowByID(msg.ID) })

	case protocol.TypeWindowsMove:
		var msg protocol.WindowsMove
		return m.windowOp(env, raw, &msg, func() error { return m.platformCtl.MoveWindowByID(msg.ID, msg.X, msg.Y) })

	case protocol.TypeWindowsResize:
		var msg protocol.WindowsResize
		return m.windowOp(env, raw, &msg, func() error { return m.platformCtl.ResizeWindowByID(msg.ID, msg.W, msg.H) })

	case protocol.TypeWindowsTile:
		var msg protocol.WindowsTile
		if err := decodeInto(raw, &msg); err != nil {
			return m.errorReply(env), true
		}
		region, ok := parseTileRegion(msg.Region)
		if !ok {
			return m.errorReply(env), true
		}
		if err := m.platformCtl.TileWindowByID(msg.ID, region); err != nil {
			return m.errorReply(env), true
		}
		return protocol.Submit{Envelope: replyEnvelope(env)}, true

	case protocol.TypeCaptureScreenshot:
		data, err := m.platformCtl.CaptureScreenshot()
		if err != nil {
			return m.errorReply(env), true
		}
		return protocol.ScreenshotResult{
			Envelope:    protocol.Envelope{Type: protocol.TypeScreenshotResult, RequestID: env.RequestID},
			ImageBase64: base64.StdEncoding.EncodeToString(data),
		}, true

	case protocol.TypeGetSelectedText:
		text, err := m.platformCtl.GetSelectedText()
		if err != nil {
			return m.errorReply(env), true
		}
		return protocol.StateResult{
			Envelope: protocol.Envelope{Type: protocol.TypeStateResult, RequestID: env.RequestID},
			Value:    text,
		}, true

	case protocol.TypeSetSelectedText:
		var msg protocol.SetSelectedText
		if err := decodeInto(raw, &msg); err != nil {
			return m.errorReply(env), true
		}
		if err := m.platformCtl.SetSelectedText(msg.Text); err != nil {
			return m.errorReply(env), true
		}
		return protocol.Submit{Envelope: replyEnvelope(env)}, true

	case protocol.TypeAccessibilityPermissionHas:
		return protocol.ElementsResult{
			Envelope: protocol.Envelope{Type: protocol.TypeElementsResult, RequestID: env.RequestID},
			Granted:  m.platformCtl.HasAccessibilityPermission(),
		}, true

	case protocol.TypeAccessibilityPermissionRequest:
		return protocol.ElementsResult{
			Envelope: protocol.Envelope{Type: protocol.TypeElementsResult, RequestID: env.RequestID},
			Granted:  m.platformCtl.RequestAccessibilityPermission(),
		}, true

	default:
		return m.errorReply(env), true
	}
}

// windowOp decodes raw into msg, runs op, and maps its result to the
// Submit/ErrorReply pair every Windows.* mutation shares.
func (m *Model) windowOp(env protocol.Envelope, raw []byte, msg interface{}, op func() error) (interface{}, bool) {
	if err := decodeInto(raw, msg); err != nil {
		return m.errorReply(env), true
	}
	if err := op(); err != nil {
		return m.errorReply(env), true
	}
	return protocol.Submit{Envelope: replyEnvelope(env)}, true
}

func parseTileRegion(s string) (platform.TileRegion, bool) {
	switch s {
	case "left_half":
		return platform.TileLeftHalf, true
	case "right_half":
		return platform.TileRightHalf, true
	case "top_half":
		return platform.TileTopHalf, true
	case "bottom_half":
		return platform.TileBottomHalf, true
	case "top_left":
		return platform.TileTopLeft, true
	case "top_right":
		return platform.TileTopRight, true
	case "bottom_left":
		return platform.TileBottomLeft, true
	case "bottom_right":
		return platform.TileBottomRight, true
	case "fullscreen":
		return platform.TileFullscreen, true
	default:
		return 0, false
	}
}

// clipboardHistoryMutate decodes an {id} payload and applies op to the
// parsed int64 id against the clipboard store, replying with
// ClipboardHistorySuccess/ClipboardHistoryError per §4.6's dedicated
// reply pair for the five mutating clipboard-history ops.
func (m *Model) clipboardHistoryMutate(env protocol.Envelope, raw []byte, op func(id int64) error) (interface{}, bool) {
	if m.clipStore == nil {
		return m.clipboardHistoryError(env, "clipboard history disabled"), true
	}
	var payload struct {
		ID string `json:"id"`
	}
	if err := decodeInto(raw, &payload); err != nil {
		return m.clipboardHistoryError(env, err.Error()), true
	}
	id, err := strconv.ParseInt(payload.ID, 10, 64)
	if err != nil {
		return m.clipboardHistoryError(env, "invalid id: "+payload.ID), true
	}
	if err := op(id); err != nil {
		return m.clipboardHistoryError(env, err.Error()), true
	}
	return protocol.ClipboardHistorySuccess{Envelope: replyEnvelope(env)}, true
}

func (m *Model) clipboardHistoryError(env protocol.Envelope, message string) protocol.ClipboardHistoryError {
	return protocol.ClipboardHistoryError{
		Envelope: protocol.Envelope{Type: protocol.TypeClipboardHistoryError, RequestID: env.RequestID},
		Message:  message,
	}
}

func (m *Model) errorReply(env protocol.Envelope) protocol.ErrorReply {
	return protocol.ErrorReply{Envelope: protocol.Envelope{Type: protocol.TypeErrorReply, RequestID: env.RequestID}, Message: "op failed: " + string(env.Type)}
}

func replyEnvelope(env protocol.Envelope) protocol.Envelope {
	return protocol.Envelope{Type: protocol.TypeSubmitReply, RequestID: env.RequestID}
}

func (m *Model) clipboardHistoryReply(env protocol.Envelope) protocol.ClipboardHistoryListReply {
	reply := protocol.ClipboardHistoryListReply{
		Envelope: protocol.Envelope{Type: protocol.TypeClipboardHistoryListReply, RequestID: env.RequestID},
	}
	if m.clipStore == nil {
		return reply
	}
	entries, err := m.clipStore.List(0)
	if err != nil {
		return reply
	}
	for _, e := range entries {
		preview := e.Content
		if e.Type.String() == "image" {
			preview = protocol.ImagePlaceholder(e.Content)
		} else {
			preview = protocol.TruncateClipboardText(preview)
		}
		reply.Entries = append(reply.Entries, protocol.ClipboardHistoryEntry{
			ID:        fmt.Sprintf("%d", e.ID),
			Kind:      e.Type.String(),
			Preview:   preview,
			CreatedAt: e.CreatedAt.Unix(),
			Pinned:    e.Pinned,
		})
	}
	return reply
}

// showToastCmd is a small helper over internal/toast for call sites that
// just want to surface a failure without building the Cmd by hand.
func showToastCmd(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return toast.ShowError(err.Error())
}

// ensureParentDir creates path's parent directories if they do not exist.
func ensureParentDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
