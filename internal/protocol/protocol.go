// Package protocol implements the newline-delimited JSON ("JSONL") wire
// format exchanged between the orchestrator (C2) and a running script
// subprocess (§4.6): one JSON object per line, discriminated by "type".
package protocol

// Type is a message's discriminating "type" field. Names are contract
// level, matching the taxonomy in §4.6 verbatim.
type Type string

// Prompt requests (script -> app).
const (
	TypeArg      Type = "arg"
	TypeDiv      Type = "div"
	TypeForm     Type = "form"
	TypeFields   Type = "fields"
	TypeSelect   Type = "select"
	TypeMini     Type = "mini"
	TypeMicro    Type = "micro"
	TypeEditor   Type = "editor"
	TypeTerm     Type = "term"
	TypePath     Type = "path"
	TypeDrop     Type = "drop"
	TypeHotkey   Type = "hotkey"
	TypeTemplate Type = "template"
	TypeEnv      Type = "env"
	TypeChat     Type = "chat"
	TypeWidget   Type = "widget"
	TypeWebcam   Type = "webcam"
	TypeMic      Type = "mic"
)

// Lifecycle / window (script -> app).
const (
	TypeShow       Type = "show"
	TypeHide       Type = "hide"
	TypeExit       Type = "exit"
	TypeSubmit     Type = "submit"
	TypeNotify     Type = "notify"
	TypeHud        Type = "hud"
	TypeSetStatus  Type = "set_status"
	TypeSetPanel   Type = "set_panel"
	TypeSetPreview Type = "set_preview"
	TypeSetActions Type = "set_actions"
	TypeSetInput   Type = "set_input"
	TypeBeep       Type = "beep"
	TypeSay        Type = "say"
	TypeBrowse     Type = "browse"
	TypeEditFile   Type = "edit_file"
	TypeRun        Type = "run"
)

// System ops, bidirectional with request_id.
const (
	TypeClipboardRead                  Type = "clipboard_read"
	TypeClipboardWrite                 Type = "clipboard_write"
	TypeClipboardHistoryList           Type = "clipboard_history_list"
	TypeClipboardHistoryPin            Type = "clipboard_history_pin"
	TypeClipboardHistoryUnpin          Type = "clipboard_history_unpin"
	TypeClipboardHistoryRemove         Type = "clipboard_history_remove"
	TypeClipboardHistoryClear          Type = "clipboard_history_clear"
	TypeClipboardHistoryTrimOversize   Type = "clipboard_history_trim_oversize"
	TypeKeyboardType                   Type = "keyboard_type"
	TypeKeyboardTap                    Type = "keyboard_tap"
	TypeMouseMove                      Type = "mouse_move"
	TypeMouseClick                     Type = "mouse_click"
	TypeMouseSetPosition               Type = "mouse_set_position"
	TypeWindowsList                    Type = "windows_list"
	TypeWindowsFocus                   Type = "windows_focus"
	TypeWindowsClose                   Type = "windows_close"
	TypeWindowsMinimize                Type = "windows_minimize"
	TypeWindowsMaximize                Type = "windows_maximize"
	TypeWindowsMove                    Type = "windows_move"
	TypeWindowsResize                  Type = "windows_resize"
	TypeWindowsTile                    Type = "windows_tile"
	TypeCaptureScreenshot              Type = "capture_screenshot"
	TypeGetSelectedText                Type = "get_selected_text"
	TypeSetSelectedText                Type = "set_selected_text"
	TypeAccessibilityPermissionHas     Type = "accessibility_permission_has"
	TypeAccessibilityPermissionRequest Type = "accessibility_permission_request"
)

// App -> script replies.
const (
	TypeSubmitReply               Type = "submit_reply"
	TypeClipboardHistoryListReply Type = "clipboard_history_list_reply"
	TypeScreenshotResult          Type = "screenshot_result"
	TypeStateResult               Type = "state_result"
	TypeElementsResult            Type = "elements_result"
	TypeClipboardHistorySuccess   Type = "clipboard_history_success"
	TypeClipboardHistoryError     Type = "clipboard_history_error"
	TypeErrorReply                Type = "error_reply"
)
