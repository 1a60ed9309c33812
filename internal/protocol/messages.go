package protocol

// Envelope is every message's common shape: a discriminating type plus
// the correlation id used by request/reply pairs. Prompt requests from
// the script carry "id"; system ops and their replies carry "request_id".
type Envelope struct {
	Type      Type   `json:"type"`
	ID        string `json:"id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ArgChoice is one selectable option of an Arg prompt that supplies
// choices; Arg becomes a picker rather than a free-text field when any
// are present (§4.12 "ArgPrompt(with choices)").
type ArgChoice struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Arg is the basic single-line text prompt (script -> app). With no
// Choices it is a free-text field; with Choices it is a navigable list
// and Submit carries the selected option's Value.
type Arg struct {
	Envelope
	Placeholder string      `json:"placeholder,omitempty"`
	Choices     []ArgChoice `json:"choices,omitempty"`
	Hint        string      `json:"hint,omitempty"`
}

// Div renders arbitrary HTML/markdown content with optional actions.
type Div struct {
	Envelope
	HTML string `json:"html,omitempty"`
}

// Editor opens a full-buffer text editor preloaded with Content; Language
// selects the syntax highlighting applied to it (§4.6, §4.12 "max height
// EditorPrompt").
type Editor struct {
	Envelope
	Content  string `json:"content,omitempty"`
	Language string `json:"language,omitempty"`
}

// Term opens a PTY-backed interactive shell; when Command is set it is
// run under the user's shell instead of an interactive shell prompt
// (§4.7, §4.6 "Term").
type Term struct {
	Envelope
	Command string `json:"command,omitempty"`
}

// SelectOption is one choice offered by a Select prompt.
type SelectOption struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// Select prompts for one or more choices; Multiple=true submits a JSON
// array of the chosen values (§9 Open Question resolution).
type Select struct {
	Envelope
	Placeholder string         `json:"placeholder,omitempty"`
	Options     []SelectOption `json:"options"`
	Multiple    bool           `json:"multiple,omitempty"`
}

// FieldSpec is one input of a Fields/Form prompt.
type FieldSpec struct {
	Name        string `json:"name"`
	Label       string `json:"label,omitempty"`
	Type        string `json:"type,omitempty"` // text/password/dropdown/...
	Placeholder string `json:"placeholder,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// Fields prompts for several named inputs at once.
type Fields struct {
	Envelope
	Fields []FieldSpec `json:"fields"`
}

// Notify shows a transient OS notification; Hud shows an in-window toast.
type Notify struct {
	Envelope
	Title string `json:"title,omitempty"`
	Body  string `json:"body"`
}

// Show/Hide/Exit carry no payload beyond the envelope.
type Show struct{ Envelope }
type Hide struct{ Envelope }
type Exit struct{ Envelope }

// Submit is sent both ways: script -> app to force-submit a value, and
// app -> script as the reply to whichever prompt was showing.
type Submit struct {
	Envelope
	Value interface{} `json:"value"`
}

// ClipboardRead/Write are system ops correlated by RequestID.
type ClipboardRead struct{ Envelope }
type ClipboardWrite struct {
	Envelope
	Text string `json:"text"`
}

// ClipboardHistoryEntry is one item as exposed over the protocol; large
// text is truncated and images are replaced with placeholders per the
// large-payload rule (§4.6).
type ClipboardHistoryEntry struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"` // "text" | "image"
	Preview   string `json:"preview"`
	CreatedAt int64  `json:"created_at"`
	Pinned    bool   `json:"pinned"`
}

type ClipboardHistoryList struct{ Envelope }
type ClipboardHistoryListReply struct {
	Envelope
	Entries []ClipboardHistoryEntry `json:"entries"`
}

// ClipboardHistoryPin/Unpin/Remove carry the target entry's id.
// ClipboardHistoryClear and ClipboardHistoryTrimOversize carry nothing
// beyond the envelope.
type ClipboardHistoryPin struct {
	Envelope
	ID string `json:"id"`
}
type ClipboardHistoryUnpin struct {
	Envelope
	ID string `json:"id"`
}
type ClipboardHistoryRemove struct {
	Envelope
	ID string `json:"id"`
}
type ClipboardHistoryClear struct{ Envelope }
type ClipboardHistoryTrimOversize struct{ Envelope }

// ClipboardHistorySuccess/ClipboardHistoryError are the app -> script
// replies for the five mutating clipboard-history ops above.
type ClipboardHistorySuccess struct{ Envelope }
type ClipboardHistoryError struct {
	Envelope
	Message string `json:"message"`
}

// KeyboardType simulates typing literal text; KeyboardTap simulates a
// single key chord with modifiers (§4.6 "Keyboard.{Type,Tap}").
type KeyboardType struct {
	Envelope
	Text string `json:"text"`
}
type KeyboardTap struct {
	Envelope
	Key       string   `json:"key"`
	Modifiers []string `json:"modifiers,omitempty"`
}

// MouseMove/MouseClick/MouseSetPosition drive the platform's pointer
// (§4.6 "Mouse.{Move,Click,SetPosition}").
type MouseMove struct {
	Envelope
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
type MouseClick struct {
	Envelope
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Button string  `json:"button,omitempty"`
}
type MouseSetPosition struct {
	Envelope
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WindowDescriptor is one accessibility-exposed external window, as sent
// in a WindowsListReply.
type WindowDescriptor struct {
	ID      string  `json:"id"`
	AppName string  `json:"app_name"`
	Title   string  `json:"title"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	W       float64 `json:"w"`
	H       float64 `json:"h"`
}

// Windows.{List,Focus,Close,Minimize,Maximize,Move,Resize,Tile}: the
// accessibility-based external window control ops (§4.6, §6.2).
type WindowsList struct{ Envelope }
type WindowsListReply struct {
	Envelope
	Windows []WindowDescriptor `json:"windows"`
}
type WindowsFocus struct {
	Envelope
	ID string `json:"id"`
}
type WindowsClose struct {
	Envelope
	ID string `json:"id"`
}
type WindowsMinimize struct {
	Envelope
	ID string `json:"id"`
}
type WindowsMaximize struct {
	Envelope
	ID string `json:"id"`
}
type WindowsMove struct {
	Envelope
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}
type WindowsResize struct {
	Envelope
	ID string  `json:"id"`
	W  float64 `json:"w"`
	H  float64 `json:"h"`
}
type WindowsTile struct {
	Envelope
	ID     string `json:"id"`
	Region string `json:"region"` // left_half/right_half/top_half/bottom_half/top_left/top_right/bottom_left/bottom_right/fullscreen
}

// CaptureScreenshot and its reply carry a base64-encoded image, subject
// to §4.6's large-payload streaming rule above largePayloadThreshold.
type CaptureScreenshot struct{ Envelope }
type ScreenshotResult struct {
	Envelope
	ImageBase64 string `json:"image_base64"`
}

// GetSelectedText/SetSelectedText read or write the platform's current
// text selection outside the launcher window.
type GetSelectedText struct{ Envelope }
type SetSelectedText struct {
	Envelope
	Text string `json:"text"`
}

// StateResult is the generic app -> script reply carrying a single
// string value, used for GetSelectedText's reply.
type StateResult struct {
	Envelope
	Value string `json:"value"`
}

// ElementsResult carries accessibility element/window query results;
// used here for the two AccessibilityPermission ops' boolean reply.
type ElementsResult struct {
	Envelope
	Granted bool `json:"granted"`
}

// AccessibilityPermission.{Has,Request}.
type AccessibilityPermissionHas struct{ Envelope }
type AccessibilityPermissionRequest struct{ Envelope }

// ErrorReply is the generic app -> script failure reply for any
// request-correlated op.
type ErrorReply struct {
	Envelope
	Message string `json:"message"`
}
