package platform

import "log/slog"

// WindowLevel mirrors §6.2's "set window level to floating".
type WindowLevel int

const (
	WindowLevelNormal WindowLevel = iota
	WindowLevelFloating
)

// Vibrancy is the optional window material §6.2 lists.
type Vibrancy int

const (
	VibrancyNone Vibrancy = iota
	VibrancyHUD
	VibrancyPopover
	VibrancyMenu
	VibrancySidebar
	VibrancyContent
)

func (v Vibrancy) String() string {
	switch v {
	case VibrancyHUD:
		return "hud"
	case VibrancyPopover:
		return "popover"
	case VibrancyMenu:
		return "menu"
	case VibrancySidebar:
		return "sidebar"
	case VibrancyContent:
		return "content"
	}
	return "none"
}

// Display is one enumerated screen, already converted from the native
// bottom-left coordinate origin to top-left (§6.2 "convert from
// bottom-left to top-left coords").
type Display struct {
	ID            int
	X, Y          float64
	Width, Height float64
	UnderMouse    bool
}

// TileRegion is one of §6.2's window-tile targets.
type TileRegion int

const (
	TileLeftHalf TileRegion = iota
	TileRightHalf
	TileTopHalf
	TileBottomHalf
	TileTopLeft
	TileTopRight
	TileBottomLeft
	TileBottomRight
	TileFullscreen
)

// ExternalWindow is one window exposed by the accessibility-based
// window control operations (§6.2).
type ExternalWindow struct {
	ID      string
	AppName string
	Title   string
	X, Y    float64
	W, H    float64
}

// PlatformController is the §6.2 contract: floating-panel configuration,
// display enumeration, vibrancy, tray icon, accessibility-based external
// window control, and clipboard text/image reads and writes. It remains
// interface-only per spec.md §1's Non-goals; NewDefaultController
// returns an implementation that no-ops (logging its actions, not its
// queries or clipboard calls), so the rest
// of the engine (C1-C5) can be exercised end-to-end without a real
// macOS host.
type PlatformController interface {
	SetWindowLevel(level WindowLevel)
	SetMovesToActiveSpace(enabled bool)
	SetStateRestorationDisabled(disabled bool)
	ActivateApp()
	FocusWindow()

	Displays() []Display
	DisplayUnderMouse() (Display, bool)

	SetVibrancy(v Vibrancy)
	SetTrayIcon(templateImagePath string)

	HasAccessibilityPermission() bool
	RequestAccessibilityPermission() bool
	ListWindows() ([]ExternalWindow, error)
	FocusWindowByID(id string) error
	CloseWindowByID(id string) error
	MinimizeWindowByID(id string) error
	MaximizeWindowByID(id string) error
	MoveWindowByID(id string, x, y float64) error
	ResizeWindowByID(id string, w, h float64) error
	TileWindowByID(id string, region TileRegion) error

	ReadClipboardText() (string, error)
	WriteClipboardText(text string) error
	ReadClipboardImage() ([]byte, bool, error)
	WriteClipboardImage(data []byte) error

	TypeText(text string) error
	TapKey(key string, modifiers []string) error
	MoveMouse(x, y float64) error
	ClickMouse(x, y float64, button string) error
	SetMousePosition(x, y float64) error

	CaptureScreenshot() ([]byte, error)
	GetSelectedText() (string, error)
	SetSelectedText(text string) error
}

// defaultController is the logging/no-op PlatformController.
type defaultController struct {
	log *slog.Logger
}

// NewDefaultController returns a PlatformController that no-ops (§6.2).
// Window, input and screenshot operations are logged at debug level;
// display and window-list queries, the accessibility check, the
// clipboard methods and GetSelectedText return zero values without
// logging.
func NewDefaultController(log *slog.Logger) PlatformController {
	if log == nil {
		log = slog.Default()
	}
	return &defaultController{log: log}
}

func (d *defaultController) SetWindowLevel(level WindowLevel) {
	d.log.Debug("platform: set window level", "level", level)
}

func (d *defaultController) SetMovesToActiveSpace(enabled bool) {
	d.log.Debug("platform: set moves-to-active-space", "enabled", enabled)
}

func (d *defaultController) SetStateRestorationDisabled(disabled bool) {
	d.log.Debug("platform: set state restoration disabled", "disabled", disabled)
}

func (d *defaultController) ActivateApp() {
	d.log.Debug("platform: activate app")
}

func (d *defaultController) FocusWindow() {
	d.log.Debug("platform: focus window")
}

func (d *defaultController) Displays() []Display {
	return nil
}

func (d *defaultController) DisplayUnderMouse() (Display, bool) {
	return Display{}, false
}

func (d *defaultController) SetVibrancy(v Vibrancy) {
	d.log.Debug("platform: set vibrancy", "material", v.String())
}

func (d *defaultController) SetTrayIcon(templateImagePath string) {
	d.log.Debug("platform: set tray icon", "path", templateImagePath)
}

func (d *defaultController) HasAccessibilityPermission() bool {
	return false
}

func (d *defaultController) RequestAccessibilityPermission() bool {
	d.log.Debug("platform: request accessibility permission")
	return false
}

func (d *defaultController) ListWindows() ([]ExternalWindow, error) {
	return nil, nil
}

func (d *defaultController) FocusWindowByID(id string) error {
	d.log.Debug("platform: focus window", "id", id)
	return nil
}

func (d *defaultController) CloseWindowByID(id string) error {
	d.log.Debug("platform: close window", "id", id)
	return nil
}

func (d *defaultController) MinimizeWindowByID(id string) error {
	d.log.Debug("platform: minimize window", "id", id)
	return nil
}

func (d *defaultController) MaximizeWindowByID(id string) error {
	d.log.Debug("platform: maximize window", "id", id)
	return nil
}

func (d *defaultController) MoveWindowByID(id string, x, y float64) error {
	d.log.Debug("platform: move window", "id", id, "x", x, "y", y)
	return nil
}

func (d *defaultController) ResizeWindowByID(id string, w, h float64) error {
	d.log.Debug("platform: resize window", "id", id, "w", w, "h", h)
	return nil
}

func (d *defaultController) TileWindowByID(id string, region TileRegion) error {
	d.log.Debug("platform: tile window", "id", id, "region", region)
	return nil
}

func (d *defaultController) ReadClipboardText() (string, error) {
	return "", nil
}

func (d *defaultController) WriteClipboardText(text string) error {
	return nil
}

func (d *defaultController) ReadClipboardImage() ([]byte, bool, error) {
	return nil, false, nil
}

func (d *defaultController) WriteClipboardImage(data []byte) error {
	return nil
}

func (d *defaultController) TypeText(text string) error {
	d.log.Debug("platform: type text", "length", len(text))
	return nil
}

func (d *defaultController) TapKey(key string, modifiers []string) error {
	d.log.Debug("platform: tap key", "key", key, "modifiers", modifiers)
	return nil
}

func (d *defaultController) MoveMouse(x, y float64) error {
	d.log.Debug("platform: move mouse", "x", x, "y", y)
	return nil
}

func (d *defaultController) ClickMouse(x, y float64, button string) error {
	d.log.Debug("platform: click mouse", "x", x, "y", y, "button", button)
	return nil
}

func (d *defaultController) SetMousePosition(x, y float64) error {
	d.log.Debug("platform: set mouse position", "x", x, "y", y)
	return nil
}

func (d *defaultController) CaptureScreenshot() ([]byte, error) {
	d.log.Debug("platform: capture screenshot")
	return nil, nil
}

func (d *defaultController) GetSelectedText() (string, error) {
	return "", nil
}

func (d *defaultController) SetSelectedText(text string) error {
	d.log.Debug("platform: set selected text", "length", len(text))
	return nil
}
